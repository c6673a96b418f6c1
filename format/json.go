package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/cs2fs/csharp/parser"
	"github.com/hokaccha/go-prettyjson"
)

// JSONTokenEncoder writes the tokens as an indented JSON array. With
// Colorize set the output carries ANSI colors for terminals.
type JSONTokenEncoder struct {
	Colorize bool

	w      io.Writer
	tokens []parser.Token
}

func NewJSONTokenEncoder(w io.Writer) *JSONTokenEncoder {
	return &JSONTokenEncoder{w: w}
}

func (e *JSONTokenEncoder) Encode(tokens []parser.Token) error {
	e.tokens = tokens
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONTokenEncoder) MarshalText() ([]byte, error) {
	data := e.buildTokenData()
	if e.Colorize {
		return prettyjson.Marshal(data)
	}
	return json.MarshalIndent(data, "", "  ")
}

type jsonToken struct {
	Kind   string `json:"kind"`
	Text   string `json:"text"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

func (e *JSONTokenEncoder) buildTokenData() []jsonToken {
	data := make([]jsonToken, 0, len(e.tokens))
	for _, tok := range e.tokens {
		data = append(data, jsonToken{
			Kind:   tok.Kind.String(),
			Text:   tok.Literal,
			Line:   tok.Span.Start.Line,
			Column: tok.Span.Start.Column,
		})
	}
	return data
}
