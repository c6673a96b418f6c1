package format

import (
	"io"
	"strings"

	"github.com/dhamidi/cs2fs/csharp/parser"
)

// LineTokenEncoder writes one token per line as "[line, column] Kind: text".
type LineTokenEncoder struct {
	w      io.Writer
	tokens []parser.Token
}

func NewLineTokenEncoder(w io.Writer) *LineTokenEncoder {
	return &LineTokenEncoder{w: w}
}

func (e *LineTokenEncoder) Encode(tokens []parser.Token) error {
	e.tokens = tokens
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineTokenEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	for _, tok := range e.tokens {
		sb.WriteString(tok.String())
		sb.WriteByte('\n')
	}
	return []byte(sb.String()), nil
}
