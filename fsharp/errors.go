package fsharp

import (
	"fmt"

	"github.com/dhamidi/cs2fs/csharp/parser"
)

// TranslationError reports a construct the translator rejects: a missing
// token, an unsupported form, or input that ends mid-construct.
type TranslationError struct {
	Pos     parser.Position
	Message string
	Token   string
}

func (e *TranslationError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("%s: %s", e.Pos, e.Message)
	}
	return fmt.Sprintf("%s: %s: %q", e.Pos, e.Message, e.Token)
}

func (t *Translator) fail(tok parser.Token, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if tok.Kind == parser.TokenEOF {
		msg = "unexpected end of input, " + msg
	}
	return &TranslationError{
		Pos:     tok.Span.Start,
		Message: msg,
		Token:   tok.Literal,
	}
}

func (t *Translator) unexpected(tok parser.Token) error {
	if tok.Kind == parser.TokenEOF {
		return &TranslationError{Pos: tok.Span.Start, Message: "unexpected end of input"}
	}
	return t.fail(tok, "unexpected '%s'", tok.Literal)
}

func (t *Translator) unsupported(tok parser.Token) error {
	return t.fail(tok, "'%s' not supported", tok.Literal)
}
