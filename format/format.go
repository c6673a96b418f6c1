package format

import (
	"encoding"

	"github.com/dhamidi/cs2fs/csharp/parser"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(tokens []parser.Token) error
}

// Significant drops whitespace, newline and comment tokens, leaving what the
// translator sees.
func Significant(tokens []parser.Token) []parser.Token {
	out := make([]parser.Token, 0, len(tokens))
	for _, tok := range tokens {
		if !tok.CanOmit() {
			out = append(out, tok)
		}
	}
	return out
}
