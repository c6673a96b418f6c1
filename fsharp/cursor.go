package fsharp

import "github.com/dhamidi/cs2fs/csharp/parser"

// cursor walks the significant tokens. Reading past the end yields the
// sentinel, which sits where the last token ends.
type cursor struct {
	tokens []parser.Token
	pos    int
	eof    parser.Token
}

func newCursor(tokens []parser.Token) *cursor {
	c := &cursor{}
	for _, tok := range tokens {
		if tok.CanOmit() || tok.Kind == parser.TokenEOF {
			continue
		}
		c.tokens = append(c.tokens, tok)
	}
	end := parser.Position{Line: 1, Column: 1}
	if n := len(tokens); n > 0 {
		end = tokens[n-1].Span.End
	}
	c.eof = parser.Token{Kind: parser.TokenEOF, Span: parser.Span{Start: end, End: end}}
	return c
}

func (c *cursor) peek() parser.Token {
	return c.peekN(0)
}

func (c *cursor) peekN(n int) parser.Token {
	if c.pos+n >= len(c.tokens) {
		return c.eof
	}
	return c.tokens[c.pos+n]
}

func (c *cursor) advance() parser.Token {
	tok := c.peek()
	if c.pos < len(c.tokens) {
		c.pos++
	}
	return tok
}

func (c *cursor) atEOF() bool {
	return c.pos >= len(c.tokens)
}

func (c *cursor) check(text string) bool {
	return c.peek().Is(text)
}
