package parser

import (
	"fmt"
	"strings"
)

type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	if p.File != "" {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Span struct {
	Start Position
	End   Position
}

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenError
	TokenWhitespace
	TokenNewline

	// Identifiers and keywords share a kind; see IsKeyword.
	TokenIdent
	TokenOperator
	TokenSeparator
	TokenComma
	TokenBlockOpen
	TokenBlockClose

	// Literals
	TokenInt
	TokenUInt
	TokenLong
	TokenULong
	TokenFloat
	TokenDouble
	TokenString
	TokenChar

	TokenLineComment
	TokenBlockComment
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:          "EOF",
	TokenError:        "Error",
	TokenWhitespace:   "Whitespace",
	TokenNewline:      "Newline",
	TokenIdent:        "Identifier",
	TokenOperator:     "Operator",
	TokenSeparator:    "Separator",
	TokenComma:        "Comma",
	TokenBlockOpen:    "BlockOpen",
	TokenBlockClose:   "BlockClose",
	TokenInt:          "Int",
	TokenUInt:         "UInt",
	TokenLong:         "Long",
	TokenULong:        "ULong",
	TokenFloat:        "Float",
	TokenDouble:       "Double",
	TokenString:       "String",
	TokenChar:         "Char",
	TokenLineComment:  "LineComment",
	TokenBlockComment: "BlockComment",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsLiteral reports whether the kind is a numeric, string or character literal.
func (k TokenKind) IsLiteral() bool {
	return k >= TokenInt && k <= TokenChar
}

type Token struct {
	Kind    TokenKind
	Span    Span
	Literal string
}

func (t Token) Pos() Position {
	return t.Span.Start
}

// CanOmit reports whether the token carries no meaning for translation.
func (t Token) CanOmit() bool {
	switch t.Kind {
	case TokenWhitespace, TokenNewline, TokenLineComment, TokenBlockComment:
		return true
	}
	return false
}

// Is reports whether the token is an identifier, operator or punctuation
// token with exactly the given text.
func (t Token) Is(text string) bool {
	return t.Kind != TokenString && t.Kind != TokenChar && t.Literal == text
}

// Align expands tabs in a whitespace token to spaces, using tab stops of the
// given width counted from the token's column. Other tokens are returned as is.
func (t Token) Align(tab int) string {
	if t.Kind != TokenWhitespace || tab <= 0 {
		return t.Literal
	}
	var sb strings.Builder
	column := t.Span.Start.Column
	for _, ch := range t.Literal {
		if ch == '\t' {
			n := tab - ((column - 1) % tab)
			sb.WriteString(strings.Repeat(" ", n))
			column += n
			continue
		}
		sb.WriteRune(ch)
		column++
	}
	return sb.String()
}

func (t Token) String() string {
	var text string
	switch t.Kind {
	case TokenWhitespace:
		text = fmt.Sprint(len([]rune(t.Align(4))))
	case TokenNewline:
		text = strings.NewReplacer("\r", `\r`, "\n", `\n`).Replace(t.Literal)
	default:
		text = t.Literal
	}
	return fmt.Sprintf("[%d, %d] %s: %s", t.Span.Start.Line, t.Span.Start.Column, t.Kind, text)
}

var keywords = map[string]bool{}

func init() {
	for _, kw := range []string{
		"abstract", "as", "base", "bool", "break", "byte", "case", "catch",
		"char", "checked", "class", "const", "continue", "decimal", "default", "delegate",
		"do", "double", "else", "enum", "event", "explicit", "extern", "false",
		"finally", "fixed", "float", "for", "foreach", "goto", "if", "implicit",
		"in", "int", "interface", "internal", "is", "lock", "long", "namespace",
		"new", "null", "object", "operator", "out", "override", "params", "private",
		"protected", "public", "readonly", "ref", "return", "sbyte", "sealed", "short",
		"sizeof", "stackalloc", "static", "string", "struct", "switch", "this", "throw",
		"true", "try", "typeof", "uint", "ulong", "unchecked", "unsafe", "ushort",
		"using", "virtual", "void", "volatile", "while",
	} {
		keywords[kw] = true
	}
}

// IsKeyword reports whether ident is a reserved word of the source language.
func IsKeyword(ident string) bool {
	return keywords[ident]
}

// IsKeyword reports whether the token is an identifier token spelling a
// reserved word.
func (t Token) IsKeyword() bool {
	return t.Kind == TokenIdent && keywords[t.Literal]
}
