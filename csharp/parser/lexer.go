package parser

// Lexer scans C# source one token at a time. Positions count runes, so a
// column is the 1-based index of a code point on its line.
type Lexer struct {
	input  []rune
	file   string
	pos    int
	line   int
	column int
	err    *LexicalError
}

func NewLexer(input string, file string) *Lexer {
	return &Lexer{
		input:  []rune(input),
		file:   file,
		pos:    0,
		line:   1,
		column: 1,
	}
}

// Tokenize scans the whole source and returns every token, omissible ones
// included, or the first lexical error.
func Tokenize(source string) ([]Token, error) {
	return NewLexer(source, "").All()
}

// All drains the lexer. The end-of-input token is not part of the result.
// On a lexical error the tokens read so far are discarded.
func (l *Lexer) All() ([]Token, error) {
	var tokens []Token
	for {
		tok := l.NextToken()
		switch tok.Kind {
		case TokenEOF:
			return tokens, nil
		case TokenError:
			return nil, l.err
		}
		tokens = append(tokens, tok)
	}
}

// Err returns the lexical error that stopped the lexer, if any.
func (l *Lexer) Err() error {
	if l.err == nil {
		return nil
	}
	return l.err
}

func (l *Lexer) Position() Position {
	return Position{
		File:   l.file,
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

func (l *Lexer) peek() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) rune {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) atEOF() bool {
	return l.pos >= len(l.input)
}

func (l *Lexer) advance() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	switch {
	case ch == '\n', ch == '\r' && l.peek() != '\n':
		l.line++
		l.column = 1
	default:
		l.column++
	}
	return ch
}

func (l *Lexer) advanceN(n int) {
	for i := 0; i < n; i++ {
		l.advance()
	}
}

// NextToken returns the next token. After an error it keeps returning the
// same error token.
func (l *Lexer) NextToken() Token {
	if l.err != nil {
		return Token{
			Kind:    TokenError,
			Span:    Span{Start: l.err.Pos, End: l.err.Pos},
			Literal: l.err.Text,
		}
	}

	start := l.Position()
	if l.atEOF() {
		return Token{Kind: TokenEOF, Span: Span{Start: start, End: start}}
	}

	ch := l.peek()
	switch {
	case ch == ' ' || ch == '\t':
		return l.scanWhitespace(start)
	case ch == '\r' || ch == '\n':
		return l.scanNewline(start)
	case ch == ';':
		l.advance()
		return l.token(TokenSeparator, start)
	case ch == ',':
		l.advance()
		return l.token(TokenComma, start)
	case ch == '{':
		l.advance()
		return l.token(TokenBlockOpen, start)
	case ch == '}':
		l.advance()
		return l.token(TokenBlockClose, start)
	case ch == '\'':
		return l.scanCharLiteral(start)
	case ch == '"':
		return l.scanStringLiteral(start)
	case ch == '/' && l.peekN(1) == '/':
		return l.scanLineComment(start)
	case ch == '/' && l.peekN(1) == '*':
		return l.scanBlockComment(start)
	case isDigit(ch):
		return l.scanNumber(start)
	case isIdentStart(ch):
		return l.scanIdent(start)
	}
	return l.scanOperator(start)
}

func (l *Lexer) scanWhitespace(start Position) Token {
	for l.peek() == ' ' || l.peek() == '\t' {
		l.advance()
	}
	return l.token(TokenWhitespace, start)
}

func (l *Lexer) scanNewline(start Position) Token {
	if l.advance() == '\r' && l.peek() == '\n' {
		l.advance()
	}
	return l.token(TokenNewline, start)
}

func (l *Lexer) scanLineComment(start Position) Token {
	l.advanceN(2)
	for !l.atEOF() && l.peek() != '\r' && l.peek() != '\n' {
		l.advance()
	}
	return l.token(TokenLineComment, start)
}

func (l *Lexer) scanBlockComment(start Position) Token {
	l.advanceN(2)
	for {
		if l.atEOF() {
			return l.fail(start, "unterminated comment")
		}
		if l.peek() == '*' && l.peekN(1) == '/' {
			l.advanceN(2)
			return l.token(TokenBlockComment, start)
		}
		l.advance()
	}
}

func (l *Lexer) scanCharLiteral(start Position) Token {
	l.advance()
	if l.atEOF() {
		return l.fail(start, "unterminated character")
	}
	if l.peek() == '\\' {
		l.advance()
	}
	if l.atEOF() {
		return l.fail(start, "unterminated character")
	}
	l.advance()
	if l.peek() != '\'' {
		return l.fail(start, "unterminated character")
	}
	l.advance()
	return l.token(TokenChar, start)
}

func (l *Lexer) scanStringLiteral(start Position) Token {
	l.advance()
	for {
		if l.atEOF() {
			return l.fail(start, "unterminated string")
		}
		switch l.advance() {
		case '\\':
			if l.atEOF() {
				return l.fail(start, "unterminated string")
			}
			l.advance()
		case '"':
			return l.token(TokenString, start)
		}
	}
}

func (l *Lexer) scanNumber(start Position) Token {
	for isDigit(l.peek()) {
		l.advance()
	}

	if l.peek() == '.' && isDigit(l.peekN(1)) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
		switch l.peek() {
		case 'f', 'F':
			l.advance()
			return l.token(TokenFloat, start)
		case 'd', 'D':
			l.advance()
		}
		return l.token(TokenDouble, start)
	}

	switch l.peek() {
	case 'u', 'U':
		l.advance()
		if l.peek() == 'l' || l.peek() == 'L' {
			l.advance()
			return l.token(TokenULong, start)
		}
		return l.token(TokenUInt, start)
	case 'l', 'L':
		l.advance()
		return l.token(TokenLong, start)
	}
	return l.token(TokenInt, start)
}

func (l *Lexer) scanIdent(start Position) Token {
	for isIdentPart(l.peek()) {
		l.advance()
	}
	return l.token(TokenIdent, start)
}

func (l *Lexer) scanOperator(start Position) Token {
	op := matchOperator(l.input[l.pos:])
	if op == "" {
		l.advance()
		return l.fail(start, "invalid character")
	}
	l.advanceN(len([]rune(op)))
	return l.token(TokenOperator, start)
}

func (l *Lexer) token(kind TokenKind, start Position) Token {
	end := l.Position()
	return Token{
		Kind:    kind,
		Span:    Span{Start: start, End: end},
		Literal: string(l.input[start.Offset:end.Offset]),
	}
}

func (l *Lexer) fail(start Position, message string) Token {
	tok := l.token(TokenError, start)
	l.err = &LexicalError{
		Pos:     start,
		Message: message,
		Text:    tok.Literal,
	}
	return tok
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch rune) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch >= 128
}

func isIdentPart(ch rune) bool {
	return isIdentStart(ch) || isDigit(ch)
}
