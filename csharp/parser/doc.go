// Package parser tokenizes C# source text for translation.
//
// # Overview
//
// The lexer scans a rune buffer left to right, never backtracking, and
// classifies each position by the first rule that applies:
//
//  1. space/tab run: Whitespace
//  2. CR, LF or CRLF: Newline
//  3. ; , { }: Separator, Comma, BlockOpen, BlockClose
//  4. 'x' or '\x': Char
//  5. "...": String (a backslash escapes the next character)
//  6. // and /* */: LineComment, BlockComment
//  7. digits: Int, UInt, Long, ULong, Float or Double by suffix
//  8. letter, underscore or code point >= 128: Identifier
//  9. otherwise the longest operator that matches
//
// Whitespace, newlines and comments are reported but are omissible: the
// translator never sees them (see Token.CanOmit).
//
// # Errors
//
// An unterminated literal or comment, or a character no rule accepts, stops
// the lexer with a *LexicalError carrying the position and the partial text.
//
//	tokens, err := parser.Tokenize(src)
//	var lexErr *parser.LexicalError
//	if errors.As(err, &lexErr) {
//	    fmt.Println(lexErr.Pos.Line, lexErr.Pos.Column, lexErr.Message)
//	}
//
// # Thread Safety
//
// A Lexer is not safe for concurrent use. The operator table and keyword set
// are built at init and only read afterwards.
package parser
