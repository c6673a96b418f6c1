package parser

import "fmt"

// LexicalError reports input that no classification rule accepts, or a
// literal or comment left open at end of input. Text holds the partial token
// consumed before the failure.
type LexicalError struct {
	Pos     Position
	Message string
	Text    string
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("%s: %s: %q", e.Pos, e.Message, e.Text)
}
