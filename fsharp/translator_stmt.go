package fsharp

import (
	"strings"

	"github.com/dhamidi/cs2fs/csharp/parser"
)

// Statements with no counterpart in the supported subset.
var unsupportedStatements = map[string]bool{
	"break":    true,
	"continue": true,
	"do":       true,
	"for":      true,
	"goto":     true,
	"lock":     true,
	"try":      true,
	"using":    true,
	"checked":  true,
	"unsafe":   true,
	"fixed":    true,
	"yield":    true,
}

// translateBlockBody translates statements up to and including the closing
// brace. A block that produces no output becomes unit.
func (t *Translator) translateBlockBody() error {
	before := t.lines
	for !t.cur.check("}") {
		if t.cur.atEOF() {
			return t.fail(t.cur.peek(), "expected '}' to close block")
		}
		if err := t.translateStatement(); err != nil {
			return err
		}
	}
	t.cur.advance()
	if t.lines == before {
		t.emit("()")
	}
	return nil
}

// translateBody translates the body of a control statement, block or single
// statement, one level deeper.
func (t *Translator) translateBody() error {
	return t.nested(func() error {
		if t.cur.check("{") {
			t.cur.advance()
			return t.translateBlockBody()
		}
		before := t.lines
		if err := t.translateStatement(); err != nil {
			return err
		}
		if t.lines == before {
			t.emit("()")
		}
		return nil
	})
}

func (t *Translator) translateStatement() error {
	tok := t.cur.peek()
	switch tok.Kind {
	case parser.TokenEOF:
		return t.unexpected(tok)
	case parser.TokenSeparator:
		t.cur.advance()
		return nil
	case parser.TokenBlockOpen:
		t.cur.advance()
		return t.translateBlockBody()
	case parser.TokenIdent:
		switch tok.Literal {
		case "return":
			return t.translateReturn()
		case "if":
			return t.translateIf("if")
		case "while":
			return t.translateWhile()
		case "foreach":
			return t.translateForeach()
		case "switch":
			return t.translateSwitch()
		case "throw":
			return t.translateThrow()
		case "var":
			return t.translateVar()
		}
		if unsupportedStatements[tok.Literal] {
			return t.unsupported(tok)
		}
		if tok.Literal != "new" && t.looksLikeDeclaration() {
			return t.fail(tok, "only 'var' is supported in local declarations")
		}
	}
	return t.translateExpressionStatement()
}

// looksLikeDeclaration reports whether a type followed by a name comes next.
// The cursor is left where it was.
func (t *Translator) looksLikeDeclaration() bool {
	pos, pending := t.cur.pos, t.pendingClose
	defer func() {
		t.cur.pos, t.pendingClose = pos, pending
	}()
	if _, err := t.readType(true); err != nil || t.pendingClose > 0 {
		return false
	}
	next := t.cur.peek()
	return next.Kind == parser.TokenIdent && !next.IsKeyword()
}

func (t *Translator) translateExpressionStatement() error {
	expr, err := t.expression(stopAtSemicolon)
	if err != nil {
		return err
	}
	if _, err := t.expect(";"); err != nil {
		return err
	}
	t.emit(expr)
	return nil
}

// translateReturn emits the returned expression as the value of the
// enclosing expression.
func (t *Translator) translateReturn() error {
	t.cur.advance()
	if t.cur.check(";") {
		t.cur.advance()
		t.emit("()")
		return nil
	}
	return t.translateExpressionStatement()
}

func (t *Translator) translateCondition() (string, error) {
	if _, err := t.expect("("); err != nil {
		return "", err
	}
	cond, err := t.expression(stopAtCloseParen)
	if err != nil {
		return "", err
	}
	if _, err := t.expect(")"); err != nil {
		return "", err
	}
	return cond, nil
}

// translateIf emits an if/elif/else chain. Each else-if continues the chain
// at the same indentation.
func (t *Translator) translateIf(keyword string) error {
	t.cur.advance()
	cond, err := t.translateCondition()
	if err != nil {
		return err
	}
	t.emit(keyword + " " + cond + " then")
	if err := t.translateBody(); err != nil {
		return err
	}
	if !t.cur.check("else") {
		return nil
	}
	t.cur.advance()
	if t.cur.check("if") {
		return t.translateIf("elif")
	}
	t.emit("else")
	return t.translateBody()
}

func (t *Translator) translateWhile() error {
	t.cur.advance()
	cond, err := t.translateCondition()
	if err != nil {
		return err
	}
	t.emit("while " + cond + " do")
	return t.translateBody()
}

func (t *Translator) translateForeach() error {
	t.cur.advance()
	if _, err := t.expect("("); err != nil {
		return err
	}
	if tok := t.cur.peek(); !tok.Is("var") {
		if tok.Kind == parser.TokenEOF {
			return t.unexpected(tok)
		}
		return t.fail(tok, "only 'var' is supported in foreach")
	}
	t.cur.advance()
	name, err := t.expectIdent("loop variable name")
	if err != nil {
		return err
	}
	if _, err := t.expect("in"); err != nil {
		return err
	}
	seq, err := t.expression(stopAtCloseParen)
	if err != nil {
		return err
	}
	if _, err := t.expect(")"); err != nil {
		return err
	}
	t.emit("for " + name.Literal + " in " + seq + " do")
	return t.translateBody()
}

func (t *Translator) translateThrow() error {
	t.cur.advance()
	if t.cur.check(";") {
		t.cur.advance()
		t.emit("reraise ()")
		return nil
	}
	expr, err := t.expression(stopAtSemicolon)
	if err != nil {
		return err
	}
	if _, err := t.expect(";"); err != nil {
		return err
	}
	t.emit("raise (" + expr + ")")
	return nil
}

func (t *Translator) translateVar() error {
	t.cur.advance()
	tok := t.cur.peek()
	if tok.Kind != parser.TokenIdent || tok.IsKeyword() {
		if tok.Kind == parser.TokenEOF {
			return t.unexpected(tok)
		}
		return t.fail(tok, "only identifier targets are supported in var declarations")
	}
	t.cur.advance()
	if _, err := t.expect("="); err != nil {
		return err
	}
	expr, err := t.expression(stopAtSemicolon)
	if err != nil {
		return err
	}
	if _, err := t.expect(";"); err != nil {
		return err
	}
	t.emit("let mutable " + tok.Literal + " = " + expr)
	return nil
}

// translateSwitch emits a match expression. Consecutive case labels share
// one arm; every arm must end in break, return or throw.
func (t *Translator) translateSwitch() error {
	t.cur.advance()
	subject, err := t.translateCondition()
	if err != nil {
		return err
	}
	if _, err := t.expect("{"); err != nil {
		return err
	}
	t.emit("match " + subject + " with")

	arms := 0
	for !t.cur.check("}") {
		if err := t.translateSwitchArm(); err != nil {
			return err
		}
		arms++
	}
	t.cur.advance()
	if arms == 0 {
		t.emit("| _ -> ()")
	}
	return nil
}

func (t *Translator) translateSwitchArm() error {
	var patterns []string
	for {
		tok := t.cur.peek()
		if tok.Is("case") {
			t.cur.advance()
			pat, err := t.expression(stopAtColon)
			if err != nil {
				return err
			}
			if _, err := t.expect(":"); err != nil {
				return err
			}
			patterns = append(patterns, pat)
			continue
		}
		if tok.Is("default") {
			t.cur.advance()
			if _, err := t.expect(":"); err != nil {
				return err
			}
			patterns = append(patterns, "_")
			continue
		}
		break
	}
	if len(patterns) == 0 {
		return t.fail(t.cur.peek(), "expected 'case' or 'default'")
	}
	head := "| " + strings.Join(patterns, " | ") + " ->"

	var result string
	before := t.lines
	body, err := t.capture(func() error {
		return t.nested(func() error {
			for {
				tok := t.cur.peek()
				switch {
				case tok.Is("break"):
					t.cur.advance()
					_, err := t.expect(";")
					return err
				case tok.Is("return"):
					t.cur.advance()
					if t.cur.check(";") {
						t.cur.advance()
						result = "()"
						return nil
					}
					expr, err := t.expression(stopAtSemicolon)
					if err != nil {
						return err
					}
					result = expr
					_, err = t.expect(";")
					return err
				case tok.Is("throw"):
					t.cur.advance()
					expr, err := t.expression(stopAtSemicolon)
					if err != nil {
						return err
					}
					result = "raise (" + expr + ")"
					_, err = t.expect(";")
					return err
				case tok.Is("case"), tok.Is("default"), tok.Is("}"), tok.Kind == parser.TokenEOF:
					return t.fail(tok, "switch section must end with break, return or throw")
				}
				if err := t.translateStatement(); err != nil {
					return err
				}
			}
		})
	})
	if err != nil {
		return err
	}

	if t.lines == before {
		if result == "" {
			result = "()"
		}
		t.emit(head + " " + result)
		return nil
	}
	t.emit(head)
	t.out.write(body)
	if result == "" {
		return nil
	}
	return t.nested(func() error {
		t.emit(result)
		return nil
	})
}
