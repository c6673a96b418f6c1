package fsharp

import (
	"strings"

	"github.com/dhamidi/cs2fs/csharp/parser"
)

// Expressions are rewritten token by token. Operator precedence is assumed
// to agree between the two languages for the supported operators, so tokens
// are never reordered.

type stopFunc func(parser.Token) bool

func stopAtSemicolon(tok parser.Token) bool { return tok.Kind == parser.TokenSeparator }
func stopAtCloseParen(tok parser.Token) bool { return tok.Is(")") }
func stopAtCloseBracket(tok parser.Token) bool { return tok.Is("]") }
func stopAtColon(tok parser.Token) bool { return tok.Is(":") }

func stopAtElement(tok parser.Token) bool {
	return tok.Kind == parser.TokenComma || tok.Kind == parser.TokenBlockClose
}

var binaryOperators = map[string]string{
	"=":  "<-",
	"==": "=",
	"!=": "<>",
	"<<": "<<<",
	">>": ">>>",
	"&":  "&&&",
	"|":  "|||",
	"^":  "^^^",
	"&&": "&&",
	"||": "||",
	"*":  "*",
	"/":  "/",
	"%":  "%",
	"<":  "<",
	">":  ">",
	"<=": "<=",
	">=": ">=",
}

var unsupportedOperators = map[string]bool{
	"++":  true,
	"--":  true,
	"+=":  true,
	"-=":  true,
	"*=":  true,
	"/=":  true,
	"%=":  true,
	"&=":  true,
	"|=":  true,
	"^=":  true,
	"<<=": true,
	">>=": true,
	"??":  true,
	"?:":  true,
	"?":   true,
	":":   true,
	"=>":  true,
	"->":  true,
}

// Words that cannot appear inside an expression.
var statementKeywords = map[string]bool{
	"break":     true,
	"case":      true,
	"class":     true,
	"continue":  true,
	"default":   true,
	"do":        true,
	"else":      true,
	"enum":      true,
	"for":       true,
	"foreach":   true,
	"goto":      true,
	"if":        true,
	"namespace": true,
	"return":    true,
	"switch":    true,
	"throw":     true,
	"try":       true,
	"using":     true,
	"while":     true,
}

// exprWriter accumulates one translated expression. operand records whether
// the last thing written can be followed by a call, an index or a binary
// operator.
type exprWriter struct {
	sb      strings.Builder
	operand bool
}

func (w *exprWriter) term(s string) {
	w.sb.WriteString(s)
	w.operand = true
}

func (w *exprWriter) raw(s string, operand bool) {
	w.sb.WriteString(s)
	w.operand = operand
}

// expression translates a non-empty expression that ends before a token
// accepted by stop.
func (t *Translator) expression(stop stopFunc) (string, error) {
	tok := t.cur.peek()
	if stop(tok) || tok.Kind == parser.TokenEOF {
		return "", t.fail(tok, "expected expression")
	}
	return t.translateExpr(stop)
}

func (t *Translator) translateExpr(stop stopFunc) (string, error) {
	w := &exprWriter{}
	for {
		tok := t.cur.peek()
		if tok.Kind == parser.TokenEOF {
			return "", t.unexpected(tok)
		}
		if stop(tok) {
			if w.sb.Len() > 0 && !w.operand {
				return "", t.fail(tok, "expected expression")
			}
			return w.sb.String(), nil
		}
		if err := t.translateExprToken(w, tok); err != nil {
			return "", err
		}
	}
}

func (t *Translator) translateExprToken(w *exprWriter, tok parser.Token) error {
	if w.operand && (tok.Kind == parser.TokenIdent || tok.Kind.IsLiteral()) {
		return t.fail(tok, "expected operator")
	}
	switch tok.Kind {
	case parser.TokenComma:
		t.cur.advance()
		w.raw(", ", false)
		return nil
	case parser.TokenSeparator, parser.TokenBlockOpen, parser.TokenBlockClose:
		return t.unexpected(tok)
	case parser.TokenIdent:
		switch {
		case tok.Literal == "new":
			return t.translateNew(w)
		case tok.Literal == "delegate":
			return t.translateDelegate(w)
		case statementKeywords[tok.Literal]:
			return t.unexpected(tok)
		}
		t.cur.advance()
		w.term(tok.Literal)
		return nil
	case parser.TokenOperator:
		return t.translateOperator(w, tok)
	}
	if tok.Kind.IsLiteral() {
		t.cur.advance()
		w.term(tok.Literal)
		return nil
	}
	return t.unexpected(tok)
}

func (t *Translator) translateOperator(w *exprWriter, tok parser.Token) error {
	op := tok.Literal
	if unsupportedOperators[op] {
		return t.unsupported(tok)
	}

	switch op {
	case "(":
		call := w.operand || t.constructing
		t.constructing = false
		inner, err := t.translateGroup(")", stopAtCloseParen)
		if err != nil {
			return err
		}
		if call {
			w.raw("("+inner+")", true)
		} else {
			w.term("(" + inner + ")")
		}
		return nil
	case "[":
		if !w.operand {
			return t.unexpected(tok)
		}
		inner, err := t.translateGroup("]", stopAtCloseBracket)
		if err != nil {
			return err
		}
		if inner == "" {
			return t.fail(tok, "expected index")
		}
		w.raw(".["+inner+"]", true)
		return nil
	case ")", "]":
		return t.unexpected(tok)
	case ".":
		t.cur.advance()
		w.raw(".", false)
		return nil
	case "!", "~":
		if w.operand {
			return t.unexpected(tok)
		}
		t.cur.advance()
		if op == "!" {
			w.term("not ")
		} else {
			w.term("~~~")
		}
		w.operand = false
		return nil
	case "+", "-":
		t.cur.advance()
		if w.operand {
			w.raw(" "+op+" ", false)
		} else {
			w.raw(op, false)
		}
		return nil
	}

	if fs, ok := binaryOperators[op]; ok {
		if !w.operand {
			return t.unexpected(tok)
		}
		t.cur.advance()
		w.raw(" "+fs+" ", false)
		return nil
	}
	return t.unsupported(tok)
}

// translateGroup translates a bracketed sub-expression, which may be empty.
func (t *Translator) translateGroup(closer string, stop stopFunc) (string, error) {
	t.cur.advance()
	inner, err := t.translateExpr(stop)
	if err != nil {
		return "", err
	}
	if _, err := t.expect(closer); err != nil {
		return "", err
	}
	return inner, nil
}

// translateNew handles object construction, array literals and sized
// arrays:
//
//	new T(args)        -> new T(args)
//	new T[] { a, b }   -> [| a; b |]
//	new T[n]           -> Array.zeroCreate<T> (n)
func (t *Translator) translateNew(w *exprWriter) error {
	t.cur.advance()
	ref, err := t.readType(false)
	if err != nil {
		return err
	}

	tok := t.cur.peek()
	switch {
	case tok.Is("("):
		w.term("new " + ref.fs)
		t.constructing = true
		return t.translateOperator(w, tok)
	case tok.Is("["):
		t.cur.advance()
		if t.cur.check("]") {
			t.cur.advance()
			for t.cur.check("[") {
				t.cur.advance()
				if _, err := t.expect("]"); err != nil {
					return err
				}
			}
			return t.translateArrayLiteral(w)
		}
		size, err := t.expression(stopAtCloseBracket)
		if err != nil {
			return err
		}
		if _, err := t.expect("]"); err != nil {
			return err
		}
		w.term("Array.zeroCreate<" + ref.fs + "> (" + size + ")")
		return nil
	case tok.Is("{"):
		return t.fail(tok, "object initializer not supported")
	}
	return t.fail(tok, "expected '(' or '[' after 'new %s'", ref.cs)
}

func (t *Translator) translateArrayLiteral(w *exprWriter) error {
	if _, err := t.expect("{"); err != nil {
		return err
	}
	var elems []string
	for !t.cur.check("}") {
		tok := t.cur.peek()
		if tok.Kind == parser.TokenComma || tok.Kind == parser.TokenSeparator {
			return t.fail(tok, "empty array element")
		}
		elem, err := t.expression(stopAtElement)
		if err != nil {
			return err
		}
		elems = append(elems, elem)
		if !t.cur.check(",") {
			break
		}
		t.cur.advance()
	}
	if _, err := t.expect("}"); err != nil {
		return err
	}
	if len(elems) == 0 {
		w.term("[||]")
		return nil
	}
	w.term("[| " + strings.Join(elems, "; ") + " |]")
	return nil
}

// translateDelegate turns an anonymous method into a lambda. The body is a
// full block one level below the enclosing statement and the closing
// parenthesis sits at the enclosing indentation.
func (t *Translator) translateDelegate(w *exprWriter) error {
	t.cur.advance()
	params, err := t.readParams()
	if err != nil {
		return err
	}
	if _, err := t.expect("{"); err != nil {
		return err
	}

	var head strings.Builder
	head.WriteString("(fun")
	if len(params) == 0 {
		head.WriteString(" ()")
	}
	for _, p := range params {
		head.WriteString(" (" + p.name + " : " + p.typ + ")")
	}
	head.WriteString(" ->\n")

	body, err := t.capture(func() error {
		return t.nested(t.translateBlockBody)
	})
	if err != nil {
		return err
	}
	w.term(head.String() + body + t.indent + ")")
	return nil
}
