package fsharp

import (
	"io"
	"strings"

	"github.com/dhamidi/cs2fs/csharp/parser"
	"github.com/tliron/commonlog"
)

// Option configures a Translator.
type Option func(*Translator)

// WithIndent sets the text of one indentation level. The default is four
// spaces.
func WithIndent(unit string) Option {
	return func(t *Translator) {
		t.unit = unit
	}
}

// WithTypeMapping controls whether C# primitive type names are renamed to
// their F# spelling in declarations.
func WithTypeMapping(enabled bool) Option {
	return func(t *Translator) {
		t.mapTypes = enabled
	}
}

// WithLogger replaces the default "cs2fs.translate" logger.
func WithLogger(log commonlog.Logger) Option {
	return func(t *Translator) {
		t.log = log
	}
}

// Translator turns a C# token stream into F# source in a single pass. It
// prints while it recognises the grammar and never builds a tree.
type Translator struct {
	cur      *cursor
	out      *writer
	unit     string
	indent   string
	mapTypes bool
	log      commonlog.Logger

	// imports gathered from using directives, written once after the
	// namespace header.
	imports        []string
	importsFlushed bool

	// constructing is set while the type of a new expression is read; the
	// argument list that follows binds to the type name.
	constructing bool

	// pendingClose counts generic closers already consumed as part of a
	// '>>' token.
	pendingClose int

	className string
	lines     int
}

func newTranslator(w io.Writer, tokens []parser.Token, opts ...Option) *Translator {
	t := &Translator{
		cur:      newCursor(tokens),
		out:      &writer{w: w},
		unit:     "    ",
		mapTypes: true,
		log:      commonlog.GetLogger("cs2fs.translate"),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Translate converts a token sequence, as produced by parser.Tokenize, into F#
// source text. Whitespace, newline and comment tokens are ignored.
func Translate(tokens []parser.Token, opts ...Option) (string, error) {
	var sb strings.Builder
	if err := TranslateTo(&sb, tokens, opts...); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// TranslateTo streams the translation to w. On error, whatever was already
// written stays in w.
func TranslateTo(w io.Writer, tokens []parser.Token, opts ...Option) error {
	t := newTranslator(w, tokens, opts...)
	if err := t.translateCompilationUnit(); err != nil {
		t.log.Debugf("translation failed: %s", err)
		return err
	}
	return t.out.err
}

// translateCompilationUnit handles: using-directive* namespace-declaration.
func (t *Translator) translateCompilationUnit() error {
	for t.cur.check("using") {
		if err := t.translateUsing(); err != nil {
			return err
		}
	}

	tok := t.cur.peek()
	if !tok.Is("namespace") {
		if tok.Kind == parser.TokenEOF {
			return t.fail(tok, "expected 'namespace'")
		}
		return t.fail(tok, "expected 'namespace', got '%s'", tok.Literal)
	}
	if err := t.translateNamespace(); err != nil {
		return err
	}

	if !t.cur.atEOF() {
		return t.fail(t.cur.peek(), "expected end of input after namespace")
	}
	return nil
}

func (t *Translator) translateUsing() error {
	t.cur.advance()
	var path strings.Builder
	for !t.cur.check(";") {
		tok := t.cur.advance()
		if tok.Kind == parser.TokenEOF {
			return t.fail(tok, "expected ';' after using directive")
		}
		path.WriteString(tok.Literal)
	}
	t.cur.advance()
	if path.Len() == 0 {
		return t.fail(t.cur.peek(), "empty using directive")
	}
	t.imports = append(t.imports, path.String())
	return nil
}

func (t *Translator) flushImports() {
	if t.importsFlushed {
		return
	}
	t.importsFlushed = true
	if len(t.imports) == 0 {
		return
	}
	t.blank()
	for _, imp := range t.imports {
		t.emit("open " + imp)
	}
}

func (t *Translator) translateNamespace() error {
	t.cur.advance()
	var name strings.Builder
	for !t.cur.check("{") {
		tok := t.cur.advance()
		if tok.Kind == parser.TokenEOF {
			return t.fail(tok, "expected '{' after namespace name")
		}
		name.WriteString(tok.Literal)
	}
	if name.Len() == 0 {
		return t.fail(t.cur.peek(), "expected namespace name")
	}
	t.cur.advance()

	t.log.Debugf("namespace %s", name.String())
	t.emit("namespace " + name.String())
	t.flushImports()

	for !t.cur.check("}") {
		if t.cur.atEOF() {
			return t.fail(t.cur.peek(), "expected '}' to close namespace")
		}
		if err := t.translateTypeDeclaration(); err != nil {
			return err
		}
	}
	t.cur.advance()
	return nil
}

// expect consumes a token with the given text or fails.
func (t *Translator) expect(text string) (parser.Token, error) {
	tok := t.cur.peek()
	if !tok.Is(text) {
		return tok, t.fail(tok, "expected '%s'", text)
	}
	return t.cur.advance(), nil
}

// expectIdent consumes a non-keyword identifier.
func (t *Translator) expectIdent(what string) (parser.Token, error) {
	tok := t.cur.peek()
	if tok.Kind != parser.TokenIdent || tok.IsKeyword() {
		return tok, t.fail(tok, "expected %s", what)
	}
	return t.cur.advance(), nil
}
