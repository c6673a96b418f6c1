package fsharp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dhamidi/cs2fs/csharp/parser"
)

var accessKeywords = map[string]bool{
	"public":    true,
	"protected": true,
	"private":   true,
	"internal":  true,
}

var unsupportedModifiers = map[string]bool{
	"abstract": true,
	"async":    true,
	"const":    true,
	"event":    true,
	"explicit": true,
	"extern":   true,
	"implicit": true,
	"new":      true,
	"operator": true,
	"override": true,
	"partial":  true,
	"readonly": true,
	"sealed":   true,
	"unsafe":   true,
	"virtual":  true,
	"volatile": true,
}

var nestedTypeKeywords = map[string]bool{
	"class":     true,
	"enum":      true,
	"struct":    true,
	"interface": true,
	"delegate":  true,
}

var paramModifiers = map[string]bool{
	"ref":    true,
	"out":    true,
	"params": true,
	"in":     true,
	"this":   true,
}

// modifiers accumulates the prefix of one member. The last access keyword
// wins; static sticks once seen.
type modifiers struct {
	access string
	static bool
}

// declaration is a member's type and name. typ is nil for a constructor,
// which is declared by name alone.
type declaration struct {
	typ  *typeRef
	name parser.Token
}

type param struct {
	name string
	typ  string
}

func typeAccess(access string) string {
	if access == "public" {
		return ""
	}
	return "internal "
}

func memberAccess(access string) string {
	switch access {
	case "public":
		return ""
	case "private":
		return "private "
	}
	return "internal "
}

func fieldLine(static bool, access, name, typ string) string {
	var sb strings.Builder
	sb.WriteString("[<DefaultValue>] ")
	if static {
		sb.WriteString("static ")
	}
	sb.WriteString("val mutable ")
	sb.WriteString(access)
	sb.WriteString(name)
	sb.WriteString(" : ")
	sb.WriteString(typ)
	return sb.String()
}

func formatParams(params []param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.name + " : " + p.typ
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (t *Translator) translateTypeDeclaration() error {
	access := "private"
	if tok := t.cur.peek(); tok.Kind == parser.TokenIdent && accessKeywords[tok.Literal] {
		access = tok.Literal
		t.cur.advance()
	}

	var err error
	switch tok := t.cur.peek(); {
	case tok.Is("class"):
		err = t.translateClass(access)
	case tok.Is("enum"):
		err = t.translateEnum(access)
	case tok.Kind == parser.TokenEOF:
		err = t.unexpected(tok)
	default:
		err = t.unsupported(tok)
	}
	if err != nil {
		return err
	}
	if t.cur.check(";") {
		t.cur.advance()
	}
	return nil
}

func (t *Translator) translateEnum(access string) error {
	t.cur.advance()
	name, err := t.expectIdent("enum name")
	if err != nil {
		return err
	}
	if tok := t.cur.peek(); tok.Is(":") {
		return t.fail(tok, "enum base type not supported")
	}
	if _, err := t.expect("{"); err != nil {
		return err
	}

	t.log.Debugf("enum %s", name.Literal)
	t.blank()
	t.emit("type " + typeAccess(access) + name.Literal + " =")

	var next int64
	err = t.nested(func() error {
		for !t.cur.check("}") {
			member, err := t.expectIdent("enum member name")
			if err != nil {
				return err
			}
			value := next
			if t.cur.check("=") {
				t.cur.advance()
				if value, err = t.readEnumValue(); err != nil {
					return err
				}
			}
			t.emit(fmt.Sprintf("| %s = %d", member.Literal, value))
			next = value + 1

			if !t.cur.check(",") {
				break
			}
			t.cur.advance()
		}
		return nil
	})
	if err != nil {
		return err
	}
	_, err = t.expect("}")
	return err
}

func (t *Translator) readEnumValue() (int64, error) {
	negative := false
	if t.cur.check("-") {
		t.cur.advance()
		negative = true
	}
	tok := t.cur.peek()
	switch tok.Kind {
	case parser.TokenInt, parser.TokenUInt, parser.TokenLong, parser.TokenULong:
	default:
		return 0, t.fail(tok, "expected integer enum value")
	}
	t.cur.advance()
	value, err := strconv.ParseInt(strings.TrimRight(tok.Literal, "uUlL"), 10, 64)
	if err != nil {
		return 0, t.fail(tok, "enum value out of range")
	}
	if negative {
		value = -value
	}
	return value, nil
}

func (t *Translator) translateClass(access string) error {
	t.cur.advance()
	name, err := t.expectIdent("class name")
	if err != nil {
		return err
	}
	if tok := t.cur.peek(); tok.Is(":") {
		return t.fail(tok, "inherit not supported")
	}
	if _, err := t.expect("{"); err != nil {
		return err
	}

	t.log.Debugf("class %s", name.Literal)
	saved := t.className
	t.className = name.Literal
	defer func() { t.className = saved }()

	t.blank()
	t.emit("type " + typeAccess(access) + name.Literal + "() =")
	err = t.nested(func() error {
		before := t.lines
		for !t.cur.check("}") {
			if t.cur.atEOF() {
				return t.fail(t.cur.peek(), "expected '}' to close class")
			}
			if err := t.translateMember(); err != nil {
				return err
			}
		}
		if t.lines == before {
			t.emit("class end")
		}
		return nil
	})
	if err != nil {
		return err
	}
	t.cur.advance()
	return nil
}

func (t *Translator) readModifiers() (modifiers, error) {
	mods := modifiers{access: "private"}
	for {
		tok := t.cur.peek()
		if tok.Kind != parser.TokenIdent {
			return mods, nil
		}
		switch {
		case accessKeywords[tok.Literal]:
			mods.access = tok.Literal
		case tok.Literal == "static":
			mods.static = true
		case unsupportedModifiers[tok.Literal]:
			return mods, t.unsupported(tok)
		case nestedTypeKeywords[tok.Literal]:
			return mods, t.fail(tok, "nested '%s' not supported", tok.Literal)
		default:
			return mods, nil
		}
		t.cur.advance()
	}
}

func (t *Translator) translateMember() error {
	mods, err := t.readModifiers()
	if err != nil {
		return err
	}
	decl, err := t.readDeclaration()
	if err != nil {
		return err
	}

	tok := t.cur.peek()
	switch {
	case tok.Is("("):
		return t.translateMethod(mods, decl)
	case tok.Is(";"):
		return t.translateField(mods, decl)
	case tok.Is("{"):
		return t.translateProperty(mods, decl)
	case tok.Is("="):
		return t.fail(tok, "default value not supported")
	}
	return t.fail(tok, "expected '(', ';' or '{' after member name")
}

func (t *Translator) readDeclaration() (declaration, error) {
	ref, err := t.readType(true)
	if err != nil {
		return declaration{}, err
	}
	if tok := t.cur.peek(); tok.Kind == parser.TokenIdent && !tok.IsKeyword() {
		t.cur.advance()
		return declaration{typ: &ref, name: tok}, nil
	}
	if ref.cs != t.className {
		return declaration{}, t.fail(t.cur.peek(), "expected member name after '%s'", ref.cs)
	}
	return declaration{name: ref.first}, nil
}

func (t *Translator) translateField(mods modifiers, decl declaration) error {
	if decl.typ == nil {
		return t.fail(decl.name, "field '%s' has no type", decl.name.Literal)
	}
	t.cur.advance()
	t.emit(fieldLine(mods.static, memberAccess(mods.access), decl.name.Literal, decl.typ.fs))
	return nil
}

func (t *Translator) readParams() ([]param, error) {
	if _, err := t.expect("("); err != nil {
		return nil, err
	}
	if t.cur.check(")") {
		t.cur.advance()
		return nil, nil
	}

	var params []param
	for {
		if tok := t.cur.peek(); tok.Kind == parser.TokenIdent && paramModifiers[tok.Literal] {
			return nil, t.fail(tok, "parameter modifier '%s' not supported", tok.Literal)
		}
		ref, err := t.readType(true)
		if err != nil {
			return nil, err
		}
		name := t.cur.peek()
		if name.Kind == parser.TokenEOF {
			return nil, t.unexpected(name)
		}
		if name.Kind != parser.TokenIdent || name.IsKeyword() {
			return nil, t.fail(ref.first, "untyped parameter not supported")
		}
		t.cur.advance()
		if tok := t.cur.peek(); tok.Is("=") {
			return nil, t.fail(tok, "default parameter value not supported")
		}
		params = append(params, param{name: name.Literal, typ: ref.fs})

		tok := t.cur.peek()
		if tok.Is(")") {
			t.cur.advance()
			return params, nil
		}
		if !tok.Is(",") {
			return nil, t.fail(tok, "expected ',' or ')' in parameter list")
		}
		t.cur.advance()
	}
}

func (t *Translator) translateMethod(mods modifiers, decl declaration) error {
	params, err := t.readParams()
	if err != nil {
		return err
	}
	sig := formatParams(params)

	if decl.typ == nil {
		if mods.static {
			return t.fail(decl.name, "static constructor not supported")
		}
		return t.translateConstructor(mods, sig)
	}

	t.log.Debugf("method %s.%s", t.className, decl.name.Literal)
	var header string
	if mods.static {
		header = "static member " + memberAccess(mods.access) + decl.name.Literal + sig
	} else {
		header = "member " + memberAccess(mods.access) + "this." + decl.name.Literal + sig
	}
	if !decl.typ.isVoid() {
		header += " : " + decl.typ.fs
	}

	tok := t.cur.peek()
	if !tok.Is("{") {
		return t.fail(tok, "expected method body")
	}
	if t.cur.peekN(1).Is("}") {
		t.cur.advance()
		t.cur.advance()
		t.emit(header + " = ()")
		return nil
	}
	t.cur.advance()
	t.emit(header + " =")
	return t.nested(t.translateBlockBody)
}

// translateConstructor emits a secondary constructor that chains to the
// type's empty primary constructor and runs its body afterwards.
func (t *Translator) translateConstructor(mods modifiers, sig string) error {
	t.log.Debugf("constructor %s%s", t.className, sig)
	head := memberAccess(mods.access) + "new" + sig
	primary := t.className + "()"

	tok := t.cur.peek()
	if !tok.Is("{") {
		return t.fail(tok, "expected constructor body")
	}
	if t.cur.peekN(1).Is("}") {
		t.cur.advance()
		t.cur.advance()
		t.emit(head + " = " + primary)
		return nil
	}
	t.cur.advance()
	t.emit(head + " as this =")
	return t.nested(func() error {
		t.emit(primary)
		t.emit("then")
		return t.nested(t.translateBlockBody)
	})
}

func (t *Translator) translateProperty(mods modifiers, decl declaration) error {
	if decl.typ == nil {
		return t.fail(decl.name, "property '%s' has no type", decl.name.Literal)
	}
	t.cur.advance()

	name := decl.name.Literal
	self := "this."
	header := "member " + memberAccess(mods.access) + "this." + name
	if mods.static {
		self = t.className + "."
		header = "static member " + memberAccess(mods.access) + name
	}
	backing := "_" + name
	var field string

	t.log.Debugf("property %s.%s", t.className, name)
	accessors, err := t.capture(func() error {
		return t.nested(func() error {
			first := true
			for !t.cur.check("}") {
				access := ""
				tok := t.cur.peek()
				if tok.Kind == parser.TokenIdent && accessKeywords[tok.Literal] {
					access = memberAccess(tok.Literal)
					t.cur.advance()
					tok = t.cur.peek()
				}
				if !tok.Is("get") && !tok.Is("set") {
					return t.fail(tok, "expected 'get' or 'set'")
				}
				t.cur.advance()

				lead := "and "
				if first {
					lead = "with "
				}
				first = false
				getter := tok.Literal == "get"
				prefix := lead + access + "set(value)"
				if getter {
					prefix = lead + access + "get()"
				}

				if t.cur.check(";") {
					t.cur.advance()
					if field == "" {
						field = fieldLine(mods.static, "private ", backing, decl.typ.fs)
					}
					if getter {
						t.emit(prefix + " = " + self + backing)
					} else {
						t.emit(prefix + " = " + self + backing + " <- value")
					}
					continue
				}
				if next := t.cur.peek(); !next.Is("{") {
					return t.fail(next, "expected ';' or '{' after '%s'", tok.Literal)
				}
				var err error
				if getter {
					err = t.translateGetter(prefix)
				} else {
					err = t.translateAccessorBlock(prefix)
				}
				if err != nil {
					return err
				}
			}
			if first {
				return t.fail(t.cur.peek(), "property '%s' has no accessors", name)
			}
			return nil
		})
	})
	if err != nil {
		return err
	}
	t.cur.advance()

	if field != "" {
		t.emit(field)
	}
	t.emit(header)
	t.out.write(accessors)
	return nil
}

// translateGetter emits a getter. A body that is exactly `{ return e; }`
// becomes a single-expression accessor.
func (t *Translator) translateGetter(prefix string) error {
	if !t.cur.peekN(1).Is("return") {
		return t.translateAccessorBlock(prefix)
	}
	t.cur.advance()
	t.cur.advance()
	expr, err := t.expression(stopAtSemicolon)
	if err != nil {
		return err
	}
	if _, err := t.expect(";"); err != nil {
		return err
	}
	if t.cur.check("}") {
		t.cur.advance()
		t.emit(prefix + " = " + expr)
		return nil
	}
	t.emit(prefix + " =")
	return t.nested(func() error {
		t.emit(expr)
		return t.translateBlockBody()
	})
}

func (t *Translator) translateAccessorBlock(prefix string) error {
	t.cur.advance()
	t.emit(prefix + " =")
	return t.nested(t.translateBlockBody)
}
