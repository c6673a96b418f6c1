package fsharp

import (
	"strings"

	"github.com/dhamidi/cs2fs/csharp/parser"
)

var primitiveTypes = map[string]string{
	"void":    "unit",
	"object":  "obj",
	"double":  "float",
	"float":   "float32",
	"long":    "int64",
	"ulong":   "uint64",
	"uint":    "uint32",
	"short":   "int16",
	"ushort":  "uint16",
	"int":     "int",
	"bool":    "bool",
	"byte":    "byte",
	"sbyte":   "sbyte",
	"char":    "char",
	"string":  "string",
	"decimal": "decimal",
}

// typeRef is a type as written in the source and as it will be emitted.
type typeRef struct {
	cs    string
	fs    string
	first parser.Token
}

func (r typeRef) isVoid() bool {
	return r.cs == "void"
}

func (t *Translator) mapType(name string) string {
	if !t.mapTypes {
		return name
	}
	if fs, ok := primitiveTypes[name]; ok {
		return fs
	}
	return name
}

// readType reads: name ('.' name)* ['<' type (',' type)* '>'] ('[' ']')*.
// Array suffixes are skipped when arrays is false, leaving '[' to the caller.
func (t *Translator) readType(arrays bool) (typeRef, error) {
	first := t.cur.peek()
	if first.Kind != parser.TokenIdent {
		return typeRef{first: first}, t.fail(first, "expected type")
	}
	t.cur.advance()

	parts := []string{first.Literal}
	for t.cur.check(".") {
		t.cur.advance()
		tok, err := t.expectIdent("identifier after '.'")
		if err != nil {
			return typeRef{first: first}, err
		}
		parts = append(parts, tok.Literal)
	}
	name := strings.Join(parts, ".")
	ref := typeRef{cs: name, fs: t.mapType(name), first: first}

	if t.cur.check("<") {
		t.cur.advance()
		var cs, fs []string
		for {
			arg, err := t.readType(true)
			if err != nil {
				return ref, err
			}
			cs = append(cs, arg.cs)
			fs = append(fs, arg.fs)
			if t.pendingClose > 0 || !t.cur.check(",") {
				break
			}
			t.cur.advance()
		}
		if err := t.closeGeneric(); err != nil {
			return ref, err
		}
		ref.cs += "<" + strings.Join(cs, ", ") + ">"
		ref.fs += "<" + strings.Join(fs, ", ") + ">"
	}

	for arrays && t.pendingClose == 0 && t.cur.check("[") {
		t.cur.advance()
		if _, err := t.expect("]"); err != nil {
			return ref, err
		}
		ref.cs += "[]"
		ref.fs += "[]"
	}
	return ref, nil
}

func (t *Translator) closeGeneric() error {
	if t.pendingClose > 0 {
		t.pendingClose--
		return nil
	}
	tok := t.cur.peek()
	switch {
	case tok.Kind == parser.TokenOperator && tok.Literal == ">":
		t.cur.advance()
	case tok.Kind == parser.TokenOperator && tok.Literal == ">>":
		t.cur.advance()
		t.pendingClose++
	default:
		return t.fail(tok, "expected '>' to close type arguments")
	}
	return nil
}
