// Package grammar carries the EBNF description of the C# subset that the
// translator accepts.
package grammar

import (
	_ "embed"
	"reflect"
	"strings"

	"golang.org/x/exp/ebnf"
)

// Start is the production a whole source file derives from.
const Start = "CompilationUnit"

const fileName = "subset.ebnf"

//go:embed subset.ebnf
var source string

// Source returns the grammar text.
func Source() string {
	return source
}

// Parse parses the grammar.
func Parse() (ebnf.Grammar, error) {
	return ebnf.Parse(fileName, strings.NewReader(source))
}

// Verify parses the grammar and checks that every production reachable from
// start is defined and every defined production is reachable.
func Verify(start string) (ebnf.Grammar, error) {
	g, err := Parse()
	if err != nil {
		return nil, err
	}
	if err := ebnf.Verify(g, start); err != nil {
		return nil, err
	}
	return g, nil
}

// Errors splits an error returned by Parse or Verify into one error per
// problem found.
func Errors(err error) []error {
	v := reflect.ValueOf(err)
	if v.Kind() != reflect.Slice {
		return []error{err}
	}
	errs := make([]error, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		if e, ok := v.Index(i).Interface().(error); ok {
			errs = append(errs, e)
		}
	}
	return errs
}
