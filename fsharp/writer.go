package fsharp

import (
	"io"
	"strings"
)

// writer is the output sink. It keeps the first write error and drops
// everything after it.
type writer struct {
	w   io.Writer
	err error
}

func (w *writer) write(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, s)
}

// emit writes one line at the current indentation.
func (t *Translator) emit(s string) {
	t.out.write(t.indent + s + "\n")
	t.lines++
}

func (t *Translator) blank() {
	t.out.write("\n")
}

// capture runs fn with output redirected to a buffer and returns what it
// wrote.
func (t *Translator) capture(fn func() error) (string, error) {
	var sb strings.Builder
	saved := t.out
	t.out = &writer{w: &sb}
	err := fn()
	t.out = saved
	return sb.String(), err
}

// nested runs fn one indentation level deeper and restores the level
// afterwards, whatever fn did.
func (t *Translator) nested(fn func() error) error {
	saved := t.indent
	t.indent += t.unit
	err := fn()
	t.indent = saved
	return err
}
