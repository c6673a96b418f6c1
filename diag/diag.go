// Package diag renders pipeline errors for people: a header, the location,
// the offending source line and a caret under the column.
package diag

import (
	"errors"
	"strconv"
	"strings"

	"github.com/dhamidi/cs2fs/csharp/parser"
	"github.com/dhamidi/cs2fs/fsharp"
	"github.com/fatih/color"
)

const (
	KindLexical     = "lexical error"
	KindTranslation = "translation error"
	KindOther       = "error"
)

// Diagnostic is the position-carrying view of an error. Length is the number
// of runes to underline, at least one.
type Diagnostic struct {
	Kind    string
	Message string
	Pos     parser.Position
	Length  int
}

// FromError extracts a Diagnostic from err. Errors that carry no source
// position come back with a zero Pos.
func FromError(err error) Diagnostic {
	var lexErr *parser.LexicalError
	if errors.As(err, &lexErr) {
		return Diagnostic{
			Kind:    KindLexical,
			Message: lexErr.Message,
			Pos:     lexErr.Pos,
			Length:  runeLen(lexErr.Text),
		}
	}
	var trErr *fsharp.TranslationError
	if errors.As(err, &trErr) {
		return Diagnostic{
			Kind:    KindTranslation,
			Message: trErr.Message,
			Pos:     trErr.Pos,
			Length:  runeLen(trErr.Token),
		}
	}
	return Diagnostic{Kind: KindOther, Message: err.Error(), Length: 1}
}

func (d Diagnostic) HasPosition() bool {
	return d.Pos.Line > 0
}

// Format renders err against the source it came from.
func Format(err error, source string, useColor bool) string {
	return FromError(err).Render(source, useColor)
}

type palette struct {
	label    *color.Color
	location *color.Color
	gutter   *color.Color
	caret    *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		label:    color.New(color.FgRed, color.Bold),
		location: color.New(color.FgCyan),
		gutter:   color.New(color.FgHiBlack),
		caret:    color.New(color.FgHiRed, color.Bold),
	}
	for _, c := range []*color.Color{p.label, p.location, p.gutter, p.caret} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Render formats the diagnostic. The source excerpt is left out when the
// position does not fall inside source.
func (d Diagnostic) Render(source string, useColor bool) string {
	p := newPalette(useColor)

	var b strings.Builder
	b.WriteString(p.label.Sprint(d.Kind))
	b.WriteString(": ")
	b.WriteString(d.Message)
	b.WriteString("\n")
	if !d.HasPosition() {
		return b.String()
	}

	num := strconv.Itoa(d.Pos.Line)
	pad := strings.Repeat(" ", len(num))
	b.WriteString(pad + p.location.Sprint("-->") + " " + p.location.Sprint(d.Pos.String()) + "\n")

	line, ok := sourceLine(source, d.Pos.Line)
	if !ok {
		return b.String()
	}
	b.WriteString(pad + p.gutter.Sprint(" |") + "\n")
	b.WriteString(p.gutter.Sprint(num+" |") + " " + line + "\n")
	b.WriteString(pad + p.gutter.Sprint(" |") + " ")
	b.WriteString(leading(line, d.Pos.Column))
	b.WriteString(p.caret.Sprint(strings.Repeat("^", d.underline(line))))
	b.WriteString("\n")
	return b.String()
}

// underline clips the caret run to the end of the line.
func (d Diagnostic) underline(line string) int {
	n := d.Length
	if rest := len([]rune(line)) - (d.Pos.Column - 1); n > rest {
		n = rest
	}
	if n < 1 {
		n = 1
	}
	return n
}

func sourceLine(source string, line int) (string, bool) {
	source = strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(source)
	lines := strings.Split(source, "\n")
	if line < 1 || line > len(lines) {
		return "", false
	}
	return lines[line-1], true
}

// leading returns the padding that puts the caret under column, keeping the
// line's tabs so the caret lines up in a terminal.
func leading(line string, column int) string {
	var b strings.Builder
	for i, r := range []rune(line) {
		if i >= column-1 {
			break
		}
		if r == '\t' {
			b.WriteRune('\t')
		} else {
			b.WriteRune(' ')
		}
	}
	return b.String()
}

func runeLen(s string) int {
	if n := len([]rune(s)); n > 0 {
		return n
	}
	return 1
}
