package diag

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/dhamidi/cs2fs/csharp/parser"
	"github.com/dhamidi/cs2fs/fsharp"
	"github.com/stretchr/testify/require"
)

const source = "namespace N {\n  class C : B { }\n}"

func inheritError() error {
	return &fsharp.TranslationError{
		Pos:     parser.Position{File: "derived.cs", Line: 2, Column: 11},
		Message: "inherit not supported",
		Token:   ":",
	}
}

func TestFormatTranslationError(t *testing.T) {
	want := "translation error: inherit not supported\n" +
		" --> derived.cs:2:11\n" +
		"  |\n" +
		"2 |   class C : B { }\n" +
		"  |           ^\n"
	require.Equal(t, want, Format(inheritError(), source, false))
}

func TestFormatWrappedError(t *testing.T) {
	err := fmt.Errorf("convert derived.cs: %w", inheritError())
	require.Equal(t, Format(inheritError(), source, false), Format(err, source, false))
}

func TestFormatLexicalErrorClipsCaret(t *testing.T) {
	src := "namespace N {\n  string s = \"open\n}"
	err := &parser.LexicalError{
		Pos:     parser.Position{Line: 2, Column: 14},
		Message: "unterminated string",
		Text:    "\"open\n}",
	}
	want := "lexical error: unterminated string\n" +
		" --> 2:14\n" +
		"  |\n" +
		"2 |   string s = \"open\n" +
		"  |              ^^^^^\n"
	require.Equal(t, want, Format(err, src, false))
}

func TestFormatKeepsTabs(t *testing.T) {
	src := "\tclass C : B { }"
	err := &fsharp.TranslationError{Pos: parser.Position{Line: 1, Column: 10}, Message: "inherit not supported", Token: ":"}
	out := Format(err, src, false)
	require.True(t, strings.HasSuffix(out, "  | \t        ^\n"), "%q", out)
}

func TestFormatPositionOutsideSource(t *testing.T) {
	err := &fsharp.TranslationError{Pos: parser.Position{Line: 9, Column: 1}, Message: "unexpected end of input"}
	require.Equal(t, "translation error: unexpected end of input\n --> 9:1\n", Format(err, source, false))
}

func TestFormatPlainError(t *testing.T) {
	require.Equal(t, "error: read source: boom\n", Format(errors.New("read source: boom"), "", false))
}

func TestFormatColor(t *testing.T) {
	require.Contains(t, Format(inheritError(), source, true), "\x1b[")
	require.NotContains(t, Format(inheritError(), source, false), "\x1b[")
}

func TestFromError(t *testing.T) {
	d := FromError(inheritError())
	require.Equal(t, KindTranslation, d.Kind)
	require.Equal(t, "inherit not supported", d.Message)
	require.Equal(t, 2, d.Pos.Line)
	require.Equal(t, 1, d.Length)
	require.True(t, d.HasPosition())

	d = FromError(errors.New("boom"))
	require.Equal(t, KindOther, d.Kind)
	require.False(t, d.HasPosition())
}
