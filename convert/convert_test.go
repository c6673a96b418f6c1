package convert

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/dhamidi/cs2fs/csharp/parser"
	"github.com/dhamidi/cs2fs/fsharp"
	"github.com/dhamidi/cs2fs/samples"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
)

func TestStringSample(t *testing.T) {
	want, err := os.ReadFile("testdata/sample.fs")
	require.NoError(t, err)

	got, err := String(samples.Sample())
	require.NoError(t, err)
	require.Equal(t, string(want), got)
}

func TestStringLexicalError(t *testing.T) {
	_, err := String("namespace N { class C { string s = \"open; } }", WithFile("bad.cs"))
	require.Error(t, err)

	var lexErr *parser.LexicalError
	require.True(t, errors.As(err, &lexErr))
	require.Equal(t, "unterminated string", lexErr.Message)
	require.Equal(t, "bad.cs", lexErr.Pos.File)
	require.Equal(t, 1, lexErr.Pos.Line)
}

func TestStringTranslationError(t *testing.T) {
	_, err := String("namespace N {\n  class C : B { }\n}", WithFile("derived.cs"))
	require.Error(t, err)

	var trErr *fsharp.TranslationError
	require.True(t, errors.As(err, &trErr))
	require.Equal(t, "inherit not supported", trErr.Message)
	require.Equal(t, "derived.cs:2:11", trErr.Pos.String())
}

func TestStringTranslatorOptions(t *testing.T) {
	out, err := String("namespace N { class C { double d; } }",
		WithTranslatorOptions(fsharp.WithIndent("\t"), fsharp.WithTypeMapping(false)))
	require.NoError(t, err)
	require.Contains(t, out, "\n\t[<DefaultValue>] val mutable private d : double\n")
}

func TestReader(t *testing.T) {
	var out strings.Builder
	err := Reader(strings.NewReader("namespace N { enum E { A } }"), &out)
	require.NoError(t, err)
	require.Equal(t, "namespace N\n\ntype internal E =\n    | A = 0\n", out.String())
}

func TestReaderWritesNothingOnError(t *testing.T) {
	var out strings.Builder
	err := Reader(strings.NewReader("namespace N { class C { int a; void F() { a++; } } }"), &out)
	require.Error(t, err)
	require.Empty(t, out.String())
}

func TestFilesCollectsEveryFailure(t *testing.T) {
	inputs := []Input{
		{Name: "a.cs", Source: "namespace A { class C { } }"},
		{Name: "b.cs", Source: "namespace B { class C { int x = 1; } }"},
		{Name: "c.cs", Source: "namespace C { enum E { X } }"},
		{Name: "d.cs", Source: "namespace D { class C { void F() { break; } } }"},
	}

	outputs, err := Files(inputs)
	require.Error(t, err)
	require.Len(t, outputs, 4)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	require.Len(t, merr.Errors, 2)
	require.Contains(t, merr.Errors[0].Error(), "b.cs:")
	require.Contains(t, merr.Errors[1].Error(), "d.cs:")

	require.NoError(t, outputs[0].Err)
	require.Contains(t, outputs[0].Text, "type internal C() =")
	require.Error(t, outputs[1].Err)
	require.Empty(t, outputs[1].Text)
	require.NoError(t, outputs[2].Err)
	require.Error(t, outputs[3].Err)
}

func TestFilesAllSucceed(t *testing.T) {
	outputs, err := Files([]Input{{Name: "a.cs", Source: "namespace A { }"}})
	require.NoError(t, err)
	require.Equal(t, []Output{{Name: "a.cs", Text: "namespace A\n"}}, outputs)
}
