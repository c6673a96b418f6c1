package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestTranslateStdin(t *testing.T) {
	out, _, err := run(t, "namespace N { enum E { A, B } }", "translate")
	require.NoError(t, err)
	require.Equal(t, "namespace N\n\ntype internal E =\n    | A = 0\n    | B = 1\n", out)
}

func TestTranslateIndentAndTypeMapping(t *testing.T) {
	out, _, err := run(t, "namespace N { class C { double d; } }",
		"--indent", "  ", "--no-type-mapping", "translate")
	require.NoError(t, err)
	require.Contains(t, out, "\n  [<DefaultValue>] val mutable private d : double\n")
}

func TestTranslateReportsDiagnostic(t *testing.T) {
	out, stderr, err := run(t, "namespace N { class C : B { } }", "translate")
	require.ErrorIs(t, err, errReported)
	require.Empty(t, out)
	require.Contains(t, stderr, "translation error: inherit not supported")
	require.Contains(t, stderr, "--> <stdin>:1:23")
	require.Contains(t, stderr, "namespace N { class C : B { } }")
}

func TestTranslateOutputFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "Main.cs")
	output := filepath.Join(dir, "Main.fs")
	require.NoError(t, os.WriteFile(input, []byte("namespace N { class C { } }"), 0644))

	_, _, err := run(t, "", "translate", input, "-o", output)
	require.NoError(t, err)
	data, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Equal(t, "namespace N\n\ntype internal C() =\n    class end\n", string(data))
}

func TestTranslateManyFiles(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "Good.cs")
	bad := filepath.Join(dir, "Bad.cs")
	require.NoError(t, os.WriteFile(good, []byte("namespace N { class C { } }"), 0644))
	require.NoError(t, os.WriteFile(bad, []byte("namespace N {\n  class D : B { }\n}"), 0644))
	outDir := filepath.Join(dir, "out")

	out, stderr, err := run(t, "", "translate", good, bad, "--out-dir", outDir)
	require.ErrorIs(t, err, errReported)
	require.Contains(t, out, good+" -> "+filepath.Join(outDir, "Good.fs"))
	require.FileExists(t, filepath.Join(outDir, "Good.fs"))
	require.NoFileExists(t, filepath.Join(outDir, "Bad.fs"))
	require.Contains(t, stderr, bad+":2:11")
	require.Contains(t, stderr, "class D : B { }")
}

func TestTranslateOutputNeedsOneInput(t *testing.T) {
	_, _, err := run(t, "", "translate", "a.cs", "b.cs", "-o", "x.fs")
	require.EqualError(t, err, "--output needs a single input and no --out-dir")
}

func TestOutputPath(t *testing.T) {
	require.Equal(t, filepath.Join("src", "Main.fs"), outputPath(filepath.Join("src", "Main.cs"), ""))
	require.Equal(t, filepath.Join("out", "Main.fs"), outputPath(filepath.Join("src", "Main.cs"), "out"))
}

func TestTokens(t *testing.T) {
	out, _, err := run(t, "class C", "tokens")
	require.NoError(t, err)
	require.Equal(t, "[1, 1] Identifier: class\n[1, 7] Identifier: C\n", out)

	out, _, err = run(t, "class C", "tokens", "--all")
	require.NoError(t, err)
	require.Equal(t, "[1, 1] Identifier: class\n[1, 6] Whitespace: 1\n[1, 7] Identifier: C\n", out)
}

func TestTokensJSON(t *testing.T) {
	out, _, err := run(t, "x", "tokens", "-f", "json")
	require.NoError(t, err)
	require.JSONEq(t, `[{"kind": "Identifier", "text": "x", "line": 1, "column": 1}]`, out)
	require.True(t, strings.HasSuffix(out, "]\n"))
}

func TestTokensLexicalError(t *testing.T) {
	_, stderr, err := run(t, "char c = 'x", "tokens")
	require.ErrorIs(t, err, errReported)
	require.Contains(t, stderr, "lexical error: unterminated character")
}

func TestTokensUnknownFormat(t *testing.T) {
	_, _, err := run(t, "x", "tokens", "-f", "xml")
	require.EqualError(t, err, `unknown format "xml" (use line or json)`)
}

func TestSample(t *testing.T) {
	out, _, err := run(t, "", "sample")
	require.NoError(t, err)
	require.Contains(t, out, "namespace TestApp")

	out, _, err = run(t, "", "sample", "--fsharp")
	require.NoError(t, err)
	golden, err := os.ReadFile(filepath.Join("..", "..", "convert", "testdata", "sample.fs"))
	require.NoError(t, err)
	require.Equal(t, string(golden), out)
}

func TestBuild(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src", "app"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "app", "Main.cs"),
		[]byte("namespace App { public class Main { } }"), 0644))

	out, _, err := run(t, "", "build", root)
	require.NoError(t, err)
	require.Contains(t, out, "built 1 units into "+filepath.Join(root, "out"))
	require.FileExists(t, filepath.Join(root, "out", "app", "Main.fs"))
}

func TestBuildWithoutSrc(t *testing.T) {
	_, _, err := run(t, "", "build", t.TempDir())
	require.ErrorContains(t, err, "read src directory")
}

func TestGrammar(t *testing.T) {
	out, _, err := run(t, "", "grammar")
	require.NoError(t, err)
	require.Contains(t, out, "CompilationUnit =")

	out, _, err = run(t, "", "grammar", "--check")
	require.NoError(t, err)
	require.Contains(t, out, "reachable from CompilationUnit")

	_, stderr, err := run(t, "", "grammar", "--check", "--start", "Nope")
	require.ErrorIs(t, err, errReported)
	require.NotEmpty(t, stderr)
}

func TestTranslateSingleFileToStdout(t *testing.T) {
	input := filepath.Join(t.TempDir(), "Main.cs")
	require.NoError(t, os.WriteFile(input, []byte("namespace N { class C { } }"), 0644))

	out, _, err := run(t, "", "translate", input)
	require.NoError(t, err)
	require.Equal(t, "namespace N\n\ntype internal C() =\n    class end\n", out)
	require.NoFileExists(t, filepath.Join(filepath.Dir(input), "Main.fs"))
}
