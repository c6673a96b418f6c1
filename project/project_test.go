package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dhamidi/cs2fs/convert"
	"github.com/dhamidi/cs2fs/fsharp"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
)

const (
	goodSource = "namespace App { public class Main { } }"
	badSource  = "namespace App { public class Broken : Base { } }"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func newProject(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0755))
	for name, content := range files {
		writeFile(t, filepath.Join(root, "src", filepath.FromSlash(name)), content)
	}
	return root
}

func unitNames(p *Project) []string {
	var names []string
	for _, u := range p.Units {
		names = append(names, u.Name)
	}
	return names
}

func TestLoadFrom(t *testing.T) {
	root := newProject(t, map[string]string{
		"app/Main.cs":     goodSource,
		"Util.cs":         goodSource,
		".cache/Old.cs":   goodSource,
		"app/README.txt":  "not a source",
		"app/.hidden.cs":  goodSource,
		"lib/deep/Lib.cs": goodSource,
	})

	p, err := LoadFrom(root)
	require.NoError(t, err)
	require.Equal(t, []string{"Util.cs", "app/.hidden.cs", "app/Main.cs", "lib/deep/Lib.cs"}, unitNames(p))

	u := p.Unit("app/Main.cs")
	require.NotNil(t, u)
	require.Equal(t, filepath.Join(root, "src", "app", "Main.cs"), u.Source)
	require.Equal(t, filepath.Join(root, "out", "app", "Main.fs"), u.Output)
	require.Nil(t, p.Unit("missing.cs"))
}

func TestLoadFromWithoutSrc(t *testing.T) {
	_, err := LoadFrom(t.TempDir())
	require.Error(t, err)
	require.Contains(t, err.Error(), "read src directory")
}

func TestBuild(t *testing.T) {
	root := newProject(t, map[string]string{"app/Main.cs": goodSource})
	p, err := LoadFrom(root)
	require.NoError(t, err)
	require.NoError(t, p.Build())

	out, err := os.ReadFile(filepath.Join(root, "out", "app", "Main.fs"))
	require.NoError(t, err)
	require.Equal(t, "namespace App\n\ntype Main() =\n    class end\n", string(out))
}

func TestBuildCollectsFailures(t *testing.T) {
	root := newProject(t, map[string]string{
		"A.cs": badSource,
		"B.cs": goodSource,
		"C.cs": "namespace App { class C { void F() { x++; } } }",
	})
	p, err := LoadFrom(root)
	require.NoError(t, err)

	err = p.Build()
	require.Error(t, err)
	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	require.Len(t, merr.Errors, 2)

	var trErr *fsharp.TranslationError
	require.True(t, errors.As(merr.Errors[0], &trErr))
	require.Equal(t, filepath.Join(root, "src", "A.cs"), trErr.Pos.File)

	require.FileExists(t, filepath.Join(root, "out", "B.fs"))
	require.NoFileExists(t, filepath.Join(root, "out", "A.fs"))
	require.NoFileExists(t, filepath.Join(root, "out", "C.fs"))
}

func TestBuildWithConvertOptions(t *testing.T) {
	root := newProject(t, map[string]string{"M.cs": "namespace N { class M { double d; } }"})
	p, err := LoadFrom(root, WithConvertOptions(convert.WithTranslatorOptions(fsharp.WithTypeMapping(false))))
	require.NoError(t, err)
	require.NoError(t, p.Build())

	out, err := os.ReadFile(filepath.Join(root, "out", "M.fs"))
	require.NoError(t, err)
	require.Contains(t, string(out), "val mutable private d : double")
}

func TestWatcherScan(t *testing.T) {
	root := newProject(t, map[string]string{"Main.cs": goodSource})
	p, err := LoadFrom(root)
	require.NoError(t, err)

	var events []Event
	w := NewWatcher(p, WithEventHandler(func(e Event) {
		events = append(events, e)
	}))
	output := filepath.Join(root, "out", "Main.fs")

	w.scan()
	require.Len(t, events, 1)
	require.Equal(t, "Main.cs", events[0].Unit.Name)
	require.NoError(t, events[0].Err)
	require.FileExists(t, output)

	// Unchanged sources are not rebuilt.
	w.scan()
	require.Len(t, events, 1)

	source := filepath.Join(root, "src", "Main.cs")
	writeFile(t, source, badSource)
	later := time.Now().Add(time.Minute)
	require.NoError(t, os.Chtimes(source, later, later))
	w.scan()
	require.Len(t, events, 2)
	require.Error(t, events[1].Err)
	require.FileExists(t, output, "a failed rebuild keeps the previous output")

	writeFile(t, filepath.Join(root, "src", "extra", "Extra.cs"), goodSource)
	w.scan()
	require.Len(t, events, 3)
	require.Equal(t, "extra/Extra.cs", events[2].Unit.Name)
	require.Equal(t, []string{"Main.cs", "extra/Extra.cs"}, unitNames(p))

	require.NoError(t, os.Remove(source))
	w.scan()
	require.Len(t, events, 4)
	require.True(t, events[3].Removed)
	require.NoError(t, events[3].Err)
	require.NoFileExists(t, output)
	require.Equal(t, []string{"extra/Extra.cs"}, unitNames(p))
}

func TestWatcherStartStop(t *testing.T) {
	root := newProject(t, map[string]string{"Main.cs": goodSource})
	p, err := LoadFrom(root)
	require.NoError(t, err)

	built := make(chan Event, 1)
	w := NewWatcher(p, WithInterval(10*time.Millisecond), WithEventHandler(func(e Event) {
		select {
		case built <- e:
		default:
		}
	}))
	w.Start()
	defer w.Stop()

	select {
	case e := <-built:
		require.NoError(t, e.Err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not build the project")
	}
}
