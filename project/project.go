package project

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhamidi/cs2fs/convert"
	"github.com/hashicorp/go-multierror"
	"github.com/tliron/commonlog"
)

const (
	SourceExt = ".cs"
	OutputExt = ".fs"
)

// Project is a directory with C# sources under src/ whose translations go
// to the same relative paths under out/.
type Project struct {
	RootDir string
	SrcDir  string
	OutDir  string
	Units   []*Unit

	convert []convert.Option
	log     commonlog.Logger
}

// Unit is one source file and the output it translates to.
type Unit struct {
	Name   string // path relative to SrcDir, slash separated (e.g., "app/Main.cs")
	Source string
	Output string
}

type Option func(*Project)

// WithConvertOptions applies opts to every unit the project translates.
func WithConvertOptions(opts ...convert.Option) Option {
	return func(p *Project) {
		p.convert = append(p.convert, opts...)
	}
}

// Load scans the current directory for a project.
func Load(opts ...Option) (*Project, error) {
	return LoadFrom(".", opts...)
}

// LoadFrom scans rootDir/src for C# sources. Directories whose name starts
// with a dot are skipped.
func LoadFrom(rootDir string, opts ...Option) (*Project, error) {
	p := &Project{
		RootDir: rootDir,
		SrcDir:  filepath.Join(rootDir, "src"),
		OutDir:  filepath.Join(rootDir, "out"),
		log:     commonlog.GetLogger("cs2fs.project"),
	}
	for _, opt := range opts {
		opt(p)
	}

	info, err := os.Stat(p.SrcDir)
	if err != nil {
		return nil, fmt.Errorf("read src directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("read src directory: %s is not a directory", p.SrcDir)
	}

	if err := p.Scan(); err != nil {
		return nil, err
	}
	return p, nil
}

// Scan refreshes Units from the file system.
func (p *Project) Scan() error {
	var units []*Unit
	err := p.walk(func(path string, info fs.FileInfo) error {
		u, err := p.unitFor(path)
		if err != nil {
			return err
		}
		units = append(units, u)
		return nil
	})
	if err != nil {
		return fmt.Errorf("scan sources in %s: %w", p.SrcDir, err)
	}
	p.Units = units
	p.log.Debugf("%d units in %s", len(units), p.SrcDir)
	return nil
}

// walk calls fn for every source file below SrcDir, in lexical order.
func (p *Project) walk(fn func(path string, info fs.FileInfo) error) error {
	return filepath.WalkDir(p.SrcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != p.SrcDir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != SourceExt {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		return fn(path, info)
	})
}

func (p *Project) unitFor(path string) (*Unit, error) {
	rel, err := filepath.Rel(p.SrcDir, path)
	if err != nil {
		return nil, err
	}
	out := strings.TrimSuffix(rel, SourceExt) + OutputExt
	return &Unit{
		Name:   filepath.ToSlash(rel),
		Source: path,
		Output: filepath.Join(p.OutDir, out),
	}, nil
}

// Unit returns the unit with the given name, or nil if not found.
func (p *Project) Unit(name string) *Unit {
	for _, u := range p.Units {
		if u.Name == name {
			return u
		}
	}
	return nil
}

// Build translates every unit. A failing unit does not stop the build; the
// returned error lists every failure.
func (p *Project) Build() error {
	var errs *multierror.Error
	built := 0
	for _, u := range p.Units {
		if err := p.BuildUnit(u); err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		built++
	}
	p.log.Infof("built %d of %d units", built, len(p.Units))
	return errs.ErrorOrNil()
}

// BuildUnit translates one unit and writes its output, creating directories
// as needed. A stale output is left alone when translation fails.
func (p *Project) BuildUnit(u *Unit) error {
	src, err := os.ReadFile(u.Source)
	if err != nil {
		return fmt.Errorf("read %s: %w", u.Source, err)
	}

	opts := append([]convert.Option{convert.WithFile(u.Source)}, p.convert...)
	out, err := convert.String(string(src), opts...)
	if err != nil {
		p.log.Debugf("%s: %s", u.Name, err)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(u.Output), 0755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(u.Output), err)
	}
	if err := os.WriteFile(u.Output, []byte(out), 0644); err != nil {
		return fmt.Errorf("write %s: %w", u.Output, err)
	}
	p.log.Debugf("%s -> %s", u.Name, u.Output)
	return nil
}

// RemoveOutput deletes the output of a unit whose source is gone.
func (p *Project) RemoveOutput(u *Unit) error {
	if err := os.Remove(u.Output); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", u.Output, err)
	}
	return nil
}
