// Package convert runs the full pipeline from C# source text to F# source
// text: tokenize, then translate.
package convert

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/cs2fs/csharp/parser"
	"github.com/dhamidi/cs2fs/fsharp"
	"github.com/hashicorp/go-multierror"
	"github.com/tliron/commonlog"
)

// Option configures a conversion.
type Option func(*config)

type config struct {
	file      string
	translate []fsharp.Option
	log       commonlog.Logger
}

// WithFile names the source in token positions and diagnostics.
func WithFile(name string) Option {
	return func(c *config) {
		c.file = name
	}
}

// WithTranslatorOptions passes options through to the translator.
func WithTranslatorOptions(opts ...fsharp.Option) Option {
	return func(c *config) {
		c.translate = append(c.translate, opts...)
	}
}

// WithLogger replaces the default "cs2fs.convert" logger.
func WithLogger(log commonlog.Logger) Option {
	return func(c *config) {
		c.log = log
	}
}

func newConfig(opts []Option) *config {
	c := &config{log: commonlog.GetLogger("cs2fs.convert")}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// String translates one C# source.
func String(src string, opts ...Option) (string, error) {
	return newConfig(opts).run(src)
}

// Reader reads the whole of r and writes the translation to w. Nothing is
// written when translation fails.
func Reader(r io.Reader, w io.Writer, opts ...Option) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}
	out, err := newConfig(opts).run(string(data))
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func (c *config) run(src string) (string, error) {
	tokens, err := parser.NewLexer(src, c.file).All()
	if err != nil {
		c.log.Debugf("%s: tokenize: %s", c.name(), err)
		return "", err
	}
	c.log.Debugf("%s: %d tokens", c.name(), len(tokens))

	var sb strings.Builder
	if err := fsharp.TranslateTo(&sb, tokens, c.translate...); err != nil {
		return "", err
	}
	c.log.Debugf("%s: %d bytes of output", c.name(), sb.Len())
	return sb.String(), nil
}

func (c *config) name() string {
	if c.file == "" {
		return "<input>"
	}
	return c.file
}

// Input is one named source for batch conversion.
type Input struct {
	Name   string
	Source string
}

// Output is the translation of the Input with the same name. Err is set when
// that input failed; Text is then empty.
type Output struct {
	Name string
	Text string
	Err  error
}

// Files converts every input, in order. A failing input does not stop the
// batch; the returned error lists every failure. Positions in those errors
// carry the input name.
func Files(inputs []Input, opts ...Option) ([]Output, error) {
	c := newConfig(opts)
	var errs *multierror.Error
	outputs := make([]Output, 0, len(inputs))
	for _, in := range inputs {
		c.file = in.Name
		text, err := c.run(in.Source)
		if err != nil {
			errs = multierror.Append(errs, err)
		}
		outputs = append(outputs, Output{Name: in.Name, Text: text, Err: err})
	}
	if err := errs.ErrorOrNil(); err != nil {
		c.log.Infof("%d of %d inputs failed", len(errs.Errors), len(inputs))
		return outputs, err
	}
	return outputs, nil
}
