package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhamidi/cs2fs/convert"
	"github.com/spf13/cobra"
)

const stdinName = "<stdin>"

func newTranslateCmd() *cobra.Command {
	var output string
	var outDir string

	cmd := &cobra.Command{
		Use:   "translate [file...]",
		Short: "Translate C# files to F#",
		Long: `Translate C# source files to F#.

With no arguments the source is read from standard input. A single input is
translated to standard output, or to the file named by --output. With several
files, or with --out-dir, each translation is written next to its input as
<name>.fs, or into --out-dir.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := convertOptions()
			switch {
			case len(args) == 0:
				return translateOne(cmd, stdinName, cmd.InOrStdin(), output, opts)
			case len(args) == 1 && outDir == "":
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				return translateOne(cmd, args[0], f, output, opts)
			case output != "":
				return fmt.Errorf("--output needs a single input and no --out-dir")
			}
			return translateMany(cmd, args, outDir, opts)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the F# output to this file")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "directory for the .fs files of multiple inputs")

	return cmd
}

func translateOne(cmd *cobra.Command, name string, r io.Reader, output string, opts []convert.Option) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	source := string(data)

	text, err := convert.String(source, append(opts, convert.WithFile(name))...)
	if err != nil {
		return reportErrors(cmd.ErrOrStderr(), err, map[string]string{name: source})
	}

	if output == "" {
		_, err = io.WriteString(cmd.OutOrStdout(), text)
		return err
	}
	return os.WriteFile(output, []byte(text), 0644)
}

func translateMany(cmd *cobra.Command, files []string, outDir string, opts []convert.Option) error {
	inputs := make([]convert.Input, 0, len(files))
	sources := make(map[string]string, len(files))
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read %s: %w", file, err)
		}
		inputs = append(inputs, convert.Input{Name: file, Source: string(data)})
		sources[file] = string(data)
	}

	outputs, convErr := convert.Files(inputs, opts...)
	for _, out := range outputs {
		if out.Err != nil {
			continue
		}
		path := outputPath(out.Name, outDir)
		if outDir != "" {
			if err := os.MkdirAll(outDir, 0755); err != nil {
				return err
			}
		}
		if err := os.WriteFile(path, []byte(out.Text), 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", out.Name, path)
	}
	return reportErrors(cmd.ErrOrStderr(), convErr, sources)
}

// outputPath maps Foo/Bar.cs to Foo/Bar.fs, or to outDir/Bar.fs.
func outputPath(input, outDir string) string {
	name := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + ".fs"
	if outDir != "" {
		return filepath.Join(outDir, name)
	}
	return filepath.Join(filepath.Dir(input), name)
}
