package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/cs2fs/csharp/parser"
	"github.com/dhamidi/cs2fs/format"
	"github.com/spf13/cobra"
)

func newTokensCmd() *cobra.Command {
	var outputFormat string
	var all bool

	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the token stream of a C# file",
		Long: `Print the tokens of a C# source file, one per line or as JSON.

Whitespace and newline tokens are left out unless --all is given. Reads
standard input when no file is named.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := stdinName
			var r io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				name, r = args[0], f
			}
			data, err := io.ReadAll(r)
			if err != nil {
				return fmt.Errorf("read %s: %w", name, err)
			}
			source := string(data)

			tokens, err := parser.NewLexer(source, name).All()
			if err != nil {
				return reportErrors(cmd.ErrOrStderr(), err, map[string]string{name: source})
			}
			if !all {
				tokens = format.Significant(tokens)
			}

			out := cmd.OutOrStdout()
			switch outputFormat {
			case "line":
				return format.NewLineTokenEncoder(out).Encode(tokens)
			case "json":
				enc := format.NewJSONTokenEncoder(out)
				enc.Colorize = colorFor(os.Stdout) && out == os.Stdout
				if err := enc.Encode(tokens); err != nil {
					return err
				}
				_, err := fmt.Fprintln(out)
				return err
			default:
				return fmt.Errorf("unknown format %q (use line or json)", outputFormat)
			}
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "line", "output format: line or json")
	cmd.Flags().BoolVar(&all, "all", false, "include whitespace and newline tokens")

	return cmd
}
