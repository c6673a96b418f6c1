package main

import (
	"fmt"
	"io"

	"github.com/dhamidi/cs2fs/csharp/grammar"
	"github.com/spf13/cobra"
)

func newGrammarCmd() *cobra.Command {
	var check bool
	var start string

	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Print the EBNF grammar of the accepted C# subset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !check {
				_, err := io.WriteString(cmd.OutOrStdout(), grammar.Source())
				return err
			}

			g, err := grammar.Verify(start)
			if err != nil {
				for _, e := range grammar.Errors(err) {
					fmt.Fprintln(cmd.ErrOrStderr(), e)
				}
				return errReported
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d productions reachable from %s\n", len(g), start)
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "verify the grammar instead of printing it")
	cmd.Flags().StringVar(&start, "start", grammar.Start, "start production for verification")

	return cmd
}
