package main

import (
	"io"

	"github.com/dhamidi/cs2fs/convert"
	"github.com/dhamidi/cs2fs/samples"
	"github.com/spf13/cobra"
)

func newSampleCmd() *cobra.Command {
	var fsharp bool

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print the bundled C# sample, or its F# translation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			source := samples.Sample()
			if !fsharp {
				_, err := io.WriteString(cmd.OutOrStdout(), source)
				return err
			}
			text, err := convert.String(source, append(convertOptions(), convert.WithFile("Sample.cs"))...)
			if err != nil {
				return reportErrors(cmd.ErrOrStderr(), err, map[string]string{"Sample.cs": source})
			}
			_, err = io.WriteString(cmd.OutOrStdout(), text)
			return err
		},
	}

	cmd.Flags().BoolVar(&fsharp, "fsharp", false, "print the F# translation instead")

	return cmd
}
