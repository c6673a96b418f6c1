package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

// errReported marks a failure whose diagnostics were already printed.
var errReported = errors.New("failed")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, color.RedString("error: %s", err))
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:           "cs2fs",
		Short:         "Translate a subset of C# into F#",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, cfgFile)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.cs2fs.yaml or ./.cs2fs.yaml)")
	flags.CountP("verbose", "v", "increase log verbosity (repeatable)")
	flags.String("log-file", "", "write logs to this file instead of stderr")
	flags.Bool("no-color", false, "disable colored output")
	flags.String("indent", "    ", "text of one indentation level in F# output")
	flags.Bool("no-type-mapping", false, "keep C# primitive type names in F# output")

	rootCmd.AddCommand(newTranslateCmd())
	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newBuildCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newSampleCmd())
	rootCmd.AddCommand(newGrammarCmd())
	rootCmd.AddCommand(newLSPCmd())
	rootCmd.AddCommand(newUICmd())

	return rootCmd
}
