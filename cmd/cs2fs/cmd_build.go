package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dhamidi/cs2fs/project"
	"github.com/spf13/cobra"
)

func loadProject(args []string) (*project.Project, error) {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}
	return project.LoadFrom(root, project.WithConvertOptions(convertOptions()...))
}

func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build [dir]",
		Short: "Translate every .cs file under dir/src into dir/out",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(args)
			if err != nil {
				return err
			}
			if err := p.Build(); err != nil {
				return reportErrors(cmd.ErrOrStderr(), err, nil)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "built %d units into %s\n", len(p.Units), p.OutDir)
			return nil
		},
	}
}

func newWatchCmd() *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch [dir]",
		Short: "Rebuild the project whenever a source file changes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			stderr := cmd.ErrOrStderr()
			w := project.NewWatcher(p,
				project.WithInterval(interval),
				project.WithEventHandler(func(e project.Event) {
					switch {
					case e.Err != nil:
						reportErrors(stderr, e.Err, nil)
					case e.Removed:
						fmt.Fprintf(out, "removed %s\n", e.Unit.Output)
					default:
						fmt.Fprintf(out, "%s -> %s\n", e.Unit.Name, e.Unit.Output)
					}
				}),
			)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Fprintf(out, "watching %s (press Ctrl-C to stop)\n", p.SrcDir)
			w.Start()
			<-ctx.Done()
			w.Stop()
			return nil
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", time.Second, "polling interval")

	return cmd
}
