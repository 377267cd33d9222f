// Command acengine-demo runs the bundled scenarios against pkg/acengine
// and prints the resulting solver state, for manual inspection of the
// propagation engine's behavior.
package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/constraintkit/acengine/internal/scenarios"
	"github.com/constraintkit/acengine/pkg/acengine"
)

var (
	verbose bool
	debug   bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "acengine-demo",
		Short: "Run bundled arc-consistency scenarios and print solver state",
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable trace-level logging")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug-level logging")
	root.AddCommand(newListCmd())
	root.AddCommand(newRunCmd())
	return root
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range scenarios.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [scenario]",
		Short: "Run one scenario (or all, if omitted) and print final solver state",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger()
			names := scenarios.Names()
			if len(args) == 1 {
				names = []string{args[0]}
			}
			for _, name := range names {
				scenario, ok := scenarios.Lookup(name)
				if !ok {
					return fmt.Errorf("unknown scenario %q", name)
				}
				s := acengine.NewSolver(acengine.WithLogger(log))
				ok2 := scenario.Build(s)
				fmt.Fprintf(cmd.OutOrStdout(), "=== %s ===\n", name)
				fmt.Fprintf(cmd.OutOrStdout(), "propagate ok: %v\n", ok2)
				fmt.Fprint(cmd.OutOrStdout(), acengine.ToString(s))
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}
}

func logger() hclog.Logger {
	level := hclog.Warn
	if verbose {
		level = hclog.Trace
	} else if debug {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:  "acengine-demo",
		Level: level,
	})
}
