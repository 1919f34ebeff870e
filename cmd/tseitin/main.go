// Command tseitin reduces circuit satisfiability problems to DIMACS CNF
// files and runs them through SAT solver backends.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fyerfyer/tseitin"
	"github.com/fyerfyer/tseitin/pkg/utils"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		verbose bool
		logPath string
	)

	cmd := &cobra.Command{
		Use:   "tseitin",
		Short: "Reduce circuit satisfiability (CSAT/CSAT2) to SAT",
		Long: `tseitin turns Boolean circuit descriptions into equisatisfiable CNF
formulas via the Tseitin transformation and hands them to SAT solvers.

Circuit files list the input count on the first line, then one gate per
line as a tag plus operands ("A 1 2"); '#' starts a comment.`,
		Version:      tseitin.Version.String(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				utils.SetLevel(zerolog.DebugLevel)
			}
			if logPath != "" {
				f, err := os.Create(logPath)
				if err != nil {
					return fmt.Errorf("failed to create log file: %w", err)
				}
				utils.SetOutput(f)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&logPath, "log", "", "write logs to this file instead of stderr")
	cmd.AddCommand(newReduceCmd(), newSolveCmd(), newBatchCmd())
	return cmd
}
