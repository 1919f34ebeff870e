package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fyerfyer/tseitin/pkg/cnf"
	"github.com/fyerfyer/tseitin/pkg/sat"
)

func newSolveCmd() *cobra.Command {
	var backend string

	cmd := &cobra.Command{
		Use:   "solve <file.cnf>",
		Short: "Decide a DIMACS CNF file with a SAT solver",
		Long: `Solve reads a DIMACS CNF file and reports the verdict: "SAT" followed
by a model line of signed literals, or "UNSAT".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd.Context(), cmd.OutOrStdout(), args[0], backend)
		},
	}

	cmd.Flags().StringVar(&backend, "solver", "gini", "SAT backend, one of gini or gophersat")
	return cmd
}

func runSolve(ctx context.Context, w io.Writer, path, backend string) error {
	s, err := sat.New(backend)
	if err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open CNF file: %w", err)
	}
	defer file.Close()
	f, err := cnf.Read(file)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	res, err := s.Solve(ctx, f)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, res.Status)
	if res.Status == sat.Satisfiable {
		fmt.Fprintln(w, modelLine(res.Model, f.NumVariables()))
	}
	return nil
}

// modelLine renders a model as space-separated signed literals, one per
// variable.
func modelLine(m cnf.Assignment, n int) string {
	var b strings.Builder
	for v := 1; v <= n; v++ {
		if v > 1 {
			b.WriteByte(' ')
		}
		lit := v
		if !m.Value(v) {
			lit = -v
		}
		b.WriteString(strconv.Itoa(lit))
	}
	return b.String()
}
