package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/fyerfyer/tseitin/pkg/circuit"
	"github.com/fyerfyer/tseitin/pkg/reduce"
	"github.com/fyerfyer/tseitin/pkg/sat"
)

func newBatchCmd() *cobra.Command {
	var (
		csat2   bool
		backend string
		jobs    int
	)

	cmd := &cobra.Command{
		Use:   "batch <dir>",
		Short: "Reduce and solve every circuit file in a directory",
		Long: `Batch picks up every *.circuit file under the given directory, runs the
reduction on each concurrently, decides the results with a SAT backend
and prints a verdict per file. Malformed circuit files are reported as
MALFORMED rather than aborting the run.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd.Context(), cmd.OutOrStdout(), args[0], csat2, backend, jobs)
		},
	}

	cmd.Flags().BoolVar(&csat2, "csat2", false, "run the non-injectivity (CSAT2) reduction")
	cmd.Flags().StringVar(&backend, "solver", "gini", "SAT backend, one of gini or gophersat")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.NumCPU(), "number of circuits processed concurrently")
	return cmd
}

func runBatch(ctx context.Context, w io.Writer, dir string, csat2 bool, backend string, jobs int) error {
	s, err := sat.New(backend)
	if err != nil {
		return err
	}

	paths, err := filepath.Glob(filepath.Join(dir, "*.circuit"))
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no .circuit files under %s", dir)
	}

	verdicts := make([]string, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			f, err := reduceFile(path, csat2)
			switch {
			case errors.Is(err, circuit.ErrMalformed):
				verdicts[i] = "MALFORMED"
				return nil
			case errors.Is(err, reduce.ErrNoInputs):
				verdicts[i] = "SKIPPED (no inputs)"
				return nil
			case err != nil:
				return err
			}

			res, err := s.Solve(ctx, f)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			verdicts[i] = res.Status.String()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, path := range paths {
		fmt.Fprintf(w, "%-32s %s\n", filepath.Base(path), verdicts[i])
	}
	return nil
}
