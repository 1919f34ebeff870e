package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fyerfyer/tseitin/pkg/circuit"
	"github.com/fyerfyer/tseitin/pkg/cnf"
	"github.com/fyerfyer/tseitin/pkg/reduce"
	"github.com/fyerfyer/tseitin/pkg/utils"
)

func newReduceCmd() *cobra.Command {
	var (
		circuitPath string
		outPath     string
		csat2       bool
	)

	cmd := &cobra.Command{
		Use:   "reduce",
		Short: "Reduce a circuit file to a DIMACS CNF file",
		Long: `Reduce parses a circuit file and writes the equisatisfiable CNF formula
in DIMACS format. By default the formula encodes circuit satisfiability
(CSAT); with --csat2 it encodes non-injectivity instead: two distinct
input assignments that both drive the output true.

A malformed circuit file still produces an output: the trivially
unsatisfiable formula {-1}{1}, so downstream solvers always have
something to chew on.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReduce(circuitPath, outPath, csat2)
		},
	}

	cmd.Flags().StringVarP(&circuitPath, "circuit", "c", "", "path of the circuit file to reduce")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "path of the DIMACS CNF file to write")
	cmd.Flags().BoolVar(&csat2, "csat2", false, "emit the non-injectivity (CSAT2) reduction")
	cmd.MarkFlagRequired("circuit")
	cmd.MarkFlagRequired("out")
	return cmd
}

func runReduce(circuitPath, outPath string, csat2 bool) error {
	log := utils.Logger()

	f, err := reduceFile(circuitPath, csat2)
	switch {
	case errors.Is(err, circuit.ErrMalformed):
		log.Warn().Err(err).Str("circuit", circuitPath).
			Msg("malformed circuit, writing trivially unsatisfiable formula")
		f = unsatisfiable()
	case err != nil:
		return err
	default:
		mode := "CSAT"
		if csat2 {
			mode = "CSAT2"
		}
		f.Comment(fmt.Sprintf("%s reduction of %s", mode, filepath.Base(circuitPath)))
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()
	if err := cnf.Write(out, f); err != nil {
		return fmt.Errorf("failed to write DIMACS output: %w", err)
	}

	log.Info().
		Str("circuit", circuitPath).
		Str("out", outPath).
		Int("variables", f.NumVariables()).
		Int("clauses", f.NumClauses()).
		Msg("reduced")
	return nil
}

// reduceFile parses a circuit file and runs the requested reduction.
func reduceFile(path string, csat2 bool) (*cnf.Formula, error) {
	c, err := utils.ParseCircuitFile(path)
	if err != nil {
		return nil, err
	}
	if csat2 {
		return reduce.CSAT2(c)
	}
	return reduce.CSAT(c), nil
}

// unsatisfiable builds the stand-in formula written for malformed
// circuit input.
func unsatisfiable() *cnf.Formula {
	f := &cnf.Formula{}
	f.Add(-1)
	f.Add(1)
	return f
}
