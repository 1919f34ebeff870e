package sat

import (
	"context"

	"github.com/crillab/gophersat/solver"

	"github.com/fyerfyer/tseitin/pkg/cnf"
)

// Gophersat decides satisfiability with the crillab/gophersat solver.
type Gophersat struct{}

// Name implements Solver.
func (*Gophersat) Name() string { return "gophersat" }

// Solve implements Solver. gophersat searches synchronously, so the
// context is consulted only before the search starts.
func (*Gophersat) Solve(ctx context.Context, f *cnf.Formula) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	s := solver.New(solver.ParseSlice(f.Ints()))
	switch s.Solve() {
	case solver.Sat:
		// Model()[i] is the value of variable i+1.
		m := s.Model()
		model := make(cnf.Assignment, len(m)+1)
		for i, b := range m {
			model[i+1] = b
		}
		return Result{Status: Satisfiable, Model: model}, nil
	case solver.Unsat:
		return Result{Status: Unsatisfiable}, nil
	default:
		return Result{}, ErrIncomplete
	}
}
