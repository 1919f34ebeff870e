package sat

import (
	"context"
	"errors"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/inter"
	"github.com/go-air/gini/z"

	"github.com/fyerfyer/tseitin/pkg/cnf"
)

// ErrIncomplete reports that a backend stopped before reaching a
// verdict.
var ErrIncomplete = errors.New("solver stopped before reaching a verdict")

// Gini decides satisfiability with the go-air/gini solver. It is the
// default backend.
type Gini struct{}

// Name implements Solver.
func (*Gini) Name() string { return "gini" }

// Solve implements Solver. Clauses are added in DIMACS literal form and
// the search runs asynchronously so that context cancellation can stop
// it; a cancelled search surfaces the context's error.
func (*Gini) Solve(ctx context.Context, f *cnf.Formula) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	g := gini.New()
	for _, c := range f.Clauses {
		for _, l := range c {
			g.Add(z.Dimacs2Lit(l))
		}
		g.Add(z.LitNull)
	}

	switch verdict := waitForVerdict(ctx, g.GoSolve()); {
	case verdict > 0:
		model := make(cnf.Assignment, f.NumVariables()+1)
		for v := 1; v < len(model); v++ {
			model[v] = g.Value(z.Dimacs2Lit(v))
		}
		return Result{Status: Satisfiable, Model: model}, nil
	case verdict < 0:
		return Result{Status: Unsatisfiable}, nil
	default:
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		return Result{}, ErrIncomplete
	}
}

// waitForVerdict polls an asynchronous gini solve until it produces a
// result, stopping the search if the context is cancelled first. The
// returned value follows gini's convention: 1 satisfiable, -1
// unsatisfiable, 0 unknown.
func waitForVerdict(ctx context.Context, gs inter.Solve) int {
	t := time.NewTicker(time.Millisecond)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return gs.Stop()
		case <-t.C:
			if verdict, done := gs.Test(); done {
				return verdict
			}
		}
	}
}
