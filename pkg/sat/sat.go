// Package sat hands CNF formulas to external SAT solver backends. The
// reduction engine never searches; deciding satisfiability is delegated
// to the solvers adapted here.
package sat

import (
	"context"
	"errors"
	"fmt"

	"github.com/fyerfyer/tseitin/pkg/cnf"
)

// Status is a solver verdict.
type Status int

const (
	// Unsatisfiable means no assignment satisfies the formula.
	Unsatisfiable Status = iota
	// Satisfiable means the formula has at least one model.
	Satisfiable
)

// String returns the verdict in the conventional solver spelling.
func (s Status) String() string {
	switch s {
	case Satisfiable:
		return "SAT"
	case Unsatisfiable:
		return "UNSAT"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is a solver verdict together with a model when the verdict is
// Satisfiable.
type Result struct {
	Status Status
	Model  cnf.Assignment
}

// Solver decides satisfiability of CNF formulas.
type Solver interface {
	Name() string
	Solve(ctx context.Context, f *cnf.Formula) (Result, error)
}

// ErrUnknownSolver reports a backend name New does not recognize.
var ErrUnknownSolver = errors.New("unknown solver")

// New returns the named backend, one of "gini" or "gophersat".
func New(name string) (Solver, error) {
	switch name {
	case "gini":
		return &Gini{}, nil
	case "gophersat":
		return &Gophersat{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSolver, name)
}

// Solve decides f with the default backend.
func Solve(ctx context.Context, f *cnf.Formula) (Result, error) {
	return (&Gini{}).Solve(ctx, f)
}
