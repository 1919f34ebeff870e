package reduce

import (
	"errors"
	"fmt"

	"github.com/fyerfyer/tseitin/pkg/circuit"
	"github.com/fyerfyer/tseitin/pkg/cnf"
	"github.com/fyerfyer/tseitin/pkg/utils"
)

// ErrNoInputs reports a CSAT2 reduction over a circuit without inputs,
// for which two distinct input assignments cannot exist.
var ErrNoInputs = errors.New("circuit has no inputs")

// CSAT reduces circuit satisfiability to SAT: the returned formula is
// satisfiable iff some input assignment makes the circuit's output true,
// and the models restricted to variables 1..Inputs() are exactly those
// assignments.
func CSAT(c *circuit.Circuit) *cnf.Formula {
	f := Tseitin(c)

	log := utils.Logger()
	log.Debug().
		Int("inputs", c.Inputs()).
		Int("gates", c.NumGates()).
		Int("variables", f.NumVariables()).
		Int("clauses", f.NumClauses()).
		Msg("reduced CSAT instance")
	return f
}

// CSAT2 reduces circuit non-injectivity to SAT: the returned formula is
// satisfiable iff two distinct input assignments both make the circuit's
// output true. The circuit is duplicated over doubled inputs, the double
// is Tseitin-encoded, and the distinctness gadget is laid over the two
// input blocks with helper variables starting one past the double's
// highest variable.
func CSAT2(c *circuit.Circuit) (*cnf.Formula, error) {
	n := c.Inputs()
	if n == 0 {
		return nil, fmt.Errorf("%w: cannot ask for two distinct input assignments", ErrNoInputs)
	}

	d := circuit.Duplicate(c)
	f := Tseitin(d)

	xs := make([]int, n)
	ys := make([]int, n)
	for i := 0; i < n; i++ {
		xs[i] = i + 1
		ys[i] = n + i + 1
	}
	f.Append(Distinct(xs, ys, d.NumVariables()+1))

	log := utils.Logger()
	log.Debug().
		Int("inputs", c.Inputs()).
		Int("gates", c.NumGates()).
		Int("variables", f.NumVariables()).
		Int("clauses", f.NumClauses()).
		Msg("reduced CSAT2 instance")
	return f, nil
}
