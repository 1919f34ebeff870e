// Package reduce implements the reductions from circuit satisfiability
// (CSAT) and circuit non-injectivity (CSAT2) to CNF satisfiability,
// built on the Tseitin transformation.
package reduce

import (
	"github.com/fyerfyer/tseitin/pkg/circuit"
	"github.com/fyerfyer/tseitin/pkg/cnf"
)

// Tseitin encodes a circuit as a CNF formula that is satisfiable iff
// some input assignment makes the designated output true. One variable
// per gate is introduced, constrained by the gate's truth table, so
// every satisfying assignment restricted to variables 1..n is exactly a
// witnessing input assignment; no spurious models over the inputs are
// created or lost.
//
// Clause order is deterministic: gates in sequence, each gate's defining
// clauses in a fixed per-kind order, and the closing unit clause on the
// output variable last. The circuit is assumed valid; Tseitin performs
// no validation of its own.
func Tseitin(c *circuit.Circuit) *cnf.Formula {
	f := &cnf.Formula{}
	for i := 0; i < c.NumGates(); i++ {
		defineGate(f, c.VariableOf(i), c.Gate(i))
	}
	f.Add(c.OutputVariable())
	return f
}

// defineGate emits the clauses constraining variable g to equal the
// gate's Boolean function of its operands.
func defineGate(f *cnf.Formula, g int, gate circuit.Gate) {
	ops := gate.Operands()
	switch gate.Kind() {
	case circuit.ConstFalse:
		f.Add(-g)
	case circuit.ConstTrue:
		f.Add(g)
	case circuit.Copy:
		f.Add(g, -ops[0])
		f.Add(-g, ops[0])
	case circuit.Not:
		f.Add(g, ops[0])
		f.Add(-g, -ops[0])
	case circuit.And:
		f.Add(-g, ops[0])
		f.Add(-g, ops[1])
		f.Add(g, -ops[0], -ops[1])
	case circuit.Or:
		defineOr(f, g, ops[0], ops[1])
	case circuit.Equiv:
		f.Add(g, -ops[0], -ops[1])
		f.Add(g, ops[0], ops[1])
		f.Add(-g, ops[0], -ops[1])
		f.Add(-g, -ops[0], ops[1])
	case circuit.Xor:
		defineXor(f, g, ops[0], ops[1])
	}
}

// defineOr emits the clauses for g <-> h1 OR h2. Shared with the
// distinctness gadget's accumulator chain.
func defineOr(f *cnf.Formula, g, h1, h2 int) {
	f.Add(g, -h1)
	f.Add(g, -h2)
	f.Add(-g, h1, h2)
}

// defineXor emits the clauses for g <-> h1 XOR h2. Shared with the
// distinctness gadget's per-coordinate comparisons.
func defineXor(f *cnf.Formula, g, h1, h2 int) {
	f.Add(-g, -h1, -h2)
	f.Add(-g, h1, h2)
	f.Add(g, h1, -h2)
	f.Add(g, -h1, h2)
}
