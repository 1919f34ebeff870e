package circuit

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformed reports a circuit description that violates the
// structural invariants: an empty gate list, a negative input count, an
// unknown gate tag, or an operand referencing the gate itself, a later
// gate, or a nonpositive variable.
var ErrMalformed = errors.New("malformed circuit")

// Circuit is a validated Boolean circuit: n input variables followed by
// an ordered gate list. Variables 1..n are the inputs; the i-th gate
// (0-based) owns variable n+i+1, so the gate order is also a topological
// order and the structure is a DAG by construction. The last gate is the
// circuit's designated output.
//
// Circuits are immutable after construction. Build them with New, which
// enforces the invariants; consumers such as the Tseitin encoder and the
// duplicator rely on them and perform no validation of their own.
type Circuit struct {
	inputs int
	gates  []Gate
}

// New validates the gate list against the input count and returns the
// circuit. Every operand of gate i must satisfy 0 < h <= n+i: it may
// reference an input or a strictly earlier gate, never itself or a later
// one. Violations are reported as errors wrapping ErrMalformed.
func New(inputs int, gates []Gate) (*Circuit, error) {
	if inputs < 0 {
		return nil, fmt.Errorf("%w: negative input count %d", ErrMalformed, inputs)
	}
	if len(gates) == 0 {
		return nil, fmt.Errorf("%w: circuit has no gates", ErrMalformed)
	}
	for i, g := range gates {
		top := inputs + i
		for _, h := range g.Operands() {
			if h <= 0 || h > top {
				return nil, fmt.Errorf("%w: gate %d (%s): operand %d out of range 1..%d",
					ErrMalformed, i, g, h, top)
			}
		}
	}
	c := &Circuit{inputs: inputs, gates: make([]Gate, len(gates))}
	copy(c.gates, gates)
	return c, nil
}

// Inputs returns the number of input variables.
func (c *Circuit) Inputs() int {
	return c.inputs
}

// NumGates returns the number of gates.
func (c *Circuit) NumGates() int {
	return len(c.gates)
}

// Gate returns the i-th gate (0-based).
func (c *Circuit) Gate(i int) Gate {
	return c.gates[i]
}

// VariableOf returns the variable owned by the i-th gate (0-based). The
// mapping is derived from position, never stored.
func (c *Circuit) VariableOf(i int) int {
	return c.inputs + i + 1
}

// OutputVariable returns the variable of the designated output, the last
// gate in the sequence.
func (c *Circuit) OutputVariable() int {
	return c.inputs + len(c.gates)
}

// NumVariables returns the total number of variables the circuit uses:
// inputs plus one per gate.
func (c *Circuit) NumVariables() int {
	return c.inputs + len(c.gates)
}

// String lists the circuit one gate per line, each prefixed with the
// variable it owns.
func (c *Circuit) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "inputs: %d\n", c.inputs)
	for i, g := range c.gates {
		fmt.Fprintf(&b, "%d : %s\n", c.VariableOf(i), g)
	}
	return b.String()
}
