package circuit

import "fmt"

// Eval evaluates the circuit over the given input assignment and returns
// the value of the designated output. inputs[i] is the value of variable
// i+1; the slice length must equal Inputs().
func (c *Circuit) Eval(inputs []bool) (bool, error) {
	if len(inputs) != c.inputs {
		return false, fmt.Errorf("circuit has %d inputs, got %d values", c.inputs, len(inputs))
	}

	// vals[v] is the value of variable v; index 0 stays unused.
	vals := make([]bool, c.NumVariables()+1)
	copy(vals[1:], inputs)

	for i, g := range c.gates {
		var out bool
		switch g.kind {
		case ConstFalse:
			out = false
		case ConstTrue:
			out = true
		case Copy:
			out = vals[g.h1]
		case Not:
			out = !vals[g.h1]
		case And:
			out = vals[g.h1] && vals[g.h2]
		case Or:
			out = vals[g.h1] || vals[g.h2]
		case Equiv:
			out = vals[g.h1] == vals[g.h2]
		case Xor:
			out = vals[g.h1] != vals[g.h2]
		}
		vals[c.VariableOf(i)] = out
	}

	return vals[c.OutputVariable()], nil
}
