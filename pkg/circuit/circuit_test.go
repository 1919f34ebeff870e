package circuit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fyerfyer/tseitin/pkg/circuit"
)

// TestNewDerivesNumbering builds a small circuit and checks the derived
// variable numbering.
func TestNewDerivesNumbering(t *testing.T) {
	assert := require.New(t)

	c, err := circuit.New(2, []circuit.Gate{
		circuit.Binary(circuit.And, 1, 2),
		circuit.Unary(circuit.Not, 3),
	})
	assert.NoError(err)

	assert.Equal(2, c.Inputs())
	assert.Equal(2, c.NumGates())
	assert.Equal(3, c.VariableOf(0))
	assert.Equal(4, c.VariableOf(1))
	assert.Equal(4, c.OutputVariable())
	assert.Equal(4, c.NumVariables())
	assert.Equal(circuit.And, c.Gate(0).Kind())
	assert.Equal(circuit.Not, c.Gate(1).Kind())
}

// TestNewRejectsMalformed covers the validator's failure modes: empty
// gate lists, bad input counts and out-of-range operands, including
// self and forward references.
func TestNewRejectsMalformed(t *testing.T) {
	cases := []struct {
		name   string
		inputs int
		gates  []circuit.Gate
	}{
		{"empty gate list", 2, nil},
		{"negative input count", -1, []circuit.Gate{circuit.Const(circuit.ConstTrue)}},
		{"zero operand", 1, []circuit.Gate{circuit.Unary(circuit.Copy, 0)}},
		{"negative operand", 1, []circuit.Gate{circuit.Unary(circuit.Copy, -3)}},
		{"self reference", 1, []circuit.Gate{circuit.Unary(circuit.Not, 2)}},
		{"forward reference", 1, []circuit.Gate{
			circuit.Binary(circuit.And, 1, 3),
			circuit.Unary(circuit.Not, 1),
		}},
		{"operand past inputs on first gate", 2, []circuit.Gate{circuit.Binary(circuit.Or, 1, 3)}},
		{"no-input circuit referencing an input", 0, []circuit.Gate{circuit.Unary(circuit.Not, 1)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := circuit.New(tc.inputs, tc.gates)
			require.ErrorIs(t, err, circuit.ErrMalformed)
		})
	}
}

// TestGateOnlyCircuit checks that circuits without inputs are legal as
// long as they open with constants.
func TestGateOnlyCircuit(t *testing.T) {
	assert := require.New(t)

	c, err := circuit.New(0, []circuit.Gate{
		circuit.Const(circuit.ConstTrue),
		circuit.Unary(circuit.Not, 1),
	})
	assert.NoError(err)
	assert.Equal(0, c.Inputs())
	assert.Equal(2, c.OutputVariable())

	out, err := c.Eval(nil)
	assert.NoError(err)
	assert.False(out)
}

func TestCircuitString(t *testing.T) {
	assert := require.New(t)

	c, err := circuit.New(2, []circuit.Gate{
		circuit.Binary(circuit.And, 1, 2),
		circuit.Unary(circuit.Not, 3),
	})
	assert.NoError(err)
	assert.Equal("inputs: 2\n3 : A 1 2\n4 : N 3\n", c.String())
}

// TestEval evaluates compound circuits over all input assignments.
func TestEval(t *testing.T) {
	assert := require.New(t)

	// (x1 XOR x2) OR (x1 AND x2), equivalent to x1 OR x2.
	c, err := circuit.New(2, []circuit.Gate{
		circuit.Binary(circuit.Xor, 1, 2),
		circuit.Binary(circuit.And, 1, 2),
		circuit.Binary(circuit.Or, 3, 4),
	})
	assert.NoError(err)

	for _, tc := range []struct {
		in   []bool
		want bool
	}{
		{[]bool{false, false}, false},
		{[]bool{true, false}, true},
		{[]bool{false, true}, true},
		{[]bool{true, true}, true},
	} {
		got, err := c.Eval(tc.in)
		assert.NoError(err)
		assert.Equal(tc.want, got, "inputs %v", tc.in)
	}

	// EQUIV of an input with its own negation is constantly false.
	contradiction, err := circuit.New(1, []circuit.Gate{
		circuit.Unary(circuit.Copy, 1),
		circuit.Unary(circuit.Not, 2),
		circuit.Binary(circuit.Equiv, 1, 3),
	})
	assert.NoError(err)
	for _, x := range []bool{false, true} {
		got, err := contradiction.Eval([]bool{x})
		assert.NoError(err)
		assert.False(got)
	}

	_, err = c.Eval([]bool{true})
	assert.Error(err)
}
