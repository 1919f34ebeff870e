package cnf_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fyerfyer/tseitin/pkg/cnf"
)

func TestAdd(t *testing.T) {
	assert := require.New(t)

	var f cnf.Formula
	f.Add(1, -2)
	f.Add(3)
	assert.Equal(2, f.NumClauses())
	assert.Equal(cnf.Clause{1, -2}, f.Clauses[0])
	assert.Equal(cnf.Clause{3}, f.Clauses[1])

	// The formula keeps its own copy of the literals.
	lits := []int{4, 5}
	f.Add(lits...)
	lits[0] = 99
	assert.Equal(cnf.Clause{4, 5}, f.Clauses[2])

	assert.Panics(func() { f.Add(1, 0) })
}

func TestNumVariables(t *testing.T) {
	assert := require.New(t)

	var f cnf.Formula
	assert.Equal(0, f.NumVariables())

	f.Add(1, -7)
	f.Add(3)
	assert.Equal(7, f.NumVariables())
}

func TestAppend(t *testing.T) {
	assert := require.New(t)

	var a, b cnf.Formula
	a.Add(1)
	a.Comment("first")
	b.Add(-2)
	b.Comment("second")

	a.Append(&b)
	assert.Equal([]cnf.Clause{{1}, {-2}}, a.Clauses)
	assert.Equal([]string{"first", "second"}, a.Comments)
}

func TestInts(t *testing.T) {
	assert := require.New(t)

	var f cnf.Formula
	f.Add(1, -2)
	f.Add(2)
	assert.Equal([][]int{{1, -2}, {2}}, f.Ints())
}

// TestAssignment checks 1-based indexing, the out-of-range convention
// and clause satisfaction.
func TestAssignment(t *testing.T) {
	assert := require.New(t)

	a := cnf.Assignment{false, true, false} // x1=true, x2=false
	assert.True(a.Value(1))
	assert.False(a.Value(2))
	assert.False(a.Value(9))

	var f cnf.Formula
	f.Add(1, 2)
	f.Add(-2)
	assert.True(a.Satisfies(&f))

	f.Add(2)
	assert.False(a.Satisfies(&f))
}
