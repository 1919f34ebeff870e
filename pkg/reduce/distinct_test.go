package reduce_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/fyerfyer/tseitin/pkg/cnf"
	"github.com/fyerfyer/tseitin/pkg/reduce"
)

// TestDistinctSingleCoordinate checks the one-coordinate gadget: exact
// clauses, models only where the pair differs, and vacuous
// satisfiability once the forcing clause is dropped.
func TestDistinctSingleCoordinate(t *testing.T) {
	assert := require.New(t)

	f := reduce.Distinct([]int{1}, []int{2}, 3)

	// The difference variable 3 is defined as 1 XOR 2 and then forced.
	want := []cnf.Clause{{-3, -1, -2}, {-3, 1, 2}, {3, 1, -2}, {3, -1, 2}, {3}}
	assert.Empty(cmp.Diff(want, f.Clauses))

	var pairs [][2]bool
	for _, m := range enumerate(f, 3) {
		pairs = append(pairs, [2]bool{m.Value(1), m.Value(2)})
	}
	assert.ElementsMatch([][2]bool{{true, false}, {false, true}}, pairs)

	// Without the forcing clause the helper stays defined but
	// unconstrained: every pair extends to a model, differing or not.
	unforced := &cnf.Formula{Clauses: f.Clauses[:f.NumClauses()-1]}
	seen := map[[2]bool]bool{}
	for _, m := range enumerate(unforced, 3) {
		seen[[2]bool{m.Value(1), m.Value(2)}] = true
	}
	assert.Len(seen, 4)
}

// TestDistinctChain checks helper allocation and semantics over three
// coordinates.
func TestDistinctChain(t *testing.T) {
	assert := require.New(t)

	f := reduce.Distinct([]int{1, 2, 3}, []int{4, 5, 6}, 7)

	// Difference variables 7, 8, 10; accumulators 9, 11; the final
	// accumulator is forced.
	assert.Equal(3*4+2*3+1, f.NumClauses())
	assert.Equal(11, f.NumVariables())
	assert.Equal(cnf.Clause{11}, f.Clauses[f.NumClauses()-1])

	for bits := 0; bits < 1<<6; bits++ {
		base := make(cnf.Assignment, 7)
		for v := 1; v <= 6; v++ {
			base[v] = bits&(1<<(v-1)) != 0
		}
		differs := base[1] != base[4] || base[2] != base[5] || base[3] != base[6]
		assert.Equal(differs, extendable(f, base, 7, 11), "inputs %v", []bool(base))
	}
}

func TestDistinctContractViolationsPanic(t *testing.T) {
	assert := require.New(t)

	assert.Panics(func() { reduce.Distinct(nil, nil, 5) })
	assert.Panics(func() { reduce.Distinct([]int{1}, []int{2, 3}, 9) })
	assert.Panics(func() { reduce.Distinct([]int{1}, []int{3}, 3) })
	assert.Panics(func() { reduce.Distinct([]int{0}, []int{1}, 5) })
}

// extendable reports whether some assignment to variables lo..hi extends
// base to a model of f.
func extendable(f *cnf.Formula, base cnf.Assignment, lo, hi int) bool {
	n := hi - lo + 1
	for bits := 0; bits < 1<<n; bits++ {
		a := make(cnf.Assignment, hi+1)
		copy(a, base)
		for i := 0; i < n; i++ {
			a[lo+i] = bits&(1<<i) != 0
		}
		if a.Satisfies(f) {
			return true
		}
	}
	return false
}
