package reduce

import (
	"fmt"

	"github.com/fyerfyer/tseitin/pkg/cnf"
)

// Distinct emits clauses over fresh helper variables asserting that the
// equal-length variable vectors xs and ys differ in at least one
// coordinate. A difference variable is defined per coordinate as
// xs[i] XOR ys[i]; the differences are folded left to right through OR
// accumulators, and the final accumulator is forced true by a closing
// unit clause. Without that clause the helpers would be defined but
// unconstrained and the gadget satisfiable regardless of the vectors.
//
// Helper variables are allocated upward from fresh, which must lie
// strictly above every variable of the instrumented formula; reusing a
// bound index would corrupt the encoding silently instead of failing.
// Distinct panics on such collisions, on empty vectors and on mismatched
// lengths: these are caller bugs, not input errors.
//
// Allocation is a pure function of coordinate position: the difference
// variable for coordinate 0 is fresh, and for coordinate i > 0 the
// difference and accumulator variables are fresh+2i-1 and fresh+2i.
func Distinct(xs, ys []int, fresh int) *cnf.Formula {
	if len(xs) == 0 {
		panic("reduce: Distinct over empty vectors")
	}
	if len(xs) != len(ys) {
		panic(fmt.Sprintf("reduce: Distinct over vectors of lengths %d and %d", len(xs), len(ys)))
	}
	for _, vec := range [][]int{xs, ys} {
		for _, v := range vec {
			if v <= 0 {
				panic(fmt.Sprintf("reduce: Distinct coordinate %d is not a variable", v))
			}
			if v >= fresh {
				panic(fmt.Sprintf("reduce: fresh index %d collides with instrumented variable %d", fresh, v))
			}
		}
	}

	f := &cnf.Formula{}
	defineXor(f, fresh, xs[0], ys[0])
	for i := 1; i < len(xs); i++ {
		d := fresh + 2*i - 1
		acc := fresh + 2*i
		prev := fresh + 2*(i-1)
		defineXor(f, d, xs[i], ys[i])
		defineOr(f, acc, prev, d)
	}
	f.Add(fresh + 2*(len(xs)-1))
	return f
}
