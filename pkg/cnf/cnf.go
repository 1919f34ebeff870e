// Package cnf models formulas in conjunctive normal form and serializes
// them in the DIMACS CNF text format.
//
// A literal is a nonzero integer: its absolute value names a variable
// (1-based) and its sign the polarity. Literal 0 is reserved as the
// DIMACS clause terminator and never appears inside a clause.
package cnf

// Clause is a disjunction of literals. Literal order carries no meaning
// but is preserved so that serialization stays deterministic.
type Clause []int

// Formula is an ordered conjunction of clauses, plus optional comment
// lines emitted ahead of the DIMACS header.
type Formula struct {
	Clauses  []Clause
	Comments []string
}

// Add appends a clause made of the given literals. A zero literal is a
// programming error and panics.
func (f *Formula) Add(lits ...int) {
	for _, l := range lits {
		if l == 0 {
			panic("cnf: literal 0 inside a clause")
		}
	}
	c := make(Clause, len(lits))
	copy(c, lits)
	f.Clauses = append(f.Clauses, c)
}

// Comment attaches a comment line to the formula.
func (f *Formula) Comment(text string) {
	f.Comments = append(f.Comments, text)
}

// Append concatenates the clauses and comments of other onto f.
func (f *Formula) Append(other *Formula) {
	f.Clauses = append(f.Clauses, other.Clauses...)
	f.Comments = append(f.Comments, other.Comments...)
}

// NumClauses returns the number of clauses.
func (f *Formula) NumClauses() int {
	return len(f.Clauses)
}

// NumVariables returns the largest variable referenced by any clause.
// It is header metadata, not a semantic property: variables need not be
// contiguous.
func (f *Formula) NumVariables() int {
	max := 0
	for _, c := range f.Clauses {
		for _, l := range c {
			if l < 0 {
				l = -l
			}
			if l > max {
				max = l
			}
		}
	}
	return max
}

// Ints returns the clauses as plain int slices, the shape solver
// front ends take. The slices share backing arrays with the formula.
func (f *Formula) Ints() [][]int {
	out := make([][]int, len(f.Clauses))
	for i, c := range f.Clauses {
		out[i] = c
	}
	return out
}

// Assignment is a truth assignment indexed by variable; index 0 is
// unused. Variables beyond the slice are considered false.
type Assignment []bool

// Value reports the value the assignment gives variable v.
func (a Assignment) Value(v int) bool {
	return v < len(a) && a[v]
}

// Satisfies reports whether every clause of f contains at least one
// literal made true by the assignment.
func (a Assignment) Satisfies(f *Formula) bool {
	for _, c := range f.Clauses {
		ok := false
		for _, l := range c {
			v := l
			if v < 0 {
				v = -v
			}
			if a.Value(v) == (l > 0) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}
