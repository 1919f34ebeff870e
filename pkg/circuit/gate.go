package circuit

import "fmt"

// Kind identifies the Boolean function a gate computes.
type Kind uint8

const (
	ConstFalse Kind = iota // constant FALSE, no operands
	ConstTrue              // constant TRUE, no operands
	Copy                   // buffer, one operand
	Not                    // negation, one operand
	And                    // conjunction, two operands
	Or                     // disjunction, two operands
	Equiv                  // equivalence (XNOR), two operands
	Xor                    // exclusive or, two operands
)

// kindTags holds the one-character tags of the circuit text format,
// indexed by Kind.
var kindTags = [...]string{"0", "1", "C", "N", "A", "O", "E", "X"}

// String returns the one-character tag used for the kind in the circuit
// text format.
func (k Kind) String() string {
	if int(k) < len(kindTags) {
		return kindTags[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Arity returns the number of operands a gate of this kind consumes.
func (k Kind) Arity() int {
	switch k {
	case ConstFalse, ConstTrue:
		return 0
	case Copy, Not:
		return 1
	default:
		return 2
	}
}

// ParseKind maps a gate tag from the circuit text format to its Kind.
// Unknown tags are rejected with an error wrapping ErrMalformed.
func ParseKind(tag string) (Kind, error) {
	for k, t := range kindTags {
		if t == tag {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown gate tag %q", ErrMalformed, tag)
}

// Gate is one gate of a circuit: a kind plus exactly the operands the
// kind's arity demands. Operands reference circuit variables (inputs or
// earlier gates). Gates are immutable values; build them with Const,
// Unary or Binary so that an operand-count mismatch cannot be
// represented at all.
type Gate struct {
	kind Kind
	h1   int
	h2   int
}

// Const builds a nullary constant gate. The kind must be ConstFalse or
// ConstTrue; anything else is a programming error and panics.
func Const(k Kind) Gate {
	if k.Arity() != 0 {
		panic(fmt.Sprintf("circuit: Const called with %d-ary kind %s", k.Arity(), k))
	}
	return Gate{kind: k}
}

// Unary builds a one-operand gate. The kind must be Copy or Not;
// anything else is a programming error and panics.
func Unary(k Kind, h int) Gate {
	if k.Arity() != 1 {
		panic(fmt.Sprintf("circuit: Unary called with %d-ary kind %s", k.Arity(), k))
	}
	return Gate{kind: k, h1: h}
}

// Binary builds a two-operand gate. The kind must be And, Or, Equiv or
// Xor; anything else is a programming error and panics.
func Binary(k Kind, h1, h2 int) Gate {
	if k.Arity() != 2 {
		panic(fmt.Sprintf("circuit: Binary called with %d-ary kind %s", k.Arity(), k))
	}
	return Gate{kind: k, h1: h1, h2: h2}
}

// Kind returns the gate's kind.
func (g Gate) Kind() Kind {
	return g.kind
}

// Operands returns the gate's operand variables in order. The slice
// length equals the kind's arity.
func (g Gate) Operands() []int {
	switch g.kind.Arity() {
	case 0:
		return nil
	case 1:
		return []int{g.h1}
	default:
		return []int{g.h1, g.h2}
	}
}

// String returns the gate in the circuit text format, e.g. "A 1 2".
func (g Gate) String() string {
	switch g.kind.Arity() {
	case 0:
		return g.kind.String()
	case 1:
		return fmt.Sprintf("%s %d", g.kind, g.h1)
	default:
		return fmt.Sprintf("%s %d %d", g.kind, g.h1, g.h2)
	}
}

// remap returns a copy of the gate with every operand rewritten by f.
func (g Gate) remap(f func(int) int) Gate {
	switch g.kind.Arity() {
	case 0:
		return g
	case 1:
		return Gate{kind: g.kind, h1: f(g.h1)}
	default:
		return Gate{kind: g.kind, h1: f(g.h1), h2: f(g.h2)}
	}
}
