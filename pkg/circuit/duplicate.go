package circuit

// Duplicate builds a new circuit over twice the inputs of c containing
// two independent, structurally identical copies of c's gate logic. The
// first copy reads input variables 1..n, the second the fresh input
// variables n+1..2n; a final AND gate joins the two copies' outputs.
//
// For a circuit with n inputs and k gates the result has 2n inputs and
// 2k+1 gates: the k first-copy gates, then the k second-copy gates, then
// the closing AND over variables 2n+k and 2n+2k. The source circuit is
// never modified.
func Duplicate(c *Circuit) *Circuit {
	n := c.inputs
	k := len(c.gates)

	gates := make([]Gate, 0, 2*k+1)
	for _, g := range c.gates {
		gates = append(gates, g.remap(func(h int) int { return resolveOriginal(h, n) }))
	}
	for _, g := range c.gates {
		gates = append(gates, g.remap(func(h int) int { return resolveCopy(h, n, k) }))
	}
	gates = append(gates, Binary(And, 2*n+k, 2*n+2*k))

	// Validity is preserved by construction: remapping keeps every
	// operand strictly below its gate's variable.
	return &Circuit{inputs: 2 * n, gates: gates}
}

// resolveOriginal maps an operand of the source circuit to the first
// copy's numbering: inputs keep their variable, gate references shift
// past the n fresh copy inputs.
func resolveOriginal(h, n int) int {
	if h <= n {
		return h
	}
	return h + n
}

// resolveCopy maps an operand of the source circuit to the second copy's
// numbering: input h becomes its counterpart n+h, gate references shift
// past the fresh inputs and the k first-copy gates.
func resolveCopy(h, n, k int) int {
	if h <= n {
		return h + n
	}
	return h + n + k
}
