package utils

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fyerfyer/tseitin/pkg/circuit"
)

// ParseCircuitFile reads a circuit description from a file.
func ParseCircuitFile(path string) (*circuit.Circuit, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open circuit file: %w", err)
	}
	defer file.Close()

	c, err := ParseCircuit(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// ParseCircuit reads the circuit text format: the first significant line
// is the input count, then one gate per line as a tag followed by its
// operands, e.g. "A 1 2". Blank lines and lines starting with '#' are
// skipped. Structural violations, here or in the validator, surface as
// errors wrapping circuit.ErrMalformed.
func ParseCircuit(r io.Reader) (*circuit.Circuit, error) {
	var (
		inputs     int
		seenInputs bool
		gates      []circuit.Gate
		lineno     int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seenInputs {
			n, err := strconv.Atoi(line)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: input count %q is not a number",
					circuit.ErrMalformed, lineno, line)
			}
			inputs = n
			seenInputs = true
			continue
		}

		g, err := parseGate(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
		gates = append(gates, g)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read circuit: %w", err)
	}
	if !seenInputs {
		return nil, fmt.Errorf("%w: empty circuit description", circuit.ErrMalformed)
	}

	return circuit.New(inputs, gates)
}

// parseGate parses a single "TAG [h1 [h2]]" gate line.
func parseGate(line string) (circuit.Gate, error) {
	fields := strings.Fields(line)

	kind, err := circuit.ParseKind(fields[0])
	if err != nil {
		return circuit.Gate{}, err
	}
	if got := len(fields) - 1; got != kind.Arity() {
		return circuit.Gate{}, fmt.Errorf("%w: gate %q: kind %s takes %d operands, got %d",
			circuit.ErrMalformed, line, kind, kind.Arity(), got)
	}

	ops := make([]int, 0, 2)
	for _, field := range fields[1:] {
		h, err := strconv.Atoi(field)
		if err != nil {
			return circuit.Gate{}, fmt.Errorf("%w: gate %q: operand %q is not a number",
				circuit.ErrMalformed, line, field)
		}
		ops = append(ops, h)
	}

	switch kind.Arity() {
	case 0:
		return circuit.Const(kind), nil
	case 1:
		return circuit.Unary(kind, ops[0]), nil
	default:
		return circuit.Binary(kind, ops[0], ops[1]), nil
	}
}
