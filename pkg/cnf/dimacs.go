package cnf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInvalidDimacs reports input that does not follow the DIMACS CNF
// format.
var ErrInvalidDimacs = errors.New("invalid DIMACS input")

// Write serializes the formula in DIMACS CNF format: one `c` line per
// comment, the `p cnf <vars> <clauses>` problem line, then each clause
// on its own line terminated by 0. Output is byte-deterministic for a
// given formula.
func Write(w io.Writer, f *Formula) error {
	bw := bufio.NewWriter(w)
	for _, text := range f.Comments {
		fmt.Fprintf(bw, "c %s\n", text)
	}
	fmt.Fprintf(bw, "p cnf %d %d\n", f.NumVariables(), f.NumClauses())
	for _, c := range f.Clauses {
		for _, l := range c {
			fmt.Fprintf(bw, "%d ", l)
		}
		fmt.Fprint(bw, "0\n")
	}
	return bw.Flush()
}

// Read parses DIMACS CNF input. Comment lines are skipped, clauses may
// span lines, and every clause must be 0-terminated. Literals outside
// the declared variable range and a clause count that disagrees with
// the problem line are rejected; all format errors wrap
// ErrInvalidDimacs.
func Read(r io.Reader) (*Formula, error) {
	var (
		f          Formula
		cur        Clause
		nVars      int
		nClauses   int
		headerSeen bool
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "" || strings.HasPrefix(line, "c"):
			continue

		case strings.HasPrefix(line, "p"):
			if headerSeen {
				return nil, fmt.Errorf("%w: duplicate problem line %q", ErrInvalidDimacs, line)
			}
			var kind string
			if _, err := fmt.Sscanf(line, "p %s %d %d", &kind, &nVars, &nClauses); err != nil || kind != "cnf" {
				return nil, fmt.Errorf("%w: bad problem line %q", ErrInvalidDimacs, line)
			}
			headerSeen = true

		default:
			if !headerSeen {
				return nil, fmt.Errorf("%w: clause before problem line", ErrInvalidDimacs)
			}
			for _, field := range strings.Fields(line) {
				lit, err := strconv.Atoi(field)
				if err != nil {
					return nil, fmt.Errorf("%w: bad literal %q", ErrInvalidDimacs, field)
				}
				if lit == 0 {
					f.Clauses = append(f.Clauses, cur)
					cur = nil
					continue
				}
				v := lit
				if v < 0 {
					v = -v
				}
				if v > nVars {
					return nil, fmt.Errorf("%w: literal %d outside declared range 1..%d", ErrInvalidDimacs, lit, nVars)
				}
				cur = append(cur, lit)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !headerSeen {
		return nil, fmt.Errorf("%w: missing problem line", ErrInvalidDimacs)
	}
	if len(cur) > 0 {
		return nil, fmt.Errorf("%w: unterminated clause", ErrInvalidDimacs)
	}
	if len(f.Clauses) != nClauses {
		return nil, fmt.Errorf("%w: problem line declares %d clauses, found %d", ErrInvalidDimacs, nClauses, len(f.Clauses))
	}
	return &f, nil
}
