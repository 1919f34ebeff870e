// Package tseitin reduces Boolean circuit satisfiability problems to CNF
// formulas suitable for off-the-shelf SAT solvers.
//
// The module is organized as follows:
//   - pkg/circuit models Boolean circuits as gate lists and validates them
//   - pkg/cnf holds CNF formulas and reads/writes the DIMACS format
//   - pkg/reduce implements the Tseitin transformation together with the
//     circuit duplication and distinctness gadgets used to decide whether a
//     circuit computes a non-injective function
//   - pkg/sat runs the generated formulas through SAT solver backends
//   - cmd/tseitin is the command line front end
package tseitin

import "github.com/blang/semver/v4"

// Version of the release.
var Version = semver.MustParse("0.1.0")
