// Package lineup - unified dispatcher.
//
// Solve routes a roster to the requested solver so that callers (CLI,
// comparisons, benchmarks) can switch strategies with a single value.
package lineup

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lineup/roster"
)

// Algorithm selects a solver for Solve.
type Algorithm int

const (
	// Exhaustive runs Search.
	Exhaustive Algorithm = iota

	// GreedyPass runs Greedy.
	GreedyPass
)

// String returns "exhaustive" or "greedy".
func (a Algorithm) String() string {
	switch a {
	case Exhaustive:
		return "exhaustive"
	case GreedyPass:
		return "greedy"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps "exhaustive"/"greedy" (case-insensitive) to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exhaustive", "search":
		return Exhaustive, nil
	case "greedy":
		return GreedyPass, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
	}
}

// Solve runs algo on r for a lineup of length k. Options apply to
// Exhaustive only; Greedy ignores them.
func Solve(r roster.Roster, k int, algo Algorithm, opts ...Option) (Result, error) {
	switch algo {
	case Exhaustive:
		return Search(r, k, opts...)
	case GreedyPass:
		return Greedy(r, k)
	default:
		return noLineup(), ErrUnsupportedAlgorithm
	}
}
