package lineup

import (
	"math/bits"

	"github.com/katalvlaran/lineup/roster"
)

// CountLeaves returns the exact number of complete lineups Search visits
// without pruning for a roster with nL left- and nR right-handed batters.
//
// The branching policy depends only on the pool sizes and the previous hand,
// so every node at a given depth below a starting hand sees the same pools.
// Each starting hand therefore contributes the product of the pool sizes
// along one deterministic hand sequence (alternating while possible, then
// Left-first fallback).
//
// Special cases: k == 0 ⇒ 1 (the empty lineup); k > nL+nR ⇒ 0.
//
// Errors: ErrInvalidLineupLength (k < 0), ErrInvalidRoster (negative
// counts), ErrCountOverflow.
//
// Complexity: O(k).
func CountLeaves(nL, nR, k int) (uint64, error) {
	if k < 0 {
		return 0, ErrInvalidLineupLength
	}
	if nL < 0 || nR < 0 {
		return 0, ErrInvalidRoster
	}
	if k == 0 {
		return 1, nil
	}
	if k > nL+nR {
		return 0, nil
	}

	var total uint64
	for _, start := range []roster.Hand{roster.Left, roster.Right} {
		paths, err := countFrom(nL, nR, k, start)
		if err != nil {
			return 0, err
		}
		sum, carry := bits.Add64(total, paths, 0)
		if carry != 0 {
			return 0, ErrCountOverflow
		}
		total = sum
	}

	return total, nil
}

// countFrom counts the leaves below the root branches of one starting hand.
func countFrom(l, r, k int, start roster.Hand) (uint64, error) {
	var (
		paths uint64 = 1
		last  roster.Hand
		h     roster.Hand
		pos   int
		size  int
	)
	for pos = 0; pos < k; pos++ {
		if pos == 0 {
			h = start
		} else {
			switch {
			case last == roster.Left && r > 0:
				h = roster.Right
			case last == roster.Right && l > 0:
				h = roster.Left
			case l > 0:
				h = roster.Left
			case r > 0:
				h = roster.Right
			default:
				return 0, nil // both pools exhausted: every branch dies
			}
		}

		if h == roster.Left {
			size = l
			l--
		} else {
			size = r
			r--
		}
		if size <= 0 {
			return 0, nil // starting pool empty
		}

		hi, lo := bits.Mul64(paths, uint64(size))
		if hi != 0 {
			return 0, ErrCountOverflow
		}
		paths = lo
		last = h
	}

	return paths, nil
}
