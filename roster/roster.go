package roster

import (
	"fmt"
	"math"
)

// Validate checks every batter for a finite rating and a known hand.
// The first offending batter is reported with its roster index.
//
// Complexity: O(n).
func (r Roster) Validate() error {
	var (
		i int
		b Batter
	)
	for i, b = range r {
		if math.IsNaN(b.Rating) || math.IsInf(b.Rating, 0) {
			return fmt.Errorf("batter %d: %w", i, ErrInvalidRating)
		}
		if !b.Hand.Valid() {
			return fmt.Errorf("batter %d: %w", i, ErrInvalidHand)
		}
	}

	return nil
}

// Partition splits the roster into Left and Right pools of roster indices.
// Both pools preserve roster order, which fixes solver enumeration order.
// Batters with an invalid hand are placed in neither pool.
//
// Complexity: O(n) time, O(n) space.
func (r Roster) Partition() (left, right []int) {
	nL, nR := r.Counts()
	left = make([]int, 0, nL)
	right = make([]int, 0, nR)

	var i int
	for i = range r {
		switch r[i].Hand {
		case Left:
			left = append(left, i)
		case Right:
			right = append(right, i)
		}
	}

	return left, right
}

// Counts returns the number of Left and Right batters.
func (r Roster) Counts() (nL, nR int) {
	for _, b := range r {
		switch b.Hand {
		case Left:
			nL++
		case Right:
			nR++
		}
	}

	return nL, nR
}

// Clone returns an independent copy of the roster.
func (r Roster) Clone() Roster {
	if r == nil {
		return nil
	}
	out := make(Roster, len(r))
	copy(out, r)

	return out
}
