package lineup

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lineup/roster"
)

// Greedy builds one lineup in a single deterministic pass, without
// backtracking:
//
//  1. Stable-sort the roster ascending by rating and split it by hand.
//  2. Lead off with the highest-rated batter overall.
//  3. Repeatedly take the highest remaining batter of the opposite hand;
//     when that pool is empty fall back to Left, then Right.
//  4. Stop at k batters or when both pools are exhausted.
//
// Among equal ratings the later roster entry is taken first (pools are
// popped from the end). Result.Leaves is always 0.
//
// Contracts: k < 0 ⇒ ErrInvalidLineupLength; invalid roster ⇒
// ErrInvalidRoster; k == 0 ⇒ empty lineup. Unlike Search, a roster shorter
// than k is not a failure: the partial lineup of all len(r) batters is
// returned with its own Score.
//
// Complexity: O(n log n) sort + O(k) pops.
func Greedy(r roster.Roster, k int) (Result, error) {
	if k < 0 {
		return noLineup(), ErrInvalidLineupLength
	}
	if err := r.Validate(); err != nil {
		return noLineup(), fmt.Errorf("%w: %w", ErrInvalidRoster, err)
	}
	n := k
	if len(r) < n {
		n = len(r)
	}
	out := make([]roster.Batter, 0, n)
	if n == 0 {
		return Result{Lineup: out, Score: 0}, nil
	}

	// 1. Ascending order, then per-hand stacks (highest on top).
	order := make([]int, len(r))
	var i int
	for i = range r {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return r[order[a]].Rating < r[order[b]].Rating })

	var stacks [2][]int // indexed by roster.Hand
	for _, i = range order {
		stacks[r[i].Hand] = append(stacks[r[i].Hand], i)
	}
	pop := func(h roster.Hand) roster.Batter {
		s := stacks[h]
		b := r[s[len(s)-1]]
		stacks[h] = s[:len(s)-1]

		return b
	}

	// 2. Highest-rated batter overall leads off; it tops its own stack.
	first := r[order[len(order)-1]].Hand
	out = append(out, pop(first))

	// 3. Alternate while possible; n ≤ len(r) keeps a pool non-empty.
	for len(out) < n {
		last := out[len(out)-1].Hand
		switch {
		case last == roster.Left && len(stacks[roster.Right]) > 0:
			out = append(out, pop(roster.Right))
		case last == roster.Right && len(stacks[roster.Left]) > 0:
			out = append(out, pop(roster.Left))
		case len(stacks[roster.Left]) > 0:
			out = append(out, pop(roster.Left))
		case len(stacks[roster.Right]) > 0:
			out = append(out, pop(roster.Right))
		default:
			return Result{Lineup: out, Score: Score(out)}, nil
		}
	}

	return Result{Lineup: out, Score: Score(out)}, nil
}
