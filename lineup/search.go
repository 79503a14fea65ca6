// Package lineup — exhaustive alternation search.
//
// Search enumerates every lineup the alternation policy admits via a
// depth-first backtracking walk and keeps the best-scoring one.
//
// Rationale (succinct):
//  1. Pools are roster indices split by hand (roster order). Each pool
//     carries a "taken" flag per member; a branch sets the flag, recurses,
//     and clears it on return (push/pop discipline), so sibling branches
//     never observe each other's consumption and the input roster is never
//     touched.
//  2. The incumbent (best lineup + score) lives in the engine, owned by the
//     single Search call. Leaves replace it only on a strictly greater score.
//  3. Optional RemainingBound: partial score + the top-m remaining ratings
//     on the m remaining weights (rearrangement inequality, alternation
//     ignored) is an upper bound on any completion. A node is cut only when
//     bound+Eps <= incumbent, so a branch that could strictly win is never
//     pruned and the returned lineup is identical to the unpruned one.
//  4. Budgets (LeafLimit, OnLeaf) are checked at the leaf step only.
//
// Invariant (every node): depth + remaining(Left) + remaining(Right) == n.
//
// Complexity:
//   - Time: O(L·n) where L = CountLeaves(nL, nR, k); worst case factorial.
//   - Memory: O(n) for flags, path and scratch; recursion depth k.
package lineup

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lineup/roster"
)

// pool is one hand's members in enumeration order plus consumption flags.
type pool struct {
	members []int  // roster indices
	taken   []bool // taken[i] ⇔ members[i] is on the current path
	left    int    // members not yet taken
}

func newPool(members []int) pool {
	return pool{members: members, taken: make([]bool, len(members)), left: len(members)}
}

// searchEngine holds all search data and policies for one Search call.
type searchEngine struct {
	// Configuration / policy
	batters  roster.Roster
	k        int
	useBound bool
	eps      float64

	// Budgets
	leafLimit uint64
	onLeaf    LeafFunc

	// Pools by hand
	pools [2]pool // indexed by roster.Hand

	// Bound precomputes
	byRating []int  // roster indices sorted by rating, descending
	onPath   []bool // onPath[idx] ⇔ roster index idx is on the current path

	// Current search state
	path    []int           // path[0:depth] roster indices
	scratch []roster.Batter // reusable leaf lineup

	// Incumbent
	best      []int
	bestScore float64

	// Diagnostics
	leaves uint64
	pruned uint64

	// Abort reason (leaf limit or hook error); nil while running.
	stop error
}

// newSearchEngine prepares pools, flags and precomputes for r and k.
func newSearchEngine(r roster.Roster, k int, opts Options) *searchEngine {
	left, right := r.Partition()
	e := &searchEngine{
		batters:   r,
		k:         k,
		useBound:  opts.Bound == RemainingBound,
		eps:       opts.Eps,
		leafLimit: opts.LeafLimit,
		onLeaf:    opts.OnLeaf,
		path:      make([]int, k),
		scratch:   make([]roster.Batter, k),
		best:      make([]int, k),
		bestScore: math.Inf(-1),
	}
	e.pools[roster.Left] = newPool(left)
	e.pools[roster.Right] = newPool(right)

	if e.useBound {
		e.onPath = make([]bool, len(r))
		e.byRating = make([]int, len(r))
		var i int
		for i = range r {
			e.byRating[i] = i
		}
		sort.SliceStable(e.byRating, func(a, b int) bool {
			return r[e.byRating[a]].Rating > r[e.byRating[b]].Rating
		})
	}

	return e
}

// upperBound returns an optimistic score for the m = k−depth open slots:
// the m largest remaining ratings paired with weights m, m−1, …, 1.
func (e *searchEngine) upperBound(depth int) float64 {
	var (
		m   = e.k - depth
		sum float64
		j   int
	)
	for _, idx := range e.byRating {
		if j == m {
			break
		}
		if e.onPath[idx] {
			continue
		}
		sum += e.batters[idx].Rating * float64(m-j)
		j++
	}

	return sum
}

// nextHand applies the alternation policy. ok is false when both pools are
// exhausted and the branch dies.
func (e *searchEngine) nextHand(last roster.Hand) (h roster.Hand, ok bool) {
	var (
		nL = e.pools[roster.Left].left
		nR = e.pools[roster.Right].left
	)
	switch {
	case last == roster.Left && nR > 0:
		return roster.Right, true
	case last == roster.Right && nL > 0:
		return roster.Left, true
	case nL > 0:
		return roster.Left, true
	case nR > 0:
		return roster.Right, true
	default:
		return 0, false
	}
}

// leaf processes a complete lineup: budget check, count, score, incumbent
// update, hook.
func (e *searchEngine) leaf() {
	if e.leafLimit > 0 && e.leaves >= e.leafLimit {
		e.stop = ErrLeafLimit

		return
	}
	e.leaves++

	var i int
	for i = 0; i < e.k; i++ {
		e.scratch[i] = e.batters[e.path[i]]
	}
	s := Score(e.scratch)
	if s > e.bestScore {
		copy(e.best, e.path)
		e.bestScore = s
	}

	if e.onLeaf != nil {
		if err := e.onLeaf(e.scratch, s); err != nil {
			e.stop = fmt.Errorf("lineup: leaf hook: %w", err)
		}
	}
}

// dfs explores every admissible extension of path[0:depth].
// partial is the weighted score of path[0:depth]; last is the hand of
// path[depth-1] (ignored at the root).
func (e *searchEngine) dfs(depth int, last roster.Hand, partial float64) {
	if depth == e.k {
		e.leaf()

		return
	}

	// Prune by upper bound; the root is never cut (no incumbent yet).
	if e.useBound && depth > 0 {
		if ub := partial + e.upperBound(depth); ub+e.eps <= e.bestScore {
			e.pruned++

			return
		}
	}

	if depth == 0 {
		e.branch(roster.Left, depth, partial)
		e.branch(roster.Right, depth, partial)

		return
	}

	h, ok := e.nextHand(last)
	if !ok {
		return // both pools exhausted before k: dead branch, not a leaf
	}
	e.branch(h, depth, partial)
}

// branch tries every untaken member of pool h at slot depth.
func (e *searchEngine) branch(h roster.Hand, depth int, partial float64) {
	var (
		p   = &e.pools[h]
		w   = float64(e.k - depth)
		i   int
		idx int
	)
	for i, idx = range p.members {
		if e.stop != nil {
			return
		}
		if p.taken[i] {
			continue
		}

		// Acquire.
		p.taken[i] = true
		p.left--
		if e.onPath != nil {
			e.onPath[idx] = true
		}
		e.path[depth] = idx

		e.dfs(depth+1, h, partial+e.batters[idx].Rating*w)

		// Release.
		if e.onPath != nil {
			e.onPath[idx] = false
		}
		p.left++
		p.taken[i] = false
	}
}

// result materializes the incumbent.
func (e *searchEngine) result() Result {
	if math.IsInf(e.bestScore, -1) {
		res := noLineup()
		res.Leaves = e.leaves
		res.Pruned = e.pruned

		return res
	}
	out := make([]roster.Batter, e.k)
	var i int
	for i = 0; i < e.k; i++ {
		out[i] = e.batters[e.best[i]]
	}

	return Result{Lineup: out, Score: e.bestScore, Leaves: e.leaves, Pruned: e.pruned}
}

// Search returns the best lineup of length k over every ordering the
// alternation policy admits, together with the number of complete lineups
// examined.
//
// Contracts:
//   - k ≥ 0, else ErrInvalidLineupLength (nothing explored).
//   - r must pass roster.Validate, else ErrInvalidRoster (wrapping the cause).
//   - len(r) < k ⇒ Result{Score: -Inf, Leaves: 0}, nil error.
//   - r is never mutated.
//
// Errors during the walk:
//   - ErrLeafLimit when Options.LeafLimit stops the search; the Result holds
//     the best lineup seen so far.
//   - a wrapped OnLeaf error; the Result holds the best lineup seen so far.
func Search(r roster.Roster, k int, opts ...Option) (Result, error) {
	// 1. Validate inputs.
	if k < 0 {
		return noLineup(), ErrInvalidLineupLength
	}
	if err := r.Validate(); err != nil {
		return noLineup(), fmt.Errorf("%w: %w", ErrInvalidRoster, err)
	}

	// 2. Apply options.
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}
	if err := o.validate(); err != nil {
		return noLineup(), err
	}

	// 3. Short-circuit an insufficient roster: zero leaves, no candidate.
	if len(r) < k {
		return noLineup(), nil
	}

	// 4. Walk.
	e := newSearchEngine(r, k, o)
	e.dfs(0, roster.Left, 0)

	return e.result(), e.stop
}
