// Package lineup orders a roster of batters into a fixed-length batting
// order under a handedness-alternation preference.
//
// 🚀 What does it solve?
//
//	Given a roster of (rating, hand) batters and a lineup length k, pick and
//	order k batters so that consecutive batters alternate hands whenever the
//	opposite-hand pool still has players, maximizing the position-weighted
//	score
//
//	  score = Σ rating(lineup[i]) · (k − i),   i = 0..k−1
//
//	Earlier slots weigh more: the leadoff hitter counts k times, the last
//	hitter once.
//
// ✨ Solvers:
//
//   - Search: exhaustive backtracking over every alternation-respecting
//     ordering (both starting hands). Returns the optimum, the number of
//     complete lineups examined, and honors an optional sound upper-bound
//     prune (WithBound(RemainingBound)).
//   - Greedy: single deterministic pass, best batter first, then the best
//     remaining batter of the opposite hand. A reference baseline only.
//   - Solve: dispatcher over both (Algorithm).
//
// Alternation policy (every slot after the first, strict priority):
//
//  1. previous Left  and Right pool non-empty → branch over every Right;
//  2. previous Right and Left pool non-empty  → branch over every Left;
//  3. otherwise every remaining Left, else every remaining Right.
//
// Determinism: Left-starting branches are explored before Right-starting
// ones and pool members are visited in roster order. A leaf replaces the
// incumbent only when strictly better, so among equal scores the first one
// found wins.
//
// Edge cases:
//   - k < 0                 → ErrInvalidLineupLength, nothing explored.
//   - len(roster) < k       → Result{Score: -Inf, Leaves: 0}; Found()==false.
//   - k == 0                → empty lineup, Score 0, Leaves 1.
//
// Complexity:
//
//   - Search: O(L·n) where L = CountLeaves(nL, nR, k) (factorial-scale).
//   - Greedy: O(n log n) for the initial sort, O(k) pops.
//
// See example_test.go for runnable walkthroughs.
package lineup
