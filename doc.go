// Package lineup is your playground for building batting orders that keep
// left- and right-handed hitters alternating, and for measuring what that
// constraint costs.
//
// 🚀 What is inside?
//
//	A small, deterministic, dependency-light toolkit:
//		• Rosters: batters with a rating and a hand, YAML load/save, seeded random rosters
//		• Exhaustive search: every alternation-respecting order, best score wins
//		• Sound pruning: optional remaining-score bound, same answer, fewer leaves
//		• Greedy baseline: one pass, best available batter of the required hand
//		• Leaf counting: closed-form count of what an unpruned search visits
//
// ✨ Why choose it?
//
//   - Deterministic – roster order fixes enumeration order and tie-breaking
//   - Pure functions – the input roster is never mutated
//   - Budgets & hooks – LeafLimit and OnLeaf for early stop or tracing
//
// Packages:
//
//	roster/       Batter, Hand, Roster; validation, YAML codec, samples, RNG
//	lineup/       Search, Greedy, Solve, Score, Average, CountLeaves
//	cmd/lineup/   CLI: search, greedy, compare, count, version
//	internal/     config (YAML + LINEUP_* env), logger (slog), report (lipgloss)
//
// Scoring in one line: slot i of a k-man lineup weighs k−i, so the leadoff
// batter counts k times and the last batter once.
//
//	go install github.com/katalvlaran/lineup/cmd/lineup@latest
//	lineup compare --len 9
package lineup
