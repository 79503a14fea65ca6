// Package lineup_test provides runnable, deterministic examples for
// lineup.Search, lineup.Greedy and lineup.CountLeaves.
package lineup_test

import (
	"fmt"

	"github.com/katalvlaran/lineup/lineup"
	"github.com/katalvlaran/lineup/roster"
)

// ExampleSearch finds the best five-man batting order from five lefties and
// five righties. Starting with a lefty puts three left-handed bats on the
// heavy weights 5, 3 and 1.
func ExampleSearch() {
	res, err := lineup.Search(roster.Balanced10(), 5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i, b := range res.Lineup {
		fmt.Printf("%d. %s\n", i+1, b)
	}
	fmt.Printf("score=%.3f avg=%.3f leaves=%d\n", res.Score, res.Average(), res.Leaves)

	// Output:
	// 1. (0.335 L)
	// 2. (0.340 R)
	// 3. (0.325 L)
	// 4. (0.315 R)
	// 5. (0.310 L)
	// score=4.950 avg=0.325 leaves=2400
}

// ExampleGreedy shows the single-pass baseline on the same roster: it leads
// off with the best bat overall and ends up 0.01 behind the optimum.
func ExampleGreedy() {
	res, err := lineup.Greedy(roster.Balanced10(), 5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i, b := range res.Lineup {
		fmt.Printf("%d. %s\n", i+1, b)
	}
	fmt.Printf("score=%.3f avg=%.3f\n", res.Score, res.Average())

	// Output:
	// 1. (0.340 R)
	// 2. (0.335 L)
	// 3. (0.315 R)
	// 4. (0.325 L)
	// 5. (0.305 R)
	// score=4.940 avg=0.324
}

// ExampleCountLeaves predicts the work of a full search over a 20-man roster
// before running it.
func ExampleCountLeaves() {
	n, err := lineup.CountLeaves(10, 10, 9)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(n)

	// Output:
	// 304819200
}

// ExampleWithBound prunes the same search with the remaining-score bound:
// identical answer, fewer leaves.
func ExampleWithBound() {
	plain, _ := lineup.Search(roster.Balanced10(), 5)
	pruned, _ := lineup.Search(roster.Balanced10(), 5, lineup.WithBound(lineup.RemainingBound))

	fmt.Println(plain.Score == pruned.Score)
	fmt.Println(pruned.Leaves < plain.Leaves)

	// Output:
	// true
	// true
}
