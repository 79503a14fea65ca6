// Package lineup_test provides small helpers shared across *_test.go files:
// an independent brute-force reference for the alternation policy and a few
// assertion shortcuts.
package lineup_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lineup/lineup"
	"github.com/katalvlaran/lineup/roster"
)

const (
	// epsTiny is the tolerance for comparing scores computed in different orders.
	epsTiny = 1e-12

	// seedDet is the deterministic seed for synthetic rosters.
	seedDet = int64(7)
)

// policyAdmits reports whether the ordered roster indices seq respect the
// alternation policy, replaying pool sizes from scratch.
func policyAdmits(r roster.Roster, seq []int) bool {
	nL, nR := r.Counts()
	var last roster.Hand
	for pos, idx := range seq {
		h := r[idx].Hand
		if pos > 0 {
			var want roster.Hand
			switch {
			case last == roster.Left && nR > 0:
				want = roster.Right
			case last == roster.Right && nL > 0:
				want = roster.Left
			case nL > 0:
				want = roster.Left
			default:
				want = roster.Right
			}
			if h != want {
				return false
			}
		}
		if h == roster.Left {
			nL--
		} else {
			nR--
		}
		last = h
	}

	return true
}

// bruteForce enumerates every k-permutation of r, keeps the admissible ones
// and returns their count and the maximum score. It shares nothing with the
// engine except Score.
func bruteForce(r roster.Roster, k int) (count uint64, best float64) {
	best = math.Inf(-1)
	used := make([]bool, len(r))
	seq := make([]int, 0, k)

	var rec func()
	rec = func() {
		if len(seq) == k {
			if !policyAdmits(r, seq) {
				return
			}
			count++
			line := make([]roster.Batter, k)
			for i, idx := range seq {
				line[i] = r[idx]
			}
			if s := lineup.Score(line); s > best {
				best = s
			}

			return
		}
		for i := range r {
			if used[i] {
				continue
			}
			used[i] = true
			seq = append(seq, i)
			rec()
			seq = seq[:len(seq)-1]
			used[i] = false
		}
	}
	rec()

	return count, best
}

// ratings extracts the rating column of a lineup.
func ratings(line []roster.Batter) []float64 {
	out := make([]float64, len(line))
	for i, b := range line {
		out[i] = b.Rating
	}

	return out
}

// hands renders the hand sequence of a lineup, e.g. "LRLRL".
func hands(line []roster.Batter) string {
	buf := make([]byte, len(line))
	for i, b := range line {
		buf[i] = b.Hand.String()[0]
	}

	return string(buf)
}

// mustFloatClose fails unless |got−want| ≤ epsTiny.
func mustFloatClose(t *testing.T, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsTiny {
		t.Fatalf("float mismatch: got=%.15f want=%.15f", got, want)
	}
}
