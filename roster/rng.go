// Package roster - deterministic synthetic rosters.
//
// Random produces reproducible rosters for tests, benchmarks and the CLI
// --random flag. The same (nL, nR, seed) triple yields an identical roster
// on every platform.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe; every Random call owns its source.
package roster

import (
	"fmt"
	"math"
	"math/rand"
)

// defaultSeed is used when callers pass seed==0.
const defaultSeed int64 = 1

// Synthetic rating range, roughly a realistic batting-average spread.
const (
	minRating = 0.200
	maxRating = 0.350
)

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// round3 rounds x to three decimals, the precision batting averages use.
func round3(x float64) float64 { return math.Round(x*1000) / 1000 }

// Random builds a roster with nL left-handed and nR right-handed batters.
// Ratings are uniform in [0.200, 0.350] rounded to three decimals; the roster
// order is shuffled so that hands are interleaved. Negative counts are
// treated as zero.
//
// Complexity: O(nL+nR).
func Random(nL, nR int, seed int64) Roster {
	if nL < 0 {
		nL = 0
	}
	if nR < 0 {
		nR = 0
	}
	rng := rngFromSeed(seed)
	out := make(Roster, 0, nL+nR)

	var i int
	for i = 0; i < nL; i++ {
		out = append(out, Batter{
			Name:   fmt.Sprintf("L%02d", i+1),
			Rating: round3(minRating + rng.Float64()*(maxRating-minRating)),
			Hand:   Left,
		})
	}
	for i = 0; i < nR; i++ {
		out = append(out, Batter{
			Name:   fmt.Sprintf("R%02d", i+1),
			Rating: round3(minRating + rng.Float64()*(maxRating-minRating)),
			Hand:   Right,
		})
	}
	rng.Shuffle(len(out), func(a, b int) { out[a], out[b] = out[b], out[a] })

	return out
}
