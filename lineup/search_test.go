// Package lineup_test validates the exhaustive alternation search.
// Focus:
//  1. Strict sentinels on malformed inputs (negative k, NaN rating, bad options).
//  2. Degenerate lengths (k == 0, k > len(roster)).
//  3. Leaf counts against CountLeaves and an independent brute force.
//  4. Optimality against the brute force.
//  5. Roster conservation and tie policy.
//  6. Bound equivalence and caller-imposed budgets.
package lineup_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lineup/lineup"
	"github.com/katalvlaran/lineup/roster"
)

// ---------------------------
// 1) Strict sentinels.
// ---------------------------

func TestSearch_Errors_StrictSentinels(t *testing.T) {
	r := roster.Balanced10()

	_, err := lineup.Search(r, -1)
	require.ErrorIs(t, err, lineup.ErrInvalidLineupLength)

	bad := r.Clone()
	bad[3].Rating = math.NaN()
	_, err = lineup.Search(bad, 3)
	require.ErrorIs(t, err, lineup.ErrInvalidRoster)
	require.ErrorIs(t, err, roster.ErrInvalidRating)

	bad = r.Clone()
	bad[0].Hand = roster.Hand(9)
	_, err = lineup.Search(bad, 3)
	require.ErrorIs(t, err, roster.ErrInvalidHand)

	_, err = lineup.Search(r, 3, lineup.WithEps(-1))
	require.ErrorIs(t, err, lineup.ErrInvalidOptions)

	_, err = lineup.Search(r, 3, lineup.WithBound(lineup.Bound(42)))
	require.ErrorIs(t, err, lineup.ErrInvalidOptions)
}

// ---------------------------
// 2) Degenerate lengths.
// ---------------------------

func TestSearch_ZeroLength(t *testing.T) {
	res, err := lineup.Search(roster.Balanced10(), 0)
	require.NoError(t, err)
	require.True(t, res.Found())
	require.NotNil(t, res.Lineup)
	require.Empty(t, res.Lineup)
	require.Equal(t, uint64(1), res.Leaves)
	require.Equal(t, 0.0, res.Score)
}

func TestSearch_ZeroLength_EmptyRoster(t *testing.T) {
	res, err := lineup.Search(nil, 0)
	require.NoError(t, err)
	require.Equal(t, uint64(1), res.Leaves)
	require.Equal(t, 0.0, res.Score)
}

func TestSearch_InsufficientRoster(t *testing.T) {
	r := roster.Roster{
		{Rating: 0.300, Hand: roster.Left},
		{Rating: 0.280, Hand: roster.Right},
		{Rating: 0.260, Hand: roster.Left},
	}
	res, err := lineup.Search(r, 5)
	require.NoError(t, err)
	require.False(t, res.Found())
	require.Nil(t, res.Lineup)
	require.True(t, math.IsInf(res.Score, -1))
	require.Equal(t, uint64(0), res.Leaves)
}

// ---------------------------------------------
// 3) Leaf counts.
// ---------------------------------------------

func TestSearch_Leaves_MatchCountLeaves(t *testing.T) {
	cases := []struct {
		name   string
		nL, nR int
		k      int
	}{
		{"balanced-3x3-k4", 3, 3, 4},
		{"left-heavy-5x2-k5", 5, 2, 5},
		{"right-heavy-1x5-k5", 1, 5, 5},
		{"single-right-4x1-k5", 4, 1, 5},
		{"all-left-5x0-k3", 5, 0, 3},
		{"all-right-0x4-k4", 0, 4, 4},
		{"k1", 3, 2, 1},
		{"full-4x3-k7", 4, 3, 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := roster.Random(tc.nL, tc.nR, seedDet)
			res, err := lineup.Search(r, tc.k)
			require.NoError(t, err)

			want, err := lineup.CountLeaves(tc.nL, tc.nR, tc.k)
			require.NoError(t, err)
			require.Equal(t, want, res.Leaves)

			brute, _ := bruteForce(r, tc.k)
			require.Equal(t, brute, res.Leaves)
		})
	}
}

func TestSearch_SingleHandedness_AllPermutations(t *testing.T) {
	// nL!/(nL−k)! for nL=5, k=3 → 60.
	r := roster.Random(5, 0, seedDet)
	res, err := lineup.Search(r, 3)
	require.NoError(t, err)
	require.Equal(t, uint64(60), res.Leaves)
	require.Equal(t, "LLL", hands(res.Lineup))

	// The best all-left lineup is the top three ratings in descending order.
	got := ratings(res.Lineup)
	require.GreaterOrEqual(t, got[0], got[1])
	require.GreaterOrEqual(t, got[1], got[2])
}

func TestSearch_Balanced10_Leaves(t *testing.T) {
	// Left start: 5·5·4·4·3 = 1200; Right start likewise.
	res, err := lineup.Search(roster.Balanced10(), 5)
	require.NoError(t, err)
	require.Equal(t, uint64(2400), res.Leaves)
}

// ---------------------------------------------
// 4) Optimality.
// ---------------------------------------------

func TestSearch_Balanced10_Optimum(t *testing.T) {
	res, err := lineup.Search(roster.Balanced10(), 5)
	require.NoError(t, err)

	// Left start wins: L at weights 5,3,1 and R at weights 4,2.
	assert.Equal(t, "LRLRL", hands(res.Lineup))
	assert.Equal(t, []float64{0.335, 0.340, 0.325, 0.315, 0.310}, ratings(res.Lineup))
	mustFloatClose(t, res.Score, 4.95)
	mustFloatClose(t, res.Score, lineup.Score(res.Lineup))
	mustFloatClose(t, res.Average(), 0.325)
}

func TestSearch_Optimality_AgainstBruteForce(t *testing.T) {
	cases := []struct{ nL, nR, k int }{
		{3, 3, 5}, {4, 2, 4}, {2, 5, 6}, {1, 4, 4}, {3, 4, 7}, {6, 1, 5},
	}
	for _, tc := range cases {
		var seed int64
		for seed = 1; seed <= 3; seed++ {
			r := roster.Random(tc.nL, tc.nR, seed)
			res, err := lineup.Search(r, tc.k)
			require.NoError(t, err)

			_, best := bruteForce(r, tc.k)
			require.Equal(t, best, res.Score, "nL=%d nR=%d k=%d seed=%d", tc.nL, tc.nR, tc.k, seed)
		}
	}
}

func TestSearch_OneLefty_FallsBackToSameHand(t *testing.T) {
	res, err := lineup.Search(roster.OneLefty(), 5)
	require.NoError(t, err)
	require.Equal(t, uint64(240), res.Leaves)
	assert.Equal(t, "RLRRR", hands(res.Lineup))
	assert.Equal(t, []float64{0.340, 0.335, 0.315, 0.305, 0.295}, ratings(res.Lineup))
	mustFloatClose(t, res.Score, 4.89)
}

// ---------------------------------------------
// 5) Conservation and ties.
// ---------------------------------------------

func TestSearch_RosterConservation(t *testing.T) {
	r := roster.Random(4, 3, seedDet)
	names := make(map[string]bool, len(r))
	for _, b := range r {
		names[b.Name] = true
	}
	const k = 5

	var seen uint64
	hook := func(line []roster.Batter, score float64) error {
		seen++
		if len(line) != k {
			t.Fatalf("leaf length %d, want %d", len(line), k)
		}
		dup := make(map[string]bool, k)
		for _, b := range line {
			if !names[b.Name] {
				t.Fatalf("leaf holds unknown batter %v", b)
			}
			if dup[b.Name] {
				t.Fatalf("leaf repeats batter %v", b)
			}
			dup[b.Name] = true
		}
		mustFloatClose(t, score, lineup.Score(line))

		return nil
	}

	res, err := lineup.Search(r, k, lineup.WithOnLeaf(hook))
	require.NoError(t, err)
	require.Equal(t, res.Leaves, seen)
}

func TestSearch_DoesNotMutateRoster(t *testing.T) {
	r := roster.Random(4, 4, seedDet)
	before := r.Clone()
	_, err := lineup.Search(r, 6, lineup.WithBound(lineup.RemainingBound))
	require.NoError(t, err)
	require.Equal(t, before, r)
}

func TestSearch_DuplicatesAreDistinctMembers(t *testing.T) {
	// Two identical lefties must both be assignable.
	r := roster.Roster{
		{Name: "a", Rating: 0.300, Hand: roster.Left},
		{Name: "b", Rating: 0.300, Hand: roster.Left},
	}
	res, err := lineup.Search(r, 2)
	require.NoError(t, err)
	require.Equal(t, uint64(2), res.Leaves)
	require.Len(t, res.Lineup, 2)
	require.NotEqual(t, res.Lineup[0].Name, res.Lineup[1].Name)
}

func TestSearch_TiePolicy_FirstFoundWins(t *testing.T) {
	// Every lineup scores 0.3·2 + 0.3·1. Left starts are explored first and
	// pools in roster order, so [a, c] is found first and must be kept.
	r := roster.Roster{
		{Name: "a", Rating: 0.300, Hand: roster.Left},
		{Name: "b", Rating: 0.300, Hand: roster.Left},
		{Name: "c", Rating: 0.300, Hand: roster.Right},
	}

	var order []string
	hook := func(line []roster.Batter, _ float64) error {
		order = append(order, line[0].Name+line[1].Name)
		return nil
	}
	res, err := lineup.Search(r, 2, lineup.WithOnLeaf(hook))
	require.NoError(t, err)

	require.Equal(t, []string{"ac", "bc", "ca", "cb"}, order)
	require.Equal(t, "a", res.Lineup[0].Name)
	require.Equal(t, "c", res.Lineup[1].Name)
}

// ---------------------------------------------
// 6) Bound equivalence and budgets.
// ---------------------------------------------

func TestSearch_Bound_EquivalentResults(t *testing.T) {
	cases := []struct{ nL, nR, k int }{
		{4, 4, 6}, {5, 3, 5}, {6, 0, 4}, {3, 5, 7}, {2, 2, 4}, {5, 5, 5},
	}
	for _, tc := range cases {
		r := roster.Random(tc.nL, tc.nR, seedDet)

		plain, err := lineup.Search(r, tc.k, lineup.WithBound(lineup.NoBound))
		require.NoError(t, err)
		pruned, err := lineup.Search(r, tc.k, lineup.WithBound(lineup.RemainingBound))
		require.NoError(t, err)

		require.Equal(t, plain.Score, pruned.Score)
		require.Equal(t, plain.Lineup, pruned.Lineup)
		require.LessOrEqual(t, pruned.Leaves, plain.Leaves)
		require.Zero(t, plain.Pruned)
	}
}

func TestSearch_Bound_ActuallyPrunes(t *testing.T) {
	r := roster.Random(5, 5, seedDet)
	plain, err := lineup.Search(r, 6)
	require.NoError(t, err)
	pruned, err := lineup.Search(r, 6, lineup.WithBound(lineup.RemainingBound))
	require.NoError(t, err)

	require.Positive(t, pruned.Pruned)
	require.Less(t, pruned.Leaves, plain.Leaves)
}

func TestSearch_LeafLimit(t *testing.T) {
	r := roster.Balanced10()

	res, err := lineup.Search(r, 5, lineup.WithLeafLimit(100))
	require.ErrorIs(t, err, lineup.ErrLeafLimit)
	require.Equal(t, uint64(100), res.Leaves)
	require.True(t, res.Found(), "best-so-far is returned")
	require.Len(t, res.Lineup, 5)

	// A limit equal to the full count is not an early stop.
	res, err = lineup.Search(r, 5, lineup.WithLeafLimit(2400))
	require.NoError(t, err)
	require.Equal(t, uint64(2400), res.Leaves)
}

func TestSearch_OnLeafErrorAborts(t *testing.T) {
	errStop := errors.New("stop")
	res, err := lineup.Search(roster.Balanced10(), 5, lineup.WithOnLeaf(func([]roster.Batter, float64) error {
		return errStop
	}))
	require.ErrorIs(t, err, errStop)
	require.Equal(t, uint64(1), res.Leaves)
	require.True(t, res.Found())
}

func TestSearch_Deterministic(t *testing.T) {
	r := roster.Random(4, 4, seedDet)
	a, err := lineup.Search(r, 6)
	require.NoError(t, err)
	b, err := lineup.Search(r, 6)
	require.NoError(t, err)
	require.Equal(t, a, b)
}
