package lineup

import "github.com/katalvlaran/lineup/roster"

// Score returns the position-weighted score of a complete lineup:
//
//	Σ rating(lineup[i]) · (len(lineup) − i)
//
// The first slot weighs len(lineup), the last weighs 1. An empty lineup
// scores 0. Score is pure and independent of how the lineup was generated.
func Score(lineup []roster.Batter) float64 {
	var (
		k   = len(lineup)
		sum float64
		i   int
	)
	for i = 0; i < k; i++ {
		sum += lineup[i].Rating * float64(k-i)
	}

	return sum
}

// Average returns the unweighted mean rating of lineup, or 0 when empty.
// It is a reporting statistic only and plays no part in Score.
func Average(lineup []roster.Batter) float64 {
	if len(lineup) == 0 {
		return 0
	}
	var sum float64
	for _, b := range lineup {
		sum += b.Rating
	}

	return sum / float64(len(lineup))
}
