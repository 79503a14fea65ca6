// Package roster defines batters, handedness and rosters: the input side of
// lineup construction.
//
// A Batter is an immutable (Rating, Hand) value with an optional display
// name. A Roster is an ordered slice of batters; order is significant only
// because it fixes the enumeration order used by the lineup solvers.
//
// ⚙️ Usage:
//
//	r, err := roster.LoadFile("team.yaml")
//	if err != nil {
//	  // handle ErrInvalidRating, ErrInvalidHand, ErrEmptyRoster
//	}
//	left, right := r.Partition() // roster indices by hand, roster order
//
// Roster files are YAML documents:
//
//	players:
//	  - {name: Mike Trout, avg: 0.340, hand: R}
//	  - {name: Juan Soto,  avg: 0.325, hand: L}
//
// Synthetic rosters for tests and benchmarks come from Random, which is
// deterministic for a given seed.
package roster
