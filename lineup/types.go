package lineup

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lineup/roster"
)

var (
	// ErrInvalidLineupLength is returned for a negative lineup length.
	ErrInvalidLineupLength = errors.New("lineup: lineup length must be non-negative")

	// ErrInvalidRoster wraps roster validation failures (NaN rating, bad hand).
	ErrInvalidRoster = errors.New("lineup: invalid roster")

	// ErrInvalidOptions is returned for inconsistent Options (negative Eps, unknown Bound).
	ErrInvalidOptions = errors.New("lineup: invalid options")

	// ErrLeafLimit is returned when Options.LeafLimit stops the search early.
	// The accompanying Result holds the best lineup seen so far.
	ErrLeafLimit = errors.New("lineup: leaf limit reached")

	// ErrCountOverflow is returned by CountLeaves when the count exceeds uint64.
	ErrCountOverflow = errors.New("lineup: leaf count overflows uint64")

	// ErrNoLineup is for callers that treat a missing (!Found) or short
	// lineup as an error; the CLI wraps it into its report. Search and
	// Greedy never return it themselves.
	ErrNoLineup = errors.New("lineup: roster cannot fill the lineup")

	// ErrUnsupportedAlgorithm is returned by Solve for an unknown Algorithm.
	ErrUnsupportedAlgorithm = errors.New("lineup: unsupported algorithm")
)

// DefaultEps is the pruning margin used by RemainingBound: a subtree is cut
// only when bound+Eps <= incumbent.
const DefaultEps = 1e-9

// Bound selects the pruning policy of Search.
//
//   - NoBound: plain exhaustive backtracking (baseline).
//   - RemainingBound: cut subtrees whose optimistic completion
//     (top remaining ratings on the remaining weights, alternation ignored)
//     cannot strictly beat the incumbent.
type Bound int

const (
	// NoBound disables pruning.
	NoBound Bound = iota

	// RemainingBound enables the admissible remaining-score bound.
	RemainingBound
)

// String returns "none" or "remaining".
func (b Bound) String() string {
	switch b {
	case NoBound:
		return "none"
	case RemainingBound:
		return "remaining"
	default:
		return fmt.Sprintf("Bound(%d)", int(b))
	}
}

// ParseBound maps "none"/"remaining" (case-insensitive) to a Bound.
func ParseBound(s string) (Bound, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return NoBound, nil
	case "remaining":
		return RemainingBound, nil
	default:
		return 0, fmt.Errorf("%w: unknown bound %q", ErrInvalidOptions, s)
	}
}

// LeafFunc is invoked for every complete lineup Search examines, after the
// incumbent has been updated. The lineup slice is reused between calls and
// must not be retained. Returning an error aborts the search.
type LeafFunc func(lineup []roster.Batter, score float64) error

// Option configures Search.
type Option func(*Options)

// Options holds the tunables of Search.
type Options struct {
	// Bound selects the pruning policy. Default NoBound.
	Bound Bound

	// Eps is the pruning margin for RemainingBound; must be ≥ 0.
	Eps float64

	// LeafLimit, if > 0, stops the search once that many leaves were
	// counted; Search then returns ErrLeafLimit with the best-so-far result.
	LeafLimit uint64

	// OnLeaf, if non-nil, is called at every counted leaf.
	OnLeaf LeafFunc
}

// DefaultOptions returns Options with no pruning, DefaultEps, no leaf limit
// and no hook.
func DefaultOptions() Options {
	return Options{
		Bound:     NoBound,
		Eps:       DefaultEps,
		LeafLimit: 0,
		OnLeaf:    nil,
	}
}

// WithBound selects the pruning policy.
func WithBound(b Bound) Option {
	return func(o *Options) {
		o.Bound = b
	}
}

// WithEps overrides the pruning margin.
func WithEps(eps float64) Option {
	return func(o *Options) {
		o.Eps = eps
	}
}

// WithLeafLimit stops the search after n counted leaves (0 = unlimited).
func WithLeafLimit(n uint64) Option {
	return func(o *Options) {
		o.LeafLimit = n
	}
}

// WithOnLeaf installs a per-leaf hook.
func WithOnLeaf(fn LeafFunc) Option {
	return func(o *Options) {
		o.OnLeaf = fn
	}
}

// validate checks internal consistency of Options.
func (o Options) validate() error {
	if o.Eps < 0 || math.IsNaN(o.Eps) {
		return fmt.Errorf("%w: eps must be non-negative", ErrInvalidOptions)
	}
	if o.Bound != NoBound && o.Bound != RemainingBound {
		return fmt.Errorf("%w: unknown bound %d", ErrInvalidOptions, int(o.Bound))
	}

	return nil
}

// Result is the outcome of a lineup solver.
type Result struct {
	// Lineup is the chosen batting order. Empty for k == 0, nil when no
	// lineup of the requested length exists.
	Lineup []roster.Batter

	// Score is the position-weighted score of Lineup, or -Inf when no
	// lineup exists.
	Score float64

	// Leaves counts complete lineups examined (Search only).
	Leaves uint64

	// Pruned counts subtrees cut by the bound (Search with RemainingBound).
	Pruned uint64
}

// noLineup is the "no candidate" sentinel result.
func noLineup() Result {
	return Result{Lineup: nil, Score: math.Inf(-1)}
}

// Found reports whether the result carries a lineup of the requested length.
func (r Result) Found() bool { return !math.IsInf(r.Score, -1) }

// Average returns the unweighted mean rating of the lineup.
func (r Result) Average() float64 { return Average(r.Lineup) }
