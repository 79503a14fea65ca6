package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lineup/internal/report"
	"github.com/katalvlaran/lineup/lineup"
	"github.com/katalvlaran/lineup/roster"
)

// searchFlags tune the exhaustive search.
type searchFlags struct {
	bound     string
	leafLimit uint64
}

func (f *searchFlags) bind(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.bound, "bound", "", "Pruning bound: none or remaining (config default: remaining; leaves equal expected only with none)")
	fl.Uint64Var(&f.leafLimit, "leaf-limit", 0, "Stop after this many complete lineups (0 = unlimited)")
}

func (a *app) applySearchFlags(cmd *cobra.Command, f *searchFlags) error {
	fl := cmd.Flags()
	if fl.Changed("bound") {
		a.cfg.Search.Bound = f.bound
	}
	if fl.Changed("leaf-limit") {
		a.cfg.Search.LeafLimit = f.leafLimit
	}

	return a.cfg.Validate()
}

// newSearchCmd creates the search command.
func newSearchCmd(a *app) *cobra.Command {
	var (
		rf rosterFlags
		sf searchFlags
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find the best lineup by exhaustive search",
		Long: `Enumerate every lineup the alternation policy admits and print the
best-scoring one, together with the number of complete lineups explored and
the closed-form expected count.

The default bound (remaining, see --bound and the config file) prunes
subtrees that cannot win, so "leaves" is then below "expected" while the
lineup is unchanged. Pass --bound none to walk every lineup; "leaves" then
equals "expected".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := rf.apply(cmd, a.cfg); err != nil {
				return err
			}
			if err := a.applySearchFlags(cmd, &sf); err != nil {
				return err
			}
			r, err := a.loadRoster()
			if err != nil {
				return err
			}
			s, err := a.run(lineup.Exhaustive, r)
			if err != nil {
				return err
			}

			return a.renderer(cmd).Summary(s)
		},
	}
	rf.bind(cmd)
	sf.bind(cmd)

	return cmd
}

// run solves r with algo under the current config and returns the report
// summary. A leaf-limit stop is reported in the summary, not as an error.
func (a *app) run(algo lineup.Algorithm, r roster.Roster) (report.Summary, error) {
	k := a.cfg.Search.LineupLen
	s := report.Summary{Title: title(algo), LineupLen: k}

	var opts []lineup.Option
	if algo == lineup.Exhaustive {
		bound, err := lineup.ParseBound(a.cfg.Search.Bound)
		if err != nil {
			return s, err
		}
		opts = append(opts, lineup.WithBound(bound), lineup.WithLeafLimit(a.cfg.Search.LeafLimit))

		nL, nR := r.Counts()
		expected, err := lineup.CountLeaves(nL, nR, k)
		if err != nil {
			a.log.Warn("expected leaf count unavailable", slog.Any("error", err))
		}
		s.Expected = expected
		s.ShowLeaves = true
	}

	log := a.log.With(slog.String("algorithm", algo.String()))
	log.Info("solve started", slog.Int("lineup_len", k), slog.String("bound", a.cfg.Search.Bound))

	start := time.Now()
	res, err := lineup.Solve(r, k, algo, opts...)
	s.Elapsed = time.Since(start)
	s.Result = res

	switch {
	case errors.Is(err, lineup.ErrLeafLimit):
		s.Stopped = err
		log.Warn("search stopped early", slog.Uint64("leaf_limit", a.cfg.Search.LeafLimit))
	case err != nil:
		return s, err
	}
	if !res.Found() || len(res.Lineup) < k {
		s.Shortfall = fmt.Errorf("%w: %d players for %d slots", lineup.ErrNoLineup, len(r), k)
		log.Warn("lineup incomplete",
			slog.Int("placed", len(res.Lineup)),
			slog.Any("error", s.Shortfall))
	}

	log.Info("solve finished",
		slog.Uint64("leaves", res.Leaves),
		slog.Uint64("pruned", res.Pruned),
		slog.Float64("score", res.Score),
		slog.Duration("elapsed", s.Elapsed))

	return s, nil
}

func title(algo lineup.Algorithm) string {
	if algo == lineup.GreedyPass {
		return "Greedy"
	}

	return "Exhaustive search"
}
