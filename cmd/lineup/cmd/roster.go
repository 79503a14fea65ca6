package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lineup/internal/config"
	"github.com/katalvlaran/lineup/roster"
)

// rosterFlags are the roster and lineup-length flags shared by search,
// greedy and compare.
type rosterFlags struct {
	lineupLen int
	path      string
	random    string
	seed      int64
}

func (f *rosterFlags) bind(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.IntVar(&f.lineupLen, "len", 9, "Lineup length")
	fl.StringVar(&f.path, "roster", "", "YAML roster file (default: built-in 20-player sample)")
	fl.StringVar(&f.random, "random", "", "Random roster as LEFT,RIGHT counts, e.g. 6,6")
	fl.Int64Var(&f.seed, "seed", 0, "Seed for --random (0 selects the default seed)")
}

// apply copies explicitly set flags over cfg and revalidates it.
func (f *rosterFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	fl := cmd.Flags()
	if fl.Changed("len") {
		cfg.Search.LineupLen = f.lineupLen
	}
	if fl.Changed("roster") {
		cfg.Roster.Path = f.path
		cfg.Roster.Random = config.RandomConfig{}
	}
	if fl.Changed("random") {
		left, right, err := parsePair(f.random)
		if err != nil {
			return err
		}
		if !fl.Changed("roster") {
			cfg.Roster.Path = ""
		}
		cfg.Roster.Random.Left = left
		cfg.Roster.Random.Right = right
	}
	if fl.Changed("seed") {
		cfg.Roster.Random.Seed = f.seed
	}

	return cfg.Validate()
}

// parsePair parses "L,R" into two non-negative counts.
func parsePair(s string) (left, right int, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid --random %q: want LEFT,RIGHT", s)
	}
	if left, err = strconv.Atoi(strings.TrimSpace(parts[0])); err != nil || left < 0 {
		return 0, 0, fmt.Errorf("invalid --random %q: left count must be a non-negative integer", s)
	}
	if right, err = strconv.Atoi(strings.TrimSpace(parts[1])); err != nil || right < 0 {
		return 0, 0, fmt.Errorf("invalid --random %q: right count must be a non-negative integer", s)
	}

	return left, right, nil
}

// loadRoster resolves the roster source: random, file, or the built-in sample.
func (a *app) loadRoster() (roster.Roster, error) {
	var (
		r      roster.Roster
		source string
		err    error
	)
	switch rc := a.cfg.Roster; {
	case rc.Random.Enabled():
		r = roster.Random(rc.Random.Left, rc.Random.Right, rc.Random.Seed)
		source = "random"
	case rc.Path != "":
		if r, err = roster.LoadFile(rc.Path); err != nil {
			return nil, err
		}
		source = rc.Path
	default:
		r = roster.MLB20()
		source = "sample"
	}

	nL, nR := r.Counts()
	a.log.Info("roster loaded",
		slog.String("source", source),
		slog.Int("players", len(r)),
		slog.Int("left", nL),
		slog.Int("right", nR))

	return r, nil
}
