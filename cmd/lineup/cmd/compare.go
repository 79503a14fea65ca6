package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lineup/lineup"
)

// newCompareCmd creates the compare command.
func newCompareCmd(a *app) *cobra.Command {
	var (
		rf rosterFlags
		sf searchFlags
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run exhaustive search and greedy on the same roster",
		Args:  cobra.NoArgs,
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
			exh, err := a.run(lineup.Exhaustive, r)
			if err != nil {
				return err
			}
			gr, err := a.run(lineup.GreedyPass, r)
			if err != nil {
				return err
			}

			return a.renderer(cmd).Compare(exh, gr)
		},
	}
	rf.bind(cmd)
	sf.bind(cmd)

	return cmd
}
