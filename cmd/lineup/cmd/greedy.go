package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lineup/lineup"
)

// newGreedyCmd creates the greedy command.
func newGreedyCmd(a *app) *cobra.Command {
	var rf rosterFlags

	cmd := &cobra.Command{
		Use:   "greedy",
		Short: "Build a lineup with the single-pass greedy baseline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := rf.apply(cmd, a.cfg); err != nil {
				return err
			}
			r, err := a.loadRoster()
			if err != nil {
				return err
			}
			s, err := a.run(lineup.GreedyPass, r)
			if err != nil {
				return err
			}

			return a.renderer(cmd).Summary(s)
		},
	}
	rf.bind(cmd)

	return cmd
}
