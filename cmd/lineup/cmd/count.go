package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lineup/lineup"
)

// newCountCmd creates the count command.
func newCountCmd(a *app) *cobra.Command {
	var nL, nR, k int

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Print how many complete lineups an unpruned search visits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := lineup.CountLeaves(nL, nR, k)
			if err != nil {
				return err
			}

			return a.renderer(cmd).Count(nL, nR, k, n)
		},
	}

	cmd.Flags().IntVar(&nL, "left", 10, "Number of left-handed batters")
	cmd.Flags().IntVar(&nR, "right", 10, "Number of right-handed batters")
	cmd.Flags().IntVar(&k, "len", 9, "Lineup length")

	return cmd
}
