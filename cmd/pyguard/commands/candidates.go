package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCandidatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "candidates",
		Short: "Probe every interpreter the search would consider",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Candidates(cmd.Context(), cmd.OutOrStdout(), runOptions(cmd))
		},
	}
}
