package commands

import "github.com/spf13/cobra"

func (c *CLI) newTargetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List every cache location fclean knows about",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Targets(cmd.Context(), outputOptions(cmd))
		},
	}
}
