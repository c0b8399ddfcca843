package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/fclean/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean [roots...]",
		Short: "Delete the caches a scan finds",
		Long: "Delete the caches a scan finds.\n\n" +
			"Nothing is removed unless --apply is given. Every target is checked again\n" +
			"right before deletion and skipped if it no longer looks like a cache.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			apply, _ := cmd.Flags().GetBool("apply")
			yes, _ := cmd.Flags().GetBool("yes")

			return c.app.Clean(cmd.Context(), app.CleanOptions{
				ScanOptions: scanOptions(cmd, args),
				Apply:       apply,
				Yes:         yes,
			})
		},
	}
	addScanFlags(cmd)
	cmd.Flags().Bool("apply", false, "Actually delete the targets")
	cmd.Flags().Bool("trash", false, "Move targets to the trash instead of deleting them")
	cmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
	cmd.Flags().Int("concurrency", 1, "Number of targets deleted in parallel")
	return cmd
}
