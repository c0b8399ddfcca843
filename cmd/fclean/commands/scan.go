package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/fclean/internal/app"
	"go.trai.ch/fclean/internal/core/domain"
)

func (c *CLI) newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [roots...]",
		Short: "Report reclaimable Flutter caches without deleting anything",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Scan(cmd.Context(), scanOptions(cmd, args))
		},
	}
	addScanFlags(cmd)
	return cmd
}

func addScanFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("defaults", "d", false, "Also scan the usual project folders in your home directory")
	cmd.Flags().BoolP("optional", "o", false, "Include platform caches such as ios/Pods and android/.gradle")
	cmd.Flags().BoolP("global", "g", false, "Include global caches such as the pub cache")
	cmd.Flags().Int("max-depth", 0, "Maximum directory depth below each root (0 = unlimited)")
}

func scanOptions(cmd *cobra.Command, args []string) app.ScanOptions {
	configPath, _ := cmd.Flags().GetString("config")
	profile, _ := cmd.Flags().GetString("profile")

	return app.ScanOptions{
		OutputOptions: outputOptions(cmd),
		Flags:         flagProfile(cmd, args),
		ConfigPath:    configPath,
		Profile:       profile,
	}
}

// flagProfile collects only the flags the user actually set so config values stay in effect otherwise.
func flagProfile(cmd *cobra.Command, args []string) domain.Profile {
	p := domain.Profile{
		Defaults:    changedBool(cmd, "defaults"),
		Optional:    changedBool(cmd, "optional"),
		Global:      changedBool(cmd, "global"),
		MaxDepth:    changedInt(cmd, "max-depth"),
		Trash:       changedBool(cmd, "trash"),
		Concurrency: changedInt(cmd, "concurrency"),
	}
	if len(args) > 0 {
		p.Roots = append([]string(nil), args...)
	}
	return p
}

func changedBool(cmd *cobra.Command, name string) *bool {
	if cmd.Flags().Lookup(name) == nil || !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetBool(name)
	return &v
}

func changedInt(cmd *cobra.Command, name string) *int {
	if cmd.Flags().Lookup(name) == nil || !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetInt(name)
	return &v
}
