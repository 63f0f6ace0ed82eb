package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/reviewdeps/internal/app"
)

func (c *CLI) newCurrentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "current",
		Short: "Copy the sources of all current registry dependencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			destination, _ := cmd.Flags().GetString("destination")
			manifestPath, _ := cmd.Flags().GetString("manifest-path")
			return c.app.Current(cmd.Context(), app.CurrentOptions{
				Destination:  destination,
				ManifestPath: manifestPath,
			})
		},
	}
	cmd.Flags().StringP("destination", "d", "", "Directory receiving one copy per dependency")
	cmd.Flags().String("manifest-path", "", "Path to Cargo.toml")
	_ = cmd.MarkFlagRequired("destination")
	return cmd
}
