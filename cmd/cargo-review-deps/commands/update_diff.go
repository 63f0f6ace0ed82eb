package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/reviewdeps/internal/app"
	"go.trai.ch/zerr"
)

func (c *CLI) newUpdateDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-diff [-- CARGO_UPDATE_ARGS...]",
		Short: "Show how `cargo update` would change your dependencies",
		Long: "Runs `cargo update`, compares the sources of every dependency it changed\n" +
			"and restores the original Cargo.lock afterwards.",
		Example: "  cargo review-deps update-diff\n" +
			"  cargo review-deps update-diff -- -p rand --precise 0.6.1",
		Args: func(cmd *cobra.Command, args []string) error {
			if dash := cmd.ArgsLenAtDash(); len(args) > 0 && dash != 0 {
				return zerr.With(zerr.New("unexpected argument; pass cargo update arguments after --"), "argument", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			destination, _ := cmd.Flags().GetString("destination")
			manifestPath, _ := cmd.Flags().GetString("manifest-path")
			_, err := c.app.UpdateDiff(cmd.Context(), app.UpdateOptions{
				Destination:  destination,
				ManifestPath: manifestPath,
				Args:         args,
			})
			return err
		},
	}
	cmd.Flags().StringP("destination", "d", "", "Keep the before/after sources in this directory instead of running diff")
	cmd.Flags().String("manifest-path", "", "Path to Cargo.toml")
	return cmd
}
