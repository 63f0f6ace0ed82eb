package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/reviewdeps/internal/app"
	"go.trai.ch/reviewdeps/internal/core/domain"
)

func (c *CLI) newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff FIRST SECOND",
		Short: "Compare the sources of two published package versions",
		Example: "  cargo review-deps diff rand:0.6.0 rand:0.6.1\n" +
			"  cargo review-deps diff rand:0.6.0 rand:0.6.1 --destination ./review",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			first, err := domain.ParsePackageID(args[0])
			if err != nil {
				return err
			}
			second, err := domain.ParsePackageID(args[1])
			if err != nil {
				return err
			}

			destination, _ := cmd.Flags().GetString("destination")
			return c.app.Diff(cmd.Context(), first, second, app.DiffOptions{Destination: destination})
		},
	}
	cmd.Flags().StringP("destination", "d", "", "Copy both versions into this directory instead of running diff")
	return cmd
}
