package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [changed files...]",
		Short: "Decide and rebuild for a set of changed files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := absolutePaths(args)
			if err != nil {
				return err
			}
			return c.app.Rebuild(cmd.Context(), files)
		},
	}
}
