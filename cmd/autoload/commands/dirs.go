package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newDirsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dirs",
		Short: "Print the resolved search directories in priority order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			dirs, err := c.app.SearchDirs()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, dir := range dirs {
				_, _ = fmt.Fprintln(out, dir)
			}
			return nil
		},
	}
}
