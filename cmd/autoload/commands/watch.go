package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/autoload/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <tags...>",
		Short: "Load plugins and reload them on file changes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			window, _ := cmd.Flags().GetDuration("debounce")
			return c.app.Watch(cmd.Context(), args, app.WatchOptions{
				Window: window,
			})
		},
	}
	cmd.Flags().Duration("debounce", 0, "Quiet window before a change batch triggers a reload")
	return cmd
}
