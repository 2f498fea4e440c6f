package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newLoadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load <tag> [names...]",
		Short: "Load plugins by logical name",
		Long: "Load resolves each logical name against the search directories,\n" +
			"executes the first matching source file, and records it as loaded.\n" +
			"With --all, every plugin found under the tag is loaded instead.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")

			tag := args[0]
			names := args[1:]

			if all {
				return c.app.LoadAll(cmd.Context(), []string{tag})
			}
			if len(names) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			return c.app.Load(cmd.Context(), tag, names)
		},
	}
	cmd.Flags().BoolP("all", "a", false, "Load every plugin found under the tag")
	return cmd
}
