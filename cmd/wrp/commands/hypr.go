package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newHyprCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hypr [--json] <command...>",
		Short: "Send a raw command to the Hyprland socket",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")
			return c.app.Hypr(cmd.Context(), args, asJSON)
		},
	}
	cmd.Flags().BoolP("json", "j", false, "Request JSON output")
	// Flags after the first command word belong to the dispatched command.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func (c *CLI) newMonitorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "monitors",
		Short: "Show monitor information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.ShowMonitors(cmd.Context())
		},
	}
}
