package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newSysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sys",
		Short: "Show memory and CPU usage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.ShowSystem(cmd.Context())
		},
	}
}
