package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newColorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "colors",
		Short: "Print the primary color of the current wallpaper",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.PrintPrimary(cmd.Context())
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "ps1",
		Short: "Output a bash PS1 fragment with wallpaper colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.PrintPS1(cmd.Context())
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "json",
		Short: "Output all color roles as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.PrintColorsJSON(cmd.Context())
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "palette",
		Short: "Show the palette with color swatches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.PrintPalette(cmd.Context())
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "invalidate",
		Short: "Drop the cached colors",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return c.app.InvalidateColors()
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "watch",
		Short: "Regenerate colors whenever the wallpaper changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.WatchColors(cmd.Context())
		},
	})

	return cmd
}
