package commands

import (
	"errors"
	"strconv"

	"github.com/spf13/cobra"
	"go.trai.ch/wrp/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newAudioCmd() *cobra.Command {
	toggle := func(cmd *cobra.Command, _ []string) error {
		return c.app.ToggleAudio(cmd.Context())
	}

	cmd := &cobra.Command{
		Use:   "audio",
		Short: "Toggle audio between HDMI and headset",
		Args:  cobra.NoArgs,
		RunE:  toggle,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current audio sinks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.ShowAudio(cmd.Context())
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Toggle audio between HDMI and headset",
		Args:  cobra.NoArgs,
		RunE:  toggle,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "set <id>",
		Short: "Set the default audio sink",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSinkID(args[0])
			if err != nil {
				return err
			}
			return c.app.SetDefaultSink(cmd.Context(), id)
		},
	})

	return cmd
}

func parseSinkID(s string) (uint32, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, zerr.With(errors.Join(domain.ErrInvalidSinkID, err), "id", s)
	}
	return uint32(id), nil
}
