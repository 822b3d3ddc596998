package wpctl

import (
	"context"
	"strconv"
	"strings"

	"go.trai.ch/wrp/internal/core/domain"
	"go.trai.ch/wrp/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.AudioController = (*Controller)(nil)

// Controller implements ports.AudioController with the wpctl CLI.
type Controller struct {
	runner ports.ProcessRunner
	tool   string
}

// NewController creates a Controller invoking tool.
func NewController(runner ports.ProcessRunner, tool string) *Controller {
	return &Controller{runner: runner, tool: tool}
}

// Sinks runs `<tool> status` and parses the sinks section.
func (c *Controller) Sinks(ctx context.Context) ([]domain.AudioSink, error) {
	out, err := c.runner.Run(ctx, c.tool, []string{"status"})
	if err != nil {
		return nil, zerr.Wrap(err, "list audio sinks")
	}
	return ParseSinks(strings.ToValidUTF8(string(out), "�")), nil
}

// SetDefault runs `<tool> set-default <id>`.
func (c *Controller) SetDefault(ctx context.Context, id uint32) error {
	if _, err := c.runner.Run(ctx, c.tool, []string{"set-default", strconv.FormatUint(uint64(id), 10)}); err != nil {
		return zerr.With(zerr.Wrap(err, "set default sink"), "sink_id", id)
	}
	return nil
}
