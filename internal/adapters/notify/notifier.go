// Package notify sends desktop notifications through notify-send.
package notify

import (
	"context"
	"strconv"

	"go.trai.ch/wrp/internal/core/domain"
	"go.trai.ch/wrp/internal/core/ports"
	"go.trai.ch/zerr"
)

// Program is the notification client binary.
const Program = "notify-send"

var _ ports.Notifier = (*Notifier)(nil)

// Notifier implements ports.Notifier.
type Notifier struct {
	runner ports.ProcessRunner
	cfg    domain.NotifyConfig
}

// NewNotifier creates a Notifier. A disabled config makes Notify a no-op.
func NewNotifier(runner ports.ProcessRunner, cfg domain.NotifyConfig) *Notifier {
	return &Notifier{runner: runner, cfg: cfg}
}

// Notify shows msg.
func (n *Notifier) Notify(ctx context.Context, msg domain.Notification) error {
	if !n.cfg.Enabled {
		return nil
	}
	if _, err := n.runner.Run(ctx, Program, n.args(msg)); err != nil {
		return zerr.Wrap(err, "send notification")
	}
	return nil
}

func (n *Notifier) args(msg domain.Notification) []string {
	urgency := msg.Urgency
	if urgency == "" {
		urgency = domain.UrgencyNormal
	}

	args := []string{
		"-t", strconv.Itoa(n.cfg.TimeoutMS),
		"-u", urgency,
		"-a", n.cfg.AppName,
	}
	if msg.Icon != "" {
		args = append(args, "-i", msg.Icon)
	}
	return append(args, msg.Title, msg.Message)
}
