package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"go.trai.ch/wrp/internal/core/domain"
	"go.trai.ch/zerr"
)

// Hypr sends the joined words to the window manager and writes the raw reply.
func (a *App) Hypr(ctx context.Context, words []string, asJSON bool) error {
	cmd := strings.TrimSpace(strings.Join(words, " "))
	if cmd == "" {
		return domain.ErrEmptyCommand
	}

	ctx, span := a.start(ctx, "hypr.send")
	defer span.End()
	span.SetAttribute("command", cmd)

	send := a.wm.Send
	if asJSON {
		send = a.wm.SendJSON
	}
	resp, err := send(ctx, cmd)
	if err != nil {
		span.RecordError(err)
		return err
	}

	if !strings.HasSuffix(resp, "\n") {
		resp += "\n"
	}
	_, err = fmt.Fprint(a.out, resp)
	return err
}

// Monitors queries the window manager for its outputs.
func (a *App) Monitors(ctx context.Context) ([]domain.Monitor, error) {
	resp, err := a.wm.SendJSON(ctx, "monitors")
	if err != nil {
		return nil, err
	}
	var monitors []domain.Monitor
	if err := json.Unmarshal([]byte(resp), &monitors); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrInvalidResponse, err), "command", "monitors")
	}
	return monitors, nil
}

// ShowMonitors prints one block per monitor.
func (a *App) ShowMonitors(ctx context.Context) error {
	monitors, err := a.Monitors(ctx)
	if err != nil {
		return err
	}
	if len(monitors) == 0 {
		return domain.ErrNoMonitors
	}

	p := a.printer(a.Palette(ctx))
	for _, m := range monitors {
		p.Header(fmt.Sprintf("%s (ID %d)", m.Name, m.ID))

		model := strings.TrimSpace(m.Make + " " + m.Model)
		if model == "" {
			model = "unknown"
		}
		p.KV("Model", model)
		p.KV("Resolution", FormatResolution(m))
		p.KV("Position", fmt.Sprintf("%d,%d", m.X, m.Y))
		p.KV("Scale", formatScale(m.Scale))
		workspace := m.ActiveWorkspace.Name
		if workspace == "" {
			workspace = "?"
		}
		p.KV("Workspace", workspace)
		dpms := "off"
		if m.DPMSStatus {
			dpms = "on"
		}
		p.KV("DPMS", dpms)
	}
	p.Blank()
	return nil
}

// FormatResolution renders "WxH @ RHz" in laid-out orientation, with the
// transform appended for transformed outputs.
func FormatResolution(m domain.Monitor) string {
	w, h := m.LogicalSize()
	s := fmt.Sprintf("%dx%d @ %dHz", w, h, int(math.Round(m.RefreshRate)))
	if m.Transform != 0 {
		s += " (" + domain.TransformLabel(m.Transform) + ")"
	}
	return s
}

func formatScale(scale float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", scale), "0"), ".")
}
