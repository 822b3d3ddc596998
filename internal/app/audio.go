package app

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.trai.ch/wrp/internal/core/domain"
	"go.trai.ch/wrp/internal/ui/style"
	"go.trai.ch/zerr"
)

// ShowAudio lists the audio sinks, marking the default one.
func (a *App) ShowAudio(ctx context.Context) error {
	sinks, err := a.audio.Sinks(ctx)
	if err != nil {
		return zerr.Wrap(err, "list audio sinks")
	}

	p := a.printer(a.Palette(ctx))
	p.Header("Audio Sinks")
	for _, sink := range sinks {
		marker := style.Circle
		if sink.IsDefault {
			marker = style.Dot
		}
		p.Item(marker, sink.IsDefault, FormatSink(sink))
	}
	p.Blank()
	return nil
}

// FormatSink renders "<id>. <name>" plus the volume when known.
func FormatSink(sink domain.AudioSink) string {
	s := fmt.Sprintf("%d. %s", sink.ID, sink.Name)
	if sink.Volume != nil {
		s += fmt.Sprintf(" vol: %.2f", *sink.Volume)
	}
	return s
}

// ToggleAudio switches the default sink between the headset and the HDMI
// output. Both must be present.
func (a *App) ToggleAudio(ctx context.Context) error {
	ctx, span := a.start(ctx, "audio.toggle")
	defer span.End()

	sinks, err := a.audio.Sinks(ctx)
	if err != nil {
		span.RecordError(err)
		return zerr.Wrap(err, "list audio sinks")
	}

	hdmi, err := findSink(sinks, a.config.Audio.HDMI)
	if err != nil {
		return err
	}
	headset, err := findSink(sinks, a.config.Audio.Headset)
	if err != nil {
		return err
	}

	if hdmi == nil || headset == nil {
		var missing []string
		if hdmi == nil {
			missing = append(missing, "HDMI")
		}
		if headset == nil {
			missing = append(missing, "Headset")
		}
		a.notify(ctx, domain.Notification{
			Title:   "Audio",
			Message: "Failed to detect audio devices",
			Urgency: domain.UrgencyCritical,
		})
		err := zerr.With(zerr.Wrap(domain.ErrSinkNotFound, "toggle audio"), "missing", strings.Join(missing, ", "))
		span.RecordError(err)
		return err
	}

	target, label := headset, "Headset"
	if headset.IsDefault {
		target, label = hdmi, "HDMI (TV)"
	}
	span.SetAttribute("sink_id", target.ID)

	if err := a.audio.SetDefault(ctx, target.ID); err != nil {
		span.RecordError(err)
		return zerr.Wrap(err, "switch to "+label)
	}

	a.printer(a.Palette(ctx)).Success("Switched to " + label)
	a.notify(ctx, domain.Notification{
		Title:   "Audio",
		Message: "Switched to " + label,
		Urgency: domain.UrgencyNormal,
	})
	return nil
}

// SetDefaultSink makes the sink with id the default output.
func (a *App) SetDefaultSink(ctx context.Context, id uint32) error {
	if err := a.audio.SetDefault(ctx, id); err != nil {
		return err
	}
	a.printer(a.Palette(ctx)).Success(fmt.Sprintf("Default sink set to %d", id))
	return nil
}

// findSink returns the first sink whose name matches pattern, case-insensitively.
func findSink(sinks []domain.AudioSink, pattern string) (*domain.AudioSink, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrInvalidPattern, err), "pattern", pattern)
	}
	for i := range sinks {
		if re.MatchString(sinks[i].Name) {
			return &sinks[i], nil
		}
	}
	return nil, nil
}

func (a *App) notify(ctx context.Context, n domain.Notification) {
	if a.notifier == nil {
		return
	}
	if err := a.notifier.Notify(ctx, n); err != nil {
		a.logger.Warn("notification failed: " + err.Error())
	}
}
