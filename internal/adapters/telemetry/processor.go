package telemetry

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/wrp/internal/core/ports"
)

// TimingProcessor implements sdktrace.SpanProcessor by logging how long each
// finished span took.
type TimingProcessor struct {
	logger  ports.Logger
	enabled atomic.Bool
}

// NewTimingProcessor returns a disabled TimingProcessor.
func NewTimingProcessor(logger ports.Logger) *TimingProcessor {
	return &TimingProcessor{logger: logger}
}

// SetEnabled toggles reporting.
func (p *TimingProcessor) SetEnabled(enabled bool) {
	p.enabled.Store(enabled)
}

// OnStart does nothing.
func (p *TimingProcessor) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the span duration when reporting is enabled.
func (p *TimingProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	if p.logger == nil || !p.enabled.Load() {
		return
	}
	if !s.SpanContext().IsValid() {
		return
	}

	msg := FormatTiming(s.Name(), s.EndTime().Sub(s.StartTime()).Milliseconds())
	if s.Status().Code == codes.Error {
		msg += " (failed: " + s.Status().Description + ")"
	}
	p.logger.Info(msg)
}

// ForceFlush does nothing.
func (p *TimingProcessor) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (p *TimingProcessor) Shutdown(_ context.Context) error {
	return nil
}

// FormatTiming renders the line reported for a finished span.
func FormatTiming(name string, ms int64) string {
	return fmt.Sprintf("trace: %s took %dms", name, ms)
}
