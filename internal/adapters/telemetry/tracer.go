// Package telemetry adapts OpenTelemetry spans to the Tracer port.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/wrp/internal/core/ports"
)

// InstrumentationName names the tracer used for every span wrp creates.
const InstrumentationName = "go.trai.ch/wrp"

// Tracer is a ports.Tracer backed by an OpenTelemetry SDK provider.
// Finished spans are reported through a TimingProcessor, which stays silent
// until enabled.
type Tracer struct {
	provider *sdktrace.TracerProvider
	tracer   trace.Tracer
	timing   *TimingProcessor
}

// NewTracer creates a Tracer that reports span timings to logger.
func NewTracer(logger ports.Logger) *Tracer {
	timing := NewTimingProcessor(logger)
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithSpanProcessor(timing),
	)
	return &Tracer{
		provider: provider,
		tracer:   provider.Tracer(InstrumentationName),
		timing:   timing,
	}
}

// SetEnabled toggles span timing output.
func (t *Tracer) SetEnabled(enabled bool) {
	t.timing.SetEnabled(enabled)
}

// Start creates a new span.
func (t *Tracer) Start(ctx context.Context, name string) (context.Context, ports.Span) {
	ctx, span := t.tracer.Start(ctx, name)
	return ctx, &Span{span: span}
}

// Shutdown flushes and stops the underlying provider.
func (t *Tracer) Shutdown(ctx context.Context) error {
	return t.provider.Shutdown(ctx)
}

// Span is a ports.Span backed by an OpenTelemetry span.
type Span struct {
	span trace.Span
}

// End completes the span.
func (s *Span) End() {
	s.span.End()
}

// RecordError records err on the span and marks it failed.
func (s *Span) RecordError(err error) {
	if err == nil {
		return
	}
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

// SetAttribute adds a key-value pair to the span.
func (s *Span) SetAttribute(key string, value any) {
	switch v := value.(type) {
	case string:
		s.span.SetAttributes(attribute.String(key, v))
	case int:
		s.span.SetAttributes(attribute.Int(key, v))
	case int64:
		s.span.SetAttributes(attribute.Int64(key, v))
	case uint32:
		s.span.SetAttributes(attribute.Int64(key, int64(v)))
	case uint64:
		s.span.SetAttributes(attribute.String(key, fmt.Sprintf("%d", v)))
	case float64:
		s.span.SetAttributes(attribute.Float64(key, v))
	case bool:
		s.span.SetAttributes(attribute.Bool(key, v))
	case []string:
		s.span.SetAttributes(attribute.StringSlice(key, v))
	default:
		s.span.SetAttributes(attribute.String(key, fmt.Sprintf("%v", v)))
	}
}
