package telemetry_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wrp/internal/adapters/telemetry"
	"go.trai.ch/wrp/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestTracer_DisabledIsSilent(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	tracer := telemetry.NewTracer(log)
	t.Cleanup(func() { _ = tracer.Shutdown(context.Background()) })

	_, span := tracer.Start(context.Background(), "colors.get")
	span.SetAttribute("wallpaper", "/tmp/wall.png")
	span.End()
}

func TestTracer_EnabledReportsTiming(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	var got string
	log.EXPECT().Info(gomock.Any()).Do(func(msg string) { got = msg }).Times(1)

	tracer := telemetry.NewTracer(log)
	tracer.SetEnabled(true)
	t.Cleanup(func() { _ = tracer.Shutdown(context.Background()) })

	_, span := tracer.Start(context.Background(), "audio.toggle")
	span.SetAttribute("sink_id", uint32(67))
	span.SetAttribute("volume", 0.45)
	span.SetAttribute("default", true)
	span.End()

	assert.True(t, strings.HasPrefix(got, "trace: audio.toggle took "), got)
	assert.True(t, strings.HasSuffix(got, "ms"), got)
}

func TestTracer_RecordErrorMarksFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	var got string
	log.EXPECT().Info(gomock.Any()).Do(func(msg string) { got = msg }).Times(1)

	tracer := telemetry.NewTracer(log)
	tracer.SetEnabled(true)
	t.Cleanup(func() { _ = tracer.Shutdown(context.Background()) })

	_, span := tracer.Start(context.Background(), "hypr.send")
	span.RecordError(nil)
	span.RecordError(errors.New("connection refused"))
	span.End()

	require.NotEmpty(t, got)
	assert.Contains(t, got, "hypr.send")
	assert.Contains(t, got, "(failed: connection refused)")
}

func TestTracer_NestedSpansReportInnerFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	var names []string
	log.EXPECT().Info(gomock.Any()).Do(func(msg string) { names = append(names, msg) }).Times(2)

	tracer := telemetry.NewTracer(log)
	tracer.SetEnabled(true)
	t.Cleanup(func() { _ = tracer.Shutdown(context.Background()) })

	ctx, outer := tracer.Start(context.Background(), "outer")
	_, inner := tracer.Start(ctx, "inner")
	inner.End()
	outer.End()

	require.Len(t, names, 2)
	assert.Contains(t, names[0], "inner")
	assert.Contains(t, names[1], "outer")
}

func TestFormatTiming(t *testing.T) {
	assert.Equal(t, "trace: colors.extract took 42ms", telemetry.FormatTiming("colors.extract", 42))
}
