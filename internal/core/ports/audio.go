package ports

import (
	"context"

	"go.trai.ch/wrp/internal/core/domain"
)

// AudioController lists audio sinks and selects the default one.
//
//go:generate go run go.uber.org/mock/mockgen -source=audio.go -destination=mocks/mock_audio.go -package=mocks
type AudioController interface {
	// Sinks returns the sinks in the order the audio server reports them.
	Sinks(ctx context.Context) ([]domain.AudioSink, error)

	// SetDefault makes the sink with id the default output.
	SetDefault(ctx context.Context, id uint32) error
}
