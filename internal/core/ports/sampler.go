package ports

import (
	"context"

	"go.trai.ch/wrp/internal/core/domain"
)

// MetricSampler reads point-in-time system metrics.
//
//go:generate go run go.uber.org/mock/mockgen -source=sampler.go -destination=mocks/mock_sampler.go -package=mocks
type MetricSampler interface {
	Memory(ctx context.Context) (domain.MemoryInfo, error)

	// CPUUsage samples twice a short interval apart and returns the mean
	// busy percentage across cores.
	CPUUsage(ctx context.Context) (float64, error)
}
