package ports

import "go.trai.ch/wrp/internal/core/domain"

// ConfigLoader defines the interface for loading the helper configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration, falling back to defaults when no file exists.
	Load() (*domain.Config, error)
}
