package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wrp/internal/adapters/logger"
	"go.trai.ch/wrp/internal/core/domain"
	"go.trai.ch/wrp/internal/core/ports"
)

// NodeID is the unique identifier for the config loader Graft node.
const NodeID graft.ID = "adapter.config_loader"

// ConfigNodeID is the unique identifier for the loaded configuration Graft node.
const ConfigNodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			path, err := domain.DefaultConfigPath()
			if err != nil {
				log.Debug(err.Error())
			}
			return NewLoader(log, path), nil
		},
	})

	graft.Register(graft.Node[*domain.Config]{
		ID:        ConfigNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (*domain.Config, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			return loader.Load()
		},
	})
}
