package store

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wrp/internal/adapters/logger"
	"go.trai.ch/wrp/internal/core/domain"
	"go.trai.ch/wrp/internal/core/ports"
)

// NodeID is the unique identifier for the color cache store Graft node.
const NodeID graft.ID = "adapter.store"

func init() {
	graft.Register(graft.Node[ports.ColorCacheStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ColorCacheStore, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			path, err := domain.DefaultColorCachePath()
			if err != nil {
				// Colors still work without a cache, they are just never reused.
				log.Debug(err.Error())
			}
			return NewFileStore(path), nil
		},
	})
}
