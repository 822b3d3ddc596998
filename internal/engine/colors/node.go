package colors

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wrp/internal/adapters/logger"
	"go.trai.ch/wrp/internal/adapters/matugen"
	"go.trai.ch/wrp/internal/adapters/store"
	"go.trai.ch/wrp/internal/adapters/telemetry"
	"go.trai.ch/wrp/internal/core/ports"
)

// NodeID is the unique identifier for the color manager Graft node.
const NodeID graft.ID = "engine.colors"

func init() {
	graft.Register(graft.Node[*Manager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			store.NodeID,
			matugen.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Manager, error) {
			cache, err := graft.Dep[ports.ColorCacheStore](ctx)
			if err != nil {
				return nil, err
			}

			extractor, err := graft.Dep[ports.ColorExtractor](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return NewManager(cache, extractor, log, WithTracer(tracer)), nil
		},
	})
}
