package matugen

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wrp/internal/adapters/config"
	"go.trai.ch/wrp/internal/adapters/shell"
	"go.trai.ch/wrp/internal/core/domain"
	"go.trai.ch/wrp/internal/core/ports"
)

// NodeID is the unique identifier for the color extractor Graft node.
const NodeID graft.ID = "adapter.extractor"

func init() {
	graft.Register(graft.Node[ports.ColorExtractor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, config.ConfigNodeID},
		Run: func(ctx context.Context) (ports.ColorExtractor, error) {
			runner, err := graft.Dep[ports.ProcessRunner](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewExtractor(runner, cfg.Colors.Tool, cfg.Colors.Scheme), nil
		},
	})
}
