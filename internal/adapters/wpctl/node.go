package wpctl

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wrp/internal/adapters/config"
	"go.trai.ch/wrp/internal/adapters/shell"
	"go.trai.ch/wrp/internal/core/domain"
	"go.trai.ch/wrp/internal/core/ports"
)

// NodeID is the unique identifier for the audio controller Graft node.
const NodeID graft.ID = "adapter.audio"

func init() {
	graft.Register(graft.Node[ports.AudioController]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, config.ConfigNodeID},
		Run: func(ctx context.Context) (ports.AudioController, error) {
			runner, err := graft.Dep[ports.ProcessRunner](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewController(runner, cfg.Audio.Tool), nil
		},
	})
}
