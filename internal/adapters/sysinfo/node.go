package sysinfo

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wrp/internal/core/ports"
)

// NodeID is the unique identifier for the metric sampler Graft node.
const NodeID graft.ID = "adapter.sysinfo"

func init() {
	graft.Register(graft.Node[ports.MetricSampler]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.MetricSampler, error) {
			return NewSampler(), nil
		},
	})
}
