package hypr

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wrp/internal/core/ports"
)

// NodeID is the unique identifier for the window manager client Graft node.
const NodeID graft.ID = "adapter.hypr"

func init() {
	graft.Register(graft.Node[ports.WindowManager]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.WindowManager, error) {
			return NewClient(OSEnv()), nil
		},
	})
}
