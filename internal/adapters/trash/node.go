package trash

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fclean/internal/core/ports"
)

// NodeID is the unique identifier for the trash Graft node.
const NodeID graft.ID = "adapter.trash"

func init() {
	graft.Register(graft.Node[ports.Trasher]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Trasher, error) {
			return New(), nil
		},
	})
}
