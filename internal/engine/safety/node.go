package safety

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fclean/internal/adapters/catalog" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fclean/internal/adapters/fs"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fclean/internal/core/ports"
)

// NodeID is the unique identifier for the validator Graft node.
const NodeID graft.ID = "engine.safety"

func init() {
	graft.Register(graft.Node[ports.Validator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.ResolverNodeID,
			catalog.NodeID,
		},
		Run: func(ctx context.Context) (ports.Validator, error) {
			resolver, err := graft.Dep[ports.PathResolver](ctx)
			if err != nil {
				return nil, err
			}

			cat, err := graft.Dep[ports.TargetCatalog](ctx)
			if err != nil {
				return nil, err
			}

			return New(resolver, cat), nil
		},
	})
}
