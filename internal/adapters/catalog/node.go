package catalog

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fclean/internal/adapters/fs"
	"go.trai.ch/fclean/internal/core/ports"
)

// NodeID is the unique identifier for the target catalog Graft node.
const NodeID graft.ID = "adapter.catalog"

func init() {
	graft.Register(graft.Node[ports.TargetCatalog]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.ResolverNodeID, fs.SizerNodeID},
		Run: func(ctx context.Context) (ports.TargetCatalog, error) {
			resolver, err := graft.Dep[ports.PathResolver](ctx)
			if err != nil {
				return nil, err
			}
			sizer, err := graft.Dep[ports.Sizer](ctx)
			if err != nil {
				return nil, err
			}
			return New(resolver, sizer), nil
		},
	})
}
