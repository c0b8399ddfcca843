package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fclean/internal/core/ports"
)

const (
	// ResolverNodeID is the unique identifier for the path resolver Graft node.
	ResolverNodeID graft.ID = "adapter.fs.resolver"
	// DetectorNodeID is the unique identifier for the project detector Graft node.
	DetectorNodeID graft.ID = "adapter.fs.detector"
	// SizerNodeID is the unique identifier for the sizer Graft node.
	SizerNodeID graft.ID = "adapter.fs.sizer"
)

func init() {
	graft.Register(graft.Node[ports.PathResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PathResolver, error) {
			return NewResolver(), nil
		},
	})

	graft.Register(graft.Node[ports.ProjectDetector]{
		ID:        DetectorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ResolverNodeID},
		Run: func(ctx context.Context) (ports.ProjectDetector, error) {
			resolver, err := graft.Dep[ports.PathResolver](ctx)
			if err != nil {
				return nil, err
			}
			return NewDetector(resolver), nil
		},
	})

	graft.Register(graft.Node[ports.Sizer]{
		ID:        SizerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Sizer, error) {
			return NewSizer(), nil
		},
	})
}
