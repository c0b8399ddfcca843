package scanner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fclean/internal/adapters/catalog"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fclean/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fclean/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fclean/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fclean/internal/core/ports"
)

// NodeID is the unique identifier for the scanner Graft node.
const NodeID graft.ID = "engine.scanner"

func init() {
	graft.Register(graft.Node[*Scanner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.ResolverNodeID,
			fs.DetectorNodeID,
			catalog.NodeID,
			fs.SizerNodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Scanner, error) {
			resolver, err := graft.Dep[ports.PathResolver](ctx)
			if err != nil {
				return nil, err
			}

			detector, err := graft.Dep[ports.ProjectDetector](ctx)
			if err != nil {
				return nil, err
			}

			cat, err := graft.Dep[ports.TargetCatalog](ctx)
			if err != nil {
				return nil, err
			}

			sizer, err := graft.Dep[ports.Sizer](ctx)
			if err != nil {
				return nil, err
			}

			observer, err := graft.Dep[ports.Observer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(resolver, detector, cat, sizer, observer, log), nil
		},
	})
}
