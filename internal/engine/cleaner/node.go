package cleaner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fclean/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fclean/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fclean/internal/adapters/trash"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fclean/internal/core/ports"
	"go.trai.ch/fclean/internal/engine/safety"
)

// NodeID is the unique identifier for the cleaner Graft node.
const NodeID graft.ID = "engine.cleaner"

func init() {
	graft.Register(graft.Node[*Cleaner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			safety.NodeID,
			trash.NodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Cleaner, error) {
			validator, err := graft.Dep[ports.Validator](ctx)
			if err != nil {
				return nil, err
			}

			trasher, err := graft.Dep[ports.Trasher](ctx)
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

			return New(validator, trasher, observer, log), nil
		},
	})
}
