package app

import (
	"context"

	"github.com/grindlemire/graft"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/fclean/internal/adapters/catalog"   //nolint:depguard // Wired in app layer
	"go.trai.ch/fclean/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/fclean/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/fclean/internal/adapters/prompt"    //nolint:depguard // Wired in app layer
	"go.trai.ch/fclean/internal/adapters/render"    //nolint:depguard // Wired in app layer
	"go.trai.ch/fclean/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/fclean/internal/core/ports"
	"go.trai.ch/fclean/internal/engine/cleaner"
	"go.trai.ch/fclean/internal/engine/scanner"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds what the command line needs to run.
type Components struct {
	App    *App
	Logger ports.Logger
	// Shutdown flushes and stops the tracer provider.
	Shutdown func(context.Context) error
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			render.NodeID,
			prompt.NodeID,
			catalog.NodeID,
			scanner.NodeID,
			cleaner.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.ProviderNodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[ports.Renderer](ctx)
	if err != nil {
		return nil, err
	}

	confirmer, err := graft.Dep[ports.Confirmer](ctx)
	if err != nil {
		return nil, err
	}

	cat, err := graft.Dep[ports.TargetCatalog](ctx)
	if err != nil {
		return nil, err
	}

	scan, err := graft.Dep[*scanner.Scanner](ctx)
	if err != nil {
		return nil, err
	}

	clean, err := graft.Dep[*cleaner.Cleaner](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, renderer, confirmer, cat, scan, clean), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tp, err := graft.Dep[*sdktrace.TracerProvider](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:      a,
		Logger:   log,
		Shutdown: tp.Shutdown,
	}, nil
}
