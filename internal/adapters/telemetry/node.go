package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/fclean/internal/adapters/logger"
	"go.trai.ch/fclean/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the observer Graft node.
	NodeID graft.ID = "adapter.telemetry"
	// ProviderNodeID is the unique identifier for the tracer provider Graft node.
	ProviderNodeID graft.ID = "adapter.telemetry.provider"
)

// InstrumentationName is the OpenTelemetry instrumentation scope.
const InstrumentationName = "go.trai.ch/fclean"

func init() {
	graft.Register(graft.Node[*sdktrace.TracerProvider]{
		ID:        ProviderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*sdktrace.TracerProvider, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tp := NewTracerProvider(log)
			otel.SetTracerProvider(tp)
			return tp, nil
		},
	})

	graft.Register(graft.Node[ports.Observer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ProviderNodeID},
		Run: func(ctx context.Context) (ports.Observer, error) {
			tp, err := graft.Dep[*sdktrace.TracerProvider](ctx)
			if err != nil {
				return nil, err
			}
			return NewOTelObserver(tp, InstrumentationName), nil
		},
	})
}
