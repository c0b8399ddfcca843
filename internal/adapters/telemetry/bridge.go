package telemetry

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/fclean/internal/core/ports"
)

var _ sdktrace.SpanProcessor = (*Bridge)(nil)

// Bridge implements sdktrace.SpanProcessor to forward ended spans to a Logger
// as debug lines.
type Bridge struct {
	logger ports.Logger
}

// NewBridge returns a new Bridge.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{
		logger: logger,
	}
}

// NewTracerProvider returns an SDK tracer provider whose spans end up in logger.
func NewTracerProvider(logger ports.Logger) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(NewBridge(logger)))
}

// OnStart does nothing; spans are reported once they end.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd is called when a span ends.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil || !s.SpanContext().IsValid() {
		return
	}

	attrs := make(map[attribute.Key]attribute.Value, len(s.Attributes()))
	for _, kv := range s.Attributes() {
		attrs[kv.Key] = kv.Value
	}

	switch s.Name() {
	case SpanProjectFound:
		scope := "default"
		if attrs[attrProjectPriority].AsBool() {
			scope = "priority"
		}
		b.logger.Debug(fmt.Sprintf("found %s project %s", scope, attrs[attrProjectRoot].AsString()))
	case SpanTargetSized:
		size := max(attrs[attrTargetSize].AsInt64(), 0)
		b.logger.Debug(fmt.Sprintf("sized %s %s: %s",
			attrs[attrTargetKind].AsString(),
			attrs[attrTargetPath].AsString(),
			humanize.IBytes(uint64(size)))) //nolint:gosec // clamped above
	case SpanDeletionAttempted:
		path := attrs[attrTargetPath].AsString()
		if s.Status().Code == codes.Error {
			desc := s.Status().Description
			if desc == "" {
				desc = "deletion failed"
			}
			b.logger.Debug(fmt.Sprintf("failed to delete %s: %s", path, desc))
			return
		}
		b.logger.Debug(fmt.Sprintf("deleted %s", path))
	default:
		b.logger.Debug(fmt.Sprintf("span %s ended", s.Name()))
	}
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}
