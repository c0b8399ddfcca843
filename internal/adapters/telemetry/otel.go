package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/fclean/internal/core/domain"
	"go.trai.ch/fclean/internal/core/ports"
)

var _ ports.Observer = (*OTelObserver)(nil)

// Span names emitted by OTelObserver.
const (
	SpanProjectFound      = "project_found"
	SpanTargetSized       = "target_sized"
	SpanDeletionAttempted = "deletion_attempted"
)

const (
	attrProjectRoot     attribute.Key = "project.root"
	attrProjectPriority attribute.Key = "project.priority"
	attrTargetKind      attribute.Key = "target.kind"
	attrTargetPath      attribute.Key = "target.path"
	attrTargetSize      attribute.Key = "target.size_bytes"
	attrTargetGlobal    attribute.Key = "target.global"
)

// OTelObserver records each progress event as a short span.
type OTelObserver struct {
	tracer trace.Tracer
}

// NewOTelObserver creates a new OTelObserver that starts spans from tp under
// the given instrumentation name.
func NewOTelObserver(tp trace.TracerProvider, name string) *OTelObserver {
	return &OTelObserver{
		tracer: tp.Tracer(name),
	}
}

// ProjectFound records a project discovery.
func (o *OTelObserver) ProjectFound(root string, priority bool) {
	_, span := o.tracer.Start(context.Background(), SpanProjectFound)
	span.SetAttributes(
		attrProjectRoot.String(root),
		attrProjectPriority.Bool(priority),
	)
	span.End()
}

// TargetSized records a computed target size.
func (o *OTelObserver) TargetSized(target domain.CacheTarget) {
	_, span := o.tracer.Start(context.Background(), SpanTargetSized)
	span.SetAttributes(targetAttributes(target)...)
	span.End()
}

// DeletionAttempted records a deletion and marks the span failed when err is set.
func (o *OTelObserver) DeletionAttempted(target domain.CacheTarget, err error) {
	_, span := o.tracer.Start(context.Background(), SpanDeletionAttempted)
	span.SetAttributes(targetAttributes(target)...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

func targetAttributes(target domain.CacheTarget) []attribute.KeyValue {
	return []attribute.KeyValue{
		attrTargetKind.String(target.Kind.String()),
		attrTargetPath.String(target.Path),
		attrTargetSize.Int64(target.SizeBytes),
		attrTargetGlobal.Bool(target.IsGlobal),
	}
}
