// Package telemetry provides progress observers for scans and cleans.
package telemetry

import (
	"go.trai.ch/fclean/internal/core/domain"
	"go.trai.ch/fclean/internal/core/ports"
)

var _ ports.Observer = (*NoOpObserver)(nil)

// NoOpObserver is a no-op implementation of ports.Observer.
type NoOpObserver struct{}

// NewNoOpObserver creates a new NoOpObserver.
func NewNoOpObserver() *NoOpObserver {
	return &NoOpObserver{}
}

// ProjectFound does nothing.
func (o *NoOpObserver) ProjectFound(_ string, _ bool) {}

// TargetSized does nothing.
func (o *NoOpObserver) TargetSized(_ domain.CacheTarget) {}

// DeletionAttempted does nothing.
func (o *NoOpObserver) DeletionAttempted(_ domain.CacheTarget, _ error) {}
