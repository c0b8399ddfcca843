package ports

import "go.trai.ch/fclean/internal/core/domain"

// Observer receives progress events from scans and cleans.
// Implementations must not influence the result.
//
//go:generate mockgen -source=observer.go -destination=mocks/mock_observer.go -package=mocks
type Observer interface {
	// ProjectFound is called once per discovered project root.
	ProjectFound(root string, priority bool)

	// TargetSized is called after a target's size has been computed.
	TargetSized(target domain.CacheTarget)

	// DeletionAttempted is called after every deletion attempt, with a nil err on success.
	DeletionAttempted(target domain.CacheTarget, err error)
}
