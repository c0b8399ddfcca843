package ports

import "context"

// Trasher moves paths into the platform's recoverable trash.
//
//go:generate mockgen -source=trasher.go -destination=mocks/mock_trasher.go -package=mocks
type Trasher interface {
	// MoveToTrash blocks until the platform facility reports the outcome.
	MoveToTrash(ctx context.Context, path string) error
}
