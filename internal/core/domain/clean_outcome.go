package domain

import (
	"slices"
	"sync"
)

// CleanItem pairs a target with the project root it must stay inside.
// ProjectRoot is empty for global targets.
type CleanItem struct {
	Target      CacheTarget
	ProjectRoot string
}

// CleanOutcome accumulates the result of one clean across all targets.
// It is safe for concurrent use; the zero value is not usable, create it with NewCleanOutcome.
type CleanOutcome struct {
	DeletedPaths   []string          `json:"deleted_paths"`
	FailedPaths    map[string]string `json:"failed_paths"`
	ReclaimedBytes int64             `json:"reclaimed_bytes"`

	mu sync.Mutex
}

// NewCleanOutcome creates an empty CleanOutcome.
func NewCleanOutcome() *CleanOutcome {
	return &CleanOutcome{
		DeletedPaths: []string{},
		FailedPaths:  make(map[string]string),
	}
}

// RecordDeleted adds a successfully removed path and its size.
func (o *CleanOutcome) RecordDeleted(path string, size int64) {
	o.mu.Lock()
	defer o.mu.Unlock()

	idx, found := slices.BinarySearch(o.DeletedPaths, path)
	if found {
		return
	}
	o.DeletedPaths = slices.Insert(o.DeletedPaths, idx, path)
	if size > 0 {
		o.ReclaimedBytes += size
	}
}

// RecordFailed stores the reason a path was not deleted.
func (o *CleanOutcome) RecordFailed(path, reason string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.FailedPaths[path] = reason
}

// HasFailures reports whether any target was rejected or failed to delete.
func (o *CleanOutcome) HasFailures() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.FailedPaths) > 0
}

// FailedPathsSorted returns the failed paths in lexical order.
func (o *CleanOutcome) FailedPathsSorted() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	paths := make([]string, 0, len(o.FailedPaths))
	for p := range o.FailedPaths {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths
}
