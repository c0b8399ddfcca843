package ports

import "go.trai.ch/fclean/internal/core/domain"

// ProjectDetector defines the interface for discovering project roots.
//
//go:generate mockgen -source=detector.go -destination=mocks/mock_detector.go -package=mocks
type ProjectDetector interface {
	// IsProjectRoot reports whether dir holds the manifest and at least one secondary marker.
	IsProjectRoot(dir string) bool

	// Detect walks every root in order and returns the projects found under each.
	// Unresolvable roots are skipped. visited is shared across calls of one scan so that
	// no directory is inspected twice.
	Detect(roots []string, maxDepth int, visited *domain.VisitedSet) []domain.RootProjects
}
