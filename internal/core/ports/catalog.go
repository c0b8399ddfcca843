package ports

import "go.trai.ch/fclean/internal/core/domain"

// TargetCatalog maps projects and the environment to named cache locations.
//
//go:generate mockgen -source=catalog.go -destination=mocks/mock_catalog.go -package=mocks
type TargetCatalog interface {
	// ProjectTargets returns the existing targets of a canonical project root.
	// Optional-tier targets are included only when includeOptional is set.
	ProjectTargets(projectRoot string, includeOptional bool) []domain.CacheTarget

	// GlobalTargets returns the existing global caches for this platform.
	// Sizes are provisional.
	GlobalTargets() []domain.CacheTarget

	// GlobalPath returns the expected location of a global kind on this platform.
	// It returns false for kinds that do not apply here.
	GlobalPath(kind domain.TargetKind) (string, bool)

	// Entries lists every catalog row for this platform.
	Entries() []domain.CatalogEntry
}
