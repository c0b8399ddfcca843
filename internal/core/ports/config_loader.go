package ports

import "go.trai.ch/fclean/internal/core/domain"

// ConfigLoader defines the interface for loading persisted preferences.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the profile file at path, or the per-user default when path is empty,
	// and overlays the named profile when profile is not empty.
	// A missing default file yields an empty Profile and no error.
	Load(path, profile string) (*domain.Profile, error)
}
