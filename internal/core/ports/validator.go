package ports

import "go.trai.ch/fclean/internal/core/domain"

// Validator gates every deletion.
//
//go:generate mockgen -source=validator.go -destination=mocks/mock_validator.go -package=mocks
type Validator interface {
	// Validate returns the canonical path to delete when target may be deleted.
	// projectRoot is empty for global targets.
	// The returned error describes why the target was rejected.
	Validate(target domain.CacheTarget, projectRoot string) (string, error)
}
