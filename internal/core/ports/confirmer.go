package ports

// Confirmer asks the user to approve a destructive operation.
//
//go:generate mockgen -source=confirmer.go -destination=mocks/mock_confirmer.go -package=mocks
type Confirmer interface {
	// Confirm shows question and reports whether the user accepted.
	// A non-interactive input declines.
	Confirm(question string) (bool, error)
}
