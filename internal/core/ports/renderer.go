package ports

import (
	"io"

	"go.trai.ch/fclean/internal/core/domain"
)

// Renderer presents results to the user.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	RenderScan(w io.Writer, format domain.OutputFormat, result *domain.ScanResult) error
	RenderClean(w io.Writer, format domain.OutputFormat, outcome *domain.CleanOutcome) error
	RenderCatalog(w io.Writer, format domain.OutputFormat, entries []domain.CatalogEntry) error
}
