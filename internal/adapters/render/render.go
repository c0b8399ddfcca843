// Package render presents scan, clean and catalog results as text or JSON.
package render

import (
	"io"

	"go.trai.ch/fclean/internal/core/domain"
	"go.trai.ch/fclean/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer by dispatching on the requested format.
type Renderer struct{}

// New creates a new Renderer.
func New() *Renderer {
	return &Renderer{}
}

// RenderScan writes a scan result.
func (r *Renderer) RenderScan(w io.Writer, format domain.OutputFormat, result *domain.ScanResult) error {
	if result == nil {
		result = &domain.ScanResult{}
	}
	switch format {
	case domain.FormatJSON:
		return writeJSON(w, newScanDocument(result))
	case domain.FormatText, "":
		return writeScanText(w, result)
	default:
		return unknownFormat(format)
	}
}

// RenderClean writes a clean outcome.
func (r *Renderer) RenderClean(w io.Writer, format domain.OutputFormat, outcome *domain.CleanOutcome) error {
	if outcome == nil {
		outcome = domain.NewCleanOutcome()
	}
	switch format {
	case domain.FormatJSON:
		return writeJSON(w, newCleanDocument(outcome))
	case domain.FormatText, "":
		return writeCleanText(w, outcome)
	default:
		return unknownFormat(format)
	}
}

// RenderCatalog writes the list of known targets.
func (r *Renderer) RenderCatalog(w io.Writer, format domain.OutputFormat, entries []domain.CatalogEntry) error {
	switch format {
	case domain.FormatJSON:
		if entries == nil {
			entries = []domain.CatalogEntry{}
		}
		return writeJSON(w, entries)
	case domain.FormatText, "":
		return writeCatalogText(w, entries)
	default:
		return unknownFormat(format)
	}
}

func unknownFormat(format domain.OutputFormat) error {
	return zerr.With(domain.ErrUnknownOutputFormat, "format", string(format))
}
