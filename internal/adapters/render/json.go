package render

import (
	"encoding/json"
	"io"

	"go.trai.ch/fclean/internal/core/domain"
	"go.trai.ch/zerr"
)

type scanDocument struct {
	PriorityProjects []projectDocument    `json:"priority_projects"`
	DefaultProjects  []projectDocument    `json:"default_projects"`
	GlobalTargets    []domain.CacheTarget `json:"global_targets"`
	ProjectCount     int                  `json:"project_count"`
	TargetCount      int                  `json:"target_count"`
	TotalBytes       int64                `json:"total_bytes"`
}

type projectDocument struct {
	RootPath   string               `json:"root_path"`
	IsPriority bool                 `json:"is_priority"`
	Targets    []domain.CacheTarget `json:"targets"`
	TotalBytes int64                `json:"total_bytes"`
}

type cleanDocument struct {
	DeletedPaths   []string          `json:"deleted_paths"`
	FailedPaths    map[string]string `json:"failed_paths"`
	DeletedCount   int               `json:"deleted_count"`
	FailedCount    int               `json:"failed_count"`
	ReclaimedBytes int64             `json:"reclaimed_bytes"`
}

func newScanDocument(result *domain.ScanResult) scanDocument {
	globals := result.GlobalTargets
	if globals == nil {
		globals = []domain.CacheTarget{}
	}
	return scanDocument{
		PriorityProjects: newProjectDocuments(result.PriorityProjects),
		DefaultProjects:  newProjectDocuments(result.DefaultProjects),
		GlobalTargets:    globals,
		ProjectCount:     result.ProjectCount(),
		TargetCount:      result.TargetCount(),
		TotalBytes:       result.TotalBytes(),
	}
}

func newProjectDocuments(projects []domain.ProjectInfo) []projectDocument {
	docs := make([]projectDocument, 0, len(projects))
	for _, p := range projects {
		targets := p.Targets
		if targets == nil {
			targets = []domain.CacheTarget{}
		}
		docs = append(docs, projectDocument{
			RootPath:   p.RootPath,
			IsPriority: p.IsPriority,
			Targets:    targets,
			TotalBytes: p.TotalBytes(),
		})
	}
	return docs
}

func newCleanDocument(outcome *domain.CleanOutcome) cleanDocument {
	deleted := outcome.DeletedPaths
	if deleted == nil {
		deleted = []string{}
	}
	failed := outcome.FailedPaths
	if failed == nil {
		failed = map[string]string{}
	}
	return cleanDocument{
		DeletedPaths:   deleted,
		FailedPaths:    failed,
		DeletedCount:   len(deleted),
		FailedCount:    len(failed),
		ReclaimedBytes: outcome.ReclaimedBytes,
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return zerr.Wrap(err, "failed to encode JSON output")
	}
	return nil
}
