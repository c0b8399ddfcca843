package fs

import (
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/fclean/internal/core/domain"
	"go.trai.ch/fclean/internal/core/ports"
)

var _ ports.ProjectDetector = (*Detector)(nil)

// Detector discovers Flutter project roots with a bounded, deduplicating depth-first walk.
type Detector struct {
	resolver ports.PathResolver
}

// NewDetector creates a new Detector.
func NewDetector(resolver ports.PathResolver) *Detector {
	return &Detector{resolver: resolver}
}

// IsProjectRoot reports whether dir contains the manifest file and at least one secondary marker.
func (d *Detector) IsProjectRoot(dir string) bool {
	manifest, err := os.Stat(filepath.Join(dir, domain.ManifestFileName))
	if err != nil || manifest.IsDir() {
		return false
	}
	for _, marker := range domain.SecondaryMarkers {
		info, err := os.Stat(filepath.Join(dir, marker.Name))
		if err == nil && info.IsDir() == marker.IsDir {
			return true
		}
	}
	return false
}

// Detect walks each root in order. Roots that cannot be resolved are skipped.
// Projects within a root are reported in directory-listing order.
func (d *Detector) Detect(roots []string, maxDepth int, visited *domain.VisitedSet) []domain.RootProjects {
	if visited == nil {
		visited = domain.NewVisitedSet()
	}

	results := make([]domain.RootProjects, 0, len(roots))
	for _, root := range roots {
		canonical, ok := d.resolver.ResolveCanonical(root)
		if !ok {
			continue
		}
		found := domain.RootProjects{Root: root, Projects: []string{}}
		d.walk(canonical, 0, maxDepth, visited, &found.Projects)
		results = append(results, found)
	}
	return results
}

func (d *Detector) walk(dir string, depth, maxDepth int, visited *domain.VisitedSet, found *[]string) {
	if maxDepth > 0 && depth >= maxDepth {
		return
	}

	canonical, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return
	}
	if !visited.Visit(canonical) {
		return
	}

	if d.IsProjectRoot(canonical) {
		*found = append(*found, canonical)
		return
	}

	entries, err := os.ReadDir(canonical)
	if err != nil {
		return
	}

	for _, entry := range entries {
		if domain.IsPrunedDir(entry.Name()) {
			continue
		}
		child := filepath.Join(canonical, entry.Name())
		if !isDirEntry(child, entry) {
			continue
		}
		d.walk(child, depth+1, maxDepth, visited, found)
	}
}

// isDirEntry reports whether entry is a directory, following a symlink entry to its target.
func isDirEntry(path string, entry fs.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
