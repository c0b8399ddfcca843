// Package fs provides file system adapters for resolving paths, discovering projects and sizing caches.
package fs

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/fclean/internal/core/ports"
)

var _ ports.PathResolver = (*Resolver)(nil)

// Resolver implements the PathResolver interface on top of filepath.EvalSymlinks.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// ExpandHome replaces a leading "~" with the effective home directory.
// Paths that do not start with "~" or "~/" are returned unchanged, as is every path when
// the home directory cannot be determined.
func (r *Resolver) ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

// ResolveCanonical returns the absolute, symlink-free form of path.
// It reports false when the path does not exist.
func (r *Resolver) ResolveCanonical(path string) (string, bool) {
	if path == "" {
		return "", false
	}
	abs, err := filepath.Abs(r.ExpandHome(path))
	if err != nil {
		return "", false
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", false
	}
	return resolved, true
}

// IsDescendant reports whether child equals parent or lies beneath it.
// Both paths are cleaned but not resolved.
func (r *Resolver) IsDescendant(child, parent string) bool {
	return IsDescendant(child, parent)
}

// IsDescendant is the containment primitive shared by every safety check.
func IsDescendant(child, parent string) bool {
	if child == "" || parent == "" {
		return false
	}
	child = filepath.Clean(child)
	parent = filepath.Clean(parent)
	if child == parent {
		return true
	}
	prefix := parent
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	return strings.HasPrefix(child, prefix)
}
