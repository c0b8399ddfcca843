// Package safety gates every deletion behind an allowlist and a containment check.
package safety

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/fclean/internal/core/domain"
	"go.trai.ch/fclean/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Validator = (*Validator)(nil)

// globalSuffixes are the trailing path components each global kind must end in,
// unless the path equals the kind's configured location.
// Neither form may contain the home directory.
var globalSuffixes = map[domain.TargetKind][][]string{
	domain.KindPubCache:         {{".pub-cache"}, {"Pub", "Cache"}},
	domain.KindGradleCaches:     {{".gradle", "caches"}},
	domain.KindCocoaPodsCache:   {{"Library", "Caches", "CocoaPods"}},
	domain.KindXcodeDerivedData: {{"Xcode", "DerivedData"}},
}

// Validator checks that a target is still safe to delete.
type Validator struct {
	resolver ports.PathResolver
	catalog  ports.TargetCatalog
}

// New creates a new Validator.
func New(resolver ports.PathResolver, catalog ports.TargetCatalog) *Validator {
	return &Validator{
		resolver: resolver,
		catalog:  catalog,
	}
}

// Validate runs every check in order and returns the first rejection.
// The path is re-resolved here and never trusted from the scan; the resolved
// path is the one every check ran against and the only one safe to delete.
func (v *Validator) Validate(target domain.CacheTarget, projectRoot string) (string, error) {
	resolved, ok := v.resolver.ResolveCanonical(target.Path)
	if !ok {
		return "", zerr.With(domain.ErrPathUnresolvable, "path", target.Path)
	}

	if !target.Kind.IsKnown() {
		return "", zerr.With(domain.ErrKindNotAllowed, "kind", target.Kind.String())
	}

	if target.IsGlobal != target.Kind.IsGlobal() {
		return "", zerr.With(domain.ErrScopeMismatch, "kind", target.Kind.String())
	}

	if target.IsGlobal {
		if !v.matchesGlobal(target.Kind, resolved) {
			return "", zerr.With(domain.ErrGlobalPatternMismatch, "path", resolved)
		}
	} else if err := v.checkContainment(resolved, projectRoot); err != nil {
		return "", err
	}

	if _, err := os.Lstat(resolved); err != nil {
		return "", zerr.With(domain.ErrPathVanished, "path", resolved)
	}

	return resolved, nil
}

func (v *Validator) checkContainment(resolved, projectRoot string) error {
	if projectRoot == "" {
		return zerr.With(domain.ErrOutsideProjectRoot, "path", resolved)
	}
	root, ok := v.resolver.ResolveCanonical(projectRoot)
	if !ok {
		return zerr.With(domain.ErrPathUnresolvable, "project_root", projectRoot)
	}
	if !v.resolver.IsDescendant(resolved, root) {
		return zerr.With(zerr.With(domain.ErrOutsideProjectRoot, "path", resolved), "project_root", root)
	}
	return nil
}

func (v *Validator) matchesGlobal(kind domain.TargetKind, resolved string) bool {
	if v.coversHome(resolved) {
		return false
	}
	if expected, ok := v.catalog.GlobalPath(kind); ok {
		if canonical, ok := v.resolver.ResolveCanonical(expected); ok && canonical == resolved {
			return true
		}
	}
	for _, suffix := range globalSuffixes[kind] {
		if hasPathSuffix(resolved, suffix) {
			return true
		}
	}
	return false
}

// coversHome reports whether removing path would take the home directory or a filesystem root with it.
// Environment overrides can point anywhere, so this holds even for the configured location.
func (v *Validator) coversHome(path string) bool {
	if filepath.Dir(path) == path {
		return true
	}
	home, ok := v.resolver.ResolveCanonical(v.resolver.ExpandHome("~"))
	return ok && v.resolver.IsDescendant(home, path)
}

// hasPathSuffix reports whether the last components of path equal suffix, compared per component.
func hasPathSuffix(path string, suffix []string) bool {
	parts := strings.FieldsFunc(filepath.ToSlash(filepath.Clean(path)), func(r rune) bool { return r == '/' })
	if len(parts) <= len(suffix) {
		return false
	}
	tail := parts[len(parts)-len(suffix):]
	for i := range suffix {
		if tail[i] != suffix[i] {
			return false
		}
	}
	return true
}
