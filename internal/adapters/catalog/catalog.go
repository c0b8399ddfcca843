// Package catalog maps Flutter projects and the user environment to named cache locations.
package catalog

import (
	"os"
	"path/filepath"
	"runtime"

	"go.trai.ch/fclean/internal/core/domain"
	"go.trai.ch/fclean/internal/core/ports"
)

var _ ports.TargetCatalog = (*Catalog)(nil)

const globalTier = "global"

// Catalog enumerates per-project and global cache targets.
type Catalog struct {
	resolver ports.PathResolver
	sizer    ports.Sizer
	goos     string
	getenv   func(string) string
}

// New creates a Catalog for the running platform.
func New(resolver ports.PathResolver, sizer ports.Sizer) *Catalog {
	return &Catalog{
		resolver: resolver,
		sizer:    sizer,
		goos:     runtime.GOOS,
		getenv:   os.Getenv,
	}
}

// WithPlatform overrides the operating system and environment lookup.
func (c *Catalog) WithPlatform(goos string, getenv func(string) string) *Catalog {
	c.goos = goos
	c.getenv = getenv
	return c
}

// ProjectTargets returns the existing targets beneath projectRoot in table order.
// Targets reached through a symlink are dropped, whether they escape the project
// root or point back into it at something that is not a cache.
func (c *Catalog) ProjectTargets(projectRoot string, includeOptional bool) []domain.CacheTarget {
	root, ok := c.resolver.ResolveCanonical(projectRoot)
	if !ok {
		return []domain.CacheTarget{}
	}

	targets := make([]domain.CacheTarget, 0, len(domain.ProjectTargetSpecs))
	for _, spec := range domain.ProjectTargetSpecs {
		if spec.Tier == domain.TierOptional && !includeOptional {
			continue
		}

		expected := filepath.Join(append([]string{root}, spec.Segments...)...)
		path, ok := c.resolver.ResolveCanonical(expected)
		if !ok || path != expected {
			continue
		}
		if !c.resolver.IsDescendant(path, root) {
			continue
		}

		targets = append(targets, domain.CacheTarget{
			Kind:      spec.Kind,
			Path:      path,
			SizeBytes: c.sizer.Size(path),
			Exists:    true,
		})
	}
	return targets
}

// GlobalTargets returns the global caches that exist on this platform.
// SizeBytes holds the top-level entry's own metadata size until refined by a Sizer.
func (c *Catalog) GlobalTargets() []domain.CacheTarget {
	var targets []domain.CacheTarget
	for _, kind := range domain.GlobalKinds {
		location, ok := c.GlobalPath(kind)
		if !ok {
			continue
		}
		path, ok := c.resolver.ResolveCanonical(location)
		if !ok {
			continue
		}
		info, err := os.Lstat(path)
		if err != nil {
			continue
		}
		targets = append(targets, domain.CacheTarget{
			Kind:      kind,
			Path:      path,
			SizeBytes: info.Size(),
			IsGlobal:  true,
			Exists:    true,
		})
	}
	return targets
}

// GlobalPath returns where a global kind lives on this platform.
// The environment override is checked before the computed default.
func (c *Catalog) GlobalPath(kind domain.TargetKind) (string, bool) {
	home := c.resolver.ExpandHome("~")
	if home == "~" {
		home = ""
	}

	switch kind {
	case domain.KindPubCache:
		if v := c.getenv(domain.PubCacheEnv); v != "" {
			return c.resolver.ExpandHome(v), true
		}
		if c.goos == "windows" {
			if local := c.getenv("LOCALAPPDATA"); local != "" {
				return filepath.Join(local, "Pub", "Cache"), true
			}
			return homeJoin(home, "AppData", "Local", "Pub", "Cache")
		}
		return homeJoin(home, ".pub-cache")

	case domain.KindGradleCaches:
		if v := c.getenv(domain.GradleUserHomeEnv); v != "" {
			return filepath.Join(c.resolver.ExpandHome(v), "caches"), true
		}
		return homeJoin(home, ".gradle", "caches")

	case domain.KindCocoaPodsCache:
		if c.goos != "darwin" {
			return "", false
		}
		return homeJoin(home, "Library", "Caches", "CocoaPods")

	case domain.KindXcodeDerivedData:
		if c.goos != "darwin" {
			return "", false
		}
		return homeJoin(home, "Library", "Developer", "Xcode", "DerivedData")

	default:
		return "", false
	}
}

// Entries lists every project row followed by every global row.
func (c *Catalog) Entries() []domain.CatalogEntry {
	entries := make([]domain.CatalogEntry, 0, len(domain.ProjectTargetSpecs)+len(domain.GlobalKinds))
	for _, spec := range domain.ProjectTargetSpecs {
		entries = append(entries, domain.CatalogEntry{
			Kind:      spec.Kind,
			Location:  filepath.Join(spec.Segments...),
			Tier:      spec.Tier.String(),
			Available: true,
		})
	}
	for _, kind := range domain.GlobalKinds {
		location, applicable := c.GlobalPath(kind)
		available := false
		if applicable {
			_, available = c.resolver.ResolveCanonical(location)
		}
		entries = append(entries, domain.CatalogEntry{
			Kind:      kind,
			Location:  location,
			Tier:      globalTier,
			IsGlobal:  true,
			Available: available,
		})
	}
	return entries
}

func homeJoin(home string, elem ...string) (string, bool) {
	if home == "" {
		return "", false
	}
	return filepath.Join(append([]string{home}, elem...)...), true
}
