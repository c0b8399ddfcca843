// Package scanner composes project detection, target enumeration and global cache sizing into one scan.
package scanner

import (
	"context"
	"runtime"

	"go.trai.ch/fclean/internal/core/domain"
	"go.trai.ch/fclean/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Options configures one scan.
type Options struct {
	// Roots are walked first and their projects are reported as priority projects.
	Roots []string
	// IncludeDefaults also walks the platform default roots under the home directory.
	IncludeDefaults bool
	// IncludeOptional enumerates optional-tier project targets.
	IncludeOptional bool
	// IncludeGlobal enumerates the global caches.
	IncludeGlobal bool
	// MaxDepth bounds recursion below each root. Zero means unlimited.
	MaxDepth int
}

// Scanner runs multi-root scans.
type Scanner struct {
	resolver ports.PathResolver
	detector ports.ProjectDetector
	catalog  ports.TargetCatalog
	sizer    ports.Sizer
	observer ports.Observer
	logger   ports.Logger
}

// New creates a new Scanner.
func New(
	resolver ports.PathResolver,
	detector ports.ProjectDetector,
	catalog ports.TargetCatalog,
	sizer ports.Sizer,
	observer ports.Observer,
	logger ports.Logger,
) *Scanner {
	return &Scanner{
		resolver: resolver,
		detector: detector,
		catalog:  catalog,
		sizer:    sizer,
		observer: observer,
		logger:   logger,
	}
}

// Scan walks the priority roots, then the default roots when requested, and finally
// sizes the global caches when requested. Unreadable or missing paths are skipped.
// It fails only when nothing at all was asked for.
func (s *Scanner) Scan(ctx context.Context, opts Options) (*domain.ScanResult, error) {
	if len(opts.Roots) == 0 && !opts.IncludeDefaults && !opts.IncludeGlobal {
		return nil, domain.ErrNoRoots
	}
	if opts.MaxDepth < 0 {
		return nil, zerr.With(domain.ErrInvalidMaxDepth, "max_depth", opts.MaxDepth)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &domain.ScanResult{
		PriorityProjects: []domain.ProjectInfo{},
		DefaultProjects:  []domain.ProjectInfo{},
		GlobalTargets:    []domain.CacheTarget{},
	}

	for _, root := range opts.Roots {
		if _, ok := s.resolver.ResolveCanonical(s.resolver.ExpandHome(root)); !ok {
			s.logger.Warn("root " + root + " does not exist, skipping")
		}
	}

	visited := domain.NewVisitedSet()
	seen := make(map[string]struct{})

	for _, rp := range s.detector.Detect(opts.Roots, opts.MaxDepth, visited) {
		result.PriorityProjects = s.collect(result.PriorityProjects, rp.Projects, seen, true, opts.IncludeOptional)
	}

	if opts.IncludeDefaults {
		roots := s.DefaultRoots()
		s.logger.Debug("walking default roots")
		for _, rp := range s.detector.Detect(roots, opts.MaxDepth, visited) {
			result.DefaultProjects = s.collect(result.DefaultProjects, rp.Projects, seen, false, opts.IncludeOptional)
		}
	}

	if opts.IncludeGlobal {
		result.GlobalTargets = s.globalTargets(ctx)
	}

	return result, nil
}

// DefaultRoots returns the existing home-relative default roots, canonical and without duplicates.
func (s *Scanner) DefaultRoots() []string {
	roots := make([]string, 0, len(domain.DefaultRootNames))
	seen := make(map[string]struct{}, len(domain.DefaultRootNames))
	for _, name := range domain.DefaultRootNames {
		canonical, ok := s.resolver.ResolveCanonical(s.resolver.ExpandHome("~/" + name))
		if !ok {
			continue
		}
		if _, dup := seen[canonical]; dup {
			continue
		}
		seen[canonical] = struct{}{}
		roots = append(roots, canonical)
	}
	return roots
}

// collect enumerates targets for each new project and appends those that have any.
func (s *Scanner) collect(
	dst []domain.ProjectInfo,
	projects []string,
	seen map[string]struct{},
	priority, includeOptional bool,
) []domain.ProjectInfo {
	for _, root := range projects {
		if _, dup := seen[root]; dup {
			continue
		}
		seen[root] = struct{}{}
		s.observer.ProjectFound(root, priority)

		targets := s.catalog.ProjectTargets(root, includeOptional)
		for _, t := range targets {
			s.observer.TargetSized(t)
		}
		if len(targets) == 0 {
			continue
		}

		dst = append(dst, domain.ProjectInfo{
			RootPath:   root,
			Targets:    targets,
			IsPriority: priority,
		})
	}
	return dst
}

// globalTargets replaces each provisional size with a full recursive size.
func (s *Scanner) globalTargets(ctx context.Context) []domain.CacheTarget {
	targets := s.catalog.GlobalTargets()
	refined := make([]domain.CacheTarget, len(targets))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, t := range targets {
		g.Go(func() error {
			refined[i] = t.WithSize(s.sizer.Size(t.Path))
			return nil
		})
	}
	_ = g.Wait()

	for _, t := range refined {
		s.observer.TargetSized(t)
	}
	return refined
}
