// Package cleaner deletes validated cache targets and aggregates the outcome.
package cleaner

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/fclean/internal/core/domain"
	"go.trai.ch/fclean/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Options configures one clean.
type Options struct {
	// Trash moves targets to the platform trash instead of removing them.
	Trash bool
	// Concurrency bounds parallel deletions. Zero or less deletes one target at a time.
	Concurrency int
}

// Cleaner removes cache targets after revalidating each one.
type Cleaner struct {
	validator ports.Validator
	trasher   ports.Trasher
	observer  ports.Observer
	logger    ports.Logger
	remove    func(string) error
	lstat     func(string) (fs.FileInfo, error)
}

// New creates a new Cleaner.
func New(validator ports.Validator, trasher ports.Trasher, observer ports.Observer, logger ports.Logger) *Cleaner {
	return &Cleaner{
		validator: validator,
		trasher:   trasher,
		observer:  observer,
		logger:    logger,
		remove:    os.RemoveAll,
		lstat:     os.Lstat,
	}
}

// WithRemover replaces the direct removal function.
func (c *Cleaner) WithRemover(remove func(string) error) *Cleaner {
	c.remove = remove
	return c
}

// Clean validates every item and deletes the accepted ones.
// Rejections and deletion failures are recorded in the outcome and never abort the run.
// Accepted targets are deleted and recorded under the canonical path the validator returned.
// Duplicate paths are processed once.
func (c *Cleaner) Clean(ctx context.Context, items []domain.CleanItem, opts Options) *domain.CleanOutcome {
	outcome := domain.NewCleanOutcome()

	accepted := make([]domain.CacheTarget, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		path := item.Target.Path
		if _, dup := seen[path]; dup {
			continue
		}
		seen[path] = struct{}{}

		resolved, err := c.validator.Validate(item.Target, item.ProjectRoot)
		if err != nil {
			c.logger.Warn("skipping " + path + ": " + err.Error())
			outcome.RecordFailed(path, err.Error())
			continue
		}
		if resolved != path {
			if _, dup := seen[resolved]; dup {
				continue
			}
			seen[resolved] = struct{}{}
		}

		target := item.Target
		target.Path = resolved
		accepted = append(accepted, target)
	}

	var g errgroup.Group
	g.SetLimit(max(opts.Concurrency, 1))

	for _, target := range accepted {
		g.Go(func() error {
			err := c.delete(ctx, target.Path, opts.Trash)
			c.observer.DeletionAttempted(target, err)
			if err != nil {
				err = zerr.With(zerr.Wrap(err, domain.ErrDeletionFailed.Error()), "path", target.Path)
				outcome.RecordFailed(target.Path, err.Error())
				return nil
			}
			outcome.RecordDeleted(target.Path, target.SizeBytes)
			return nil
		})
	}

	_ = g.Wait()
	return outcome
}

// delete removes path, preferring the trash when requested.
// A trash failure, or a path still present afterwards, falls back to direct removal.
func (c *Cleaner) delete(ctx context.Context, path string, useTrash bool) error {
	if useTrash {
		err := c.trasher.MoveToTrash(ctx, path)
		if err == nil {
			if _, statErr := c.lstat(path); errors.Is(statErr, fs.ErrNotExist) {
				return nil
			}
			c.logger.Warn("trash left " + path + " in place, removing it directly")
		} else {
			c.logger.Warn("could not trash " + path + ", removing it directly: " + err.Error())
		}
	}

	return c.remove(path)
}
