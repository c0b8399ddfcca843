// Package app implements the application layer for fclean.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"go.trai.ch/fclean/internal/core/domain"
	"go.trai.ch/fclean/internal/core/ports"
	"go.trai.ch/fclean/internal/engine/cleaner"
	"go.trai.ch/fclean/internal/engine/scanner"
	"go.trai.ch/zerr"
)

// defaultConcurrency is the number of parallel deletions when nothing else is configured.
const defaultConcurrency = 1

// logSettings is implemented by loggers whose format and level can change at runtime.
type logSettings interface {
	SetJSON(enable bool)
	SetVerbose(enable bool)
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	renderer     ports.Renderer
	confirmer    ports.Confirmer
	catalog      ports.TargetCatalog
	scanner      *scanner.Scanner
	cleaner      *cleaner.Cleaner
	stdout       io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	renderer ports.Renderer,
	confirmer ports.Confirmer,
	catalog ports.TargetCatalog,
	scan *scanner.Scanner,
	clean *cleaner.Cleaner,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		renderer:     renderer,
		confirmer:    confirmer,
		catalog:      catalog,
		scanner:      scan,
		cleaner:      clean,
		stdout:       os.Stdout,
	}
}

// WithOutput sets where results are written. Logs are unaffected.
func (a *App) WithOutput(w io.Writer) *App {
	if w == nil {
		w = os.Stdout
	}
	a.stdout = w
	return a
}

// OutputOptions configures presentation for every command.
type OutputOptions struct {
	JSON    bool
	Verbose bool
}

func (o OutputOptions) format() domain.OutputFormat {
	if o.JSON {
		return domain.FormatJSON
	}
	return domain.FormatText
}

// ScanOptions configuration for the Scan method.
type ScanOptions struct {
	OutputOptions

	// Flags holds the settings given explicitly on the command line.
	// They take precedence over the selected config profile.
	Flags      domain.Profile
	ConfigPath string
	Profile    string
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	ScanOptions

	// Apply must be set for anything to be deleted.
	Apply bool
	// Yes skips the confirmation prompt.
	Yes bool
}

// Scan finds cache targets and renders them without deleting anything.
func (a *App) Scan(ctx context.Context, opts ScanOptions) error {
	a.configureLogging(opts.OutputOptions)

	result, _, err := a.scan(ctx, opts)
	if err != nil {
		return err
	}

	return a.renderer.RenderScan(a.stdout, opts.format(), result)
}

// Clean scans, asks for confirmation, and deletes every validated target.
// It returns domain.ErrCleanIncomplete after rendering when any target failed.
func (a *App) Clean(ctx context.Context, opts CleanOptions) error {
	a.configureLogging(opts.OutputOptions)

	if !opts.Apply {
		return domain.ErrApplyRequired
	}

	result, profile, err := a.scan(ctx, opts.ScanOptions)
	if err != nil {
		return err
	}

	items := result.CleanItems()
	if len(items) == 0 {
		a.logger.Info("nothing to clean")
		return a.renderer.RenderClean(a.stdout, opts.format(), domain.NewCleanOutcome())
	}

	if !opts.Yes {
		question := fmt.Sprintf("Delete %s (%s)?",
			english.Plural(len(items), "target", ""),
			humanize.IBytes(uint64(max(result.TotalBytes(), 0))),
		)
		ok, confirmErr := a.confirmer.Confirm(question)
		if confirmErr != nil {
			return zerr.Wrap(confirmErr, "failed to read confirmation")
		}
		if !ok {
			return domain.ErrCleanAborted
		}
	}

	outcome := a.cleaner.Clean(ctx, items, cleaner.Options{
		Trash:       domain.BoolOr(profile.Trash, false),
		Concurrency: domain.IntOr(profile.Concurrency, defaultConcurrency),
	})

	if err := a.renderer.RenderClean(a.stdout, opts.format(), outcome); err != nil {
		return err
	}

	if outcome.HasFailures() {
		return domain.ErrCleanIncomplete
	}
	return nil
}

// Targets renders the catalog of known cache locations for this platform.
func (a *App) Targets(_ context.Context, opts OutputOptions) error {
	a.configureLogging(opts)
	return a.renderer.RenderCatalog(a.stdout, opts.format(), a.catalog.Entries())
}

// scan resolves the effective profile and runs the scanner.
func (a *App) scan(ctx context.Context, opts ScanOptions) (*domain.ScanResult, domain.Profile, error) {
	profile, err := a.resolveProfile(opts)
	if err != nil {
		return nil, domain.Profile{}, err
	}

	result, err := a.scanner.Scan(ctx, scanner.Options{
		Roots:           profile.Roots,
		IncludeDefaults: domain.BoolOr(profile.Defaults, false),
		IncludeOptional: domain.BoolOr(profile.Optional, false),
		IncludeGlobal:   domain.BoolOr(profile.Global, false),
		MaxDepth:        domain.IntOr(profile.MaxDepth, 0),
	})
	if err != nil {
		return nil, domain.Profile{}, err
	}

	a.logger.Debug(fmt.Sprintf("scan found %s and %s",
		english.Plural(result.ProjectCount(), "project", ""),
		english.Plural(result.TargetCount(), "target", ""),
	))
	return result, profile, nil
}

// resolveProfile layers command-line flags over the loaded config profile.
func (a *App) resolveProfile(opts ScanOptions) (domain.Profile, error) {
	loaded, err := a.configLoader.Load(opts.ConfigPath, opts.Profile)
	if err != nil {
		return domain.Profile{}, zerr.Wrap(err, "failed to load configuration")
	}

	profile := loaded.Overlay(opts.Flags)
	if depth := domain.IntOr(profile.MaxDepth, 0); depth < 0 {
		return domain.Profile{}, zerr.With(domain.ErrInvalidMaxDepth, "max_depth", depth)
	}
	return profile, nil
}

func (a *App) configureLogging(opts OutputOptions) {
	if l, ok := a.logger.(logSettings); ok {
		l.SetJSON(opts.JSON)
		l.SetVerbose(opts.Verbose)
	}
}
