package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/fclean/internal/app"
	"go.trai.ch/fclean/internal/core/domain"
	"go.trai.ch/fclean/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	loader    *mocks.MockConfigLoader
	logger    *mocks.MockLogger
	renderer  *mocks.MockRenderer
	confirmer *mocks.MockConfirmer
	catalog   *mocks.MockTargetCatalog
}

func newTestApp(t *testing.T) (*app.App, *testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	deps := &testDeps{
		loader:    mocks.NewMockConfigLoader(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
		renderer:  mocks.NewMockRenderer(ctrl),
		confirmer: mocks.NewMockConfirmer(ctrl),
		catalog:   mocks.NewMockTargetCatalog(ctrl),
	}

	application := app.New(deps.loader, deps.logger, deps.renderer, deps.confirmer, deps.catalog, nil, nil)
	return application, deps
}

func providerFor(application *app.App, deps *testDeps) ComponentProvider {
	return func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: deps.logger,
		}, func() {}, nil
	}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	application, deps := newTestApp(t)

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, stderr, providerFor(application, deps))

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "fclean version")
}

// TestRun_TargetsWritesToStdout verifies that results go to the stdout passed in.
func TestRun_TargetsWritesToStdout(t *testing.T) {
	application, deps := newTestApp(t)

	entries := []domain.CatalogEntry{{Kind: domain.KindBuild, Location: "build", Tier: "required", Available: true}}
	deps.catalog.EXPECT().Entries().Return(entries)
	deps.renderer.EXPECT().
		RenderCatalog(gomock.Any(), domain.FormatJSON, entries).
		DoAndReturn(func(w io.Writer, _ domain.OutputFormat, _ []domain.CatalogEntry) error {
			_, err := w.Write([]byte("[]\n"))
			return err
		})

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"targets", "--json"}, stdout, new(bytes.Buffer), providerFor(application, deps))

	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "[]\n", stdout.String())
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run logs the error and returns 1 when a command fails.
func TestRun_ExecutionError(t *testing.T) {
	application, deps := newTestApp(t)

	deps.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrApplyRequired)
	})

	exitCode := run(context.Background(), []string{"clean"}, new(bytes.Buffer), new(bytes.Buffer), providerFor(application, deps))

	assert.Equal(t, 1, exitCode)
}

// TestRun_LoadError verifies that configuration failures are reported through the logger.
func TestRun_LoadError(t *testing.T) {
	application, deps := newTestApp(t)

	deps.loader.EXPECT().Load("/missing.yaml", "").Return(nil, errors.New("load failed"))
	deps.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorContains(t, err, "load failed")
	})

	args := []string{"scan", "--config", "/missing.yaml", "/src"}
	exitCode := run(context.Background(), args, new(bytes.Buffer), new(bytes.Buffer), providerFor(application, deps))

	assert.Equal(t, 1, exitCode)
}

// TestRun_AppliesOptions verifies that app options run before the command executes.
func TestRun_AppliesOptions(t *testing.T) {
	application, deps := newTestApp(t)

	calls := 0
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), new(bytes.Buffer),
		providerFor(application, deps),
		func(*app.App) { calls++ },
	)

	assert.Equal(t, 0, exitCode)
	assert.Equal(t, 1, calls)
}

// TestRun_ShutsDownTracerProvider verifies that the provider cleanup stops tracing after the command.
func TestRun_ShutsDownTracerProvider(t *testing.T) {
	application, deps := newTestApp(t)

	shutdowns := 0
	components := &app.Components{
		App:    application,
		Logger: deps.logger,
		Shutdown: func(ctx context.Context) error {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			shutdowns++
			return nil
		},
	}
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, shutdownFor(components), nil
	}

	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), new(bytes.Buffer), provider)

	assert.Equal(t, 0, exitCode)
	assert.Equal(t, 1, shutdowns)
}

// TestShutdownFor_NoProvider verifies that the cleanup tolerates missing components.
func TestShutdownFor_NoProvider(t *testing.T) {
	assert.NotPanics(t, shutdownFor(nil))
	assert.NotPanics(t, shutdownFor(&app.Components{}))
	assert.NotPanics(t, shutdownFor(&app.Components{Shutdown: func(context.Context) error {
		return errors.New("already shut down")
	}}))
}
