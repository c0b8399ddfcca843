package app_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fclean/internal/adapters/catalog"
	"go.trai.ch/fclean/internal/adapters/fs"
	"go.trai.ch/fclean/internal/adapters/logger"
	"go.trai.ch/fclean/internal/adapters/telemetry"
	"go.trai.ch/fclean/internal/app"
	"go.trai.ch/fclean/internal/core/domain"
	"go.trai.ch/fclean/internal/core/ports/mocks"
	"go.trai.ch/fclean/internal/engine/cleaner"
	"go.trai.ch/fclean/internal/engine/safety"
	"go.trai.ch/fclean/internal/engine/scanner"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	app       *app.App
	loader    *mocks.MockConfigLoader
	renderer  *mocks.MockRenderer
	confirmer *mocks.MockConfirmer
	stdout    *bytes.Buffer
}

func newFixture(t *testing.T, remove func(string) error) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	resolver := fs.NewResolver()
	sizer := fs.NewSizer()
	cat := catalog.New(resolver, sizer).WithPlatform("linux", func(string) string { return "" })
	observer := telemetry.NewNoOpObserver()

	scan := scanner.New(resolver, fs.NewDetector(resolver), cat, sizer, observer, log)
	clean := cleaner.New(safety.New(resolver, cat), mocks.NewMockTrasher(ctrl), observer, log)
	if remove != nil {
		clean = clean.WithRemover(remove)
	}

	f := &fixture{
		loader:    mocks.NewMockConfigLoader(ctrl),
		renderer:  mocks.NewMockRenderer(ctrl),
		confirmer: mocks.NewMockConfirmer(ctrl),
		stdout:    &bytes.Buffer{},
	}
	f.app = app.New(f.loader, log, f.renderer, f.confirmer, cat, scan, clean).WithOutput(f.stdout)
	return f
}

func canonicalTempDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return dir
}

func writeSized(t *testing.T, path string, size int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("x", size)), domain.PrivateFilePerm))
}

// makeWorkspace creates root/app, a project two levels down with a 4096 byte build dir
// and a 2048 byte .dart_tool dir.
func makeWorkspace(t *testing.T) (root, project string) {
	t.Helper()
	root = canonicalTempDir(t)
	project = filepath.Join(root, "clients", "app")
	writeSized(t, filepath.Join(project, domain.ManifestFileName), 16)
	writeSized(t, filepath.Join(project, domain.MetadataFileName), 16)
	writeSized(t, filepath.Join(project, "build", "app.dill"), 4096)
	writeSized(t, filepath.Join(project, ".dart_tool", "package_config.json"), 2048)
	return root, project
}

func intPtr(i int) *int    { return &i }
func boolPtr(b bool) *bool { return &b }

func TestApp_Scan(t *testing.T) {
	root, project := makeWorkspace(t)
	f := newFixture(t, nil)

	f.loader.EXPECT().Load("", "").Return(&domain.Profile{}, nil)
	f.renderer.EXPECT().RenderScan(f.stdout, domain.FormatText, gomock.Any()).
		DoAndReturn(func(_ io.Writer, _ domain.OutputFormat, result *domain.ScanResult) error {
			require.Len(t, result.PriorityProjects, 1)
			assert.Equal(t, project, result.PriorityProjects[0].RootPath)
			assert.Equal(t, int64(6144), result.TotalBytes())
			return nil
		})

	err := f.app.Scan(t.Context(), app.ScanOptions{Flags: domain.Profile{Roots: []string{root}}})
	require.NoError(t, err)
}

func TestApp_Scan_FlagsOverrideProfile(t *testing.T) {
	root, _ := makeWorkspace(t)
	f := newFixture(t, nil)

	f.loader.EXPECT().Load("/etc/fclean.yaml", "ci").
		Return(&domain.Profile{Roots: []string{root}, MaxDepth: intPtr(1)}, nil).Times(2)

	f.renderer.EXPECT().RenderScan(f.stdout, domain.FormatJSON, gomock.Any()).
		DoAndReturn(func(_ io.Writer, _ domain.OutputFormat, result *domain.ScanResult) error {
			assert.Zero(t, result.ProjectCount())
			return nil
		})
	err := f.app.Scan(t.Context(), app.ScanOptions{
		OutputOptions: app.OutputOptions{JSON: true},
		ConfigPath:    "/etc/fclean.yaml",
		Profile:       "ci",
	})
	require.NoError(t, err)

	f.renderer.EXPECT().RenderScan(f.stdout, domain.FormatJSON, gomock.Any()).
		DoAndReturn(func(_ io.Writer, _ domain.OutputFormat, result *domain.ScanResult) error {
			assert.Equal(t, 1, result.ProjectCount())
			return nil
		})
	err = f.app.Scan(t.Context(), app.ScanOptions{
		OutputOptions: app.OutputOptions{JSON: true},
		Flags:         domain.Profile{MaxDepth: intPtr(0)},
		ConfigPath:    "/etc/fclean.yaml",
		Profile:       "ci",
	})
	require.NoError(t, err)
}

func TestApp_Scan_Errors(t *testing.T) {
	t.Run("config error", func(t *testing.T) {
		f := newFixture(t, nil)
		f.loader.EXPECT().Load("missing.yaml", "").Return(nil, domain.ErrConfigNotFound)

		err := f.app.Scan(t.Context(), app.ScanOptions{ConfigPath: "missing.yaml"})
		assert.ErrorContains(t, err, domain.ErrConfigNotFound.Error())
	})

	t.Run("no roots", func(t *testing.T) {
		f := newFixture(t, nil)
		f.loader.EXPECT().Load("", "").Return(&domain.Profile{}, nil)

		err := f.app.Scan(t.Context(), app.ScanOptions{})
		assert.ErrorIs(t, err, domain.ErrNoRoots)
	})

	t.Run("negative depth flag", func(t *testing.T) {
		f := newFixture(t, nil)
		f.loader.EXPECT().Load("", "").Return(&domain.Profile{}, nil)

		err := f.app.Scan(t.Context(), app.ScanOptions{Flags: domain.Profile{Roots: []string{"."}, MaxDepth: intPtr(-3)}})
		assert.ErrorContains(t, err, domain.ErrInvalidMaxDepth.Error())
	})
}

func TestApp_Clean_RequiresApply(t *testing.T) {
	root, project := makeWorkspace(t)
	f := newFixture(t, nil)

	err := f.app.Clean(t.Context(), app.CleanOptions{
		ScanOptions: app.ScanOptions{Flags: domain.Profile{Roots: []string{root}}},
	})

	require.ErrorIs(t, err, domain.ErrApplyRequired)
	assert.DirExists(t, filepath.Join(project, "build"))
}

func TestApp_Clean_Declined(t *testing.T) {
	root, project := makeWorkspace(t)
	f := newFixture(t, nil)

	f.loader.EXPECT().Load("", "").Return(&domain.Profile{}, nil)
	f.confirmer.EXPECT().Confirm("Delete 2 targets (6.0 KiB)?").Return(false, nil)

	err := f.app.Clean(t.Context(), app.CleanOptions{
		ScanOptions: app.ScanOptions{Flags: domain.Profile{Roots: []string{root}}},
		Apply:       true,
	})

	require.ErrorIs(t, err, domain.ErrCleanAborted)
	assert.DirExists(t, filepath.Join(project, "build"))
	assert.DirExists(t, filepath.Join(project, ".dart_tool"))
}

func TestApp_Clean_ConfirmError(t *testing.T) {
	root, _ := makeWorkspace(t)
	f := newFixture(t, nil)

	f.loader.EXPECT().Load("", "").Return(&domain.Profile{}, nil)
	f.confirmer.EXPECT().Confirm(gomock.Any()).Return(false, errors.New("tty closed"))

	err := f.app.Clean(t.Context(), app.CleanOptions{
		ScanOptions: app.ScanOptions{Flags: domain.Profile{Roots: []string{root}}},
		Apply:       true,
	})
	assert.ErrorContains(t, err, "tty closed")
}

func TestApp_Clean_Confirmed(t *testing.T) {
	root, project := makeWorkspace(t)
	f := newFixture(t, nil)

	f.loader.EXPECT().Load("", "").Return(&domain.Profile{Concurrency: intPtr(2)}, nil)
	f.confirmer.EXPECT().Confirm(gomock.Any()).Return(true, nil)
	f.renderer.EXPECT().RenderClean(f.stdout, domain.FormatText, gomock.Any()).
		DoAndReturn(func(_ io.Writer, _ domain.OutputFormat, outcome *domain.CleanOutcome) error {
			assert.Equal(t, int64(6144), outcome.ReclaimedBytes)
			assert.Len(t, outcome.DeletedPaths, 2)
			return nil
		})

	err := f.app.Clean(t.Context(), app.CleanOptions{
		ScanOptions: app.ScanOptions{Flags: domain.Profile{Roots: []string{root}}},
		Apply:       true,
	})

	require.NoError(t, err)
	assert.NoDirExists(t, filepath.Join(project, "build"))
	assert.NoDirExists(t, filepath.Join(project, ".dart_tool"))
	assert.FileExists(t, filepath.Join(project, domain.ManifestFileName))
}

func TestApp_Clean_Incomplete(t *testing.T) {
	root, project := makeWorkspace(t)
	f := newFixture(t, func(path string) error {
		if filepath.Base(path) == "build" {
			return errors.New("device busy")
		}
		return os.RemoveAll(path)
	})

	f.loader.EXPECT().Load("", "").Return(&domain.Profile{}, nil)
	f.renderer.EXPECT().RenderClean(f.stdout, domain.FormatJSON, gomock.Any()).
		DoAndReturn(func(_ io.Writer, _ domain.OutputFormat, outcome *domain.CleanOutcome) error {
			assert.Equal(t, []string{filepath.Join(project, ".dart_tool")}, outcome.DeletedPaths)
			assert.Contains(t, outcome.FailedPaths, filepath.Join(project, "build"))
			return nil
		})

	err := f.app.Clean(t.Context(), app.CleanOptions{
		ScanOptions: app.ScanOptions{
			OutputOptions: app.OutputOptions{JSON: true},
			Flags:         domain.Profile{Roots: []string{root}, Trash: boolPtr(false)},
		},
		Apply: true,
		Yes:   true,
	})

	require.ErrorIs(t, err, domain.ErrCleanIncomplete)
	assert.DirExists(t, filepath.Join(project, "build"))
}

func TestApp_Clean_NothingToClean(t *testing.T) {
	root := canonicalTempDir(t)
	f := newFixture(t, nil)

	f.loader.EXPECT().Load("", "").Return(&domain.Profile{}, nil)
	f.renderer.EXPECT().RenderClean(f.stdout, domain.FormatText, gomock.Any()).
		DoAndReturn(func(_ io.Writer, _ domain.OutputFormat, outcome *domain.CleanOutcome) error {
			assert.Empty(t, outcome.DeletedPaths)
			assert.False(t, outcome.HasFailures())
			return nil
		})

	err := f.app.Clean(t.Context(), app.CleanOptions{
		ScanOptions: app.ScanOptions{Flags: domain.Profile{Roots: []string{root}}},
		Apply:       true,
	})
	require.NoError(t, err)
}

func TestApp_Targets(t *testing.T) {
	f := newFixture(t, nil)

	f.renderer.EXPECT().RenderCatalog(f.stdout, domain.FormatJSON, gomock.Any()).
		DoAndReturn(func(_ io.Writer, _ domain.OutputFormat, entries []domain.CatalogEntry) error {
			assert.Len(t, entries, len(domain.ProjectTargetSpecs)+len(domain.GlobalKinds))
			return nil
		})

	require.NoError(t, f.app.Targets(t.Context(), app.OutputOptions{JSON: true}))
}

func TestApp_ConfiguresLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	buf := &bytes.Buffer{}
	log := logger.New()
	log.SetOutput(buf)

	renderer := mocks.NewMockRenderer(ctrl)
	cat := mocks.NewMockTargetCatalog(ctrl)
	cat.EXPECT().Entries().Return(nil)
	renderer.EXPECT().RenderCatalog(gomock.Any(), domain.FormatJSON, gomock.Any()).
		DoAndReturn(func(_ io.Writer, _ domain.OutputFormat, _ []domain.CatalogEntry) error {
			log.Debug("rendering")
			return nil
		})

	a := app.New(mocks.NewMockConfigLoader(ctrl), log, renderer, mocks.NewMockConfirmer(ctrl), cat, nil, nil)
	require.NoError(t, a.Targets(t.Context(), app.OutputOptions{JSON: true, Verbose: true}))

	assert.Contains(t, buf.String(), `"msg":"rendering"`)
	assert.Contains(t, buf.String(), `"level":"DEBUG"`)
}
