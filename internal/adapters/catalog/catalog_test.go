package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fclean/internal/adapters/catalog"
	"go.trai.ch/fclean/internal/adapters/fs"
	"go.trai.ch/fclean/internal/core/domain"
	"go.trai.ch/fclean/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func canonicalTempDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return dir
}

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o600))
}

func env(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func kinds(targets []domain.CacheTarget) []domain.TargetKind {
	out := make([]domain.TargetKind, 0, len(targets))
	for _, t := range targets {
		out = append(out, t.Kind)
	}
	return out
}

func newCatalog() *catalog.Catalog {
	return catalog.New(fs.NewResolver(), fs.NewSizer())
}

func TestCatalog_ProjectTargets_RequiredTier(t *testing.T) {
	root := canonicalTempDir(t)
	for i := range 10 {
		writeFile(t, filepath.Join(root, "build", "f"+string(rune('0'+i))), 409)
	}
	writeFile(t, filepath.Join(root, "build", "pad"), 6)
	writeFile(t, filepath.Join(root, ".dart_tool", "package_config.json"), 2048)
	writeFile(t, filepath.Join(root, "android", ".gradle", "lock"), 100)

	targets := newCatalog().ProjectTargets(root, false)

	require.Len(t, targets, 2)
	assert.Equal(t, []domain.TargetKind{domain.KindBuild, domain.KindDartTool}, kinds(targets))
	assert.Equal(t, filepath.Join(root, "build"), targets[0].Path)
	assert.Equal(t, int64(4096), targets[0].SizeBytes)
	assert.Equal(t, int64(2048), targets[1].SizeBytes)
	for _, target := range targets {
		assert.False(t, target.IsGlobal)
		assert.True(t, target.Exists)
	}
}

func TestCatalog_ProjectTargets_OptionalTier(t *testing.T) {
	root := canonicalTempDir(t)
	writeFile(t, filepath.Join(root, "build", "a"), 10)
	writeFile(t, filepath.Join(root, "android", ".gradle", "lock"), 20)
	writeFile(t, filepath.Join(root, "ios", "Pods", "Manifest.lock"), 30)
	writeFile(t, filepath.Join(root, "linux", "flutter", "ephemeral", "gen"), 40)
	writeFile(t, filepath.Join(root, ".flutter-plugins"), 50)

	targets := newCatalog().ProjectTargets(root, true)

	assert.Equal(t, []domain.TargetKind{
		domain.KindBuild,
		domain.KindAndroidGradle,
		domain.KindIOSPods,
		domain.KindLinuxEphemeral,
		domain.KindFlutterPlugins,
	}, kinds(targets))
	assert.Equal(t, int64(50), targets[4].SizeBytes)
}

func TestCatalog_ProjectTargets_AbsentTargetsOmitted(t *testing.T) {
	root := canonicalTempDir(t)
	writeFile(t, filepath.Join(root, "pubspec.yaml"), 1)

	assert.Empty(t, newCatalog().ProjectTargets(root, true))
}

func TestCatalog_ProjectTargets_SymlinkEscapingRootOmitted(t *testing.T) {
	root := canonicalTempDir(t)
	outside := canonicalTempDir(t)
	writeFile(t, filepath.Join(outside, "precious"), 100)
	require.NoError(t, os.Symlink(outside, filepath.Join(root, "build")))
	writeFile(t, filepath.Join(root, ".dart_tool", "x"), 5)

	targets := newCatalog().ProjectTargets(root, false)

	assert.Equal(t, []domain.TargetKind{domain.KindDartTool}, kinds(targets))
}

func TestCatalog_ProjectTargets_SymlinkIntoProjectOmitted(t *testing.T) {
	root := canonicalTempDir(t)
	writeFile(t, filepath.Join(root, "lib", "main.dart"), 100)
	require.NoError(t, os.Symlink(filepath.Join(root, "lib"), filepath.Join(root, "build")))
	writeFile(t, filepath.Join(root, ".dart_tool", "x"), 5)

	targets := newCatalog().ProjectTargets(root, false)

	assert.Equal(t, []domain.TargetKind{domain.KindDartTool}, kinds(targets))
	assert.FileExists(t, filepath.Join(root, "lib", "main.dart"))
}

func TestCatalog_ProjectTargets_SymlinkedRootResolved(t *testing.T) {
	root := canonicalTempDir(t)
	writeFile(t, filepath.Join(root, "build", "out"), 10)
	link := filepath.Join(canonicalTempDir(t), "link")
	require.NoError(t, os.Symlink(root, link))

	targets := newCatalog().ProjectTargets(link, false)

	require.Len(t, targets, 1)
	assert.Equal(t, filepath.Join(root, "build"), targets[0].Path)
}

func TestCatalog_ProjectTargets_UsesSizer(t *testing.T) {
	ctrl := gomock.NewController(t)
	root := canonicalTempDir(t)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "build"), 0o750))

	sizer := mocks.NewMockSizer(ctrl)
	sizer.EXPECT().Size(filepath.Join(root, "build")).Return(int64(777))

	targets := catalog.New(fs.NewResolver(), sizer).ProjectTargets(root, false)

	require.Len(t, targets, 1)
	assert.Equal(t, int64(777), targets[0].SizeBytes)
}

func TestCatalog_GlobalPath(t *testing.T) {
	home := canonicalTempDir(t)
	t.Setenv("HOME", home)

	tests := []struct {
		name   string
		goos   string
		vars   map[string]string
		kind   domain.TargetKind
		want   string
		wantOK bool
	}{
		{
			name: "pub cache default", goos: "linux", kind: domain.KindPubCache,
			want: filepath.Join(home, ".pub-cache"), wantOK: true,
		},
		{
			name: "pub cache override", goos: "linux", kind: domain.KindPubCache,
			vars: map[string]string{"PUB_CACHE": "/opt/pub"},
			want: "/opt/pub", wantOK: true,
		},
		{
			name: "pub cache override with tilde", goos: "darwin", kind: domain.KindPubCache,
			vars: map[string]string{"PUB_CACHE": "~/pubcache"},
			want: filepath.Join(home, "pubcache"), wantOK: true,
		},
		{
			name: "pub cache on windows", goos: "windows", kind: domain.KindPubCache,
			vars: map[string]string{"LOCALAPPDATA": "/appdata/local"},
			want: filepath.Join("/appdata/local", "Pub", "Cache"), wantOK: true,
		},
		{
			name: "gradle default", goos: "linux", kind: domain.KindGradleCaches,
			want: filepath.Join(home, ".gradle", "caches"), wantOK: true,
		},
		{
			name: "gradle override", goos: "windows", kind: domain.KindGradleCaches,
			vars: map[string]string{"GRADLE_USER_HOME": "/gradle"},
			want: filepath.Join("/gradle", "caches"), wantOK: true,
		},
		{
			name: "cocoapods on darwin", goos: "darwin", kind: domain.KindCocoaPodsCache,
			want: filepath.Join(home, "Library", "Caches", "CocoaPods"), wantOK: true,
		},
		{
			name: "cocoapods elsewhere", goos: "linux", kind: domain.KindCocoaPodsCache,
		},
		{
			name: "derived data on darwin", goos: "darwin", kind: domain.KindXcodeDerivedData,
			want: filepath.Join(home, "Library", "Developer", "Xcode", "DerivedData"), wantOK: true,
		},
		{
			name: "derived data elsewhere", goos: "windows", kind: domain.KindXcodeDerivedData,
		},
		{
			name: "project kind", goos: "linux", kind: domain.KindBuild,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCatalog().WithPlatform(tt.goos, env(tt.vars))
			got, ok := c.GlobalPath(tt.kind)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCatalog_GlobalTargets(t *testing.T) {
	home := canonicalTempDir(t)
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, ".pub-cache", "hosted", "pkg"), 300)
	writeFile(t, filepath.Join(home, "Library", "Caches", "CocoaPods", "spec"), 200)

	t.Run("linux skips darwin-only kinds", func(t *testing.T) {
		targets := newCatalog().WithPlatform("linux", env(nil)).GlobalTargets()
		require.Len(t, targets, 1)
		assert.Equal(t, domain.KindPubCache, targets[0].Kind)
		assert.Equal(t, filepath.Join(home, ".pub-cache"), targets[0].Path)
		assert.True(t, targets[0].IsGlobal)
		assert.True(t, targets[0].Exists)
	})

	t.Run("darwin includes cocoapods", func(t *testing.T) {
		targets := newCatalog().WithPlatform("darwin", env(nil)).GlobalTargets()
		assert.Equal(t, []domain.TargetKind{domain.KindPubCache, domain.KindCocoaPodsCache}, kinds(targets))
	})

	t.Run("override pointing nowhere", func(t *testing.T) {
		targets := newCatalog().WithPlatform("linux", env(map[string]string{
			"PUB_CACHE": filepath.Join(home, "missing"),
		})).GlobalTargets()
		assert.Empty(t, targets)
	})
}

func TestCatalog_Entries(t *testing.T) {
	home := canonicalTempDir(t)
	t.Setenv("HOME", home)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".gradle", "caches"), 0o750))

	entries := newCatalog().WithPlatform("linux", env(nil)).Entries()
	require.Len(t, entries, len(domain.ProjectTargetSpecs)+len(domain.GlobalKinds))

	first := entries[0]
	assert.Equal(t, domain.KindBuild, first.Kind)
	assert.Equal(t, "build", first.Location)
	assert.Equal(t, "required", first.Tier)

	byKind := make(map[domain.TargetKind]domain.CatalogEntry, len(entries))
	for _, e := range entries {
		byKind[e.Kind] = e
	}
	assert.Equal(t, filepath.Join("ios", "Pods"), byKind[domain.KindIOSPods].Location)
	assert.Equal(t, "optional", byKind[domain.KindIOSPods].Tier)
	assert.True(t, byKind[domain.KindGradleCaches].Available)
	assert.False(t, byKind[domain.KindPubCache].Available)
	assert.False(t, byKind[domain.KindCocoaPodsCache].Available)
	assert.Empty(t, byKind[domain.KindCocoaPodsCache].Location)
	assert.Equal(t, "global", byKind[domain.KindXcodeDerivedData].Tier)
}
