package domain

const (
	// ManifestFileName is the file every Flutter project root must contain.
	ManifestFileName = "pubspec.yaml"

	// MetadataFileName is the Flutter tool metadata file.
	MetadataFileName = ".metadata"

	// AndroidDirName is the Android host project directory.
	AndroidDirName = "android"

	// IOSDirName is the iOS host project directory.
	IOSDirName = "ios"

	// AppDirName is the per-user configuration directory name.
	AppDirName = "fclean"

	// ConfigFileName is the name of the profile configuration file.
	ConfigFileName = "config.yaml"

	// PubCacheEnv overrides the location of the pub dependency cache.
	PubCacheEnv = "PUB_CACHE"

	// GradleUserHomeEnv overrides the location of the Gradle user home.
	GradleUserHomeEnv = "GRADLE_USER_HOME"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// SecondaryMarkers lists the entries of which at least one must accompany the manifest.
// The bool reports whether the marker is a directory.
var SecondaryMarkers = []struct {
	Name  string
	IsDir bool
}{
	{Name: MetadataFileName, IsDir: false},
	{Name: AndroidDirName, IsDir: true},
	{Name: IOSDirName, IsDir: true},
}

// prunedDirNames are directory names the project walker never descends into.
var prunedDirNames = map[string]struct{}{
	// version control
	".git": {}, ".hg": {}, ".svn": {}, ".jj": {},
	// dependency and package directories
	"node_modules": {}, ".pub-cache": {}, ".pub": {}, "Pods": {}, ".gradle": {}, "vendor": {},
	// IDE state
	".idea": {}, ".vscode": {}, ".fleet": {},
	// build output
	"build": {}, ".dart_tool": {}, "DerivedData": {}, ".symlinks": {}, "ephemeral": {}, "target": {},
	// virtual environments
	"venv": {}, ".venv": {}, "__pycache__": {}, ".tox": {},
}

// IsPrunedDir reports whether the walker must skip a directory with the given bare name.
func IsPrunedDir(name string) bool {
	_, ok := prunedDirNames[name]
	return ok
}

// DefaultRootNames are home-relative directories scanned when default roots are requested.
var DefaultRootNames = []string{
	"Projects",
	"projects",
	"Developer",
	"dev",
	"code",
	"src",
	"workspace",
	"StudioProjects",
	"AndroidStudioProjects",
	"FlutterProjects",
	"Documents",
	"Desktop",
}
