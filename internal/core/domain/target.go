package domain

// TargetKind identifies a named cache location.
// The set of kinds is closed: only the constants below are deletable.
type TargetKind string

// Project-scoped kinds.
const (
	KindBuild                      TargetKind = "build"
	KindDartTool                   TargetKind = "dart_tool"
	KindAndroidGradle              TargetKind = "android_gradle"
	KindIOSPods                    TargetKind = "ios_pods"
	KindIOSSymlinks                TargetKind = "ios_symlinks"
	KindIOSEphemeral               TargetKind = "ios_ephemeral"
	KindMacOSEphemeral             TargetKind = "macos_ephemeral"
	KindLinuxEphemeral             TargetKind = "linux_ephemeral"
	KindWindowsEphemeral           TargetKind = "windows_ephemeral"
	KindFlutterPlugins             TargetKind = "flutter_plugins"
	KindFlutterPluginsDependencies TargetKind = "flutter_plugins_dependencies"
)

// Global kinds.
const (
	KindPubCache         TargetKind = "pub_cache"
	KindGradleCaches     TargetKind = "gradle_caches"
	KindCocoaPodsCache   TargetKind = "cocoapods_cache"
	KindXcodeDerivedData TargetKind = "xcode_derived_data"
)

// IsKnown reports whether k belongs to the deletable allowlist.
func (k TargetKind) IsKnown() bool {
	switch k {
	case KindBuild, KindDartTool, KindAndroidGradle, KindIOSPods, KindIOSSymlinks,
		KindIOSEphemeral, KindMacOSEphemeral, KindLinuxEphemeral, KindWindowsEphemeral,
		KindFlutterPlugins, KindFlutterPluginsDependencies:
		return true
	case KindPubCache, KindGradleCaches, KindCocoaPodsCache, KindXcodeDerivedData:
		return true
	default:
		return false
	}
}

// IsGlobal reports whether k names a cache that lives outside any project.
func (k TargetKind) IsGlobal() bool {
	switch k {
	case KindPubCache, KindGradleCaches, KindCocoaPodsCache, KindXcodeDerivedData:
		return true
	default:
		return false
	}
}

func (k TargetKind) String() string {
	return string(k)
}

// Tier controls whether a project target is enumerated by default.
type Tier int

const (
	// TierRequired targets are always enumerated.
	TierRequired Tier = iota
	// TierOptional targets are enumerated only on request.
	TierOptional
)

func (t Tier) String() string {
	if t == TierOptional {
		return "optional"
	}
	return "required"
}

// ProjectTargetSpec describes where a project-scoped kind lives relative to the project root.
type ProjectTargetSpec struct {
	Kind     TargetKind
	Segments []string
	Tier     Tier
}

// ProjectTargetSpecs is the fixed per-project target table, required tier first.
var ProjectTargetSpecs = []ProjectTargetSpec{
	{Kind: KindBuild, Segments: []string{"build"}, Tier: TierRequired},
	{Kind: KindDartTool, Segments: []string{".dart_tool"}, Tier: TierRequired},
	{Kind: KindAndroidGradle, Segments: []string{"android", ".gradle"}, Tier: TierOptional},
	{Kind: KindIOSPods, Segments: []string{"ios", "Pods"}, Tier: TierOptional},
	{Kind: KindIOSSymlinks, Segments: []string{"ios", ".symlinks"}, Tier: TierOptional},
	{Kind: KindIOSEphemeral, Segments: []string{"ios", "Flutter", "ephemeral"}, Tier: TierOptional},
	{Kind: KindMacOSEphemeral, Segments: []string{"macos", "Flutter", "ephemeral"}, Tier: TierOptional},
	{Kind: KindLinuxEphemeral, Segments: []string{"linux", "flutter", "ephemeral"}, Tier: TierOptional},
	{Kind: KindWindowsEphemeral, Segments: []string{"windows", "flutter", "ephemeral"}, Tier: TierOptional},
	{Kind: KindFlutterPlugins, Segments: []string{".flutter-plugins"}, Tier: TierOptional},
	{Kind: KindFlutterPluginsDependencies, Segments: []string{".flutter-plugins-dependencies"}, Tier: TierOptional},
}

// GlobalKinds lists the global kinds in enumeration order.
var GlobalKinds = []TargetKind{
	KindPubCache,
	KindGradleCaches,
	KindCocoaPodsCache,
	KindXcodeDerivedData,
}

// CacheTarget is a discovered cache location.
// Path is always canonical (absolute, symlinks resolved) when produced by the catalog.
type CacheTarget struct {
	Kind      TargetKind `json:"kind"`
	Path      string     `json:"path"`
	SizeBytes int64      `json:"size_bytes"`
	IsGlobal  bool       `json:"is_global"`
	Exists    bool       `json:"exists"`
}

// WithSize returns a copy of t with its size replaced.
func (t CacheTarget) WithSize(size int64) CacheTarget {
	if size < 0 {
		size = 0
	}
	t.SizeBytes = size
	return t
}

// CatalogEntry describes one row of the target catalog for listing.
// Location is a relative path for project kinds and a resolved path for global kinds.
type CatalogEntry struct {
	Kind      TargetKind `json:"kind"`
	Location  string     `json:"location"`
	Tier      string     `json:"tier"`
	IsGlobal  bool       `json:"is_global"`
	Available bool       `json:"available"`
}
