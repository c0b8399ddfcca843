package ports

// PathResolver defines canonical path resolution and containment checks.
//
//go:generate mockgen -source=path_resolver.go -destination=mocks/mock_path_resolver.go -package=mocks
type PathResolver interface {
	// ResolveCanonical expands a leading "~", makes the path absolute and follows every symlink.
	// It returns false when the path does not exist or cannot be resolved.
	ResolveCanonical(path string) (string, bool)

	// ExpandHome replaces a leading "~" with the effective home directory.
	ExpandHome(path string) string

	// IsDescendant reports whether child equals parent or lies beneath it.
	IsDescendant(child, parent string) bool
}
