package domain

import "go.trai.ch/zerr"

var (
	// ErrNoRoots is returned when a scan or clean is requested without any root to walk.
	ErrNoRoots = zerr.New("no roots specified")

	// ErrApplyRequired is returned when a clean is requested without the explicit apply gate.
	ErrApplyRequired = zerr.New("refusing to delete without --apply")

	// ErrCleanAborted is returned when the user declines the confirmation prompt.
	ErrCleanAborted = zerr.New("clean aborted by user")

	// ErrCleanIncomplete is returned when at least one target could not be deleted.
	ErrCleanIncomplete = zerr.New("some targets could not be deleted")

	// ErrInvalidMaxDepth is returned when a negative recursion depth is configured.
	ErrInvalidMaxDepth = zerr.New("max depth must be zero or positive")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when an explicitly requested config file does not exist.
	ErrConfigNotFound = zerr.New("config file not found")

	// ErrProfileNotFound is returned when a named profile is not defined in the config file.
	ErrProfileNotFound = zerr.New("profile not found")

	// ErrUnknownOutputFormat is returned when the renderer format is not recognised.
	ErrUnknownOutputFormat = zerr.New("unknown output format")

	// ErrTrashUnavailable is returned when no trash mechanism exists on this platform.
	ErrTrashUnavailable = zerr.New("trash is not available on this system")

	// ErrTrashFailed is returned when the platform trash helper reports a failure.
	ErrTrashFailed = zerr.New("failed to move path to trash")

	// ErrPathUnresolvable is the rejection reason for a target whose path no longer resolves.
	ErrPathUnresolvable = zerr.New("target path cannot be resolved")

	// ErrKindNotAllowed is the rejection reason for a target kind outside the deletable allowlist.
	ErrKindNotAllowed = zerr.New("target kind is not allowed")

	// ErrScopeMismatch is the rejection reason for a target whose kind does not match its global flag.
	ErrScopeMismatch = zerr.New("target kind does not match its scope")

	// ErrOutsideProjectRoot is the rejection reason for a project target outside its project root.
	ErrOutsideProjectRoot = zerr.New("target is outside the project root")

	// ErrGlobalPatternMismatch is the rejection reason for a global target at an unexpected location.
	ErrGlobalPatternMismatch = zerr.New("global target does not match the expected location")

	// ErrPathVanished is the rejection reason for a target that no longer exists on disk.
	ErrPathVanished = zerr.New("target no longer exists")

	// ErrDeletionFailed is the failure reason recorded when removing a validated target fails.
	ErrDeletionFailed = zerr.New("failed to delete target")
)
