package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidPackageID is returned when a package specification is not of the form name:x.y.z.
	ErrInvalidPackageID = zerr.New("invalid package specification")

	// ErrInvalidVersion is returned when a version string is not a strict semantic version.
	ErrInvalidVersion = zerr.New("invalid semantic version")

	// ErrResolutionFailed is returned when the resolver invocation fails.
	ErrResolutionFailed = zerr.New("cargo metadata failed")

	// ErrMetadataDecodeFailed is returned when the resolver output cannot be decoded.
	ErrMetadataDecodeFailed = zerr.New("failed to decode cargo metadata output")

	// ErrResolutionInconsistency is returned when an exact-pinned fetch does not yield the pinned package.
	ErrResolutionInconsistency = zerr.New("unexpected error: can't find package")

	// ErrBadManifestPath is returned when a resolved package has no usable manifest path.
	ErrBadManifestPath = zerr.New("unexpected error: bad manifest path")

	// ErrManifestRender is returned when the ephemeral manifest cannot be rendered.
	ErrManifestRender = zerr.New("failed to render ephemeral manifest")

	// ErrWorkspaceCreate is returned when the disposable fetch workspace cannot be created.
	ErrWorkspaceCreate = zerr.New("failed to create temporary workspace")

	// ErrManifestWrite is returned when the ephemeral manifest cannot be written.
	ErrManifestWrite = zerr.New("failed to write ephemeral manifest")

	// ErrLockfileRead is returned when the lock file cannot be read.
	ErrLockfileRead = zerr.New("failed to read lock file")

	// ErrLockfileBackup is returned when the lock file backup cannot be written.
	ErrLockfileBackup = zerr.New("failed to back up lock file")

	// ErrLockfileRestore is returned when the lock file cannot be restored from its backup.
	ErrLockfileRestore = zerr.New("failed to restore lock file")

	// ErrDestinationCreate is returned when a destination directory cannot be created.
	ErrDestinationCreate = zerr.New("failed to create destination directory")

	// ErrDestinationRequired is returned when a workflow that only materializes sources has no destination.
	ErrDestinationRequired = zerr.New("a destination directory is required")

	// ErrDestinationExists is returned when a copy target already exists.
	ErrDestinationExists = zerr.New("destination already exists")

	// ErrCopyFailed is returned when a source directory cannot be copied.
	ErrCopyFailed = zerr.New("failed to copy package sources")

	// ErrCommandFailed is returned when an external command cannot be started or exits unsuccessfully.
	ErrCommandFailed = zerr.New("command failed")

	// ErrUpdateFailed is returned when the update command exits with a non-success status.
	ErrUpdateFailed = zerr.New("running cargo update failed")

	// ErrDiffToolMissing is returned when the comparison tool is not installed.
	ErrDiffToolMissing = zerr.New("looks like you don't have a suitable diff command installed.\n" +
		"Try using --destination flag to run a custom diff tool or to compare sources manually.")

	// ErrDiffFailed is returned when the comparison tool reports trouble.
	ErrDiffFailed = zerr.New("diff command failed")

	// ErrConfigRead is returned when the config file cannot be read.
	ErrConfigRead = zerr.New("failed to read config file")

	// ErrConfigParse is returned when the config file cannot be parsed.
	ErrConfigParse = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when the config file contains unusable values.
	ErrConfigInvalid = zerr.New("invalid configuration")
)
