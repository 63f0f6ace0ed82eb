package domain

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "review-deps.yaml"

	// UserConfigDirName is the directory under the user config dir holding the global config.
	UserConfigDirName = "review-deps"

	// UserConfigFileName is the name of the global configuration file.
	UserConfigFileName = "config.yaml"

	// DefaultLockfileName is the name of the cargo lock file under the workspace root.
	DefaultLockfileName = "Cargo.lock"

	// ManifestFileName is the name of the cargo manifest file.
	ManifestFileName = "Cargo.toml"

	// BackupSuffix is appended to the lock file path to form its backup path.
	BackupSuffix = ".back"

	// FetchDirPrefix is the prefix of disposable fetch workspaces and temporary diff roots.
	FetchDirPrefix = "cargo-diff-fetches"

	// BeforeDirName is the directory holding pre-update sources in an update diff.
	BeforeDirName = "before"

	// AfterDirName is the directory holding post-update sources in an update diff.
	AfterDirName = "after"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)
