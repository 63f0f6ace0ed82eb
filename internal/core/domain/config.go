package domain

// Config holds the tool settings resolved from defaults, environment and config file.
type Config struct {
	// Cargo is the cargo executable used for metadata and update.
	Cargo string

	// Lockfile is the lock file name relative to the workspace root.
	Lockfile string

	// DiffCommand is the comparison tool and its leading arguments.
	// The two directories to compare are appended.
	DiffCommand []string

	// RegistryMarkers are substrings of a package ID that identify the public registry.
	RegistryMarkers []string
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Cargo:           "cargo",
		Lockfile:        DefaultLockfileName,
		DiffCommand:     []string{"diff", "--color=auto", "-r"},
		RegistryMarkers: []string{"crates.io-index", "index.crates.io"},
	}
}

