package config

// NewLoaderWithEnv creates a Loader with injected environment lookups for tests.
func NewLoaderWithEnv(l *Loader, getenv func(string) string, userConfigDir func() (string, error)) *Loader {
	l.getenv = getenv
	l.userConfigDir = userConfigDir
	return l
}
