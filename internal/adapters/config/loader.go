// Package config provides the configuration loader for review-deps.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/reviewdeps/internal/core/domain"
	"go.trai.ch/reviewdeps/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// CargoEnvVar is set by cargo to its own path when it runs a subcommand.
const CargoEnvVar = "CARGO"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger

	getenv        func(string) string
	userConfigDir func() (string, error)
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		Logger:        logger,
		getenv:        os.Getenv,
		userConfigDir: os.UserConfigDir,
	}
}

// Load discovers the configuration file starting at cwd and merges it over the defaults.
// A missing file is not an error.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()
	if cargo := l.getenv(CargoEnvVar); cargo != "" {
		cfg.Cargo = cargo
	}

	configPath, found := l.findConfiguration(cwd)
	if !found {
		return cfg, nil
	}

	var file File
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	if err := l.apply(cfg, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	return cfg, nil
}

func (l *Loader) findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	dir, err := l.userConfigDir()
	if err != nil || dir == "" {
		return "", false
	}
	candidate := filepath.Join(dir, domain.UserConfigDirName, domain.UserConfigFileName)
	if _, err := os.Stat(candidate); err == nil {
		return candidate, true
	}
	return "", false
}

func (l *Loader) apply(cfg *domain.Config, file *File) error {
	if file.Cargo != "" {
		if env := l.getenv(CargoEnvVar); env != "" && env != file.Cargo {
			l.Logger.Warn(fmt.Sprintf("'cargo' in %s overrides %s=%s", domain.ConfigFileName, CargoEnvVar, env))
		}
		cfg.Cargo = file.Cargo
	}

	if file.Lockfile != "" {
		if filepath.IsAbs(file.Lockfile) || strings.ContainsRune(file.Lockfile, filepath.Separator) {
			return zerr.With(domain.ErrConfigInvalid, "lockfile", file.Lockfile)
		}
		cfg.Lockfile = file.Lockfile
	}

	if file.Diff.Command != nil {
		if len(file.Diff.Command) == 0 || file.Diff.Command[0] == "" {
			return zerr.With(domain.ErrConfigInvalid, "field", "diff.command")
		}
		cfg.DiffCommand = file.Diff.Command
	}

	if file.Registry.Markers != nil {
		markers := make([]string, 0, len(file.Registry.Markers))
		for _, m := range file.Registry.Markers {
			if m != "" {
				markers = append(markers, m)
			}
		}
		if len(markers) == 0 {
			return zerr.With(domain.ErrConfigInvalid, "field", "registry.markers")
		}
		cfg.RegistryMarkers = markers
	}

	return nil
}

// readAndUnmarshalYAML decodes configPath into target, rejecting unknown keys.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath comes from discovery
	content, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigRead.Error())
	}

	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return zerr.Wrap(err, domain.ErrConfigParse.Error())
	}

	return nil
}
