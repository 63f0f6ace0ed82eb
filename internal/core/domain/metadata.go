package domain

import (
	"path/filepath"

	"go.trai.ch/zerr"
)

// ResolvedPackage is a single package of a resolved dependency graph.
type ResolvedPackage struct {
	// Name is the package name (e.g., "rand").
	Name string

	// Version is the exact resolved version string (e.g., "0.6.1").
	Version string

	// ID is the resolver's opaque package identifier. It encodes the origin
	// (e.g., "rand 0.6.1 (registry+https://github.com/rust-lang/crates.io-index)").
	ID string

	// Source is the resolver's source string, empty for local packages.
	Source string

	// ManifestPath is the absolute path of the package manifest.
	ManifestPath string
}

// Dir returns the package source directory, the parent of its manifest.
func (p ResolvedPackage) Dir() (string, error) {
	if p.ManifestPath == "" {
		return "", zerr.With(ErrBadManifestPath, "package", p.Name)
	}
	dir := filepath.Dir(p.ManifestPath)
	if dir == p.ManifestPath {
		return "", zerr.With(zerr.With(ErrBadManifestPath, "package", p.Name), "manifest_path", p.ManifestPath)
	}
	return dir, nil
}

// Metadata is the resolved package graph of a manifest.
type Metadata struct {
	// Packages holds every package of the transitive closure in resolver order.
	Packages []ResolvedPackage

	// WorkspaceRoot is the directory containing the workspace lock file.
	WorkspaceRoot string
}
