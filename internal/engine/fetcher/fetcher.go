// Package fetcher maps an exact package identifier to its source directory
// in the resolver's package cache.
package fetcher

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/reviewdeps/internal/core/domain"
	"go.trai.ch/reviewdeps/internal/core/ports"
	"go.trai.ch/zerr"
)

// Fetcher resolves single packages through a throwaway manifest.
type Fetcher struct {
	resolver ports.Resolver
	tempRoot string
}

// New creates a Fetcher that creates its workspaces under the system temp directory.
func New(resolver ports.Resolver) *Fetcher {
	return &Fetcher{resolver: resolver}
}

// Fetch makes sure the package id is present in the package cache and returns its directory.
// The returned directory outlives the call; the throwaway workspace does not.
func (f *Fetcher) Fetch(ctx context.Context, id domain.PackageID) (string, error) {
	workspace, err := os.MkdirTemp(f.tempRoot, domain.FetchDirPrefix)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrWorkspaceCreate.Error())
	}
	defer func() { _ = os.RemoveAll(workspace) }()

	filename, contents, err := f.resolver.PinnedManifest(id)
	if err != nil {
		return "", err
	}

	manifestPath := filepath.Join(workspace, filename)
	if err := os.WriteFile(manifestPath, contents, domain.FilePerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrManifestWrite.Error()), "path", manifestPath)
	}

	meta, err := f.resolver.Resolve(ctx, manifestPath)
	if err != nil {
		return "", zerr.With(err, "package", id.String())
	}

	for i := range meta.Packages {
		pkg := &meta.Packages[i]
		if pkg.Name != id.Name {
			continue
		}
		v, err := domain.ParseVersion(pkg.Version)
		if err != nil || v != id.Version {
			continue
		}
		return pkg.Dir()
	}

	return "", zerr.With(domain.ErrResolutionInconsistency, "package", id.String())
}
