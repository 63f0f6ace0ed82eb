package ports

import (
	"context"

	"go.trai.ch/reviewdeps/internal/core/domain"
)

// Resolver expands a manifest into its fully resolved package graph.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type Resolver interface {
	// Resolve returns every package of the transitive closure of the manifest
	// at manifestPath, each with its on-disk location. An empty manifestPath
	// resolves the project in the current directory.
	Resolve(ctx context.Context, manifestPath string) (*domain.Metadata, error)

	// PinnedManifest renders a manifest declaring a single dependency pinned
	// to exactly id. It returns the manifest file name and its contents.
	PinnedManifest(id domain.PackageID) (filename string, contents []byte, err error)
}
