// Package cargo binds the resolver port to `cargo metadata`.
package cargo

import (
	"context"

	"github.com/goccy/go-json"
	"go.trai.ch/reviewdeps/internal/core/domain"
	"go.trai.ch/reviewdeps/internal/core/ports"
	"go.trai.ch/zerr"
)

// metadataFormatVersion is the `cargo metadata` output format this package decodes.
const metadataFormatVersion = "1"

// Resolver implements ports.Resolver by running `cargo metadata`.
type Resolver struct {
	runner ports.CommandRunner
	cargo  string
}

// NewResolver creates a Resolver invoking the cargo binary named in cfg.
func NewResolver(runner ports.CommandRunner, cfg *domain.Config) *Resolver {
	return &Resolver{runner: runner, cargo: cfg.Cargo}
}

// Resolve runs `cargo metadata` for manifestPath and decodes the package graph.
func (r *Resolver) Resolve(ctx context.Context, manifestPath string) (*domain.Metadata, error) {
	args := []string{"metadata", "--format-version", metadataFormatVersion}
	if manifestPath != "" {
		args = append(args, "--manifest-path", manifestPath)
	}

	out, err := r.runner.Output(ctx, domain.Command{Name: r.cargo, Args: args})
	if err != nil {
		err = zerr.Wrap(err, domain.ErrResolutionFailed.Error())
		return nil, zerr.With(err, "manifest_path", manifestPath)
	}

	return decodeMetadata(out)
}

type metadataDTO struct {
	Packages      []packageDTO `json:"packages"`
	WorkspaceRoot string       `json:"workspace_root"`
}

type packageDTO struct {
	Name         string  `json:"name"`
	Version      string  `json:"version"`
	ID           string  `json:"id"`
	Source       *string `json:"source"`
	ManifestPath string  `json:"manifest_path"`
}

func decodeMetadata(data []byte) (*domain.Metadata, error) {
	var dto metadataDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, zerr.Wrap(err, domain.ErrMetadataDecodeFailed.Error())
	}

	meta := &domain.Metadata{
		Packages:      make([]domain.ResolvedPackage, 0, len(dto.Packages)),
		WorkspaceRoot: dto.WorkspaceRoot,
	}
	for i := range dto.Packages {
		p := &dto.Packages[i]
		pkg := domain.ResolvedPackage{
			Name:         p.Name,
			Version:      p.Version,
			ID:           p.ID,
			ManifestPath: p.ManifestPath,
		}
		if p.Source != nil {
			pkg.Source = *p.Source
		}
		meta.Packages = append(meta.Packages, pkg)
	}

	return meta, nil
}
