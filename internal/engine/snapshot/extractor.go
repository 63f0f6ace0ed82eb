// Package snapshot turns a resolved package graph into a bucketed snapshot.
package snapshot

import (
	"fmt"
	"strings"

	"go.trai.ch/reviewdeps/internal/core/domain"
	"go.trai.ch/reviewdeps/internal/core/ports"
	"go.trai.ch/zerr"
)

// Extractor filters registry packages and buckets them by compatible version.
type Extractor struct {
	logger  ports.Logger
	markers []string
}

// NewExtractor creates an Extractor recognising registry packages by cfg.RegistryMarkers.
func NewExtractor(logger ports.Logger, cfg *domain.Config) *Extractor {
	return &Extractor{logger: logger, markers: cfg.RegistryMarkers}
}

// IsRegistry reports whether pkg comes from the public registry.
// The check is a substring match of the package ID against the markers.
func (e *Extractor) IsRegistry(pkg *domain.ResolvedPackage) bool {
	for _, marker := range e.markers {
		if strings.Contains(pkg.ID, marker) {
			return true
		}
	}
	return false
}

// RegistryPackages returns the registry packages of meta in resolver order,
// warning about each package it skips.
func (e *Extractor) RegistryPackages(meta *domain.Metadata) []domain.ResolvedPackage {
	pkgs := make([]domain.ResolvedPackage, 0, len(meta.Packages))
	for i := range meta.Packages {
		pkg := &meta.Packages[i]
		if !e.IsRegistry(pkg) {
			e.logger.Warn(fmt.Sprintf("Skipping package `%s`: not a crates.io dependency", pkg.Name))
			continue
		}
		pkgs = append(pkgs, *pkg)
	}
	return pkgs
}

// Extract buckets the registry packages of meta into a snapshot.
// When two packages share a bucket, the later one wins.
func (e *Extractor) Extract(meta *domain.Metadata) (domain.Snapshot, error) {
	snap := make(domain.Snapshot)
	for _, pkg := range e.RegistryPackages(meta) {
		v, err := domain.ParseVersion(pkg.Version)
		if err != nil {
			return nil, zerr.With(err, "package", pkg.Name)
		}
		dir, err := pkg.Dir()
		if err != nil {
			return nil, err
		}

		key := domain.BucketKey(pkg.Name, v)
		if prev, ok := snap[key]; ok && prev != dir {
			e.logger.Warn(fmt.Sprintf("Package bucket `%s` holds both %s and %s; using the latter", key, prev, dir))
		}
		snap[key] = dir
	}
	return snap, nil
}
