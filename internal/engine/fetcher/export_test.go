package fetcher

import "go.trai.ch/reviewdeps/internal/core/ports"

// NewWithTempRoot creates a Fetcher placing its workspaces under root.
func NewWithTempRoot(resolver ports.Resolver, root string) *Fetcher {
	return &Fetcher{resolver: resolver, tempRoot: root}
}
