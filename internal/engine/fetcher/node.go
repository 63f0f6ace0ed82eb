package fetcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reviewdeps/internal/adapters/cargo" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/reviewdeps/internal/core/ports"
)

// NodeID is the unique identifier for the fetcher Graft node.
const NodeID graft.ID = "engine.fetcher"

func init() {
	graft.Register(graft.Node[*Fetcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{cargo.NodeID},
		Run: func(ctx context.Context) (*Fetcher, error) {
			resolver, err := graft.Dep[ports.Resolver](ctx)
			if err != nil {
				return nil, err
			}
			return New(resolver), nil
		},
	})
}
