package cargo

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reviewdeps/internal/adapters/config"
	"go.trai.ch/reviewdeps/internal/adapters/shell"
	"go.trai.ch/reviewdeps/internal/core/domain"
	"go.trai.ch/reviewdeps/internal/core/ports"
)

// NodeID is the unique identifier for the cargo resolver Graft node.
const NodeID graft.ID = "adapter.cargo"

func init() {
	graft.Register(graft.Node[ports.Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, config.NodeID},
		Run: func(ctx context.Context) (ports.Resolver, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(runner, cfg), nil
		},
	})
}
