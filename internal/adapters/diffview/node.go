package diffview

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reviewdeps/internal/adapters/config"
	"go.trai.ch/reviewdeps/internal/adapters/shell"
	"go.trai.ch/reviewdeps/internal/core/domain"
	"go.trai.ch/reviewdeps/internal/core/ports"
)

// NodeID is the unique identifier for the diff viewer Graft node.
const NodeID graft.ID = "adapter.diffview"

func init() {
	graft.Register(graft.Node[ports.Viewer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, config.NodeID},
		Run: func(ctx context.Context) (ports.Viewer, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewViewer(runner, cfg), nil
		},
	})
}
