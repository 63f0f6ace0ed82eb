package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reviewdeps/internal/adapters/cargo"    //nolint:depguard // Wired in app layer
	"go.trai.ch/reviewdeps/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/reviewdeps/internal/adapters/diffview" //nolint:depguard // Wired in app layer
	"go.trai.ch/reviewdeps/internal/adapters/fs"       //nolint:depguard // Wired in app layer
	"go.trai.ch/reviewdeps/internal/adapters/lockfile" //nolint:depguard // Wired in app layer
	"go.trai.ch/reviewdeps/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/reviewdeps/internal/adapters/shell"    //nolint:depguard // Wired in app layer
	"go.trai.ch/reviewdeps/internal/core/domain"
	"go.trai.ch/reviewdeps/internal/core/ports"
	"go.trai.ch/reviewdeps/internal/engine/fetcher"
	"go.trai.ch/reviewdeps/internal/engine/snapshot"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components groups what the command line needs from the dependency graph.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			cargo.NodeID,
			fetcher.NodeID,
			snapshot.NodeID,
			shell.NodeID,
			diffview.NodeID,
			fs.CopierNodeID,
			lockfile.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			resolver, err := graft.Dep[ports.Resolver](ctx)
			if err != nil {
				return nil, err
			}
			f, err := graft.Dep[*fetcher.Fetcher](ctx)
			if err != nil {
				return nil, err
			}
			extractor, err := graft.Dep[*snapshot.Extractor](ctx)
			if err != nil {
				return nil, err
			}
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			viewer, err := graft.Dep[ports.Viewer](ctx)
			if err != nil {
				return nil, err
			}
			copier, err := graft.Dep[ports.Copier](ctx)
			if err != nil {
				return nil, err
			}
			locks, err := graft.Dep[ports.LockManager](ctx)
			if err != nil {
				return nil, err
			}

			return New(cfg, log, resolver, f, extractor, runner, viewer, copier, locks), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}
