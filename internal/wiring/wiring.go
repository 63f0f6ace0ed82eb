// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/reviewdeps/internal/adapters/cargo"
	_ "go.trai.ch/reviewdeps/internal/adapters/config"
	_ "go.trai.ch/reviewdeps/internal/adapters/diffview"
	_ "go.trai.ch/reviewdeps/internal/adapters/fs"
	_ "go.trai.ch/reviewdeps/internal/adapters/lockfile"
	_ "go.trai.ch/reviewdeps/internal/adapters/logger"
	_ "go.trai.ch/reviewdeps/internal/adapters/shell"
	// Register app and engine nodes.
	_ "go.trai.ch/reviewdeps/internal/app"
	_ "go.trai.ch/reviewdeps/internal/engine/fetcher"
	_ "go.trai.ch/reviewdeps/internal/engine/snapshot"
)
