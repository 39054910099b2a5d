// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/lfs/internal/adapters/config"
	_ "go.trai.ch/lfs/internal/adapters/fs"
	_ "go.trai.ch/lfs/internal/adapters/logger"
	_ "go.trai.ch/lfs/internal/adapters/manifest"
	// Register app nodes.
	_ "go.trai.ch/lfs/internal/app"
)
