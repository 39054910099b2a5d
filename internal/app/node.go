package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lfs/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/lfs/internal/adapters/fs"       //nolint:depguard // Wired in app layer
	"go.trai.ch/lfs/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/lfs/internal/adapters/manifest" //nolint:depguard // Wired in app layer
	"go.trai.ch/lfs/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger *logger.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.NodeID,
			manifest.NodeID,
			config.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.ConcreteNodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	fsys, err := graft.Dep[ports.FileSystem](ctx)
	if err != nil {
		return nil, err
	}

	manifests, err := graft.Dep[ports.ManifestReader](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(fsys, manifests, loader, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[*logger.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
