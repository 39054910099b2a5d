package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lfs/internal/adapters/fs"
	"go.trai.ch/lfs/internal/adapters/logger"
	"go.trai.ch/lfs/internal/core/ports"
)

// NodeID is the unique identifier for the config loader node.
const NodeID graft.ID = "adapter.config_loader"

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.LocalNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			files, err := graft.Dep[*fs.FS](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(files, log), nil
		},
	})
}
