package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lfs/internal/core/ports"
)

const (
	// LocalNodeID identifies the concrete host filesystem, needed by readers of file content.
	LocalNodeID graft.ID = "adapter.fs.local"
	// NodeID identifies the filesystem port.
	NodeID graft.ID = "adapter.fs"
)

func init() {
	graft.Register(graft.Node[*FS]{
		ID:        LocalNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*FS, error) {
			return NewLocal(), nil
		},
	})

	graft.Register(graft.Node[ports.FileSystem]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{LocalNodeID},
		Run: func(ctx context.Context) (ports.FileSystem, error) {
			local, err := graft.Dep[*FS](ctx)
			if err != nil {
				return nil, err
			}
			return local, nil
		},
	})
}
