package manifest

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lfs/internal/adapters/fs"
	"go.trai.ch/lfs/internal/core/ports"
)

// NodeID identifies the manifest reader node.
const NodeID graft.ID = "adapter.manifest"

func init() {
	graft.Register(graft.Node[ports.ManifestReader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.LocalNodeID},
		Run: func(ctx context.Context) (ports.ManifestReader, error) {
			local, err := graft.Dep[*fs.FS](ctx)
			if err != nil {
				return nil, err
			}
			return NewReader(local), nil
		},
	})
}
