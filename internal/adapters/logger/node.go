package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lfs/internal/core/ports"
)

const (
	// ConcreteNodeID identifies the configurable logger, used by the CLI to set verbosity.
	ConcreteNodeID graft.ID = "adapter.logger.slog"
	// NodeID identifies the logger port.
	NodeID graft.ID = "adapter.logger"
)

func init() {
	graft.Register(graft.Node[*Logger]{
		ID:        ConcreteNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Logger, error) {
			return New(), nil
		},
	})

	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ConcreteNodeID},
		Run: func(ctx context.Context) (ports.Logger, error) {
			return graft.Dep[*Logger](ctx)
		},
	})
}
