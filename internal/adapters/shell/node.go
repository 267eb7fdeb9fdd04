package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/replan/internal/adapters/logger"
	"go.trai.ch/replan/internal/adapters/telemetry"
	"go.trai.ch/replan/internal/core/ports"
)

// NodeID is the unique identifier for the shell executor Graft node.
const NodeID graft.ID = "adapter.executor"

func init() {
	graft.Register(graft.Node[ports.Executor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (ports.Executor, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return NewExecutor(log, tracer), nil
		},
	})
}
