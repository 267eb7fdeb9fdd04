package planner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/replan/internal/adapters/logger"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/replan/internal/adapters/manifest" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/replan/internal/core/ports"
)

// NodeID is the unique identifier for the planner Graft node.
const NodeID graft.ID = "engine.planner"

func init() {
	graft.Register(graft.Node[*Planner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			manifest.OwnerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Planner, error) {
			owner, err := graft.Dep[ports.PackageOwner](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewPlanner(owner, log), nil
		},
	})
}
