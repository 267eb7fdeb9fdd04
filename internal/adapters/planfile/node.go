package planfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/replan/internal/adapters/manifest"
	"go.trai.ch/replan/internal/core/ports"
)

// NodeID is the unique identifier for the plan store Graft node.
const NodeID graft.ID = "adapter.plan_store"

func init() {
	graft.Register(graft.Node[ports.PlanStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{manifest.ConfigNodeID},
		Run: func(ctx context.Context) (ports.PlanStore, error) {
			cfg, err := graft.Dep[*manifest.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(cfg.PlanPath()), nil
		},
	})
}
