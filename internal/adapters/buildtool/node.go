package buildtool

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/replan/internal/adapters/logger"
	"go.trai.ch/replan/internal/adapters/manifest"
	"go.trai.ch/replan/internal/core/ports"
)

// NodeID is the unique identifier for the build tool Graft node.
const NodeID graft.ID = "adapter.build_tool"

func init() {
	graft.Register(graft.Node[ports.BuildTool]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			manifest.ConfigNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.BuildTool, error) {
			cfg, err := graft.Dep[*manifest.Config](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewRunner(cfg.Build.Program, cfg.Build.Args, cfg.Dir(), log), nil
		},
	})
}
