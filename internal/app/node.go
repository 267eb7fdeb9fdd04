package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/replan/internal/adapters/buildtool" //nolint:depguard // Wired in app layer
	"go.trai.ch/replan/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/replan/internal/adapters/manifest"  //nolint:depguard // Wired in app layer
	"go.trai.ch/replan/internal/adapters/planfile"  //nolint:depguard // Wired in app layer
	"go.trai.ch/replan/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/replan/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/replan/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/replan/internal/core/ports"
	"go.trai.ch/replan/internal/engine/planner"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles the app and the collaborators the CLI needs directly.
type Components struct {
	App    *App
	Logger ports.Logger
	Config *manifest.Config
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			planner.NodeID,
			buildtool.NodeID,
			shell.NodeID,
			planfile.NodeID,
			watcher.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			manifest.ConfigNodeID,
			manifest.OwnerNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			manifest.ConfigNodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			cfg, err := graft.Dep[*manifest.Config](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: application, Logger: log, Config: cfg}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	p, err := graft.Dep[*planner.Planner](ctx)
	if err != nil {
		return nil, err
	}

	buildTool, err := graft.Dep[ports.BuildTool](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.PlanStore](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := graft.Dep[*manifest.Config](ctx)
	if err != nil {
		return nil, err
	}

	owner, err := graft.Dep[ports.PackageOwner](ctx)
	if err != nil {
		return nil, err
	}

	return New(p, buildTool, executor, store, w, log, tracer, cfg.Dir(), owner.Packages()), nil
}
