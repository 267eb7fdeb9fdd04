// Package app implements the application layer for replan.
package app

import (
	"context"
	"errors"
	"time"

	"go.trai.ch/replan/internal/adapters/watcher"
	"go.trai.ch/replan/internal/core/domain"
	"go.trai.ch/replan/internal/core/ports"
	"go.trai.ch/replan/internal/engine/planner"
	"go.trai.ch/zerr"
)

// debounceWindow is how long the watch loop waits for the file system to go
// quiet before handing a change batch to the planner.
const debounceWindow = 250 * time.Millisecond

// App wires the planner to its collaborators: the plan store, the external
// build tool, the job queue executor and the file watcher.
type App struct {
	planner   *planner.Planner
	buildTool ports.BuildTool
	executor  ports.Executor
	store     ports.PlanStore
	watcher   ports.Watcher
	logger    ports.Logger
	tracer    ports.Tracer

	// root is the workspace directory watched in watch mode.
	root string

	// defaultPackages is the scope assumed for a plan restored from disk,
	// which was produced by a whole-workspace build.
	defaultPackages []string
}

// New creates a new App instance.
func New(
	p *planner.Planner,
	buildTool ports.BuildTool,
	executor ports.Executor,
	store ports.PlanStore,
	w ports.Watcher,
	logger ports.Logger,
	tracer ports.Tracer,
	root string,
	defaultPackages []string,
) *App {
	return &App{
		planner:         p,
		buildTool:       buildTool,
		executor:        executor,
		store:           store,
		watcher:         w,
		logger:          logger,
		tracer:          tracer,
		root:            root,
		defaultPackages: defaultPackages,
	}
}

// Warm restores the persisted plan into the planner, if one exists. Called
// before the first query so a fresh process can answer incrementally.
func (a *App) Warm() error {
	if a.planner.Ready() {
		return nil
	}

	g, err := a.store.Load()
	if err != nil {
		// A broken plan file is not fatal; the gate will delegate to the
		// build tool and the file gets rewritten.
		a.logger.Error(zerr.Wrap(err, "discarding persisted plan"))
		return nil
	}
	if g == nil {
		return nil
	}

	if err := a.planner.Install(g, a.defaultPackages); err != nil {
		return err
	}
	a.logger.Info("restored persisted build plan")
	return nil
}

// Plan returns the planner's decision for the given changed files without
// acting on it.
func (a *App) Plan(files []string) (planner.Decision, error) {
	if err := a.Warm(); err != nil {
		return planner.Decision{}, err
	}
	return a.planner.Decide(files)
}

// Rebuild decides and acts: either replays the job queue or delegates to the
// external build tool and installs the reconstructed graph.
func (a *App) Rebuild(ctx context.Context, files []string) error {
	ctx, span := a.tracer.Start(ctx, "rebuild")
	defer span.End()
	span.SetAttribute("changed_files", len(files))

	decision, err := a.Plan(files)
	if err != nil {
		span.RecordError(err)
		return err
	}

	switch decision.Outcome {
	case planner.OutcomeExecute:
		span.SetAttribute("outcome", "execute")
		span.SetAttribute("queue_len", len(decision.Queue))
		if err := a.executor.Execute(ctx, decision.Queue); err != nil {
			span.RecordError(err)
			return err
		}
		return nil

	case planner.OutcomeFullRebuild:
		span.SetAttribute("outcome", "full_rebuild")
		return a.fullRebuild(ctx, decision.Scope)

	default:
		return zerr.With(zerr.New("unknown planner outcome"), "outcome", string(decision.Outcome))
	}
}

func (a *App) fullRebuild(ctx context.Context, scope []string) error {
	g, err := a.buildTool.FullBuild(ctx, scope)
	if err != nil {
		return zerr.Wrap(err, "full rebuild failed")
	}

	if err := a.planner.Install(g, scope); err != nil {
		return err
	}

	if err := a.store.Save(g); err != nil {
		// The in-memory cache is already valid; persisting is best effort.
		a.logger.Error(zerr.Wrap(err, "failed to persist build plan"))
	}
	return nil
}

// Watch runs the change-driven loop: watcher events are debounced into
// batches and each batch triggers a rebuild decision. Blocks until the
// context is cancelled.
func (a *App) Watch(ctx context.Context) error {
	if err := a.Warm(); err != nil {
		return err
	}

	debouncer := watcher.NewDebouncer(debounceWindow, func(paths []string) {
		if err := a.Rebuild(ctx, paths); err != nil {
			if !errors.Is(err, domain.ErrNoChangedFiles) {
				a.logger.Error(err)
			}
		}
	})

	if err := a.watcher.Start(ctx, a.root); err != nil {
		return zerr.Wrap(err, "failed to start watcher")
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	a.logger.Info("watching " + a.root)

	for event := range a.watcher.Events() {
		debouncer.Add(event.Path)
	}

	debouncer.Flush()
	return ctx.Err()
}
