// Package shell provides the job queue executor adapter.
package shell

import (
	"context"
	"os"
	"os/exec"
	"runtime"
	"slices"

	"go.trai.ch/replan/internal/core/domain"
	"go.trai.ch/replan/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.Executor = (*Executor)(nil)

// Executor replays a job queue with os/exec. Jobs whose dependencies are
// disjoint run in parallel up to the configured limit; a job starts only
// after every queue-order dependency has completed.
type Executor struct {
	logger      ports.Logger
	tracer      ports.Tracer
	parallelism int

	// run is swapped out in tests.
	run func(ctx context.Context, job domain.Job) error
}

// NewExecutor creates an Executor with parallelism bounded by the number of
// CPUs.
func NewExecutor(logger ports.Logger, tracer ports.Tracer) *Executor {
	e := &Executor{
		logger:      logger,
		tracer:      tracer,
		parallelism: runtime.NumCPU(),
	}
	e.run = e.runProcess
	return e
}

// Execute replays the queue. On failure the remaining jobs are cancelled and
// the first error is returned wrapped as a build execution failure.
func (e *Executor) Execute(ctx context.Context, queue domain.JobQueue) error {
	e.tracer.EmitQueue(ctx, queue.UnitIDs())

	done := make(map[domain.UnitID]chan struct{}, len(queue))
	for _, job := range queue {
		done[job.Unit] = make(chan struct{})
	}

	sem := make(chan struct{}, e.parallelism)
	eg, ctx := errgroup.WithContext(ctx)

	for _, job := range queue {
		eg.Go(func() error {
			for _, dep := range job.Deps {
				ch, ok := done[dep]
				if !ok {
					continue
				}
				select {
				case <-ch:
				case <-ctx.Done():
					return ctx.Err()
				}
			}

			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				return ctx.Err()
			}
			defer func() { <-sem }()

			if err := e.run(ctx, job); err != nil {
				return zerr.With(zerr.Wrap(err, "job failed"), "unit", job.Unit.String())
			}

			close(done[job.Unit])
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return zerr.Wrap(domain.ErrBuildExecutionFailed, err.Error())
	}
	return nil
}

// runProcess spawns one cached invocation. The cached program, arguments and
// environment are used verbatim; the cached environment overlays the ambient
// one, matching how the invocation originally ran under the build tool.
func (e *Executor) runProcess(ctx context.Context, job domain.Job) error {
	spec := job.Spec

	cmd := exec.CommandContext(ctx, spec.Program, spec.Args...) //nolint:gosec // invocation was recorded from the build tool
	cmd.Env = mergeEnv(os.Environ(), spec.Env)
	if spec.Cwd != "" {
		cmd.Dir = spec.Cwd
	}

	cmd.Stdout = &logWriter{logger: e.logger, level: "info"}
	cmd.Stderr = &logWriter{logger: e.logger, level: "error"}

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode)
	}
	return nil
}

// mergeEnv overlays the cached variables on the ambient environment in
// deterministic key order.
func mergeEnv(base []string, overlay map[string]string) []string {
	if len(overlay) == 0 {
		return base
	}

	keys := make([]string, 0, len(overlay))
	for k := range overlay {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	env := make([]string, 0, len(base)+len(overlay))
	env = append(env, base...)
	for _, k := range keys {
		env = append(env, k+"="+overlay[k])
	}
	return env
}
