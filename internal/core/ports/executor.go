package ports

import (
	"context"

	"go.trai.ch/replan/internal/core/domain"
)

// Executor replays a job queue produced by the planner. The planner itself
// never spawns processes; this is the external executor side of that split.
//
// Implementations may run jobs with disjoint dependencies in parallel, but a
// job must only start once every entry in its Deps list has completed.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	Execute(ctx context.Context, queue domain.JobQueue) error
}
