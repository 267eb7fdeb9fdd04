package planner

import (
	"go.trai.ch/replan/internal/core/domain"
	"go.trai.ch/zerr"
)

// BuildJobQueue converts a dependency-ordered unit list into a replayable job
// queue. Invocations are copied verbatim from the cache; program, arguments
// and environment are never rewritten.
//
// A unit without a cached invocation (discovered only as a dependency edge)
// is a hard error: skipping it would hand the caller a queue it wrongly
// believes to be complete.
func BuildJobQueue(g *domain.Graph, order []domain.UnitID) (domain.JobQueue, error) {
	inQueue := make(map[domain.UnitID]struct{}, len(order))
	for _, id := range order {
		inQueue[id] = struct{}{}
	}

	queue := make(domain.JobQueue, 0, len(order))
	for _, id := range order {
		unit, ok := g.Unit(id)
		if !ok {
			return nil, zerr.With(domain.ErrUnknownUnit, "unit", id.String())
		}
		if unit.Invocation.IsZero() {
			return nil, zerr.With(domain.ErrMissingInvocation, "unit", id.String())
		}

		var deps []domain.UnitID
		for _, dep := range g.Deps(id) {
			if _, ok := inQueue[dep]; ok {
				deps = append(deps, dep)
			}
		}

		queue = append(queue, domain.Job{
			Unit: id,
			Spec: unit.Invocation.Clone(),
			Deps: deps,
		})
	}

	return queue, nil
}
