package planner

import (
	"slices"

	"go.trai.ch/replan/internal/core/domain"
)

// TransitiveClosure expands a dirty set along reverse dependency edges to
// every unit that directly or transitively depends on a dirty unit. The
// input is always a subset of the result.
//
// The walk uses an explicit work stack so the depth never scales with graph
// size, and a visited set so a unit reachable over several paths is expanded
// exactly once.
func TransitiveClosure(g *domain.Graph, dirty []domain.UnitID) []domain.UnitID {
	visited := make(map[domain.UnitID]struct{}, len(dirty))
	stack := slices.Clone(dirty)

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, seen := visited[top]; seen {
			continue
		}
		visited[top] = struct{}{}

		stack = append(stack, g.Dependents(top)...)
	}

	ids := make([]domain.UnitID, 0, len(visited))
	for id := range visited {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
