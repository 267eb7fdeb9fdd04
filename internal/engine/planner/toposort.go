package planner

import (
	"slices"

	"go.trai.ch/replan/internal/core/domain"
)

// TopoSort linearizes a subset of the graph's units in dependency order.
//
// Convention: dependencies appear before dependents in the returned slice,
// so the result can be replayed front to back. The job queue builder relies
// on exactly this order.
//
// The traversal is a post-order depth-first walk over forward dependency
// edges restricted to the requested subset; edges leading outside the subset
// are not followed (callers pass a transitively closed dirty set, which is
// closed under "needed to build" already). Roots and neighbours are visited
// in sorted identity order, so the result is deterministic even though other
// valid linearizations exist.
//
// An explicit frame stack replaces recursion to stay safe on very large
// workspaces.
func TopoSort(g *domain.Graph, subset []domain.UnitID) []domain.UnitID {
	inSubset := make(map[domain.UnitID]struct{}, len(subset))
	for _, id := range subset {
		inSubset[id] = struct{}{}
	}

	restrict := func(ids []domain.UnitID) []domain.UnitID {
		kept := ids[:0:0]
		for _, id := range ids {
			if _, ok := inSubset[id]; ok {
				kept = append(kept, id)
			}
		}
		return kept
	}

	type frame struct {
		id   domain.UnitID
		deps []domain.UnitID
		next int
	}

	roots := slices.Clone(subset)
	slices.Sort(roots)

	visited := make(map[domain.UnitID]struct{}, len(subset))
	order := make([]domain.UnitID, 0, len(subset))

	for _, root := range roots {
		if _, seen := visited[root]; seen {
			continue
		}
		visited[root] = struct{}{}
		stack := []frame{{id: root, deps: restrict(g.Deps(root))}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]

			if top.next < len(top.deps) {
				dep := top.deps[top.next]
				top.next++
				if _, seen := visited[dep]; !seen {
					visited[dep] = struct{}{}
					stack = append(stack, frame{id: dep, deps: restrict(g.Deps(dep))})
				}
				continue
			}

			// All dependencies within the subset are emitted; the unit
			// itself may follow.
			order = append(order, top.id)
			stack = stack[:len(stack)-1]
		}
	}

	return order
}
