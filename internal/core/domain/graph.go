package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// Graph is the cached unit graph: a unit table plus forward and reverse
// adjacency between unit identities. The reverse map is kept as the exact
// transpose of the forward map after every mutation, which makes the dirty
// sub-graph walk cheap.
//
// Units are never deleted; a structurally different build scope produces an
// entirely new Graph instance.
type Graph struct {
	units   map[UnitID]Unit
	deps    map[UnitID]map[UnitID]struct{}
	revDeps map[UnitID]map[UnitID]struct{}
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		units:   make(map[UnitID]Unit),
		deps:    make(map[UnitID]map[UnitID]struct{}),
		revDeps: make(map[UnitID]map[UnitID]struct{}),
	}
}

// Add inserts a unit together with its direct dependency units. It supports
// streaming construction: dependency units that were never seen before are
// inserted in the same call, and both adjacency maps are consistent when Add
// returns.
//
// Units are deduplicated by identity. The first materialized insertion wins;
// a unit first discovered as somebody's dependency edge (with no cached
// invocation) is upgraded in place once its real invocation shows up, so both
// discoveries coalesce into a single graph node. Self-edges are dropped.
func (g *Graph) Add(unit Unit, deps ...Unit) {
	g.insert(unit)

	for _, dep := range deps {
		if dep.ID == unit.ID {
			continue
		}
		g.insert(dep)
		g.deps[unit.ID][dep.ID] = struct{}{}
		g.revDeps[dep.ID][unit.ID] = struct{}{}
	}
}

func (g *Graph) insert(unit Unit) {
	existing, ok := g.units[unit.ID]
	switch {
	case !ok:
		g.units[unit.ID] = unit
	case existing.Invocation.IsZero() && !unit.Invocation.IsZero():
		g.units[unit.ID] = unit
	}

	if g.deps[unit.ID] == nil {
		g.deps[unit.ID] = make(map[UnitID]struct{})
	}
	if g.revDeps[unit.ID] == nil {
		g.revDeps[unit.ID] = make(map[UnitID]struct{})
	}
}

// Len returns the number of units in the graph.
func (g *Graph) Len() int {
	return len(g.units)
}

// EdgeCount returns the number of forward dependency edges.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, set := range g.deps {
		n += len(set)
	}
	return n
}

// Contains reports whether the graph holds a unit with the given identity.
func (g *Graph) Contains(id UnitID) bool {
	_, ok := g.units[id]
	return ok
}

// Unit returns the unit stored under the given identity.
func (g *Graph) Unit(id UnitID) (Unit, bool) {
	u, ok := g.units[id]
	return u, ok
}

// Deps returns the direct dependencies of a unit as a sorted slice.
func (g *Graph) Deps(id UnitID) []UnitID {
	return sortedIDs(g.deps[id])
}

// Dependents returns the direct reverse dependencies of a unit as a sorted
// slice.
func (g *Graph) Dependents(id UnitID) []UnitID {
	return sortedIDs(g.revDeps[id])
}

// UnitIDs returns every unit identity in the graph, sorted.
func (g *Graph) UnitIDs() []UnitID {
	ids := make([]UnitID, 0, len(g.units))
	for id := range g.units {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Validate defensively checks the class invariant: every identity appearing
// in either adjacency map has an entry in the unit table, and the reverse map
// is the exact transpose of the forward map. A failing graph must be
// discarded by the caller, never repaired.
func (g *Graph) Validate() error {
	for id, set := range g.deps {
		if _, ok := g.units[id]; !ok {
			return zerr.With(ErrDanglingEdge, "unit", id.String())
		}
		for dep := range set {
			if _, ok := g.units[dep]; !ok {
				return zerr.With(ErrDanglingEdge, "unit", dep.String())
			}
			if _, ok := g.revDeps[dep][id]; !ok {
				return transposeError(id, dep)
			}
		}
	}

	for id, set := range g.revDeps {
		if _, ok := g.units[id]; !ok {
			return zerr.With(ErrDanglingEdge, "unit", id.String())
		}
		for rev := range set {
			if _, ok := g.units[rev]; !ok {
				return zerr.With(ErrDanglingEdge, "unit", rev.String())
			}
			if _, ok := g.deps[rev][id]; !ok {
				return transposeError(rev, id)
			}
		}
	}

	return nil
}

func transposeError(from, to UnitID) error {
	err := zerr.With(ErrDanglingEdge, "from", from.String())
	return zerr.With(err, "to", to.String())
}

func sortedIDs(set map[UnitID]struct{}) []UnitID {
	if len(set) == 0 {
		return nil
	}
	ids := make([]UnitID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
