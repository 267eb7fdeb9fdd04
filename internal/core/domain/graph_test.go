package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/replan/internal/core/domain"
)

func unit(name string) domain.Unit {
	spec := domain.ProcessSpec{Program: "rustc", Args: []string{name}}
	return domain.Unit{
		ID:         domain.ComputeUnitID(spec),
		Kind:       domain.KindCompile,
		Invocation: spec,
	}
}

// edgeOnly is a unit discovered as a dependency edge: same identity as the
// materialized unit but no cached invocation.
func edgeOnly(name string) domain.Unit {
	u := unit(name)
	return domain.Unit{ID: u.ID, Kind: u.Kind}
}

func TestGraph_Add(t *testing.T) {
	g := domain.NewGraph()

	a, b, c := unit("a"), unit("b"), unit("c")
	g.Add(a, b, c)
	g.Add(b, c)
	g.Add(c)

	assert.Equal(t, 3, g.Len())
	assert.Equal(t, 3, g.EdgeCount())
	assert.ElementsMatch(t, []domain.UnitID{b.ID, c.ID}, g.Deps(a.ID))
	assert.ElementsMatch(t, []domain.UnitID{a.ID, b.ID}, g.Dependents(c.ID))
	require.NoError(t, g.Validate())
}

func TestGraph_Add_SelfEdgeDropped(t *testing.T) {
	g := domain.NewGraph()

	a := unit("a")
	g.Add(a, a)

	assert.Equal(t, 1, g.Len())
	assert.Zero(t, g.EdgeCount())
	assert.Empty(t, g.Deps(a.ID))
	require.NoError(t, g.Validate())
}

func TestGraph_Add_FirstInsertionWins(t *testing.T) {
	g := domain.NewGraph()

	a := unit("a")
	g.Add(a)

	// Same identity with an extra output must not replace the original.
	altered := a
	altered.Outputs = []string{"/out/liba.rlib"}
	g.Add(altered)

	got, ok := g.Unit(a.ID)
	require.True(t, ok)
	assert.Empty(t, got.Outputs)
	assert.Equal(t, 1, g.Len())
}

func TestGraph_Add_EdgeDiscoveryUpgraded(t *testing.T) {
	g := domain.NewGraph()

	a, b := unit("a"), unit("b")

	// b is first seen only as a's dependency edge, invocation unknown.
	g.Add(a, edgeOnly("b"))

	got, ok := g.Unit(b.ID)
	require.True(t, ok)
	assert.True(t, got.Invocation.IsZero())

	// The materialized insertion fills in the invocation on the same node.
	g.Add(b)

	got, ok = g.Unit(b.ID)
	require.True(t, ok)
	assert.False(t, got.Invocation.IsZero())
	assert.Equal(t, 2, g.Len())
	assert.Equal(t, []domain.UnitID{b.ID}, g.Deps(a.ID))
}

func TestGraph_Dependents_Transpose(t *testing.T) {
	g := domain.NewGraph()

	// Diamond: a -> b, a -> c, b -> d, c -> d.
	a, b, c, d := unit("a"), unit("b"), unit("c"), unit("d")
	g.Add(a, b, c)
	g.Add(b, d)
	g.Add(c, d)

	require.NoError(t, g.Validate())

	for _, id := range g.UnitIDs() {
		for _, dep := range g.Deps(id) {
			assert.Contains(t, g.Dependents(dep), id)
		}
		for _, rev := range g.Dependents(id) {
			assert.Contains(t, g.Deps(rev), id)
		}
	}
}

func TestGraph_UnitIDs_Sorted(t *testing.T) {
	g := domain.NewGraph()
	for _, name := range []string{"z", "m", "a", "q"} {
		g.Add(unit(name))
	}

	ids := g.UnitIDs()
	require.Len(t, ids, 4)
	assert.IsIncreasing(t, ids)
}
