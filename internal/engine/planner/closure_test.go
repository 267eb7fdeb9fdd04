package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/replan/internal/core/domain"
	"go.trai.ch/replan/internal/engine/planner"
)

// diamond builds a -> b, a -> c, b -> d, c -> d and returns the units.
func diamond() (*domain.Graph, [4]domain.Unit) {
	a := srcUnit("a", "/ws/a/src/lib.rs")
	b := srcUnit("b", "/ws/b/src/lib.rs")
	c := srcUnit("c", "/ws/c/src/lib.rs")
	d := srcUnit("d", "/ws/d/src/lib.rs")

	g := domain.NewGraph()
	g.Add(a, b, c)
	g.Add(b, d)
	g.Add(c, d)
	return g, [4]domain.Unit{a, b, c, d}
}

func TestTransitiveClosure_Diamond(t *testing.T) {
	g, u := diamond()
	a, b, c, d := u[0], u[1], u[2], u[3]

	// Everything reaching d over reverse edges, both paths expanded once.
	got := planner.TransitiveClosure(g, []domain.UnitID{d.ID})
	assert.ElementsMatch(t, []domain.UnitID{a.ID, b.ID, c.ID, d.ID}, got)

	// A mid-level unit drags in only the units above it.
	got = planner.TransitiveClosure(g, []domain.UnitID{b.ID})
	assert.ElementsMatch(t, []domain.UnitID{a.ID, b.ID}, got)

	// The top unit has no dependents.
	got = planner.TransitiveClosure(g, []domain.UnitID{a.ID})
	assert.Equal(t, []domain.UnitID{a.ID}, got)
}

func TestTransitiveClosure_SupersetOfInput(t *testing.T) {
	g, u := diamond()

	dirty := []domain.UnitID{u[1].ID, u[2].ID}
	got := planner.TransitiveClosure(g, dirty)
	for _, id := range dirty {
		assert.Contains(t, got, id)
	}
}

func TestTransitiveClosure_Idempotent(t *testing.T) {
	g, u := diamond()

	once := planner.TransitiveClosure(g, []domain.UnitID{u[3].ID})
	twice := planner.TransitiveClosure(g, once)
	assert.Equal(t, once, twice)
}

func TestTransitiveClosure_Empty(t *testing.T) {
	g, _ := diamond()
	assert.Empty(t, planner.TransitiveClosure(g, nil))
}
