package ports

import "go.trai.ch/replan/internal/core/domain"

// PlanStore persists the serialized build plan between sessions.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type PlanStore interface {
	// Load reads and validates the persisted plan. Returns nil, nil when no
	// plan has been persisted yet.
	Load() (*domain.Graph, error)

	// Save persists the given graph as a serialized plan.
	Save(g *domain.Graph) error
}
