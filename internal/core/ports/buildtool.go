package ports

import (
	"context"

	"go.trai.ch/replan/internal/core/domain"
)

// BuildTool is the external build tool the planner delegates to whenever the
// cached graph cannot answer a query. A full build both compiles the
// requested packages and emits the serialized plan from which the new graph
// is constructed.
//
//go:generate go run go.uber.org/mock/mockgen -source=buildtool.go -destination=mocks/mock_buildtool.go -package=mocks
type BuildTool interface {
	FullBuild(ctx context.Context, packages []string) (*domain.Graph, error)
}
