package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/replan/internal/core/ports"
)

// TracerNodeID is the unique identifier for the tracer Graft node.
const TracerNodeID graft.ID = "adapter.tracer"

// tracingEnv enables the OpenTelemetry tracer; default is the no-op.
const tracingEnv = "REPLAN_TRACING"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Tracer, error) {
			if os.Getenv(tracingEnv) != "" {
				return NewOTelTracer("replan"), nil
			}
			return NewNoOpTracer(), nil
		},
	})
}
