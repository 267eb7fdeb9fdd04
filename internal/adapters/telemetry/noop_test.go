package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/replan/internal/adapters/telemetry"
	"go.trai.ch/zerr"
)

func TestNoOpTracer(t *testing.T) {
	t.Parallel()

	tracer := telemetry.NewNoOpTracer()
	ctx := context.Background()

	newCtx, span := tracer.Start(ctx, "rebuild")
	assert.NotNil(t, newCtx)
	assert.NotNil(t, span)

	span.SetAttribute("queue_len", 3)
	span.RecordError(zerr.New("boom"))
	n, err := span.Write([]byte("output"))
	assert.NoError(t, err)
	assert.Equal(t, 6, n)
	span.End()

	tracer.EmitQueue(ctx, []string{"a", "b"})
}
