package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/replan/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_Info(t *testing.T) {
	l, ok := logger.New().(*logger.Logger)
	require.True(t, ok)

	var buf bytes.Buffer
	l.SetOutput(&buf)

	l.Info("restored persisted build plan")

	assert.Contains(t, buf.String(), "level=INFO")
	assert.Contains(t, buf.String(), "restored persisted build plan")
}

func TestLogger_Error(t *testing.T) {
	l, ok := logger.New().(*logger.Logger)
	require.True(t, ok)

	var buf bytes.Buffer
	l.SetOutput(&buf)

	l.Error(zerr.New("plan file truncated"))

	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "plan file truncated")
}
