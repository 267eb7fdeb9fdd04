// Package buildtool runs the external build tool and captures the serialized
// plan it emits.
package buildtool

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"go.trai.ch/replan/internal/adapters/planfile"
	"go.trai.ch/replan/internal/core/domain"
	"go.trai.ch/replan/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildTool = (*Runner)(nil)

// Runner invokes the configured build tool. The tool performs the full build
// for the requested packages and writes the serialized plan document to
// stdout, from which the new unit graph is constructed.
type Runner struct {
	program string
	args    []string
	dir     string
	logger  ports.Logger
}

// NewRunner creates a Runner for the given build tool invocation rooted at
// dir.
func NewRunner(program string, args []string, dir string, logger ports.Logger) *Runner {
	return &Runner{
		program: program,
		args:    args,
		dir:     dir,
		logger:  logger,
	}
}

// FullBuild runs the build tool for the given packages and returns the graph
// reconstructed from its plan output.
func (r *Runner) FullBuild(ctx context.Context, packages []string) (*domain.Graph, error) {
	args := append([]string(nil), r.args...)
	for _, pkg := range packages {
		args = append(args, "--package", pkg)
	}

	r.logger.Info("running full build: " + r.program + " " + strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, r.program, args...) //nolint:gosec // command comes from the workspace manifest
	cmd.Dir = r.dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		wrapped := zerr.With(zerr.Wrap(err, "build tool failed"), "program", r.program)
		return nil, zerr.With(wrapped, "stderr", strings.TrimSpace(stderr.String()))
	}

	g, err := planfile.Parse(stdout.Bytes())
	if err != nil {
		return nil, zerr.Wrap(err, "build tool emitted an unusable plan")
	}
	return g, nil
}
