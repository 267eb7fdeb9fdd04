package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/replan/internal/core/domain"
)

func TestComputeUnitID_Deterministic(t *testing.T) {
	spec := domain.ProcessSpec{
		Program: "rustc",
		Args:    []string{"--crate-name", "mylib", "src/lib.rs"},
		Env:     map[string]string{"CARGO_PKG_NAME": "mylib", "OUT_DIR": "/tmp/out"},
		Cwd:     "/work/mylib",
	}

	assert.Equal(t, domain.ComputeUnitID(spec), domain.ComputeUnitID(spec))
	// Map iteration order must not leak into the identity.
	assert.Equal(t, domain.ComputeUnitID(spec), domain.ComputeUnitID(spec.Clone()))
}

func TestComputeUnitID_Distinguishes(t *testing.T) {
	base := domain.ProcessSpec{
		Program: "rustc",
		Args:    []string{"a", "b"},
		Env:     map[string]string{"K": "v"},
		Cwd:     "/work",
	}

	tests := []struct {
		name   string
		mutate func(*domain.ProcessSpec)
	}{
		{"program", func(s *domain.ProcessSpec) { s.Program = "cc" }},
		{"arg value", func(s *domain.ProcessSpec) { s.Args = []string{"a", "c"} }},
		{"arg order", func(s *domain.ProcessSpec) { s.Args = []string{"b", "a"} }},
		{"arg boundary", func(s *domain.ProcessSpec) { s.Args = []string{"ab"} }},
		{"env value", func(s *domain.ProcessSpec) { s.Env = map[string]string{"K": "w"} }},
		{"env key", func(s *domain.ProcessSpec) { s.Env = map[string]string{"L": "v"} }},
		{"cwd", func(s *domain.ProcessSpec) { s.Cwd = "/elsewhere" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := base.Clone()
			tt.mutate(&other)
			assert.NotEqual(t, domain.ComputeUnitID(base), domain.ComputeUnitID(other))
		})
	}
}

func TestProcessSpec_Clone_Isolated(t *testing.T) {
	orig := domain.ProcessSpec{
		Program: "rustc",
		Args:    []string{"a"},
		Env:     map[string]string{"K": "v"},
	}

	clone := orig.Clone()
	clone.Args[0] = "changed"
	clone.Env["K"] = "changed"

	assert.Equal(t, "a", orig.Args[0])
	assert.Equal(t, "v", orig.Env["K"])
}
