// Package domain contains the core domain models for the cached build graph
// and the incremental rebuild planner.
package domain

import (
	"maps"
	"slices"
)

// UnitKind classifies a unit for the dirty-file heuristic.
type UnitKind string

const (
	// KindCompile is a regular compiler invocation. Its source directory is
	// matched against changed files by path prefix.
	KindCompile UnitKind = "compile"

	// KindBuildScript is a build-script step. Build scripts may regenerate
	// build-time artifacts consumed by dependents, so they are matched by
	// exact source path and are never replayed incrementally.
	KindBuildScript UnitKind = "build-script"
)

// ProcessSpec is a replayable process invocation: program, ordered argument
// list, environment mapping and optional working directory.
type ProcessSpec struct {
	Program string            `json:"program"`
	Args    []string          `json:"args"`
	Env     map[string]string `json:"env"`
	Cwd     string            `json:"cwd,omitempty"`
}

// IsZero reports whether the spec carries no cached invocation. A unit can be
// discovered as somebody's dependency edge without its invocation ever being
// materialized; such a unit cannot be replayed.
func (s ProcessSpec) IsZero() bool {
	return s.Program == ""
}

// Clone returns a deep copy so replayed invocations can never be mutated
// through shared state.
func (s ProcessSpec) Clone() ProcessSpec {
	return ProcessSpec{
		Program: s.Program,
		Args:    slices.Clone(s.Args),
		Env:     maps.Clone(s.Env),
		Cwd:     s.Cwd,
	}
}

// Unit is one schedulable build step, typically one compiler invocation.
type Unit struct {
	// ID is the stable identity of the unit, derived from the invocation
	// content. See ComputeUnitID.
	ID UnitID

	// Kind selects the dirty-file matching rule for this unit.
	Kind UnitKind

	// Invocation is the cached process specification. May be zero for units
	// discovered only through dependency edges.
	Invocation ProcessSpec

	// Outputs are the declared output paths of the invocation.
	Outputs []string

	// Links maps declared output paths to alias paths.
	Links map[string]string

	// SrcPath is the resolved primary source file of the unit. It is used
	// only by the dirty-set heuristic and may be empty.
	SrcPath string
}
