package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidPlan is returned when a serialized build plan is structurally
	// broken, e.g. a dependency index points outside the invocation list.
	ErrInvalidPlan = zerr.New("invalid build plan")

	// ErrDanglingEdge is returned when an adjacency map references a unit that
	// has no entry in the unit table. The graph instance is unusable and must
	// be discarded, never repaired.
	ErrDanglingEdge = zerr.New("dangling graph edge")

	// ErrUnknownUnit is returned when a requested unit is not present in the
	// graph.
	ErrUnknownUnit = zerr.New("unknown unit")

	// ErrMissingInvocation is returned when a unit in the job queue has no
	// cached invocation to replay.
	ErrMissingInvocation = zerr.New("missing cached invocation")

	// ErrRelativePath is returned when a changed-file path handed to the
	// dirty-set resolver is not absolute.
	ErrRelativePath = zerr.New("path is not absolute")

	// ErrNoChangedFiles is returned when a plan query is made without any
	// changed files.
	ErrNoChangedFiles = zerr.New("no changed files specified")

	// ErrBuildExecutionFailed is returned when replaying the job queue fails.
	ErrBuildExecutionFailed = zerr.New("build execution failed")
)
