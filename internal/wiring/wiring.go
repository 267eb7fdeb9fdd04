// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/replan/internal/adapters/buildtool"
	_ "go.trai.ch/replan/internal/adapters/logger"
	_ "go.trai.ch/replan/internal/adapters/manifest"
	_ "go.trai.ch/replan/internal/adapters/planfile"
	_ "go.trai.ch/replan/internal/adapters/shell"
	_ "go.trai.ch/replan/internal/adapters/telemetry"
	_ "go.trai.ch/replan/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/replan/internal/app"
	_ "go.trai.ch/replan/internal/engine/planner"
)
