// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/yango/internal/adapters/cas"
	_ "go.trai.ch/yango/internal/adapters/config"
	_ "go.trai.ch/yango/internal/adapters/fs"
	_ "go.trai.ch/yango/internal/adapters/logger"
	_ "go.trai.ch/yango/internal/adapters/report"
	_ "go.trai.ch/yango/internal/adapters/shell"
	_ "go.trai.ch/yango/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/yango/internal/app"
	_ "go.trai.ch/yango/internal/engine/batch"
)
