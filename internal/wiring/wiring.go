// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/wrp/internal/adapters/config"
	_ "go.trai.ch/wrp/internal/adapters/hypr"
	_ "go.trai.ch/wrp/internal/adapters/logger"
	_ "go.trai.ch/wrp/internal/adapters/matugen"
	_ "go.trai.ch/wrp/internal/adapters/notify"
	_ "go.trai.ch/wrp/internal/adapters/shell"
	_ "go.trai.ch/wrp/internal/adapters/store"
	_ "go.trai.ch/wrp/internal/adapters/sysinfo"
	_ "go.trai.ch/wrp/internal/adapters/telemetry"
	_ "go.trai.ch/wrp/internal/adapters/watcher"
	_ "go.trai.ch/wrp/internal/adapters/wpctl"
	// Register app and engine nodes.
	_ "go.trai.ch/wrp/internal/app"
	_ "go.trai.ch/wrp/internal/engine/colors"
)
