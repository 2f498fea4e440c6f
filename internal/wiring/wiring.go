// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/autoload/internal/adapters/cache"
	_ "go.trai.ch/autoload/internal/adapters/config"
	_ "go.trai.ch/autoload/internal/adapters/fs"
	_ "go.trai.ch/autoload/internal/adapters/logger"
	_ "go.trai.ch/autoload/internal/adapters/runtime"
	_ "go.trai.ch/autoload/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/autoload/internal/app"
	_ "go.trai.ch/autoload/internal/engine/loader"
)
