// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/fclean/internal/adapters/catalog"
	_ "go.trai.ch/fclean/internal/adapters/config"
	_ "go.trai.ch/fclean/internal/adapters/fs"
	_ "go.trai.ch/fclean/internal/adapters/logger"
	_ "go.trai.ch/fclean/internal/adapters/prompt"
	_ "go.trai.ch/fclean/internal/adapters/render"
	_ "go.trai.ch/fclean/internal/adapters/telemetry"
	_ "go.trai.ch/fclean/internal/adapters/trash"
	// Register app and engine nodes.
	_ "go.trai.ch/fclean/internal/app"
	_ "go.trai.ch/fclean/internal/engine/cleaner"
	_ "go.trai.ch/fclean/internal/engine/safety"
	_ "go.trai.ch/fclean/internal/engine/scanner"
)
