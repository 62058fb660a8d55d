package app

import (
	"os"

	"github.com/warewise/packaging-service/internal/logger"
)

// InitializeLogger configures the global logger from LOG_LEVEL and
// LOG_PRETTY. These stay environment-driven so log output can change
// without touching the service configuration.
func InitializeLogger() {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}
	logger.Init(level, os.Getenv("LOG_PRETTY") == "true")
}
