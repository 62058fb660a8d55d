// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"
	"github.com/warewise/packaging-service/config"
	"github.com/warewise/packaging-service/internal/http"
	"github.com/warewise/packaging-service/internal/middleware"
)

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) *gin.Engine {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	// Initialize database components (MongoDB repositories and circuit breakers)
	dbComponents := InitializeDatabase(cfg.Database)

	// Buffered log writes, only useful with a database behind them
	if dbComponents != nil {
		middleware.InitAsyncLogger(dbComponents.LoggingService, middleware.DefaultAsyncLoggerConfig())
	}

	// Initialize business services on top of the repositories
	serviceComponents := InitializeServices(cfg, dbComponents)

	// Initialize router components (handlers and configuration)
	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)

	return http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config)
}
