// Package app provides router configuration.
package app

import (
	"context"
	"time"

	"github.com/warewise/packaging-service/config"
	"github.com/warewise/packaging-service/internal/http"
	"github.com/warewise/packaging-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	serviceComponents *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var loggingService service.LoggingService
	if dbComponents != nil {
		loggingService = dbComponents.LoggingService
	}

	var handler *http.Handler
	if serviceComponents != nil {
		handler = http.NewHandler(
			serviceComponents.Catalog,
			serviceComponents.Stock,
			serviceComponents.Composition,
		)
	}

	healthHandler := http.NewHealthHandler()

	// Register database and circuit breaker checks for health monitoring
	if dbComponents != nil {
		if dbComponents.DB != nil {
			db := dbComponents.DB
			healthHandler.AddChecker("database", http.HealthCheckerFunc(func() error {
				ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				return db.HealthCheck(ctx)
			}))
		}
		if dbComponents.CatalogCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_catalog", dbComponents.CatalogCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:      cfg.Server.RateLimit,
		RateWindow:     cfg.Server.RateWindow,
		CORSOrigins:    cfg.Server.CORSOrigins,
		SwaggerUser:    cfg.Server.SwaggerUser,
		SwaggerPass:    cfg.Server.SwaggerPass,
		LoggingService: loggingService,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
