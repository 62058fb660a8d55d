// Package main is the entry point for the packaging-service application.
//
// @title           Packaging Service API
// @version         1.0.0
// @description     API for packaging catalogs, stock consolidation, pick planning and pallet composition scoring.
//
//	This service resolves per-product packaging hierarchies, consolidates stock across
//	locations into base units, computes deterministic pick plans and scores pallet
//	candidates for multi-product compositions.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Catalog
// @tag.description Packaging catalog and hierarchy operations
//
// @tag.name        Stock
// @tag.description Stock consolidation and pick planning operations
//
// @tag.name        Compositions
// @tag.description Pallet selection and complexity classification
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/warewise/packaging-service/docs" // swagger docs

	"github.com/rs/zerolog/log"
	"github.com/warewise/packaging-service/config"
	"github.com/warewise/packaging-service/internal/app"
	"github.com/warewise/packaging-service/internal/middleware"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)
	server.OnShutdown(middleware.StopAsyncLogger)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
