// Package app provides service initialization.
package app

import (
	"github.com/warewise/packaging-service/config"
	"github.com/warewise/packaging-service/internal/engine"
	"github.com/warewise/packaging-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Catalog     service.CatalogService
	Stock       service.StockService
	Composition service.CompositionService
}

// InitializeServices initializes business logic services on top of the
// repositories. Returns nil when no database is available; the router then
// serves only infrastructure routes.
func InitializeServices(cfg config.Config, dbComponents *DatabaseComponents) *ServiceComponents {
	if dbComponents == nil {
		return nil
	}

	var catalogOpts []service.CatalogOption
	if cfg.Cache.Size > 0 {
		if cfg.Cache.Shards > 1 {
			sharded := service.NewShardedCache(cfg.Cache.Size, cfg.Cache.TTL, cfg.Cache.Shards)
			catalogOpts = append(catalogOpts, service.WithSnapshotCacheInterface(sharded))
		} else {
			catalogOpts = append(catalogOpts, service.WithSnapshotCache(cfg.Cache.Size, cfg.Cache.TTL))
		}
	}

	catalog := service.NewCatalogService(dbComponents.PackagingTypesRepo, catalogOpts...)
	stock := service.NewStockService(catalog, dbComponents.StockRecordsRepo)

	scorer := engine.NewScorer(
		engine.WithScoringPolicy(engine.ScoringPolicy{
			CapacityWeight:        cfg.Engine.CapacityWeight,
			AreaWeight:            cfg.Engine.AreaWeight,
			EfficiencyWeight:      cfg.Engine.EfficiencyWeight,
			TargetUtilization:     cfg.Engine.TargetUtilization,
			StandardStackHeightCm: cfg.Engine.StandardStackHeightCm,
			MaxCandidates:         cfg.Engine.MaxCandidates,
		}),
		engine.WithComplexityThresholds(engine.ComplexityThresholds{
			MaxProducts: cfg.Engine.ComplexityMaxProducts,
			MaxQuantity: cfg.Engine.ComplexityMaxQuantity,
		}),
	)

	composition := service.NewCompositionService(
		dbComponents.ProductsRepo,
		dbComponents.PalletsRepo,
		service.WithScorer(scorer),
	)

	return &ServiceComponents{
		Catalog:     catalog,
		Stock:       stock,
		Composition: composition,
	}
}
