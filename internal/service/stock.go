package service

import (
	"context"
	"time"

	"github.com/warewise/packaging-service/internal/domain/model"
	"github.com/warewise/packaging-service/internal/engine"
	"github.com/warewise/packaging-service/internal/metrics"
	"github.com/warewise/packaging-service/internal/repository"
)

// StockService defines the interface for stock consolidation and pick
// planning operations.
type StockService interface {
	// Consolidate aggregates all stock records of a product into a single
	// base-unit total with a per-packaging breakdown.
	Consolidate(ctx context.Context, productID string) (model.ConsolidatedStock, error)

	// PlanPick computes a pick plan for the requested amount of base units
	// against the product's current stock.
	PlanPick(ctx context.Context, productID string, requestedBaseUnits float64) (model.PickPlan, error)
}

// StockServiceImpl implements StockService on top of the catalog service
// and the stock records repository.
type StockServiceImpl struct {
	catalog   CatalogService
	stockRepo repository.StockRecordsRepositoryInterface
}

// NewStockService creates a new stock service.
func NewStockService(catalog CatalogService, stockRepo repository.StockRecordsRepositoryInterface) *StockServiceImpl {
	return &StockServiceImpl{
		catalog:   catalog,
		stockRepo: stockRepo,
	}
}

// Consolidate aggregates all stock records of a product.
func (s *StockServiceImpl) Consolidate(ctx context.Context, productID string) (model.ConsolidatedStock, error) {
	start := time.Now()

	catalog, err := s.catalog.GetCatalog(ctx, productID)
	if err != nil {
		metrics.RecordEngineOperation(metrics.OpConsolidate, time.Since(start), "error")
		return model.ConsolidatedStock{}, err
	}

	records, err := s.stockRepo.ListByProduct(ctx, productID)
	if err != nil {
		metrics.RecordEngineOperation(metrics.OpConsolidate, time.Since(start), "error")
		return model.ConsolidatedStock{}, err
	}

	consolidated, err := engine.Consolidate(catalog, productID, records)
	if err != nil {
		metrics.RecordEngineOperation(metrics.OpConsolidate, time.Since(start), "error")
		return model.ConsolidatedStock{}, err
	}

	metrics.RecordEngineOperation(metrics.OpConsolidate, time.Since(start), "success")
	return consolidated, nil
}

// PlanPick computes a pick plan for the requested amount of base units.
// The availability pool is built from current stock: full packages per
// packaging type, summed across locations.
func (s *StockServiceImpl) PlanPick(ctx context.Context, productID string, requestedBaseUnits float64) (model.PickPlan, error) {
	start := time.Now()

	catalog, err := s.catalog.GetCatalog(ctx, productID)
	if err != nil {
		metrics.RecordEngineOperation(metrics.OpPickPlan, time.Since(start), "error")
		return model.PickPlan{}, err
	}

	records, err := s.stockRepo.ListByProduct(ctx, productID)
	if err != nil {
		metrics.RecordEngineOperation(metrics.OpPickPlan, time.Since(start), "error")
		return model.PickPlan{}, err
	}

	pool := buildAvailabilityPool(catalog, productID, records)

	plan, err := engine.Optimize(catalog, productID, requestedBaseUnits, pool)
	if err != nil {
		metrics.RecordEngineOperation(metrics.OpPickPlan, time.Since(start), "error")
		return model.PickPlan{}, err
	}

	metrics.RecordEngineOperation(metrics.OpPickPlan, time.Since(start), "success")
	metrics.RecordPickPlanRemaining(plan.Remaining)
	return plan, nil
}

// buildAvailabilityPool sums stock per packaging type across all locations
// of one product, expressed in base units: the optimizer consumes the pool
// in base units, so each record's package quantity is scaled by its
// packaging's BaseUnitQuantity. Records referencing unknown packaging
// types are skipped.
func buildAvailabilityPool(catalog *engine.Catalog, productID string, records []model.StockRecord) map[string]float64 {
	pool := make(map[string]float64, len(records))
	for _, record := range records {
		if record.ProductID != productID || record.Quantity <= 0 {
			continue
		}
		t, err := catalog.Type(productID, record.PackagingTypeID)
		if err != nil {
			continue
		}
		pool[record.PackagingTypeID] += record.Quantity * t.BaseUnitQuantity
	}
	return pool
}
