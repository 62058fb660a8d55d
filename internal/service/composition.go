package service

import (
	"context"
	"time"

	"github.com/warewise/packaging-service/internal/domain/model"
	"github.com/warewise/packaging-service/internal/engine"
	"github.com/warewise/packaging-service/internal/metrics"
	"github.com/warewise/packaging-service/internal/repository"
)

// DefaultEfficiencyWindow is the trailing window used when recomputing a
// pallet's historical efficiency from recorded outcomes.
const DefaultEfficiencyWindow = 30 * 24 * time.Hour

// CompositionService defines the interface for pallet composition operations.
type CompositionService interface {
	// SelectPallets scores the available pallets against the given items
	// and returns the best candidates, best first.
	SelectPallets(ctx context.Context, items []model.CompositionItem) ([]model.CompositionCandidate, error)

	// Classify estimates the operational complexity of composing the
	// given items.
	Classify(ctx context.Context, items []model.CompositionItem, hasConstraints bool) (model.ComplexityLevel, error)

	// RecordSelection persists an accepted composition outcome and
	// refreshes the pallet's historical efficiency.
	RecordSelection(ctx context.Context, candidate model.CompositionCandidate, items []model.CompositionItem) error

	// Confirm re-scores the given items against one pallet, records the
	// accepted outcome, and returns the realized candidate figures.
	Confirm(ctx context.Context, palletID string, items []model.CompositionItem) (model.CompositionCandidate, error)
}

// CompositionOption configures a CompositionServiceImpl.
type CompositionOption func(*CompositionServiceImpl)

// CompositionServiceImpl implements CompositionService.
type CompositionServiceImpl struct {
	productsRepo     repository.ProductsRepositoryInterface
	palletsRepo      repository.PalletsRepositoryInterface
	scorer           *engine.Scorer
	efficiencyWindow time.Duration
}

// NewCompositionService creates a new composition service with the given options.
func NewCompositionService(
	productsRepo repository.ProductsRepositoryInterface,
	palletsRepo repository.PalletsRepositoryInterface,
	opts ...CompositionOption,
) *CompositionServiceImpl {
	s := &CompositionServiceImpl{
		productsRepo:     productsRepo,
		palletsRepo:      palletsRepo,
		scorer:           engine.NewScorer(),
		efficiencyWindow: DefaultEfficiencyWindow,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithScorer replaces the default scorer, letting callers tune the scoring
// policy and complexity thresholds.
func WithScorer(scorer *engine.Scorer) CompositionOption {
	return func(s *CompositionServiceImpl) {
		if scorer != nil {
			s.scorer = scorer
		}
	}
}

// WithEfficiencyWindow sets the trailing window for efficiency refreshes.
func WithEfficiencyWindow(window time.Duration) CompositionOption {
	return func(s *CompositionServiceImpl) {
		if window > 0 {
			s.efficiencyWindow = window
		}
	}
}

// SelectPallets scores the available pallets against the given items.
func (s *CompositionServiceImpl) SelectPallets(ctx context.Context, items []model.CompositionItem) ([]model.CompositionCandidate, error) {
	start := time.Now()

	products, err := s.loadProducts(ctx, items)
	if err != nil {
		metrics.RecordEngineOperation(metrics.OpSelectPallets, time.Since(start), "error")
		return nil, err
	}

	pallets, err := s.palletsRepo.ListAvailable(ctx)
	if err != nil {
		metrics.RecordEngineOperation(metrics.OpSelectPallets, time.Since(start), "error")
		return nil, err
	}

	candidates, err := s.scorer.SelectPallets(items, pallets, products)
	if err != nil {
		metrics.RecordEngineOperation(metrics.OpSelectPallets, time.Since(start), "error")
		return nil, err
	}

	metrics.RecordEngineOperation(metrics.OpSelectPallets, time.Since(start), "success")
	return candidates, nil
}

// Classify estimates the operational complexity of composing the given items.
func (s *CompositionServiceImpl) Classify(ctx context.Context, items []model.CompositionItem, hasConstraints bool) (model.ComplexityLevel, error) {
	products := make(map[string]bool, len(items))
	var totalQuantity float64
	for _, item := range items {
		if item.Quantity < 0 {
			return "", &engine.InvalidRequestError{Field: "items", Reason: "quantity must not be negative"}
		}
		products[item.ProductID] = true
		totalQuantity += item.Quantity
	}

	return s.scorer.ClassifyComplexity(len(products), totalQuantity, hasConstraints), nil
}

// RecordSelection persists an accepted composition outcome and refreshes
// the pallet's historical efficiency from the trailing window.
func (s *CompositionServiceImpl) RecordSelection(ctx context.Context, candidate model.CompositionCandidate, items []model.CompositionItem) error {
	products, err := s.loadProducts(ctx, items)
	if err != nil {
		return err
	}

	load, err := engine.ComputeLoad(items, products)
	if err != nil {
		return err
	}

	distinct := make(map[string]bool, len(items))
	var totalQuantity float64
	for _, item := range items {
		distinct[item.ProductID] = true
		totalQuantity += item.Quantity
	}

	outcome := &repository.CompositionOutcome{
		PalletID:          candidate.Pallet.ID,
		ProductCount:      len(distinct),
		TotalQuantity:     totalQuantity,
		TotalWeightKg:     load.TotalWeightKg,
		TotalVolumeM3:     load.TotalVolumeM3,
		WeightUtilization: candidate.WeightUtilization,
		VolumeUtilization: candidate.VolumeUtilization,
		AdjustedScore:     candidate.AdjustedScore,
	}
	if err := s.palletsRepo.RecordOutcome(ctx, outcome); err != nil {
		return err
	}

	_, err = s.palletsRepo.RefreshEfficiency(ctx, candidate.Pallet.ID, s.efficiencyWindow)
	return err
}

// Confirm scores the items against the chosen pallet only, so the recorded
// utilization reflects the pallet the operator actually loaded rather than
// the ranked suggestion. The pallet must exist and carry the load.
func (s *CompositionServiceImpl) Confirm(ctx context.Context, palletID string, items []model.CompositionItem) (model.CompositionCandidate, error) {
	if len(items) == 0 {
		return model.CompositionCandidate{}, &engine.InvalidRequestError{Field: "items", Reason: "must not be empty"}
	}

	pallet, err := s.palletsRepo.GetByID(ctx, palletID)
	if err != nil {
		return model.CompositionCandidate{}, err
	}
	if pallet == nil {
		return model.CompositionCandidate{}, &engine.InvalidRequestError{
			Field:  "pallet_id",
			Reason: "unknown pallet " + palletID,
		}
	}

	products, err := s.loadProducts(ctx, items)
	if err != nil {
		return model.CompositionCandidate{}, err
	}

	candidates, err := s.scorer.SelectPallets(items, []model.Pallet{*pallet}, products)
	if err != nil {
		return model.CompositionCandidate{}, err
	}

	candidate := candidates[0]
	if err := s.RecordSelection(ctx, candidate, items); err != nil {
		return model.CompositionCandidate{}, err
	}
	return candidate, nil
}

// loadProducts fetches the distinct products referenced by the items.
func (s *CompositionServiceImpl) loadProducts(ctx context.Context, items []model.CompositionItem) (map[string]model.Product, error) {
	ids := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if !seen[item.ProductID] {
			seen[item.ProductID] = true
			ids = append(ids, item.ProductID)
		}
	}

	products, err := s.productsRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return byID, nil
}
