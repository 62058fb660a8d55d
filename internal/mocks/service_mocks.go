// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/warewise/packaging-service/internal/domain/model"
	"github.com/warewise/packaging-service/internal/engine"
)

type MockLoggingService struct {
	mock.Mock
}

func (m *MockLoggingService) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLoggingService) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockLoggingService) QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LogEntry), args.Error(1)
}

func (m *MockLoggingService) CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) GetCatalog(ctx context.Context, productID string) (*engine.Catalog, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*engine.Catalog), args.Error(1)
}

func (m *MockCatalogService) GetHierarchy(ctx context.Context, productID string) ([]model.HierarchyNode, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.HierarchyNode), args.Error(1)
}

func (m *MockCatalogService) InvalidateProduct(productID string) {
	m.Called(productID)
}

type MockStockService struct {
	mock.Mock
}

func (m *MockStockService) Consolidate(ctx context.Context, productID string) (model.ConsolidatedStock, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(model.ConsolidatedStock), args.Error(1)
}

func (m *MockStockService) PlanPick(ctx context.Context, productID string, requestedBaseUnits float64) (model.PickPlan, error) {
	args := m.Called(ctx, productID, requestedBaseUnits)
	return args.Get(0).(model.PickPlan), args.Error(1)
}

type MockCompositionService struct {
	mock.Mock
}

func (m *MockCompositionService) SelectPallets(ctx context.Context, items []model.CompositionItem) ([]model.CompositionCandidate, error) {
	args := m.Called(ctx, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CompositionCandidate), args.Error(1)
}

func (m *MockCompositionService) Classify(ctx context.Context, items []model.CompositionItem, hasConstraints bool) (model.ComplexityLevel, error) {
	args := m.Called(ctx, items, hasConstraints)
	return args.Get(0).(model.ComplexityLevel), args.Error(1)
}

func (m *MockCompositionService) RecordSelection(ctx context.Context, candidate model.CompositionCandidate, items []model.CompositionItem) error {
	args := m.Called(ctx, candidate, items)
	return args.Error(0)
}

func (m *MockCompositionService) Confirm(ctx context.Context, palletID string, items []model.CompositionItem) (model.CompositionCandidate, error) {
	args := m.Called(ctx, palletID, items)
	return args.Get(0).(model.CompositionCandidate), args.Error(1)
}
