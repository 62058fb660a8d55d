// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/warewise/packaging-service/internal/domain/model"
	"github.com/warewise/packaging-service/internal/repository"
)

type MockProductsRepositoryInterface struct {
	mock.Mock
}

func (m *MockProductsRepositoryInterface) GetByID(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductsRepositoryInterface) GetByIDs(ctx context.Context, ids []string) ([]model.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductsRepositoryInterface) Upsert(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductsRepositoryInterface) List(ctx context.Context, activeOnly bool, limit int) ([]model.Product, error) {
	args := m.Called(ctx, activeOnly, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

type MockPackagingTypesRepositoryInterface struct {
	mock.Mock
}

func (m *MockPackagingTypesRepositoryInterface) GetByID(ctx context.Context, id string) (*model.PackagingType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PackagingType), args.Error(1)
}

func (m *MockPackagingTypesRepositoryInterface) ListByProduct(ctx context.Context, productID string) ([]model.PackagingType, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PackagingType), args.Error(1)
}

func (m *MockPackagingTypesRepositoryInterface) Upsert(ctx context.Context, pt *model.PackagingType) error {
	args := m.Called(ctx, pt)
	return args.Error(0)
}

func (m *MockPackagingTypesRepositoryInterface) Deactivate(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockStockRecordsRepositoryInterface struct {
	mock.Mock
}

func (m *MockStockRecordsRepositoryInterface) ListByProduct(ctx context.Context, productID string) ([]model.StockRecord, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StockRecord), args.Error(1)
}

func (m *MockStockRecordsRepositoryInterface) Upsert(ctx context.Context, record *model.StockRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockStockRecordsRepositoryInterface) DeleteByProduct(ctx context.Context, productID string) (int64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(int64), args.Error(1)
}

type MockPalletsRepositoryInterface struct {
	mock.Mock
}

func (m *MockPalletsRepositoryInterface) GetByID(ctx context.Context, id string) (*model.Pallet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pallet), args.Error(1)
}

func (m *MockPalletsRepositoryInterface) ListAvailable(ctx context.Context) ([]model.Pallet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Pallet), args.Error(1)
}

func (m *MockPalletsRepositoryInterface) Upsert(ctx context.Context, pallet *model.Pallet) error {
	args := m.Called(ctx, pallet)
	return args.Error(0)
}

func (m *MockPalletsRepositoryInterface) SetStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockPalletsRepositoryInterface) RecordOutcome(ctx context.Context, outcome *repository.CompositionOutcome) error {
	args := m.Called(ctx, outcome)
	return args.Error(0)
}

func (m *MockPalletsRepositoryInterface) RefreshEfficiency(ctx context.Context, palletID string, window time.Duration) (float64, error) {
	args := m.Called(ctx, palletID, window)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockPalletsRepositoryInterface) ListOutcomes(ctx context.Context, palletID string, limit int) ([]repository.CompositionOutcome, error) {
	args := m.Called(ctx, palletID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.CompositionOutcome), args.Error(1)
}

type MockLogsRepositoryInterface struct {
	mock.Mock
}

func (m *MockLogsRepositoryInterface) Create(ctx context.Context, entry *repository.LogEntryDocument) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLogsRepositoryInterface) CreateMany(ctx context.Context, entries []*repository.LogEntryDocument) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockLogsRepositoryInterface) Query(ctx context.Context, opts repository.LogQueryOptions) ([]*repository.LogEntryDocument, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.LogEntryDocument), args.Error(1)
}

func (m *MockLogsRepositoryInterface) Count(ctx context.Context, opts repository.LogQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}
