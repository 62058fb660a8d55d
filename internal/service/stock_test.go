//go:build !integration

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warewise/packaging-service/internal/domain/model"
	"github.com/warewise/packaging-service/internal/engine"
	"github.com/warewise/packaging-service/internal/mocks"
)

func newStockService(t *testing.T, types []model.PackagingType, records []model.StockRecord) *StockServiceImpl {
	t.Helper()

	packagingRepo := new(mocks.MockPackagingTypesRepositoryInterface)
	packagingRepo.On("ListByProduct", context.Background(), "PRD-1").Return(types, nil)

	stockRepo := new(mocks.MockStockRecordsRepositoryInterface)
	stockRepo.On("ListByProduct", context.Background(), "PRD-1").Return(records, nil)

	return NewStockService(NewCatalogService(packagingRepo), stockRepo)
}

func TestStockService_Consolidate(t *testing.T) {
	records := []model.StockRecord{
		{ID: "ST-1", ProductID: "PRD-1", PackagingTypeID: "PKG-P", LocationID: "LOC-1", Quantity: 2},
		{ID: "ST-2", ProductID: "PRD-1", PackagingTypeID: "PKG-B", LocationID: "LOC-2", Quantity: 0},
		{ID: "ST-3", ProductID: "PRD-1", PackagingTypeID: "PKG-U", LocationID: "LOC-2", Quantity: 5},
	}

	svc := newStockService(t, waterTypes(), records)

	consolidated, err := svc.Consolidate(context.Background(), "PRD-1")
	require.NoError(t, err)

	assert.Equal(t, "PRD-1", consolidated.ProductID)
	assert.Equal(t, float64(293), consolidated.TotalBaseUnits)
	assert.Equal(t, 2, consolidated.LocationsCount)
	assert.Equal(t, 2, consolidated.ItemsCount)
}

func TestStockService_Consolidate_StockRepoError(t *testing.T) {
	packagingRepo := new(mocks.MockPackagingTypesRepositoryInterface)
	packagingRepo.On("ListByProduct", context.Background(), "PRD-1").Return(waterTypes(), nil)

	stockRepo := new(mocks.MockStockRecordsRepositoryInterface)
	stockRepo.On("ListByProduct", context.Background(), "PRD-1").Return(nil, errors.New("timeout"))

	svc := NewStockService(NewCatalogService(packagingRepo), stockRepo)

	_, err := svc.Consolidate(context.Background(), "PRD-1")
	assert.Error(t, err)
}

func TestStockService_PlanPick(t *testing.T) {
	records := []model.StockRecord{
		{ID: "ST-1", ProductID: "PRD-1", PackagingTypeID: "PKG-P", LocationID: "LOC-1", Quantity: 2},
		{ID: "ST-2", ProductID: "PRD-1", PackagingTypeID: "PKG-B", LocationID: "LOC-2", Quantity: 24},
		{ID: "ST-3", ProductID: "PRD-1", PackagingTypeID: "PKG-U", LocationID: "LOC-2", Quantity: 5},
	}

	svc := newStockService(t, waterTypes(), records)

	plan, err := svc.PlanPick(context.Background(), "PRD-1", 300)
	require.NoError(t, err)

	assert.True(t, plan.CanFulfill)
	assert.Equal(t, float64(0), plan.Remaining)
	require.Len(t, plan.Entries, 2)
	assert.Equal(t, "PKG-P", plan.Entries[0].PackagingTypeID)
	assert.Equal(t, int64(2), plan.Entries[0].PackageCount)
	assert.Equal(t, "PKG-B", plan.Entries[1].PackagingTypeID)
	assert.Equal(t, int64(1), plan.Entries[1].PackageCount)
}

func TestStockService_PlanPick_NegativeRequest(t *testing.T) {
	svc := newStockService(t, waterTypes(), nil)

	_, err := svc.PlanPick(context.Background(), "PRD-1", -1)
	var invalidErr *engine.InvalidRequestError
	assert.ErrorAs(t, err, &invalidErr)
}

func TestBuildAvailabilityPool(t *testing.T) {
	catalog := engine.NewCatalog(waterTypes())

	tests := []struct {
		name     string
		records  []model.StockRecord
		expected map[string]float64
	}{
		{
			name:     "empty records produce empty pool",
			records:  nil,
			expected: map[string]float64{},
		},
		{
			name: "converts package quantities to base units",
			records: []model.StockRecord{
				{ProductID: "PRD-1", PackagingTypeID: "PKG-P", LocationID: "LOC-1", Quantity: 2},
				{ProductID: "PRD-1", PackagingTypeID: "PKG-U", LocationID: "LOC-1", Quantity: 5},
			},
			expected: map[string]float64{"PKG-P": 288, "PKG-U": 5},
		},
		{
			name: "sums base units across locations",
			records: []model.StockRecord{
				{ProductID: "PRD-1", PackagingTypeID: "PKG-B", LocationID: "LOC-1", Quantity: 10},
				{ProductID: "PRD-1", PackagingTypeID: "PKG-B", LocationID: "LOC-2", Quantity: 14},
			},
			expected: map[string]float64{"PKG-B": 288},
		},
		{
			name: "skips other products, unknown packagings and non-positive quantities",
			records: []model.StockRecord{
				{ProductID: "PRD-1", PackagingTypeID: "PKG-B", LocationID: "LOC-1", Quantity: 10},
				{ProductID: "PRD-2", PackagingTypeID: "PKG-X", LocationID: "LOC-1", Quantity: 8},
				{ProductID: "PRD-1", PackagingTypeID: "PKG-GHOST", LocationID: "LOC-1", Quantity: 3},
				{ProductID: "PRD-1", PackagingTypeID: "PKG-U", LocationID: "LOC-1", Quantity: 0},
			},
			expected: map[string]float64{"PKG-B": 120},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, buildAvailabilityPool(catalog, "PRD-1", tt.records))
		})
	}
}
