//go:build !integration

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/warewise/packaging-service/internal/domain/model"
	"github.com/warewise/packaging-service/internal/engine"
	"github.com/warewise/packaging-service/internal/mocks"
	"github.com/warewise/packaging-service/internal/repository"
)

func crateProduct() model.Product {
	return model.Product{
		ID:       "PRD-CRATE",
		Name:     "Crate",
		WeightKg: 9,
		LengthCm: 30,
		WidthCm:  30,
		HeightCm: 20,
		Active:   true,
	}
}

func testPallets() []model.Pallet {
	return []model.Pallet{
		{ID: "PAL-A", Name: "EUR", MaxWeightKg: 1000, WidthCm: 100, LengthCm: 120, Status: model.PalletStatusAvailable, HistoricalEfficiency: 0.6},
		{ID: "PAL-B", Name: "ISO", MaxWeightKg: 2000, WidthCm: 120, LengthCm: 120, Status: model.PalletStatusAvailable, HistoricalEfficiency: 0.4},
	}
}

func TestCompositionService_SelectPallets(t *testing.T) {
	ctx := context.Background()
	items := []model.CompositionItem{{ProductID: "PRD-CRATE", Quantity: 100}}

	productsRepo := new(mocks.MockProductsRepositoryInterface)
	productsRepo.On("GetByIDs", ctx, []string{"PRD-CRATE"}).Return([]model.Product{crateProduct()}, nil)

	palletsRepo := new(mocks.MockPalletsRepositoryInterface)
	palletsRepo.On("ListAvailable", ctx).Return(testPallets(), nil)

	svc := NewCompositionService(productsRepo, palletsRepo)

	candidates, err := svc.SelectPallets(ctx, items)
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, "PAL-A", candidates[0].Pallet.ID)
	assert.Greater(t, candidates[0].AdjustedScore, candidates[1].AdjustedScore)

	productsRepo.AssertExpectations(t)
	palletsRepo.AssertExpectations(t)
}

func TestCompositionService_SelectPallets_NoFeasiblePallet(t *testing.T) {
	ctx := context.Background()
	// 300 crates weigh 2700kg, above every pallet's limit
	items := []model.CompositionItem{{ProductID: "PRD-CRATE", Quantity: 300}}

	productsRepo := new(mocks.MockProductsRepositoryInterface)
	productsRepo.On("GetByIDs", ctx, []string{"PRD-CRATE"}).Return([]model.Product{crateProduct()}, nil)

	palletsRepo := new(mocks.MockPalletsRepositoryInterface)
	palletsRepo.On("ListAvailable", ctx).Return(testPallets(), nil)

	svc := NewCompositionService(productsRepo, palletsRepo)

	_, err := svc.SelectPallets(ctx, items)
	var noFeasible *engine.NoFeasiblePalletError
	assert.ErrorAs(t, err, &noFeasible)
}

func TestCompositionService_SelectPallets_UnknownProduct(t *testing.T) {
	ctx := context.Background()
	items := []model.CompositionItem{{ProductID: "PRD-NOPE", Quantity: 10}}

	productsRepo := new(mocks.MockProductsRepositoryInterface)
	productsRepo.On("GetByIDs", ctx, []string{"PRD-NOPE"}).Return([]model.Product{}, nil)

	palletsRepo := new(mocks.MockPalletsRepositoryInterface)
	palletsRepo.On("ListAvailable", ctx).Return(testPallets(), nil)

	svc := NewCompositionService(productsRepo, palletsRepo)

	_, err := svc.SelectPallets(ctx, items)
	var invalidErr *engine.InvalidRequestError
	assert.ErrorAs(t, err, &invalidErr)
}

func TestCompositionService_Classify(t *testing.T) {
	ctx := context.Background()
	svc := NewCompositionService(nil, nil)

	tests := []struct {
		name           string
		items          []model.CompositionItem
		hasConstraints bool
		expected       model.ComplexityLevel
	}{
		{
			name:     "single small item is low",
			items:    []model.CompositionItem{{ProductID: "PRD-1", Quantity: 10}},
			expected: model.ComplexityLow,
		},
		{
			name:           "constraints push to medium",
			items:          []model.CompositionItem{{ProductID: "PRD-1", Quantity: 10}},
			hasConstraints: true,
			expected:       model.ComplexityMedium,
		},
		{
			name:     "large quantity is high",
			items:    []model.CompositionItem{{ProductID: "PRD-1", Quantity: 250}},
			expected: model.ComplexityHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := svc.Classify(ctx, tt.items, tt.hasConstraints)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestCompositionService_Classify_NegativeQuantity(t *testing.T) {
	svc := NewCompositionService(nil, nil)

	_, err := svc.Classify(context.Background(), []model.CompositionItem{{ProductID: "PRD-1", Quantity: -5}}, false)
	var invalidErr *engine.InvalidRequestError
	assert.ErrorAs(t, err, &invalidErr)
}

func TestCompositionService_RecordSelection(t *testing.T) {
	ctx := context.Background()
	items := []model.CompositionItem{{ProductID: "PRD-CRATE", Quantity: 100}}
	candidate := model.CompositionCandidate{
		Pallet:            testPallets()[0],
		WeightUtilization: 0.9,
		VolumeUtilization: 0.8,
		AdjustedScore:     0.75,
	}

	productsRepo := new(mocks.MockProductsRepositoryInterface)
	productsRepo.On("GetByIDs", ctx, []string{"PRD-CRATE"}).Return([]model.Product{crateProduct()}, nil)

	palletsRepo := new(mocks.MockPalletsRepositoryInterface)
	palletsRepo.On("RecordOutcome", ctx, mock.MatchedBy(func(o *repository.CompositionOutcome) bool {
		return o.PalletID == "PAL-A" && o.ProductCount == 1 && o.TotalQuantity == 100 && o.TotalWeightKg == 900
	})).Return(nil)
	palletsRepo.On("RefreshEfficiency", ctx, "PAL-A", DefaultEfficiencyWindow).Return(0.85, nil)

	svc := NewCompositionService(productsRepo, palletsRepo)

	require.NoError(t, svc.RecordSelection(ctx, candidate, items))
	palletsRepo.AssertExpectations(t)
}

func TestCompositionService_Confirm(t *testing.T) {
	ctx := context.Background()
	items := []model.CompositionItem{{ProductID: "PRD-CRATE", Quantity: 100}}
	pallet := testPallets()[0]

	productsRepo := new(mocks.MockProductsRepositoryInterface)
	productsRepo.On("GetByIDs", ctx, []string{"PRD-CRATE"}).Return([]model.Product{crateProduct()}, nil)

	palletsRepo := new(mocks.MockPalletsRepositoryInterface)
	palletsRepo.On("GetByID", ctx, "PAL-A").Return(&pallet, nil)
	palletsRepo.On("RecordOutcome", ctx, mock.MatchedBy(func(o *repository.CompositionOutcome) bool {
		return o.PalletID == "PAL-A" && o.TotalWeightKg == 900
	})).Return(nil)
	palletsRepo.On("RefreshEfficiency", ctx, "PAL-A", DefaultEfficiencyWindow).Return(0.85, nil)

	svc := NewCompositionService(productsRepo, palletsRepo)

	candidate, err := svc.Confirm(ctx, "PAL-A", items)
	require.NoError(t, err)
	assert.Equal(t, "PAL-A", candidate.Pallet.ID)
	assert.InDelta(t, 0.9, candidate.WeightUtilization, 1e-9)
	palletsRepo.AssertExpectations(t)
}

func TestCompositionService_Confirm_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown pallet", func(t *testing.T) {
		palletsRepo := new(mocks.MockPalletsRepositoryInterface)
		palletsRepo.On("GetByID", ctx, "PAL-GHOST").Return((*model.Pallet)(nil), nil)

		svc := NewCompositionService(new(mocks.MockProductsRepositoryInterface), palletsRepo)

		_, err := svc.Confirm(ctx, "PAL-GHOST", []model.CompositionItem{{ProductID: "PRD-CRATE", Quantity: 1}})
		var invalidErr *engine.InvalidRequestError
		require.ErrorAs(t, err, &invalidErr)
		assert.Contains(t, invalidErr.Reason, "PAL-GHOST")
	})

	t.Run("empty items", func(t *testing.T) {
		svc := NewCompositionService(nil, nil)

		_, err := svc.Confirm(ctx, "PAL-A", nil)
		var invalidErr *engine.InvalidRequestError
		assert.ErrorAs(t, err, &invalidErr)
	})

	t.Run("overweight load is infeasible", func(t *testing.T) {
		pallet := testPallets()[0]

		productsRepo := new(mocks.MockProductsRepositoryInterface)
		productsRepo.On("GetByIDs", ctx, []string{"PRD-CRATE"}).Return([]model.Product{crateProduct()}, nil)

		palletsRepo := new(mocks.MockPalletsRepositoryInterface)
		palletsRepo.On("GetByID", ctx, "PAL-A").Return(&pallet, nil)

		svc := NewCompositionService(productsRepo, palletsRepo)

		// 300 crates weigh 2700kg, above PAL-A's 1000kg limit; nothing
		// may be recorded.
		_, err := svc.Confirm(ctx, "PAL-A", []model.CompositionItem{{ProductID: "PRD-CRATE", Quantity: 300}})
		var noPallet *engine.NoFeasiblePalletError
		require.ErrorAs(t, err, &noPallet)
		palletsRepo.AssertNotCalled(t, "RecordOutcome", mock.Anything, mock.Anything)
	})
}
