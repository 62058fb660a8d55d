//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warewise/packaging-service/internal/domain/model"
)

func TestPalletsRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewPalletsRepository(db)

	seed := []*model.Pallet{
		{ID: "PAL-1", Name: "EUR-1", MaxWeightKg: 1000, WidthCm: 80, LengthCm: 120, Status: model.PalletStatusAvailable, HistoricalEfficiency: 0.6},
		{ID: "PAL-2", Name: "ISO-1", MaxWeightKg: 2000, WidthCm: 120, LengthCm: 120, Status: model.PalletStatusAvailable, HistoricalEfficiency: 0.5},
		{ID: "PAL-3", Name: "Broken", MaxWeightKg: 1000, WidthCm: 80, LengthCm: 120, Status: "maintenance", HistoricalEfficiency: 0.4},
	}
	for _, p := range seed {
		require.NoError(t, repo.Upsert(ctx, p))
	}

	t.Run("list available excludes non-available pallets", func(t *testing.T) {
		pallets, err := repo.ListAvailable(ctx)
		require.NoError(t, err)
		require.Len(t, pallets, 2)
		assert.Equal(t, "PAL-1", pallets[0].ID)
		assert.Equal(t, "PAL-2", pallets[1].ID)
	})

	t.Run("get by id", func(t *testing.T) {
		pallet, err := repo.GetByID(ctx, "PAL-2")
		require.NoError(t, err)
		require.NotNil(t, pallet)
		assert.Equal(t, float64(2000), pallet.MaxWeightKg)
	})

	t.Run("get missing returns nil", func(t *testing.T) {
		pallet, err := repo.GetByID(ctx, "PAL-NOPE")
		assert.NoError(t, err)
		assert.Nil(t, pallet)
	})

	t.Run("set status", func(t *testing.T) {
		require.NoError(t, repo.SetStatus(ctx, "PAL-2", "in_use"))

		pallets, err := repo.ListAvailable(ctx)
		require.NoError(t, err)
		require.Len(t, pallets, 1)
		assert.Equal(t, "PAL-1", pallets[0].ID)

		require.NoError(t, repo.SetStatus(ctx, "PAL-2", model.PalletStatusAvailable))
	})
}

func TestPalletsRepository_Outcomes_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewPalletsRepository(db)

	pallet := &model.Pallet{ID: "PAL-9", Name: "EUR-9", MaxWeightKg: 1000, WidthCm: 80, LengthCm: 120, Status: model.PalletStatusAvailable, HistoricalEfficiency: 0.5}
	require.NoError(t, repo.Upsert(ctx, pallet))

	t.Run("refresh with no outcomes keeps stored efficiency", func(t *testing.T) {
		efficiency, err := repo.RefreshEfficiency(ctx, "PAL-9", 30*24*time.Hour)
		require.NoError(t, err)
		assert.Equal(t, 0.5, efficiency)
	})

	t.Run("record outcomes and refresh efficiency", func(t *testing.T) {
		outcomes := []*CompositionOutcome{
			{PalletID: "PAL-9", ProductCount: 2, TotalQuantity: 120, TotalWeightKg: 900, TotalVolumeM3: 1.2, WeightUtilization: 0.9, VolumeUtilization: 0.7, AdjustedScore: 0.8},
			{PalletID: "PAL-9", ProductCount: 1, TotalQuantity: 60, TotalWeightKg: 500, TotalVolumeM3: 0.8, WeightUtilization: 0.5, VolumeUtilization: 0.5, AdjustedScore: 0.6},
		}
		for _, o := range outcomes {
			require.NoError(t, repo.RecordOutcome(ctx, o))
			assert.False(t, o.ID.IsZero())
			assert.False(t, o.CreatedAt.IsZero())
		}

		// Mean of per-outcome efficiencies: ((0.9+0.7)/2 + (0.5+0.5)/2) / 2 = 0.65
		efficiency, err := repo.RefreshEfficiency(ctx, "PAL-9", 30*24*time.Hour)
		require.NoError(t, err)
		assert.InDelta(t, 0.65, efficiency, 1e-9)

		stored, err := repo.GetByID(ctx, "PAL-9")
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.InDelta(t, 0.65, stored.HistoricalEfficiency, 1e-9)
	})

	t.Run("outcomes outside window are excluded", func(t *testing.T) {
		old := &CompositionOutcome{
			PalletID:          "PAL-9",
			WeightUtilization: 0.1,
			VolumeUtilization: 0.1,
			CreatedAt:         time.Now().Add(-90 * 24 * time.Hour),
		}
		require.NoError(t, repo.RecordOutcome(ctx, old))

		efficiency, err := repo.RefreshEfficiency(ctx, "PAL-9", 30*24*time.Hour)
		require.NoError(t, err)
		assert.InDelta(t, 0.65, efficiency, 1e-9)
	})

	t.Run("list outcomes most recent first", func(t *testing.T) {
		outcomes, err := repo.ListOutcomes(ctx, "PAL-9", 2)
		require.NoError(t, err)
		require.Len(t, outcomes, 2)
		assert.True(t, outcomes[0].CreatedAt.After(outcomes[1].CreatedAt) || outcomes[0].CreatedAt.Equal(outcomes[1].CreatedAt))
	})
}
