//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warewise/packaging-service/internal/domain/model"
)

func TestProductsRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewProductsRepository(db)

	t.Run("get missing product returns nil", func(t *testing.T) {
		product, err := repo.GetByID(ctx, "PRD-MISSING")
		assert.NoError(t, err)
		assert.Nil(t, product)
	})

	t.Run("upsert and get product", func(t *testing.T) {
		product := &model.Product{
			ID:       "PRD-1042",
			Name:     "Mineral water 1.5L",
			WeightKg: 1.55,
			LengthCm: 9,
			WidthCm:  9,
			HeightCm: 32,
			Active:   true,
		}
		require.NoError(t, repo.Upsert(ctx, product))

		found, err := repo.GetByID(ctx, "PRD-1042")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, product.Name, found.Name)
		assert.Equal(t, product.WeightKg, found.WeightKg)
	})

	t.Run("upsert replaces existing product", func(t *testing.T) {
		product := &model.Product{ID: "PRD-1042", Name: "Mineral water 1.5L (renamed)", WeightKg: 1.6, Active: true}
		require.NoError(t, repo.Upsert(ctx, product))

		found, err := repo.GetByID(ctx, "PRD-1042")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Mineral water 1.5L (renamed)", found.Name)
	})

	t.Run("get by ids skips missing", func(t *testing.T) {
		require.NoError(t, repo.Upsert(ctx, &model.Product{ID: "PRD-2000", Name: "Crate", Active: true}))

		products, err := repo.GetByIDs(ctx, []string{"PRD-1042", "PRD-2000", "PRD-NOPE"})
		require.NoError(t, err)
		assert.Len(t, products, 2)
	})

	t.Run("list active only", func(t *testing.T) {
		require.NoError(t, repo.Upsert(ctx, &model.Product{ID: "PRD-3000", Name: "Discontinued", Active: false}))

		products, err := repo.List(ctx, true, 0)
		require.NoError(t, err)
		for _, p := range products {
			assert.True(t, p.Active)
		}

		all, err := repo.List(ctx, false, 0)
		require.NoError(t, err)
		assert.Greater(t, len(all), len(products))
	})
}

func TestPackagingTypesRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewPackagingTypesRepository(db)

	seed := []*model.PackagingType{
		{ID: "PKG-U", ProductID: "PRD-1", ParentID: "PKG-B", Name: "Unit", BaseUnitQuantity: 1, IsBaseUnit: true, Active: true},
		{ID: "PKG-B", ProductID: "PRD-1", ParentID: "PKG-P", Name: "Box of 12", BaseUnitQuantity: 12, Barcode: "7891000100103", Active: true},
		{ID: "PKG-P", ProductID: "PRD-1", Name: "Pallet of 144", BaseUnitQuantity: 144, Active: true},
		{ID: "PKG-X", ProductID: "PRD-2", Name: "Other product unit", BaseUnitQuantity: 1, IsBaseUnit: true, Active: true},
	}
	for _, pt := range seed {
		require.NoError(t, repo.Upsert(ctx, pt))
	}

	t.Run("list by product sorted by base unit quantity descending", func(t *testing.T) {
		types, err := repo.ListByProduct(ctx, "PRD-1")
		require.NoError(t, err)
		require.Len(t, types, 3)
		assert.Equal(t, "PKG-P", types[0].ID)
		assert.Equal(t, "PKG-B", types[1].ID)
		assert.Equal(t, "PKG-U", types[2].ID)
	})

	t.Run("list by product excludes other products", func(t *testing.T) {
		types, err := repo.ListByProduct(ctx, "PRD-2")
		require.NoError(t, err)
		require.Len(t, types, 1)
		assert.Equal(t, "PKG-X", types[0].ID)
	})

	t.Run("get by id", func(t *testing.T) {
		pt, err := repo.GetByID(ctx, "PKG-B")
		require.NoError(t, err)
		require.NotNil(t, pt)
		assert.Equal(t, float64(12), pt.BaseUnitQuantity)
		assert.Equal(t, "7891000100103", pt.Barcode)
	})

	t.Run("get missing returns nil", func(t *testing.T) {
		pt, err := repo.GetByID(ctx, "PKG-NOPE")
		assert.NoError(t, err)
		assert.Nil(t, pt)
	})

	t.Run("deactivate keeps document but clears active flag", func(t *testing.T) {
		require.NoError(t, repo.Deactivate(ctx, "PKG-B"))

		pt, err := repo.GetByID(ctx, "PKG-B")
		require.NoError(t, err)
		require.NotNil(t, pt)
		assert.False(t, pt.Active)
	})
}

func TestStockRecordsRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewStockRecordsRepository(db)

	t.Run("upsert inserts new record", func(t *testing.T) {
		record := &model.StockRecord{ProductID: "PRD-1", PackagingTypeID: "PKG-B", LocationID: "LOC-A-01", Quantity: 24}
		require.NoError(t, repo.Upsert(ctx, record))

		records, err := repo.ListByProduct(ctx, "PRD-1")
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, float64(24), records[0].Quantity)
	})

	t.Run("upsert updates quantity for same location", func(t *testing.T) {
		record := &model.StockRecord{ProductID: "PRD-1", PackagingTypeID: "PKG-B", LocationID: "LOC-A-01", Quantity: 30}
		require.NoError(t, repo.Upsert(ctx, record))

		records, err := repo.ListByProduct(ctx, "PRD-1")
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, float64(30), records[0].Quantity)
	})

	t.Run("list sorted by location", func(t *testing.T) {
		require.NoError(t, repo.Upsert(ctx, &model.StockRecord{ProductID: "PRD-1", PackagingTypeID: "PKG-U", LocationID: "LOC-A-03", Quantity: 5}))
		require.NoError(t, repo.Upsert(ctx, &model.StockRecord{ProductID: "PRD-1", PackagingTypeID: "PKG-P", LocationID: "LOC-A-02", Quantity: 2}))

		records, err := repo.ListByProduct(ctx, "PRD-1")
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, "LOC-A-01", records[0].LocationID)
		assert.Equal(t, "LOC-A-02", records[1].LocationID)
		assert.Equal(t, "LOC-A-03", records[2].LocationID)
	})

	t.Run("delete by product", func(t *testing.T) {
		deleted, err := repo.DeleteByProduct(ctx, "PRD-1")
		require.NoError(t, err)
		assert.Equal(t, int64(3), deleted)

		records, err := repo.ListByProduct(ctx, "PRD-1")
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}
