//go:build !integration

package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warewise/packaging-service/config"
	"github.com/warewise/packaging-service/internal/mocks"
)

func TestInitializeServices(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when database components are nil", func(t *testing.T) {
		t.Parallel()

		components := InitializeServices(config.Config{}, nil)
		assert.Nil(t, components)
	})

	t.Run("builds all services from repositories", func(t *testing.T) {
		t.Parallel()

		dbComponents := &DatabaseComponents{
			ProductsRepo:       new(mocks.MockProductsRepositoryInterface),
			PackagingTypesRepo: new(mocks.MockPackagingTypesRepositoryInterface),
			StockRecordsRepo:   new(mocks.MockStockRecordsRepositoryInterface),
			PalletsRepo:        new(mocks.MockPalletsRepositoryInterface),
		}

		cfg := config.Config{
			Engine: config.EngineConfig{
				CapacityWeight:        0.3,
				AreaWeight:            0.3,
				EfficiencyWeight:      0.4,
				TargetUtilization:     0.8,
				StandardStackHeightCm: 180,
				MaxCandidates:         5,
				ComplexityMaxProducts: 10,
				ComplexityMaxQuantity: 200,
			},
			Cache: config.CacheConfig{
				Size: 1000,
				TTL:  5 * time.Minute,
			},
		}

		components := InitializeServices(cfg, dbComponents)
		require.NotNil(t, components)
		assert.NotNil(t, components.Catalog)
		assert.NotNil(t, components.Stock)
		assert.NotNil(t, components.Composition)
	})

	t.Run("builds services with a sharded snapshot cache", func(t *testing.T) {
		t.Parallel()

		dbComponents := &DatabaseComponents{
			ProductsRepo:       new(mocks.MockProductsRepositoryInterface),
			PackagingTypesRepo: new(mocks.MockPackagingTypesRepositoryInterface),
			StockRecordsRepo:   new(mocks.MockStockRecordsRepositoryInterface),
			PalletsRepo:        new(mocks.MockPalletsRepositoryInterface),
		}

		cfg := config.Config{
			Cache: config.CacheConfig{
				Size:   1000,
				TTL:    5 * time.Minute,
				Shards: 8,
			},
		}

		components := InitializeServices(cfg, dbComponents)
		require.NotNil(t, components)
		assert.NotNil(t, components.Catalog)
	})

	t.Run("builds services without snapshot cache", func(t *testing.T) {
		t.Parallel()

		dbComponents := &DatabaseComponents{
			ProductsRepo:       new(mocks.MockProductsRepositoryInterface),
			PackagingTypesRepo: new(mocks.MockPackagingTypesRepositoryInterface),
			StockRecordsRepo:   new(mocks.MockStockRecordsRepositoryInterface),
			PalletsRepo:        new(mocks.MockPalletsRepositoryInterface),
		}

		components := InitializeServices(config.Config{}, dbComponents)
		require.NotNil(t, components)
		assert.NotNil(t, components.Catalog)
		assert.NotNil(t, components.Stock)
		assert.NotNil(t, components.Composition)
	})
}
