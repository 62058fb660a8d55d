//go:build integration

package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warewise/packaging-service/config"
)

func TestInitializeDatabase_Integration(t *testing.T) {
	t.Parallel()

	uri := getSharedContainerURI()

	t.Run("initialize with database enabled", func(t *testing.T) {
		t.Parallel()
		cfg := config.DatabaseConfig{
			URI:                            uri,
			DatabaseName:                   sanitizeDBNameForApp(t.Name()),
			LogsTTL:                        30 * 24 * time.Hour,
			Enabled:                        true,
			CircuitBreakerFailureThreshold: 5,
			CircuitBreakerSuccessThreshold: 2,
			CircuitBreakerTimeout:          30 * time.Second,
		}

		components := InitializeDatabase(cfg)
		require.NotNil(t, components)

		assert.NotNil(t, components.DB)
		assert.NotNil(t, components.ProductsRepo)
		assert.NotNil(t, components.PackagingTypesRepo)
		assert.NotNil(t, components.StockRecordsRepo)
		assert.NotNil(t, components.PalletsRepo)
		assert.NotNil(t, components.LoggingService)
		assert.NotNil(t, components.CatalogCircuitBreaker)
		assert.NotNil(t, components.LogsCircuitBreaker)

		stats := components.CatalogCircuitBreaker.GetStats()
		assert.Equal(t, "closed", stats.State)
		assert.False(t, components.CatalogCircuitBreaker.IsOpen())
		assert.False(t, components.LogsCircuitBreaker.IsOpen())
	})

	t.Run("initialize with database disabled", func(t *testing.T) {
		t.Parallel()
		cfg := config.DatabaseConfig{
			Enabled: false,
		}

		components := InitializeDatabase(cfg)
		assert.Nil(t, components)
	})

	t.Run("initialize with unreachable database", func(t *testing.T) {
		t.Parallel()
		cfg := config.DatabaseConfig{
			URI:          "mongodb://127.0.0.1:1/?connectTimeoutMS=200&serverSelectionTimeoutMS=200",
			DatabaseName: "unreachable",
			Enabled:      true,
		}

		components := InitializeDatabase(cfg)
		assert.Nil(t, components)
	})
}
