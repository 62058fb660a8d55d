package cache

import "github.com/warewise/packaging-service/internal/domain/model"

// Cache defines the interface for packaging snapshot cache operations.
type Cache interface {
	Get(productID string) ([]model.PackagingType, bool)
	Set(productID string, types []model.PackagingType)
	Invalidate(productID string)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
