// Package metrics provides Prometheus metrics collection for the packaging service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// EngineOperationsTotal tracks engine computations by operation and outcome.
	EngineOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "packaging_engine_operations_total",
			Help: "Total number of packaging engine computations",
		},
		[]string{"operation", "status"},
	)

	// EngineOperationDuration tracks engine computation duration per operation.
	EngineOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "packaging_engine_operation_duration_seconds",
			Help:    "Packaging engine computation duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
		[]string{"operation"},
	)

	// PickPlanRemaining tracks the unfulfilled base units of computed pick plans.
	PickPlanRemaining = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pick_plan_remaining_base_units",
			Help:    "Unfulfilled base units per computed pick plan",
			Buckets: []float64{0, 1, 5, 10, 50, 100, 500, 1000},
		},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
	)
)

// Engine operation labels.
const (
	OpConsolidate   = "consolidate"
	OpPickPlan      = "pick_plan"
	OpSelectPallets = "select_pallets"
	OpHierarchy     = "hierarchy"
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordEngineOperation records metrics for one engine computation.
func RecordEngineOperation(operation string, duration time.Duration, status string) {
	EngineOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
	EngineOperationsTotal.WithLabelValues(operation, status).Inc()
}

// RecordPickPlanRemaining records the unfulfilled portion of a pick plan.
func RecordPickPlanRemaining(remaining float64) {
	PickPlanRemaining.Observe(remaining)
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}
