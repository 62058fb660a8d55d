package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/warewise/packaging-service/internal/domain/model"
	"github.com/warewise/packaging-service/internal/logger"
	"github.com/warewise/packaging-service/internal/service"
)

// RequestLogger returns a middleware that logs each HTTP request to the
// console and, when a logging service is wired, persists the entry to
// Mongo. Persistence goes through the async logger when one is running,
// otherwise a short-lived goroutine writes it directly.
func RequestLogger(loggingService service.LoggingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		entry := &model.LogEntry{
			Timestamp:  time.Now(),
			Level:      getLogLevel(c.Writer.Status()),
			Message:    "HTTP request",
			RequestID:  GetRequestID(c),
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			StatusCode: c.Writer.Status(),
			Duration:   time.Since(start).Milliseconds(),
			IP:         c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
		}

		// Handlers that resolved a product leave its ID on the context so
		// audit queries can filter per product.
		if productID, exists := c.Get("product_id"); exists {
			if id, ok := productID.(string); ok {
				entry.ProductID = id
			}
		}

		logToConsole(entry)

		if loggingService != nil {
			persistEntry(loggingService, entry)
		}
	}
}

func logToConsole(entry *model.LogEntry) {
	log := logger.Logger().With().
		Str("request_id", entry.RequestID).
		Str("method", entry.Method).
		Str("path", entry.Path).
		Int("status_code", entry.StatusCode).
		Int64("duration_ms", entry.Duration).
		Str("ip", entry.IP).
		Str("user_agent", entry.UserAgent).
		Logger()

	switch entry.Level {
	case "error":
		log.Error().Msg(entry.Message)
	case "warn":
		log.Warn().Msg(entry.Message)
	default:
		log.Info().Msg(entry.Message)
	}
}

func persistEntry(loggingService service.LoggingService, entry *model.LogEntry) {
	if asyncLogger := GetAsyncLogger(); asyncLogger != nil {
		asyncLogger.Log(entry)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = loggingService.CreateLog(ctx, entry)
	}()
}

// getLogLevel maps an HTTP status code to a log level.
func getLogLevel(statusCode int) string {
	switch {
	case statusCode >= 500:
		return "error"
	case statusCode >= 400:
		return "warn"
	default:
		return "info"
	}
}
