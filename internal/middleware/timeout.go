package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/warewise/packaging-service/internal/domain/dto"
	"github.com/warewise/packaging-service/internal/i18n"
)

// TimeoutConfig holds configuration for the timeout middleware.
type TimeoutConfig struct {
	// Timeout is the maximum duration for request processing.
	Timeout time.Duration
	// ErrorMessage is the fallback message when no translator is installed.
	ErrorMessage string
}

// DefaultTimeoutConfig returns the default timeout configuration.
func DefaultTimeoutConfig() TimeoutConfig {
	return TimeoutConfig{
		Timeout:      30 * time.Second,
		ErrorMessage: "Request timeout",
	}
}

// Timeout returns a middleware that bounds request processing time. The
// handler chain runs on its own goroutine with a deadline context, so a
// pick plan or pallet scoring call that overruns gets a 504 while the
// deadline also propagates to any Mongo queries still in flight.
func Timeout(cfg TimeoutConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.Timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		// finished is shared with the handler goroutine; the mutex keeps
		// the timeout branch from racing a handler that completes just as
		// the deadline fires.
		var (
			mu       sync.Mutex
			finished bool
		)

		done := make(chan struct{})
		go func() {
			defer func() {
				recover() //nolint:errcheck
				close(done)
			}()
			c.Next()
			mu.Lock()
			finished = true
			mu.Unlock()
		}()

		select {
		case <-done:
			return
		case <-ctx.Done():
		}

		mu.Lock()
		defer mu.Unlock()
		if finished || c.Writer.Written() {
			return
		}

		message := cfg.ErrorMessage
		if translator := i18n.GetTranslator(); translator != nil {
			message = translator.Translate(i18n.ErrKeyTimeout, i18n.GetLocale(c))
		}

		errorResp := dto.NewError(dto.ErrCodeTimeout, message).
			WithRequestID(GetRequestID(c))
		c.AbortWithStatusJSON(http.StatusGatewayTimeout, errorResp)
	}
}

// TimeoutWithDuration creates timeout middleware with the given duration
// and default messaging.
func TimeoutWithDuration(timeout time.Duration) gin.HandlerFunc {
	cfg := DefaultTimeoutConfig()
	cfg.Timeout = timeout
	return Timeout(cfg)
}
