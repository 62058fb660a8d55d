package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/warewise/packaging-service/internal/domain/dto"
	"github.com/warewise/packaging-service/internal/logger"
)

// Recovery returns a middleware that turns panics into 500 responses.
// The panic value and stack land in the log, never in the response body.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				requestID := GetRequestID(c)
				log := logger.Logger()
				log.Error().
					Str("request_id", requestID).
					Interface("panic", r).
					Bytes("stack", debug.Stack()).
					Msg("PANIC recovered")

				errorResp := dto.NewError(dto.ErrCodeInternal, "An unexpected error occurred").
					WithRequestID(requestID)
				c.AbortWithStatusJSON(http.StatusInternalServerError, errorResp)
			}
		}()
		c.Next()
	}
}
