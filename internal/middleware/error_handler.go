package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/warewise/packaging-service/internal/domain/dto"
	"github.com/warewise/packaging-service/internal/i18n"
	"github.com/warewise/packaging-service/internal/logger"
)

// ErrorHandler logs errors attached to the gin context after the handler
// chain finishes. Handlers that already wrote a response keep it; only a
// still-bare response gets the generic 500 envelope.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		requestID := GetRequestID(c)

		log := logger.Logger()
		log.Error().
			Str("request_id", requestID).
			Str("error", err.Error()).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Request error")

		if c.Writer.Written() {
			return
		}

		message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, i18n.GetLocale(c))
		errorResp := dto.NewError(dto.ErrCodeInternal, message).
			WithRequestID(requestID)
		c.JSON(http.StatusInternalServerError, errorResp)
	}
}
