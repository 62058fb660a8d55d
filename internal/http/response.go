package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/warewise/packaging-service/internal/domain/dto"
	"github.com/warewise/packaging-service/internal/i18n"
	"github.com/warewise/packaging-service/internal/middleware"
)

// Every handler emits exactly one envelope per request, so the response
// DTOs are pooled and zeroed on release.
var (
	successPool = sync.Pool{New: func() any { return new(dto.SuccessResponse) }}
	errorPool   = sync.Pool{New: func() any { return new(dto.ErrorResponse) }}
)

func borrowSuccess() *dto.SuccessResponse {
	resp, _ := successPool.Get().(*dto.SuccessResponse)
	if resp == nil {
		resp = new(dto.SuccessResponse)
	}
	return resp
}

func releaseSuccess(resp *dto.SuccessResponse) {
	*resp = dto.SuccessResponse{}
	successPool.Put(resp)
}

func borrowError() *dto.ErrorResponse {
	resp, _ := errorPool.Get().(*dto.ErrorResponse)
	if resp == nil {
		resp = new(dto.ErrorResponse)
	}
	return resp
}

func releaseError(resp *dto.ErrorResponse) {
	*resp = dto.ErrorResponse{}
	errorPool.Put(resp)
}

// ResponseBuilder writes success and error envelopes for a single request.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success sends a response with the given status and data wrapped in the
// standard envelope. Gin serializes synchronously, so the pooled DTO can
// be released as soon as JSON returns.
func (b *ResponseBuilder) Success(statusCode int, data any) {
	resp := borrowSuccess()
	resp.Data = data
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	b.c.JSON(statusCode, resp)
	releaseSuccess(resp)
}

// SuccessOK sends a 200 OK response with the given data.
func (b *ResponseBuilder) SuccessOK(data any) {
	b.Success(http.StatusOK, data)
}

// Error sends a localized error response and aborts the request. The
// message key is translated using the locale negotiated from the
// Accept-Language header, and the underlying error is attached to the
// context for the error handler middleware to log.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	locale := i18n.GetLocale(b.c)

	resp := borrowError()
	resp.Error = dto.ErrCodeFromStatus(statusCode)
	resp.Message = i18n.GetTranslator().Translate(messageKey, locale)
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	if err != nil {
		_ = b.c.Error(err)
	}

	b.c.AbortWithStatusJSON(statusCode, resp)
	releaseError(resp)
}
