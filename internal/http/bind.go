package http

import (
	"github.com/gin-gonic/gin"
)

// Validator is implemented by request DTOs that can validate themselves
// after binding.
type Validator interface {
	Validate() error
}

// BindRequest decodes the JSON request body into a new T.
func BindRequest[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// BindAndValidate decodes the request body and, when the DTO implements
// Validator, runs its validation. Validation failures come back as
// *dto.ValidationError so handlers can pick a message key per field.
func BindAndValidate[T any](c *gin.Context) (*T, error) {
	req, err := BindRequest[T](c)
	if err != nil {
		return nil, err
	}
	if v, ok := any(req).(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	return req, nil
}
