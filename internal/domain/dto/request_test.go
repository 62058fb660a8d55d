package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickPlanRequest_Validate(t *testing.T) {
	tests := []struct {
		name          string
		request       PickPlanRequest
		expectedError error
	}{
		{
			name:          "valid request",
			request:       PickPlanRequest{ProductID: "PRD-1042", RequestedBaseUnits: 300},
			expectedError: nil,
		},
		{
			name:          "zero units is allowed",
			request:       PickPlanRequest{ProductID: "PRD-1042", RequestedBaseUnits: 0},
			expectedError: nil,
		},
		{
			name:          "negative units",
			request:       PickPlanRequest{ProductID: "PRD-1042", RequestedBaseUnits: -10},
			expectedError: ErrNegativeRequestedUnits,
		},
		{
			name:          "missing product id",
			request:       PickPlanRequest{RequestedBaseUnits: 300},
			expectedError: ErrMissingProductID,
		},
		{
			name:          "fractional units",
			request:       PickPlanRequest{ProductID: "PRD-1042", RequestedBaseUnits: 0.5},
			expectedError: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSelectPalletsRequest_Validate(t *testing.T) {
	tests := []struct {
		name          string
		request       SelectPalletsRequest
		expectedError error
	}{
		{
			name: "valid items",
			request: SelectPalletsRequest{Items: []CompositionItemRequest{
				{ProductID: "PRD-1", Quantity: 120},
				{ProductID: "PRD-2", Quantity: 40},
			}},
			expectedError: nil,
		},
		{
			name:          "empty items",
			request:       SelectPalletsRequest{},
			expectedError: nil,
		},
		{
			name: "item without product id",
			request: SelectPalletsRequest{Items: []CompositionItemRequest{
				{Quantity: 120},
			}},
			expectedError: ErrInvalidItems,
		},
		{
			name: "item with negative quantity",
			request: SelectPalletsRequest{Items: []CompositionItemRequest{
				{ProductID: "PRD-1", Quantity: -1},
			}},
			expectedError: ErrInvalidItems,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClassifyComplexityRequest_Validate(t *testing.T) {
	valid := ClassifyComplexityRequest{
		Items:          []CompositionItemRequest{{ProductID: "PRD-1", Quantity: 10}},
		HasConstraints: true,
	}
	assert.NoError(t, valid.Validate())

	invalid := ClassifyComplexityRequest{
		Items: []CompositionItemRequest{{ProductID: "", Quantity: 10}},
	}
	assert.Equal(t, ErrInvalidItems, invalid.Validate())
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name          string
		validationErr *ValidationError
		expected      string
	}{
		{
			name: "validation error message format",
			validationErr: &ValidationError{
				Field:   "requested_base_units",
				Message: "must not be negative",
			},
			expected: "requested_base_units: must not be negative",
		},
		{
			name: "validation error with different field",
			validationErr: &ValidationError{
				Field:   "items",
				Message: "each entry needs a product and a non-negative quantity",
			},
			expected: "items: each entry needs a product and a non-negative quantity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.validationErr.Error())
		})
	}
}
