// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

// PickPlanRequest represents the JSON request body for the pick plan endpoint.
//
// @Description Request to decompose a base-unit quantity into handling units
// @Example {"product_id": "PRD-1042", "requested_base_units": 300}
type PickPlanRequest struct {
	// ProductID is the product to plan picks for. Presence is checked by
	// Validate, not by a binding tag, so the error carries the field name.
	ProductID string `json:"product_id" example:"PRD-1042"`
	// RequestedBaseUnits is the quantity to fulfill, in base units.
	// Must not be negative.
	RequestedBaseUnits float64 `json:"requested_base_units" example:"300" minimum:"0"`
} // @name PickPlanRequest

// CompositionItemRequest is one product line of a composition request.
//
// @Description Product and base-unit quantity to load
type CompositionItemRequest struct {
	// ProductID is the product to load. Validated by the enclosing
	// request's Validate.
	ProductID string `json:"product_id" example:"PRD-1042"`
	// Quantity is the number of base units to load. Must not be negative.
	Quantity float64 `json:"quantity" example:"120" minimum:"0"`
} // @name CompositionItemRequest

// SelectPalletsRequest represents the JSON request body for pallet selection.
//
// @Description Request to rank candidate pallets for a load
// @Example {"items": [{"product_id": "PRD-1042", "quantity": 120}]}
type SelectPalletsRequest struct {
	// Items is the list of product quantities to load. May be empty,
	// which yields an empty candidate list.
	Items []CompositionItemRequest `json:"items"`
} // @name SelectPalletsRequest

// ClassifyComplexityRequest represents the JSON request body for complexity
// classification.
//
// @Description Request to classify how demanding a composition is
// @Example {"items": [{"product_id": "PRD-1042", "quantity": 120}], "has_constraints": false}
type ClassifyComplexityRequest struct {
	// Items is the list of product quantities of the composition.
	Items []CompositionItemRequest `json:"items"`
	// HasConstraints signals special handling requirements (fragile,
	// temperature, orientation) that raise complexity.
	HasConstraints bool `json:"has_constraints"`
} // @name ClassifyComplexityRequest

// ConfirmCompositionRequest represents the JSON request body for composition
// confirmation, recording that an operator accepted a selected pallet.
//
// @Description Request to confirm a composition on a chosen pallet
// @Example {"pallet_id": "PAL-7", "items": [{"product_id": "PRD-1042", "quantity": 120}]}
type ConfirmCompositionRequest struct {
	// PalletID is the pallet the load was placed on.
	PalletID string `json:"pallet_id" example:"PAL-7"`
	// Items is the list of product quantities that were loaded. Must not
	// be empty.
	Items []CompositionItemRequest `json:"items"`
} // @name ConfirmCompositionRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrNegativeRequestedUnits is returned when requested_base_units is negative.
	ErrNegativeRequestedUnits = &ValidationError{
		Field:   "requested_base_units",
		Message: "must not be negative",
	}
	// ErrMissingProductID is returned when a product id is absent.
	ErrMissingProductID = &ValidationError{
		Field:   "product_id",
		Message: "is required",
	}
	// ErrMissingPalletID is returned when a pallet id is absent.
	ErrMissingPalletID = &ValidationError{
		Field:   "pallet_id",
		Message: "is required",
	}
	// ErrInvalidItems is returned when a composition item is malformed.
	ErrInvalidItems = &ValidationError{
		Field:   "items",
		Message: "each entry needs a product and a non-negative quantity",
	}
)

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate performs custom validation on the request.
// Returns an error if validation fails, nil otherwise.
func (r *PickPlanRequest) Validate() error {
	if r.ProductID == "" {
		return ErrMissingProductID
	}
	if r.RequestedBaseUnits < 0 {
		return ErrNegativeRequestedUnits
	}
	return nil
}

// Validate checks every item of the request.
func (r *SelectPalletsRequest) Validate() error {
	return validateItems(r.Items)
}

// Validate checks every item of the request.
func (r *ClassifyComplexityRequest) Validate() error {
	return validateItems(r.Items)
}

// Validate requires a pallet and a non-empty, well-formed item list: a
// confirmation without either records nothing meaningful.
func (r *ConfirmCompositionRequest) Validate() error {
	if r.PalletID == "" {
		return ErrMissingPalletID
	}
	if len(r.Items) == 0 {
		return ErrInvalidItems
	}
	return validateItems(r.Items)
}

func validateItems(items []CompositionItemRequest) error {
	for _, item := range items {
		if item.ProductID == "" || item.Quantity < 0 {
			return ErrInvalidItems
		}
	}
	return nil
}
