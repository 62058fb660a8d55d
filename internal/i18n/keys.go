// Package i18n provides internationalization support for the packaging service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyValidationRequestedUnits indicates invalid requested_base_units validation.
	ErrKeyValidationRequestedUnits = "error.validation.requested_base_units"
	// ErrKeyValidationItems indicates an invalid composition items list.
	ErrKeyValidationItems = "error.validation.items"
	// ErrKeyValidationPalletID indicates a confirmation without a pallet id.
	ErrKeyValidationPalletID = "error.validation.pallet_id"
	// ErrKeyPackagingNotFound indicates a referenced packaging type does not exist.
	ErrKeyPackagingNotFound = "error.packaging_not_found"
	// ErrKeyNoBaseUnit indicates a product without exactly one base unit packaging.
	ErrKeyNoBaseUnit = "error.no_base_unit"
	// ErrKeyNoFeasiblePallet indicates no pallet can carry the requested load.
	ErrKeyNoFeasiblePallet = "error.no_feasible_pallet"
)

// Success message translation keys.
const (
	// SuccessKeyStockConsolidated indicates successful stock consolidation.
	SuccessKeyStockConsolidated = "success.stock_consolidated"
	// SuccessKeyPickPlanned indicates successful pick plan computation.
	SuccessKeyPickPlanned = "success.pick_planned"
	// SuccessKeyPalletsSelected indicates successful pallet selection.
	SuccessKeyPalletsSelected = "success.pallets_selected"
)
