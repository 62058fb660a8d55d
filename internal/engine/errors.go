// Package engine implements the packaging/unit-of-measure computations:
// catalog traversal, stock consolidation, pick planning and pallet
// composition scoring. All computations are pure functions over
// caller-supplied snapshots and are safe for concurrent use.
package engine

import "fmt"

// PackagingNotFoundError is returned when a referenced packaging type does
// not exist or does not belong to the stated product.
type PackagingNotFoundError struct {
	ProductID       string
	PackagingTypeID string
}

func (e *PackagingNotFoundError) Error() string {
	if e.ProductID == "" {
		return fmt.Sprintf("packaging type %q not found", e.PackagingTypeID)
	}
	return fmt.Sprintf("packaging type %q not found for product %q", e.PackagingTypeID, e.ProductID)
}

// NoBaseUnitDefinedError is returned when a product has zero or more than
// one active packaging type flagged as base unit.
type NoBaseUnitDefinedError struct {
	ProductID     string
	BaseUnitCount int
}

func (e *NoBaseUnitDefinedError) Error() string {
	if e.BaseUnitCount == 0 {
		return fmt.Sprintf("product %q has no base unit packaging defined", e.ProductID)
	}
	return fmt.Sprintf("product %q has %d base unit packagings, expected exactly one", e.ProductID, e.BaseUnitCount)
}

// InvalidRequestError is returned for malformed computation inputs, such as
// a negative requested quantity.
type InvalidRequestError struct {
	Field  string
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("invalid request: %s %s", e.Field, e.Reason)
}

// NoFeasiblePalletError is returned when no candidate pallet passes the
// weight feasibility gate for the requested load.
type NoFeasiblePalletError struct {
	TotalWeightKg float64
	Candidates    int
}

func (e *NoFeasiblePalletError) Error() string {
	return fmt.Sprintf("no available pallet can carry %.2f kg (%d candidates considered)", e.TotalWeightKg, e.Candidates)
}
