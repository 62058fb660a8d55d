package model

// PickPlanEntry is one line of a pick plan: how many packages of a
// packaging type to retrieve and how many base units they represent.
//
// @Description One handling unit line of a pick plan
// @Example {"packaging_type_id": "PKG-13", "package_count": 2, "base_units": 288}
type PickPlanEntry struct {
	// PackagingTypeID identifies the packaging to pick
	PackagingTypeID string `json:"packaging_type_id" example:"PKG-13"`
	// PackagingName is the human-facing packaging name
	PackagingName string `json:"packaging_name" example:"Pallet of 144"`
	// PackageCount is the number of whole packages to retrieve
	PackageCount int64 `json:"package_count" example:"2"`
	// BaseUnits is PackageCount times the packaging's conversion factor
	BaseUnits float64 `json:"base_units" example:"288"`
}

// PickPlan is the decomposition of a requested base-unit quantity into
// physical handling units, largest first. It is request-scoped and never
// persisted.
//
// @Description Pick plan for a requested base-unit quantity
// @Example {"product_id": "PRD-1042", "requested_base_units": 300, "entries": [{"packaging_type_id": "PKG-13", "package_count": 2, "base_units": 288}], "remaining": 0, "can_fulfill": true}
type PickPlan struct {
	// ProductID is the planned product
	ProductID string `json:"product_id" example:"PRD-1042"`
	// RequestedBaseUnits is the quantity the caller asked for
	RequestedBaseUnits float64 `json:"requested_base_units" example:"300"`
	// Entries is the ordered decomposition, largest packaging first
	Entries []PickPlanEntry `json:"entries"`
	// Remaining is the unfulfilled base-unit quantity
	Remaining float64 `json:"remaining" example:"0"`
	// CanFulfill is true iff Remaining is zero
	CanFulfill bool `json:"can_fulfill" example:"true"`
}

// PlannedBaseUnits returns the total base units covered by the plan entries.
func (p PickPlan) PlannedBaseUnits() float64 {
	var total float64
	for _, e := range p.Entries {
		total += e.BaseUnits
	}
	return total
}

// EmptyPickPlan returns a plan with no entries for the given request.
// Fulfillable iff nothing was requested.
func EmptyPickPlan(productID string, requested float64) PickPlan {
	return PickPlan{
		ProductID:          productID,
		RequestedBaseUnits: requested,
		Entries:            []PickPlanEntry{},
		Remaining:          requested,
		CanFulfill:         requested == 0,
	}
}
