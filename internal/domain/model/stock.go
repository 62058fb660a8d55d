package model

// StockRecord is a snapshot row of physical stock for one product in one
// packaging at one location. Quantity is expressed in the packaging's own
// units, not in base units. Records are created by external inventory
// movements; this service only reads them.
//
// @Description Per-location stock in a specific packaging
type StockRecord struct {
	// ID is the stock record identifier
	ID string `json:"id" bson:"_id,omitempty"`
	// ProductID is the stocked product
	ProductID string `json:"product_id" bson:"product_id" example:"PRD-1042"`
	// PackagingTypeID is the packaging the quantity is expressed in
	PackagingTypeID string `json:"packaging_type_id" bson:"packaging_type_id" example:"PKG-12"`
	// LocationID is the warehouse location holding the stock
	LocationID string `json:"location_id" bson:"location_id" example:"LOC-A-03"`
	// Quantity is the on-hand amount in the packaging's own units
	Quantity float64 `json:"quantity" bson:"quantity" example:"8"`
}

// PackagingBreakdown projects the consolidated total onto one packaging
// type: how many full packages the total represents and what is left over.
// Each packaging's breakdown is computed against the same total, so
// breakdowns of different packagings are not mutually exclusive views.
//
// @Description Display projection of the total onto one packaging type
type PackagingBreakdown struct {
	// PackagingTypeID identifies the packaging being projected
	PackagingTypeID string `json:"packaging_type_id" example:"PKG-12"`
	// PackagingName is the human-facing packaging name
	PackagingName string `json:"packaging_name" example:"Box of 12"`
	// BaseUnitQuantity is the packaging's conversion factor
	BaseUnitQuantity float64 `json:"base_unit_quantity" example:"12"`
	// AvailablePackages is floor(total / BaseUnitQuantity)
	AvailablePackages int64 `json:"available_packages" example:"24"`
	// RemainingBaseUnits is what does not fill a whole package
	RemainingBaseUnits float64 `json:"remaining_base_units" example:"5"`
}

// ConsolidatedStock is the result of reconciling all stock records of a
// product into a single base-unit total.
//
// @Description Consolidated stock position for a product
type ConsolidatedStock struct {
	// ProductID is the consolidated product
	ProductID string `json:"product_id" example:"PRD-1042"`
	// TotalBaseUnits is the stock total expressed in base units
	TotalBaseUnits float64 `json:"total_base_units" example:"293"`
	// Breakdown projects the total onto every active packaging type
	Breakdown []PackagingBreakdown `json:"breakdown"`
	// LocationsCount is the number of distinct locations with stock
	LocationsCount int `json:"locations_count" example:"3"`
	// ItemsCount is the number of stock records contributing quantity
	ItemsCount int `json:"items_count" example:"5"`
}
