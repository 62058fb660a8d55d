package model

// PackagingType describes a unit of handling for a product (each, box,
// pallet) and its fixed conversion ratio to the product's base unit.
// Packaging types of a product form a tree: a parent packaging physically
// contains its children, so a parent's BaseUnitQuantity always exceeds each
// child's.
//
// @Description Packaging definition with conversion factor to the base unit
type PackagingType struct {
	// ID is the packaging type identifier
	ID string `json:"id" bson:"_id" example:"PKG-12"`
	// ProductID is the owning product
	ProductID string `json:"product_id" bson:"product_id" example:"PRD-1042"`
	// ParentID is the containing packaging type, empty for roots
	ParentID string `json:"parent_id,omitempty" bson:"parent_id,omitempty" example:"PKG-11"`
	// Name is the human-facing packaging name
	Name string `json:"name" bson:"name" example:"Box of 12"`
	// BaseUnitQuantity is how many base units one instance of this packaging equals
	BaseUnitQuantity float64 `json:"base_unit_quantity" bson:"base_unit_quantity" example:"12"`
	// IsBaseUnit marks the single base unit packaging of the product
	IsBaseUnit bool `json:"is_base_unit" bson:"is_base_unit"`
	// IsStackable influences pallet composition scoring
	IsStackable bool `json:"is_stackable" bson:"is_stackable"`
	// Barcode is the optional EAN/GTIN of this packaging
	Barcode string `json:"barcode,omitempty" bson:"barcode,omitempty" example:"7891000100103"`
	// Active indicates whether this packaging is currently in use
	Active bool `json:"active" bson:"active"`
}

// ToBaseUnits converts a quantity expressed in this packaging's own units
// into base units.
func (p PackagingType) ToBaseUnits(quantity float64) float64 {
	return quantity * p.BaseUnitQuantity
}

// FromBaseUnits converts a base-unit quantity into this packaging's own
// units. The result may be fractional; callers needing whole packages must
// floor explicitly.
func (p PackagingType) FromBaseUnits(baseUnits float64) float64 {
	return baseUnits / p.BaseUnitQuantity
}

// HierarchyNode is a packaging type together with its immediate children,
// ordered from largest BaseUnitQuantity to smallest at each level.
//
// @Description Packaging tree node
type HierarchyNode struct {
	PackagingType `json:",inline"`
	Children      []HierarchyNode `json:"children"`
}
