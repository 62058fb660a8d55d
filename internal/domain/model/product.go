// Package model defines the core domain entities for the packaging service.
package model

// Product holds the physical attributes of a catalog product.
// Attributes are supplied by the product catalog and treated as immutable
// for the duration of a computation.
//
// @Description Product physical attributes used for pallet composition
type Product struct {
	// ID is the product identifier
	ID string `json:"id" bson:"_id" example:"PRD-1042"`
	// Name is the human-facing product name
	Name string `json:"name" bson:"name" example:"Mineral water 1.5L"`
	// WeightKg is the weight of one base unit in kilograms
	WeightKg float64 `json:"weight_kg" bson:"weight_kg" example:"1.55"`
	// LengthCm, WidthCm and HeightCm are the base unit dimensions in centimeters
	LengthCm float64 `json:"length_cm" bson:"length_cm" example:"9"`
	WidthCm  float64 `json:"width_cm" bson:"width_cm" example:"9"`
	HeightCm float64 `json:"height_cm" bson:"height_cm" example:"32"`
	// Active indicates whether the product is sellable
	Active bool `json:"active" bson:"active"`
}

// VolumeM3 returns the volume of one base unit in cubic meters.
func (p Product) VolumeM3() float64 {
	return p.LengthCm * p.WidthCm * p.HeightCm / 1_000_000
}

// DensityKgM3 returns the density of the product in kg/m³.
// Returns 0 for products with no measured dimensions.
func (p Product) DensityKgM3() float64 {
	v := p.VolumeM3()
	if v == 0 {
		return 0
	}
	return p.WeightKg / v
}
