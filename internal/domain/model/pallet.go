package model

// PalletStatusAvailable marks a pallet usable for new compositions.
const PalletStatusAvailable = "available"

// DefaultHistoricalEfficiency is assumed for pallets with no recorded
// composition history.
const DefaultHistoricalEfficiency = 0.5

// Pallet is a candidate storage/transport pallet. HistoricalEfficiency is a
// pre-aggregated average of realized efficiency over a trailing window,
// supplied by the reporting side.
//
// @Description Candidate pallet with capacity and historical efficiency
type Pallet struct {
	// ID is the pallet identifier
	ID string `json:"id" bson:"_id" example:"PAL-7"`
	// Name is the human-facing pallet name
	Name string `json:"name" bson:"name" example:"EUR-1"`
	// MaxWeightKg is the weight capacity in kilograms
	MaxWeightKg float64 `json:"max_weight_kg" bson:"max_weight_kg" example:"1000"`
	// WidthCm and LengthCm define the deck area in centimeters
	WidthCm  float64 `json:"width_cm" bson:"width_cm" example:"80"`
	LengthCm float64 `json:"length_cm" bson:"length_cm" example:"120"`
	// Status is "available" or an operational state that excludes the pallet
	Status string `json:"status" bson:"status" example:"available"`
	// HistoricalEfficiency is the trailing-window average realized
	// efficiency in [0,1]; 0.5 when no history exists
	HistoricalEfficiency float64 `json:"historical_efficiency" bson:"historical_efficiency" example:"0.62"`
}

// AreaCm2 returns the deck area in square centimeters.
func (p Pallet) AreaCm2() float64 {
	return p.WidthCm * p.LengthCm
}

// IsAvailable reports whether the pallet can be considered for composition.
func (p Pallet) IsAvailable() bool {
	return p.Status == PalletStatusAvailable
}

// EffectiveEfficiency returns the efficiency figure to score with. A pallet
// without recorded history carries a zero HistoricalEfficiency, which scores
// as DefaultHistoricalEfficiency instead of a literal zero.
func (p Pallet) EffectiveEfficiency() float64 {
	if p.HistoricalEfficiency <= 0 {
		return DefaultHistoricalEfficiency
	}
	return p.HistoricalEfficiency
}

// CompositionItem pairs a product with the base-unit quantity to load.
//
// @Description One product line of a composition request
type CompositionItem struct {
	// ProductID is the product to load
	ProductID string `json:"product_id" example:"PRD-1042"`
	// Quantity is the number of base units to load
	Quantity float64 `json:"quantity" example:"120"`
}

// CompositionCandidate is a scored pallet for a requested load. Candidates
// are request-scoped and discarded after the response is returned.
//
// @Description Scored pallet candidate for a composition
type CompositionCandidate struct {
	// Pallet is the candidate being scored
	Pallet Pallet `json:"pallet"`
	// WeightUtilization is load weight over capacity, clamped to [0,1]
	WeightUtilization float64 `json:"weight_utilization" example:"0.9"`
	// VolumeUtilization is load volume over optimal volume, clamped to [0,1]
	VolumeUtilization float64 `json:"volume_utilization" example:"0.75"`
	// BaseScore is the size/efficiency score before utilization adjustment
	BaseScore float64 `json:"base_score" example:"0.83"`
	// AdjustedScore is BaseScore penalized by distance from the target
	// utilization on both axes; candidates are ranked by it
	AdjustedScore float64 `json:"adjusted_score" example:"0.71"`
}

// ComplexityLevel classifies how demanding a composition request is.
type ComplexityLevel string

// Complexity levels, in increasing order of algorithmic demand.
const (
	ComplexityLow    ComplexityLevel = "low"
	ComplexityMedium ComplexityLevel = "medium"
	ComplexityHigh   ComplexityLevel = "high"
)
