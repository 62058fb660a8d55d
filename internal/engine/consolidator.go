package engine

import (
	"math"

	"github.com/warewise/packaging-service/internal/domain/model"
)

// Consolidate reconciles a product's stock records into a single base-unit
// total plus a per-packaging display breakdown. Records belonging to other
// products are ignored. A product with zero stock records consolidates to a
// zero total, not an error.
//
// The breakdown is a projection, not a depletion: every active packaging
// type is measured against the same total independently.
func Consolidate(catalog *Catalog, productID string, records []model.StockRecord) (model.ConsolidatedStock, error) {
	if _, err := catalog.BaseUnit(productID); err != nil {
		return model.ConsolidatedStock{}, err
	}

	var total float64
	itemsCount := 0
	locations := make(map[string]bool)

	for _, r := range records {
		if r.ProductID != productID {
			continue
		}
		t, err := catalog.Type(productID, r.PackagingTypeID)
		if err != nil {
			return model.ConsolidatedStock{}, err
		}
		total += t.ToBaseUnits(r.Quantity)
		if r.Quantity > 0 {
			itemsCount++
			locations[r.LocationID] = true
		}
	}

	active := catalog.ActiveTypes(productID)
	breakdown := make([]model.PackagingBreakdown, 0, len(active))
	for _, t := range active {
		packages := int64(math.Floor(total / t.BaseUnitQuantity))
		breakdown = append(breakdown, model.PackagingBreakdown{
			PackagingTypeID:    t.ID,
			PackagingName:      t.Name,
			BaseUnitQuantity:   t.BaseUnitQuantity,
			AvailablePackages:  packages,
			RemainingBaseUnits: total - float64(packages)*t.BaseUnitQuantity,
		})
	}

	return model.ConsolidatedStock{
		ProductID:      productID,
		TotalBaseUnits: total,
		Breakdown:      breakdown,
		LocationsCount: len(locations),
		ItemsCount:     itemsCount,
	}, nil
}
