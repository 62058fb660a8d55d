package engine

import (
	"math"

	"github.com/warewise/packaging-service/internal/domain/model"
)

// Optimize decomposes a requested base-unit quantity into the fewest,
// largest handling units available in the pool. The pool maps packaging
// type ids to the base units the optimizer may consume from full packages
// of that type; the caller's map is never mutated.
//
// The algorithm is a deterministic greedy pass, largest unit first with id
// as tie break, followed by applying base-unit stock 1:1. Largest-first
// minimizes the number of physical handling units a picker retrieves, at
// the cost of not being globally optimal when package sizes are
// non-multiples of one another. That is an accepted approximation.
func Optimize(catalog *Catalog, productID string, requestedBaseUnits float64, pool map[string]float64) (model.PickPlan, error) {
	if requestedBaseUnits < 0 {
		return model.PickPlan{}, &InvalidRequestError{Field: "requested_base_units", Reason: "must not be negative"}
	}

	baseUnit, err := catalog.BaseUnit(productID)
	if err != nil {
		return model.PickPlan{}, err
	}

	if requestedBaseUnits == 0 {
		return model.EmptyPickPlan(productID, 0), nil
	}

	available := make(map[string]float64, len(pool))
	for id, units := range pool {
		available[id] = units
	}

	plan := model.PickPlan{
		ProductID:          productID,
		RequestedBaseUnits: requestedBaseUnits,
		Entries:            []model.PickPlanEntry{},
	}
	remaining := requestedBaseUnits

	// ActiveTypes is already ordered largest quantity first, id ascending
	// on ties, which makes repeated runs over the same inputs identical.
	for _, t := range catalog.ActiveTypes(productID) {
		if t.IsBaseUnit || remaining <= 0 {
			continue
		}
		availablePackages := int64(math.Floor(available[t.ID] / t.BaseUnitQuantity))
		neededPackages := int64(math.Floor(remaining / t.BaseUnitQuantity))
		take := availablePackages
		if neededPackages < take {
			take = neededPackages
		}
		if take <= 0 {
			continue
		}
		consumed := float64(take) * t.BaseUnitQuantity
		plan.Entries = append(plan.Entries, model.PickPlanEntry{
			PackagingTypeID: t.ID,
			PackagingName:   t.Name,
			PackageCount:    take,
			BaseUnits:       consumed,
		})
		remaining -= consumed
		available[t.ID] -= consumed
	}

	// Loose base units cover whatever the larger packagings could not.
	// Base units are indivisible, so only whole ones are applied; a
	// fractional pool or request leaves its fraction in remaining.
	if remaining > 0 {
		apply := math.Floor(math.Min(available[baseUnit.ID], remaining))
		if apply > 0 {
			plan.Entries = append(plan.Entries, model.PickPlanEntry{
				PackagingTypeID: baseUnit.ID,
				PackagingName:   baseUnit.Name,
				PackageCount:    int64(apply),
				BaseUnits:       apply,
			})
			remaining -= apply
		}
	}

	plan.Remaining = remaining
	plan.CanFulfill = remaining == 0
	return plan, nil
}
