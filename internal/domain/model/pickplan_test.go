package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickPlan_PlannedBaseUnits(t *testing.T) {
	tests := []struct {
		name     string
		plan     PickPlan
		expected float64
	}{
		{
			name: "multiple entries",
			plan: PickPlan{
				Entries: []PickPlanEntry{
					{PackagingTypeID: "PKG-P", PackageCount: 2, BaseUnits: 288},
					{PackagingTypeID: "PKG-B", PackageCount: 1, BaseUnits: 12},
				},
			},
			expected: 300,
		},
		{
			name:     "no entries",
			plan:     PickPlan{},
			expected: 0,
		},
		{
			name: "single entry",
			plan: PickPlan{
				Entries: []PickPlanEntry{
					{PackagingTypeID: "PKG-U", PackageCount: 5, BaseUnits: 5},
				},
			},
			expected: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.plan.PlannedBaseUnits(), 1e-9)
		})
	}
}

func TestEmptyPickPlan(t *testing.T) {
	t.Run("nonzero request cannot be fulfilled", func(t *testing.T) {
		plan := EmptyPickPlan("PRD-1042", 300)

		assert.Equal(t, "PRD-1042", plan.ProductID)
		assert.InDelta(t, 300, plan.RequestedBaseUnits, 1e-9)
		assert.InDelta(t, 300, plan.Remaining, 1e-9)
		assert.Empty(t, plan.Entries)
		assert.NotNil(t, plan.Entries)
		assert.False(t, plan.CanFulfill)
	})

	t.Run("zero request is trivially fulfilled", func(t *testing.T) {
		plan := EmptyPickPlan("PRD-1042", 0)

		assert.InDelta(t, 0, plan.Remaining, 1e-9)
		assert.True(t, plan.CanFulfill)
	})
}
