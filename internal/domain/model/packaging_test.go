package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackagingType_ToBaseUnits(t *testing.T) {
	tests := []struct {
		name      string
		packaging PackagingType
		quantity  float64
		expected  float64
	}{
		{
			name:      "box of twelve",
			packaging: PackagingType{BaseUnitQuantity: 12},
			quantity:  3,
			expected:  36,
		},
		{
			name:      "base unit is identity",
			packaging: PackagingType{BaseUnitQuantity: 1, IsBaseUnit: true},
			quantity:  7,
			expected:  7,
		},
		{
			name:      "zero quantity",
			packaging: PackagingType{BaseUnitQuantity: 144},
			quantity:  0,
			expected:  0,
		},
		{
			name:      "fractional quantity",
			packaging: PackagingType{BaseUnitQuantity: 12},
			quantity:  0.5,
			expected:  6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.packaging.ToBaseUnits(tt.quantity), 1e-9)
		})
	}
}

func TestPackagingType_FromBaseUnits(t *testing.T) {
	box := PackagingType{ID: "PKG-12", BaseUnitQuantity: 12}

	assert.InDelta(t, 2, box.FromBaseUnits(24), 1e-9)
	assert.InDelta(t, 2.5, box.FromBaseUnits(30), 1e-9)
	assert.InDelta(t, 0, box.FromBaseUnits(0), 1e-9)
}

func TestHierarchyNode_Nesting(t *testing.T) {
	root := HierarchyNode{
		PackagingType: PackagingType{ID: "PKG-P", Name: "Pallet of 144", BaseUnitQuantity: 144},
		Children: []HierarchyNode{
			{
				PackagingType: PackagingType{ID: "PKG-B", Name: "Box of 12", BaseUnitQuantity: 12, ParentID: "PKG-P"},
				Children:      []HierarchyNode{},
			},
		},
	}

	assert.Equal(t, "PKG-P", root.ID)
	assert.Len(t, root.Children, 1)
	assert.Equal(t, "PKG-P", root.Children[0].ParentID)
	assert.Empty(t, root.Children[0].Children)
}
