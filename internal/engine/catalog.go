package engine

import (
	"sort"

	"github.com/warewise/packaging-service/internal/domain/model"
)

// Catalog is an immutable arena of packaging type records with one-time
// built indexes for parent/child traversal. Nodes reference each other by
// id only, so a malformed snapshot cannot produce reference cycles in the
// built tree; traversal additionally guards against cyclic parent links.
type Catalog struct {
	types     map[string]model.PackagingType
	byProduct map[string][]string // product id -> type ids, largest quantity first
	children  map[string][]string // parent type id -> child type ids, largest quantity first
	baseUnits map[string][]string // product id -> active base unit type ids
}

// NewCatalog builds a catalog from a packaging type snapshot.
// Input order is irrelevant; all indexes are sorted by BaseUnitQuantity
// descending with id ascending as tie break, for reproducible traversal.
func NewCatalog(types []model.PackagingType) *Catalog {
	c := &Catalog{
		types:     make(map[string]model.PackagingType, len(types)),
		byProduct: make(map[string][]string),
		children:  make(map[string][]string),
		baseUnits: make(map[string][]string),
	}

	for _, t := range types {
		c.types[t.ID] = t
		c.byProduct[t.ProductID] = append(c.byProduct[t.ProductID], t.ID)
		if t.ParentID != "" {
			c.children[t.ParentID] = append(c.children[t.ParentID], t.ID)
		}
		if t.IsBaseUnit && t.Active {
			c.baseUnits[t.ProductID] = append(c.baseUnits[t.ProductID], t.ID)
		}
	}

	for _, ids := range c.byProduct {
		c.sortByQuantity(ids)
	}
	for _, ids := range c.children {
		c.sortByQuantity(ids)
	}
	for _, ids := range c.baseUnits {
		sort.Strings(ids)
	}

	return c
}

// sortByQuantity orders type ids by BaseUnitQuantity descending, id
// ascending on ties.
func (c *Catalog) sortByQuantity(ids []string) {
	sort.Slice(ids, func(i, j int) bool {
		qi, qj := c.types[ids[i]].BaseUnitQuantity, c.types[ids[j]].BaseUnitQuantity
		if qi != qj {
			return qi > qj
		}
		return ids[i] < ids[j]
	})
}

// Type returns the packaging type with the given id, verifying it belongs
// to the stated product.
func (c *Catalog) Type(productID, packagingTypeID string) (model.PackagingType, error) {
	t, ok := c.types[packagingTypeID]
	if !ok || t.ProductID != productID {
		return model.PackagingType{}, &PackagingNotFoundError{ProductID: productID, PackagingTypeID: packagingTypeID}
	}
	return t, nil
}

// BaseUnit returns the single active base unit packaging of a product.
func (c *Catalog) BaseUnit(productID string) (model.PackagingType, error) {
	ids := c.baseUnits[productID]
	if len(ids) != 1 {
		return model.PackagingType{}, &NoBaseUnitDefinedError{ProductID: productID, BaseUnitCount: len(ids)}
	}
	return c.types[ids[0]], nil
}

// ActiveTypes returns the product's active packaging types, largest
// BaseUnitQuantity first. The returned slice is owned by the caller.
func (c *Catalog) ActiveTypes(productID string) []model.PackagingType {
	ids := c.byProduct[productID]
	out := make([]model.PackagingType, 0, len(ids))
	for _, id := range ids {
		if t := c.types[id]; t.Active {
			out = append(out, t)
		}
	}
	return out
}

// Hierarchy returns the product's packaging tree: root nodes largest first,
// each node carrying its immediate children in the same order. A product
// without exactly one active base unit is rejected, since every downstream
// computation depends on it.
func (c *Catalog) Hierarchy(productID string) ([]model.HierarchyNode, error) {
	if _, err := c.BaseUnit(productID); err != nil {
		return nil, err
	}

	roots := make([]model.HierarchyNode, 0)
	for _, id := range c.byProduct[productID] {
		t := c.types[id]
		if !t.Active {
			continue
		}
		// A node is a root when it has no parent within the product.
		if t.ParentID != "" {
			if parent, ok := c.types[t.ParentID]; ok && parent.ProductID == productID {
				continue
			}
		}
		visited := map[string]bool{id: true}
		roots = append(roots, c.buildNode(t, visited))
	}
	return roots, nil
}

// buildNode assembles a hierarchy node and its active descendants.
// visited breaks cyclic parent links that a corrupt snapshot could carry.
func (c *Catalog) buildNode(t model.PackagingType, visited map[string]bool) model.HierarchyNode {
	node := model.HierarchyNode{PackagingType: t, Children: []model.HierarchyNode{}}
	for _, childID := range c.children[t.ID] {
		child := c.types[childID]
		if !child.Active || child.ProductID != t.ProductID || visited[childID] {
			continue
		}
		visited[childID] = true
		node.Children = append(node.Children, c.buildNode(child, visited))
	}
	return node
}

// ToBaseUnits converts a quantity expressed in the packaging's own units to
// base units.
func (c *Catalog) ToBaseUnits(packagingTypeID string, quantity float64) (float64, error) {
	t, ok := c.types[packagingTypeID]
	if !ok {
		return 0, &PackagingNotFoundError{PackagingTypeID: packagingTypeID}
	}
	return t.ToBaseUnits(quantity), nil
}

// FromBaseUnits converts a base-unit quantity to the packaging's own units.
// The result may be fractional.
func (c *Catalog) FromBaseUnits(packagingTypeID string, baseUnits float64) (float64, error) {
	t, ok := c.types[packagingTypeID]
	if !ok {
		return 0, &PackagingNotFoundError{PackagingTypeID: packagingTypeID}
	}
	return t.FromBaseUnits(baseUnits), nil
}
