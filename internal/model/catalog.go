package model

// CatalogIndex maps each declared category to its products. It is rebuilt from
// scratch on every refresh and never updated in place.
type CatalogIndex struct {
	// Categories holds the declared categories verbatim, in display order
	Categories []Category
	// Groups has one entry per declared category; empty categories map to an empty slice
	Groups map[Category][]ProductItem
	// Orphans holds products whose category is not declared, in source order
	Orphans []ProductItem
}

// NewCatalogIndex creates an index with an empty group for every declared category
func NewCatalogIndex(categories []Category) *CatalogIndex {
	ci := &CatalogIndex{
		Categories: make([]Category, 0, len(categories)),
		Groups:     make(map[Category][]ProductItem, len(categories)),
	}
	for _, c := range categories {
		ci.Categories = append(ci.Categories, c)
		ci.Groups[c] = []ProductItem{}
	}
	return ci
}

// TotalProducts returns the number of products across declared categories
func (ci *CatalogIndex) TotalProducts() int {
	total := 0
	for _, products := range ci.Groups {
		total += len(products)
	}
	return total
}

// HasOrphans reports whether any product references an undeclared category
func (ci *CatalogIndex) HasOrphans() bool {
	return len(ci.Orphans) > 0
}
