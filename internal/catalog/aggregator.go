package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/wondertrack/wondertrack/internal/model"
)

// OrphanPolicy decides what happens to products whose category is not declared
type OrphanPolicy string

const (
	// OrphanDrop leaves orphans out of the rendered catalog and reports them
	OrphanDrop OrphanPolicy = "drop"

	// OrphanOther shows orphans in a trailing "Other" section
	OrphanOther OrphanPolicy = "other"

	// OrphanError fails the refresh
	OrphanError OrphanPolicy = "error"
)

// OtherCategory is the section orphaned products are listed under with OrphanOther
const OtherCategory model.Category = "Other"

// ErrOrphanProducts is returned by BuildIndex under OrphanError
var ErrOrphanProducts = errors.New("products reference undeclared categories")

// ErrUnknownPolicy is returned by ParseOrphanPolicy
var ErrUnknownPolicy = errors.New("unknown orphan policy")

// String returns the string representation of OrphanPolicy
func (p OrphanPolicy) String() string {
	return string(p)
}

// ParseOrphanPolicy parses a policy name; the empty string means OrphanDrop
func ParseOrphanPolicy(s string) (OrphanPolicy, error) {
	switch OrphanPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", OrphanDrop:
		return OrphanDrop, nil
	case OrphanOther:
		return OrphanOther, nil
	case OrphanError:
		return OrphanError, nil
	default:
		return OrphanDrop, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// OrphanPolicies returns the available policies in display order
func OrphanPolicies() []OrphanPolicy {
	return []OrphanPolicy{OrphanDrop, OrphanOther, OrphanError}
}

// GroupByCategory groups products by their category field. Every product is
// grouped, declared or not; duplicates are kept and each group keeps input order.
func GroupByCategory(products []model.ProductItem) map[model.Category][]model.ProductItem {
	groups := make(map[model.Category][]model.ProductItem)
	for _, p := range products {
		c := model.Category(p.Category)
		groups[c] = append(groups[c], p)
	}
	return groups
}

// BuildIndex combines the declared categories with the grouped products.
// Orphan products are handled according to policy and returned as issues.
func BuildIndex(categories []model.Category, products []model.ProductItem, policy OrphanPolicy) (*model.CatalogIndex, []model.LoadIssue, error) {
	index := model.NewCatalogIndex(categories)
	groups := GroupByCategory(products)

	for c := range index.Groups {
		if group, ok := groups[c]; ok {
			index.Groups[c] = group
		}
	}

	// Orphans in source order rather than map order
	for _, p := range products {
		if _, declared := index.Groups[model.Category(p.Category)]; !declared {
			index.Orphans = append(index.Orphans, p)
		}
	}

	if !index.HasOrphans() {
		return index, nil, nil
	}

	issues := make([]model.LoadIssue, 0, len(index.Orphans))
	for _, p := range index.Orphans {
		issues = append(issues, model.LoadIssue{
			Text:   p.Line(),
			Reason: model.ReasonOrphan,
			Detail: fmt.Sprintf("category %q is not declared", p.Category),
		})
	}

	switch policy {
	case OrphanError:
		return index, issues, fmt.Errorf("%w: %d product(s)", ErrOrphanProducts, len(index.Orphans))
	case OrphanOther:
		if _, declared := index.Groups[OtherCategory]; !declared {
			index.Categories = append(index.Categories, OtherCategory)
		}
		index.Groups[OtherCategory] = append(index.Groups[OtherCategory], index.Orphans...)
		index.Orphans = nil
	}

	return index, issues, nil
}
