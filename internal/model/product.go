package model

import (
	"errors"
	"fmt"
	"strings"
)

// Product line format
const (
	FieldSeparator    = "|"
	ProductFieldCount = 4
)

// ErrMalformedLine is returned when a product line does not have exactly four fields
var ErrMalformedLine = errors.New("malformed product line")

// Category is a display name for a group of products. Categories have no
// identifier beyond the name; two categories are the same if the strings match.
type Category string

// String returns the category name
func (c Category) String() string {
	return string(c)
}

// ProductItem is one catalog record. Price is free text and never parsed.
type ProductItem struct {
	Category    string `json:"category" validate:"required,singleline"`
	Name        string `json:"name" validate:"required,singleline"`
	Description string `json:"description" validate:"singleline"`
	Price       string `json:"price" validate:"required,singleline"`
}

// ParseProductLine parses a `category|name|description|price` line.
// Surrounding whitespace is trimmed from the line and from every field.
func ParseProductLine(line string) (ProductItem, error) {
	parts := strings.Split(strings.TrimSpace(line), FieldSeparator)
	if len(parts) != ProductFieldCount {
		return ProductItem{}, fmt.Errorf("%w: expected %d fields, got %d", ErrMalformedLine, ProductFieldCount, len(parts))
	}

	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return ProductItem{
		Category:    parts[0],
		Name:        parts[1],
		Description: parts[2],
		Price:       parts[3],
	}, nil
}

// Line serializes the product back into its file representation
func (p ProductItem) Line() string {
	return strings.Join([]string{p.Category, p.Name, p.Description, p.Price}, FieldSeparator)
}

// InCategory reports whether the product belongs to the given category
func (p ProductItem) InCategory(c Category) bool {
	return p.Category == string(c)
}

// GetDisplayDescription returns the description, or a dash when it is empty
func (p ProductItem) GetDisplayDescription() string {
	if strings.TrimSpace(p.Description) == "" {
		return "—"
	}
	return p.Description
}
