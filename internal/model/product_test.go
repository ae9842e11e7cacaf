package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProductLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    ProductItem
		wantErr bool
	}{
		{
			name: "well formed",
			line: "Waffles|Classic Belgian|Crisp golden waffle|$5.50",
			want: ProductItem{Category: "Waffles", Name: "Classic Belgian", Description: "Crisp golden waffle", Price: "$5.50"},
		},
		{
			name: "fields are trimmed",
			line: "  Drinks | Iced Latte |  Cold brew with milk | $3.00  ",
			want: ProductItem{Category: "Drinks", Name: "Iced Latte", Description: "Cold brew with milk", Price: "$3.00"},
		},
		{
			name: "empty description keeps four fields",
			line: "Sides|Fries||$2.00",
			want: ProductItem{Category: "Sides", Name: "Fries", Description: "", Price: "$2.00"},
		},
		{name: "three fields", line: "Waffles|Classic|$5.50", wantErr: true},
		{name: "five fields", line: "Waffles|Classic|Crisp|$5.50|extra", wantErr: true},
		{name: "no separator", line: "Waffles", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseProductLine(tc.line)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrMalformedLine))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestProductItem_Line(t *testing.T) {
	p := ProductItem{Category: "Waffles", Name: "Classic Belgian", Description: "Crisp golden waffle", Price: "$5.50"}
	assert.Equal(t, "Waffles|Classic Belgian|Crisp golden waffle|$5.50", p.Line())

	parsed, err := ParseProductLine(p.Line())
	require.NoError(t, err)
	assert.Equal(t, p, parsed)
}

func TestProductItem_GetDisplayDescription(t *testing.T) {
	assert.Equal(t, "—", ProductItem{Description: "  "}.GetDisplayDescription())
	assert.Equal(t, "Syrup", ProductItem{Description: "Syrup"}.GetDisplayDescription())
}

func TestValidateProduct(t *testing.T) {
	valid := ProductItem{Category: "Waffles", Name: "Classic", Description: "Crisp", Price: "$5.50"}
	assert.NoError(t, ValidateProduct(valid))

	tests := []struct {
		name   string
		mutate func(p *ProductItem)
	}{
		{"missing category", func(p *ProductItem) { p.Category = "" }},
		{"missing name", func(p *ProductItem) { p.Name = "" }},
		{"missing price", func(p *ProductItem) { p.Price = "" }},
		{"pipe in name", func(p *ProductItem) { p.Name = "Classic|Belgian" }},
		{"newline in description", func(p *ProductItem) { p.Description = "Crisp\ngolden" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := valid
			tc.mutate(&p)
			err := ValidateProduct(p)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidProduct)
		})
	}
}

func TestValidateProductLine(t *testing.T) {
	assert.NoError(t, ValidateProductLine(ProductItem{Category: "Waffles", Name: "Plain"}))
	assert.NoError(t, ValidateProductLine(ProductItem{}))
	assert.ErrorIs(t, ValidateProductLine(ProductItem{Name: "Classic|Belgian"}), ErrInvalidProduct)
	assert.ErrorIs(t, ValidateProductLine(ProductItem{Price: "$5\n"}), ErrInvalidProduct)
}

func TestValidateCategory(t *testing.T) {
	assert.NoError(t, ValidateCategory("Waffles"))
	assert.ErrorIs(t, ValidateCategory("   "), ErrInvalidCategory)
	assert.ErrorIs(t, ValidateCategory("Waf\nfles"), ErrInvalidCategory)
}

func TestCatalogIndex(t *testing.T) {
	ci := NewCatalogIndex([]Category{"Waffles", "Drinks"})

	products, exists := ci.Groups["Drinks"]
	assert.True(t, exists, "declared category must be present even without products")
	assert.NotNil(t, products)
	assert.Empty(t, products)
	assert.Empty(t, ci.Groups["Waffles"])
	assert.Equal(t, 0, ci.TotalProducts())
	assert.False(t, ci.HasOrphans())

	ci.Groups["Waffles"] = append(ci.Groups["Waffles"], ProductItem{Name: "Classic"})
	ci.Orphans = append(ci.Orphans, ProductItem{Category: "Soup", Name: "Tomato"})
	assert.Equal(t, 1, ci.TotalProducts())
	assert.True(t, ci.HasOrphans())
}
