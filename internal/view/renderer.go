package view

import (
	"github.com/wondertrack/wondertrack/internal/layout"
	"github.com/wondertrack/wondertrack/internal/model"
)

// Renderer turns grouped catalog data into section view-models. It never touches
// a UI toolkit; adapters apply the returned sections.
type Renderer struct {
	planner *layout.Planner
}

// NewRenderer creates a renderer that sizes cards with planner
func NewRenderer(planner *layout.Planner) *Renderer {
	return &Renderer{planner: planner}
}

// Planner returns the planner used for card sizes
func (r *Renderer) Planner() *layout.Planner {
	return r.planner
}

// Render builds one section per category, in category order, including
// categories without products. Groups for undeclared categories are ignored.
func (r *Renderer) Render(categories []model.Category, groups map[model.Category][]model.ProductItem) ([]model.Section, error) {
	sections := make([]model.Section, 0, len(categories))
	for _, c := range categories {
		section, err := r.renderSection(c, groups[c])
		if err != nil {
			return nil, err
		}
		sections = append(sections, section)
	}
	return sections, nil
}

// RenderIndex renders every declared category of the index
func (r *Renderer) RenderIndex(index *model.CatalogIndex) ([]model.Section, error) {
	if index == nil {
		return []model.Section{}, nil
	}
	return r.Render(index.Categories, index.Groups)
}

func (r *Renderer) renderSection(c model.Category, products []model.ProductItem) (model.Section, error) {
	width, height, err := r.planner.CardSize(len(products))
	if err != nil {
		return model.Section{}, err
	}
	width = r.planner.ClampWidth(width)

	cards := make([]model.Card, 0, len(products))
	for _, p := range products {
		cards = append(cards, model.Card{
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Width:       width,
			Height:      height,
		})
	}

	return model.Section{
		Category:  c.String(),
		ItemCount: len(products),
		Badge:     model.BadgeText(len(products)),
		CardWidth: width,
		Cards:     cards,
	}, nil
}
