package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/wondertrack/wondertrack/internal/model"
)

// ProductCard displays one product at the size planned for its section
type ProductCard struct {
	widget.BaseWidget

	card model.Card

	// UI components
	background       *canvas.Rectangle
	nameLabel        *widget.Label
	descriptionLabel *widget.Label
	priceLabel       *widget.Label
}

// NewProductCard creates a new product card widget
func NewProductCard(card model.Card) *ProductCard {
	pc := &ProductCard{}
	pc.ExtendBaseWidget(pc)
	pc.createUI()
	pc.SetCard(card)
	return pc
}

// SetCard updates the card with new data
func (pc *ProductCard) SetCard(card model.Card) {
	pc.card = card
	pc.updateFromCard()
	pc.Refresh()
}

// Card returns the displayed view-model
func (pc *ProductCard) Card() model.Card {
	return pc.card
}

// createUI creates the UI components
func (pc *ProductCard) createUI() {
	pc.background = canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground))
	pc.background.CornerRadius = CardCornerRadius
	pc.background.StrokeColor = theme.Color(theme.ColorNameSeparator)
	pc.background.StrokeWidth = 1

	pc.nameLabel = widget.NewLabel("")
	pc.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	pc.nameLabel.Truncation = fyne.TextTruncateEllipsis

	pc.descriptionLabel = widget.NewLabel("")
	pc.descriptionLabel.Wrapping = fyne.TextWrapWord
	pc.descriptionLabel.Truncation = fyne.TextTruncateEllipsis

	pc.priceLabel = widget.NewLabel("")
	pc.priceLabel.Alignment = fyne.TextAlignTrailing
	pc.priceLabel.Importance = widget.SuccessImportance
	pc.priceLabel.TextStyle = fyne.TextStyle{Bold: true}
}

// updateFromCard copies the view-model into the labels
func (pc *ProductCard) updateFromCard() {
	pc.nameLabel.SetText(singleLine(pc.card.Name))
	pc.priceLabel.SetText(singleLine(pc.card.Price))

	description := singleLine(pc.card.Description)
	if description == "" {
		description = DashPlaceholder
		pc.descriptionLabel.Importance = widget.LowImportance
	} else {
		pc.descriptionLabel.Importance = widget.MediumImportance
	}
	pc.descriptionLabel.SetText(description)
}

// CreateRenderer creates the widget renderer
func (pc *ProductCard) CreateRenderer() fyne.WidgetRenderer {
	return &productCardRenderer{card: pc}
}

// productCardRenderer renders the product card widget
type productCardRenderer struct {
	card   *ProductCard
	layout *fyne.Container
}

// Layout arranges the components
func (r *productCardRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	r.card.background.Resize(size)
	r.layout.Resize(size)
}

// MinSize returns the planned card size; the grid never shrinks a card below it
func (r *productCardRenderer) MinSize() fyne.Size {
	w, h := r.card.card.Width, r.card.card.Height
	if h < CardMinHeight {
		h = CardMinHeight
	}
	return fyne.NewSize(w, h)
}

// Refresh refreshes the renderer
func (r *productCardRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.card.background.FillColor = theme.Color(theme.ColorNameInputBackground)
	r.card.background.StrokeColor = theme.Color(theme.ColorNameSeparator)
	r.card.background.Refresh()
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *productCardRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.card.background, r.layout}
}

// Destroy cleans up the renderer
func (r *productCardRenderer) Destroy() {}

// createLayout creates the card layout: name and price on top, description below
func (r *productCardRenderer) createLayout() {
	pc := r.card

	top := container.NewBorder(nil, nil, nil, pc.priceLabel, pc.nameLabel)
	r.layout = container.NewPadded(container.NewBorder(top, nil, nil, nil, pc.descriptionLabel))
}

// singleLine flattens whitespace that would break a one-line label
func singleLine(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\t", " ")
	return strings.TrimSpace(s)
}
