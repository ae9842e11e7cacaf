package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Page identifies a sidebar destination
type Page int

const (
	PageProducts Page = iota
	PageOrders
	PageSales
	PageAnalytics
)

// Pages returns the sidebar pages in display order
func Pages() []Page {
	return []Page{PageProducts, PageOrders, PageSales, PageAnalytics}
}

// String returns the page name
func (p Page) String() string {
	switch p {
	case PageProducts:
		return "products"
	case PageOrders:
		return "orders"
	case PageSales:
		return "sales"
	case PageAnalytics:
		return "analytics"
	default:
		return "unknown"
	}
}

// TextKey returns the localization key of the page title
func (p Page) TextKey() string {
	switch p {
	case PageOrders:
		return KeyOrders
	case PageSales:
		return KeySales
	case PageAnalytics:
		return KeyAnalytics
	default:
		return KeyProducts
	}
}

// Icon returns the sidebar icon of the page
func (p Page) Icon() string {
	switch p {
	case PageOrders:
		return IconOrders
	case PageSales:
		return IconSales
	case PageAnalytics:
		return IconAnalysis
	default:
		return IconProducts
	}
}

// Sidebar is the navigation menu
type Sidebar struct {
	localization *Localization
	onSelect     func(Page)

	current   Page
	buttons   map[Page]*widget.Button
	container *fyne.Container
}

// NewSidebar creates the navigation menu with a fixed width
func NewSidebar(localization *Localization, width float32, onSelect func(Page)) *Sidebar {
	s := &Sidebar{
		localization: localization,
		onSelect:     onSelect,
		current:      PageProducts,
		buttons:      make(map[Page]*widget.Button),
	}

	items := container.NewVBox()
	for _, page := range Pages() {
		p := page // Capture for closure
		btn := widget.NewButton(s.buttonText(p), func() {
			s.Select(p)
		})
		btn.Alignment = widget.ButtonAlignLeading
		s.buttons[p] = btn
		items.Add(btn)
	}

	// Transparent spacer pins the sidebar width
	spacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
	spacer.SetMinSize(fyne.NewSize(width, 0))

	s.container = container.NewBorder(nil, nil, nil, widget.NewSeparator(), container.NewStack(spacer, items))
	s.updateButtons()
	return s
}

// Container returns the sidebar root object
func (s *Sidebar) Container() fyne.CanvasObject {
	return s.container
}

// Current returns the selected page
func (s *Sidebar) Current() Page {
	return s.current
}

// Select highlights page and notifies the owner. Selecting the current page
// again still notifies, so returning to products always refreshes.
func (s *Sidebar) Select(page Page) {
	s.current = page
	s.updateButtons()
	if s.onSelect != nil {
		s.onSelect(page)
	}
}

// RefreshTexts re-reads localized strings
func (s *Sidebar) RefreshTexts() {
	for page, btn := range s.buttons {
		btn.SetText(s.buttonText(page))
	}
}

func (s *Sidebar) buttonText(p Page) string {
	return p.Icon() + "  " + s.localization.GetText(p.TextKey())
}

func (s *Sidebar) updateButtons() {
	for page, btn := range s.buttons {
		if page == s.current {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.LowImportance
		}
		btn.Refresh()
	}
}
