package ui

import (
	"errors"
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/wondertrack/wondertrack/internal/catalog"
	"github.com/wondertrack/wondertrack/internal/model"
)

func TestLocalization_Fallbacks(t *testing.T) {
	l := NewLocalization()

	if got := l.GetText(KeyProducts); got != "Products" {
		t.Errorf("GetText(products) = %q, expected Products", got)
	}

	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("system language should resolve to en, got %s", l.GetCurrentLanguage())
	}

	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("unknown language should be ignored, got %s", l.GetCurrentLanguage())
	}

	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("missing key should return the key, got %q", got)
	}

	for code := range l.GetAvailableLanguages() {
		l.SetLanguage(code)
		if l.GetText(KeyAppTitle) == KeyAppTitle {
			t.Errorf("language %s has no app title", code)
		}
	}
}

func TestProductCard(t *testing.T) {
	test.NewApp()

	card := NewProductCard(model.Card{Name: "Classic\nBelgian", Description: "", Price: "$5.50", Width: 281.5, Height: 120})

	if card.nameLabel.Text != "Classic Belgian" {
		t.Errorf("name = %q, expected line breaks folded", card.nameLabel.Text)
	}
	if card.descriptionLabel.Text != DashPlaceholder {
		t.Errorf("empty description should show placeholder, got %q", card.descriptionLabel.Text)
	}
	if got := card.MinSize(); got != fyne.NewSize(281.5, 120) {
		t.Errorf("MinSize = %v, expected planned card size", got)
	}

	card.SetCard(model.Card{Name: "Latte", Description: "Milk", Price: "$3", Width: 430, Height: 10})
	if card.Card().Name != "Latte" || card.descriptionLabel.Text != "Milk" {
		t.Errorf("SetCard did not update labels")
	}
	if got := card.MinSize().Height; got != CardMinHeight {
		t.Errorf("MinSize height = %v, expected floor %v", got, CardMinHeight)
	}
}

func TestSidebar_Select(t *testing.T) {
	test.NewApp()

	var selected []Page
	s := NewSidebar(NewLocalization(), 200, func(p Page) {
		selected = append(selected, p)
	})

	if s.Current() != PageProducts {
		t.Errorf("initial page = %s, expected products", s.Current())
	}

	test.Tap(s.buttons[PageSales])
	s.Select(PageSales)

	if s.Current() != PageSales {
		t.Errorf("current page = %s, expected sales", s.Current())
	}
	if len(selected) != 2 || selected[0] != PageSales || selected[1] != PageSales {
		t.Errorf("selection callbacks = %v, expected sales twice", selected)
	}
	if got := s.Container().MinSize().Width; got < 200 {
		t.Errorf("sidebar width = %v, expected at least 200", got)
	}
}

func TestSidebar_RefreshTexts(t *testing.T) {
	test.NewApp()

	l := NewLocalization()
	s := NewSidebar(l, 200, nil)

	l.SetLanguage("pt")
	s.RefreshTexts()
	if !strings.Contains(s.buttons[PageProducts].Text, l.GetText(KeyProducts)) {
		t.Errorf("button text %q not localized", s.buttons[PageProducts].Text)
	}
}

func TestHeaderBar_ActionsOnlyOnProducts(t *testing.T) {
	test.NewApp()

	manage, refresh := 0, 0
	h := NewHeaderBar(NewLocalization(), func() { manage++ }, func() { refresh++ }, nil)

	h.SetPage(PageProducts)
	if !h.ActionsVisible() {
		t.Error("actions should be visible on the products page")
	}
	test.Tap(h.manageBtn)
	test.Tap(h.refreshBtn)
	if manage != 1 || refresh != 1 {
		t.Errorf("callbacks manage=%d refresh=%d, expected 1 each", manage, refresh)
	}

	h.SetPage(PageAnalytics)
	if h.ActionsVisible() {
		t.Error("actions should be hidden outside the products page")
	}
	if h.pageLabel.Text != "Analytics" {
		t.Errorf("page label = %q, expected Analytics", h.pageLabel.Text)
	}
}

func loadedSnapshot() *catalog.Snapshot {
	return &catalog.Snapshot{
		State: model.CatalogStateLoaded,
		Sections: []model.Section{
			{Category: "Waffles", ItemCount: 2, Badge: "2 Items", CardWidth: 430, Cards: []model.Card{
				{Name: "Classic", Price: "$5", Width: 430, Height: 120},
				{Name: "Berry", Price: "$7", Width: 430, Height: 120},
			}},
			{Category: "Sides", ItemCount: 0, Badge: "0 Items", CardWidth: 875},
		},
		CategoriesSource: model.SourcePrimary,
		ProductsSource:   model.SourceFallback,
		Issues: []model.LoadIssue{
			{File: "products.txt", Line: 3, Reason: model.ReasonMalformed, Detail: "expected 4 fields, got 2"},
		},
	}
}

func TestCatalogView_Apply(t *testing.T) {
	test.NewApp()

	cv := NewCatalogView(NewLocalization(), 15, nil)
	cv.Apply(loadedSnapshot())

	if cv.SectionCount() != 2 {
		t.Errorf("SectionCount = %d, expected 2", cv.SectionCount())
	}
	if cv.banner.Visible() || cv.emptyLabel.Visible() {
		t.Error("loaded catalog should show neither banner nor empty message")
	}
	status := cv.statusLabel.Text
	if !strings.Contains(status, "2 categories") || !strings.Contains(status, "1 lines skipped") {
		t.Errorf("status = %q", status)
	}
	if !strings.Contains(status, cv.localization.GetText(KeyBundledData)) {
		t.Errorf("status %q should mention bundled data", status)
	}
	if !cv.issuesLabel.Visible() || !strings.Contains(cv.issuesLabel.Text, "products.txt:3") {
		t.Errorf("issues = %q", cv.issuesLabel.Text)
	}

	cv.SetShowIssues(false)
	if cv.issuesLabel.Visible() {
		t.Error("issue list should be hidden when disabled")
	}
}

func TestCatalogView_EmptyAndFailedAreDistinct(t *testing.T) {
	test.NewApp()

	cv := NewCatalogView(NewLocalization(), 15, nil)
	cv.Apply(loadedSnapshot())

	cv.Apply(&catalog.Snapshot{State: model.CatalogStateEmpty})
	if cv.SectionCount() != 0 || !cv.emptyLabel.Visible() || cv.banner.Visible() {
		t.Error("empty catalog should clear sections and show the empty message")
	}

	cv.Apply(&catalog.Snapshot{State: model.CatalogStateFailed, Err: errors.New("permission denied")})
	if cv.SectionCount() != 0 || cv.emptyLabel.Visible() || !cv.banner.Visible() {
		t.Error("failed catalog should clear sections and show the banner")
	}
	if !strings.Contains(cv.bannerLabel.Text, "permission denied") {
		t.Errorf("banner = %q, expected the error", cv.bannerLabel.Text)
	}

	cv.Apply(nil)
	if cv.Snapshot() == nil || cv.Snapshot().State != model.CatalogStateFailed {
		t.Error("nil snapshot should be ignored")
	}
}

func TestCatalogView_ReportsWidth(t *testing.T) {
	test.NewApp()

	var widths []float32
	cv := NewCatalogView(NewLocalization(), 15, func(w float32) {
		widths = append(widths, w)
	})
	cv.widthLayout.Layout(nil, fyne.NewSize(640, 400))

	if len(widths) != 1 || widths[0] != 640 {
		t.Errorf("reported widths = %v, expected [640]", widths)
	}
}
