package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// HeaderBar shows the app title, the current page and the page actions
type HeaderBar struct {
	localization *Localization

	titleLabel *widget.Label
	pageLabel  *widget.Label
	manageBtn  *widget.Button
	refreshBtn *widget.Button
	actions    *fyne.Container
	container  *fyne.Container
}

// NewHeaderBar creates the header. The callbacks are invoked from the UI thread.
func NewHeaderBar(localization *Localization, onManage, onRefresh, onSettings func()) *HeaderBar {
	h := &HeaderBar{localization: localization}

	h.titleLabel = widget.NewLabel(localization.GetText(KeyAppTitle))
	h.titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	h.pageLabel = widget.NewLabel("")
	h.pageLabel.Importance = widget.LowImportance

	h.manageBtn = widget.NewButtonWithIcon(localization.GetText(KeyManageProducts), theme.DocumentCreateIcon(), onManage)
	h.manageBtn.Importance = widget.HighImportance
	h.refreshBtn = widget.NewButtonWithIcon(localization.GetText(KeyRefresh), theme.ViewRefreshIcon(), onRefresh)

	settingsBtn := widget.NewButton(IconSettings, onSettings)
	settingsBtn.Importance = widget.LowImportance

	left := container.NewHBox(h.titleLabel, widget.NewLabel(MiddleDotSeparator), h.pageLabel)

	logo, err := LoadLogoResource()
	if err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		left = container.NewHBox(logoImage, h.titleLabel, widget.NewLabel(MiddleDotSeparator), h.pageLabel)
	}

	h.actions = container.NewHBox(h.manageBtn, h.refreshBtn)
	right := container.NewHBox(h.actions, settingsBtn)

	h.container = container.NewVBox(
		container.NewBorder(nil, nil, left, right),
		widget.NewSeparator(),
	)
	return h
}

// Container returns the header root object
func (h *HeaderBar) Container() fyne.CanvasObject {
	return h.container
}

// SetPage shows the page title; catalog actions are only offered on the products page
func (h *HeaderBar) SetPage(page Page) {
	h.pageLabel.SetText(h.localization.GetText(page.TextKey()))
	if page == PageProducts {
		h.actions.Show()
	} else {
		h.actions.Hide()
	}
}

// ActionsVisible reports whether the catalog actions are shown
func (h *HeaderBar) ActionsVisible() bool {
	return h.actions.Visible()
}

// RefreshTexts re-reads localized strings
func (h *HeaderBar) RefreshTexts(page Page) {
	h.titleLabel.SetText(h.localization.GetText(KeyAppTitle))
	h.manageBtn.SetText(h.localization.GetText(KeyManageProducts))
	h.refreshBtn.SetText(h.localization.GetText(KeyRefresh))
	h.SetPage(page)
}
