package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/wondertrack/wondertrack/internal/catalog"
	"github.com/wondertrack/wondertrack/internal/layout"
	"github.com/wondertrack/wondertrack/internal/model"
)

// CatalogView applies catalog snapshots to widgets. It holds no catalog logic;
// every section is rebuilt from the snapshot it is given.
type CatalogView struct {
	localization *Localization
	gap          float32
	showIssues   bool

	// UI components
	sections     *fyne.Container
	scroll       *container.Scroll
	emptyLabel   *widget.Label
	bannerLabel  *widget.Label
	banner       *fyne.Container
	statusLabel  *widget.Label
	issuesLabel  *widget.Label
	content      *fyne.Container
	widthLayout  *widthReportingLayout
	snapshot     *catalog.Snapshot
	availWidth   float32
	onResizeFunc func(width float32)
}

// NewCatalogView creates the catalog page. onResize receives the live content width.
func NewCatalogView(localization *Localization, gap float32, onResize func(width float32)) *CatalogView {
	cv := &CatalogView{
		localization: localization,
		gap:          gap,
		showIssues:   true,
		onResizeFunc: onResize,
	}
	cv.createUI()
	return cv
}

// Container returns the root object of the view
func (cv *CatalogView) Container() fyne.CanvasObject {
	return cv.content
}

// Snapshot returns the snapshot currently displayed
func (cv *CatalogView) Snapshot() *catalog.Snapshot {
	return cv.snapshot
}

// SetShowIssues toggles the list of skipped lines under the status bar
func (cv *CatalogView) SetShowIssues(show bool) {
	cv.showIssues = show
	cv.updateStatus()
}

// SectionCount returns the number of sections on screen
func (cv *CatalogView) SectionCount() int {
	return len(cv.sections.Objects)
}

// createUI creates the page components
func (cv *CatalogView) createUI() {
	cv.sections = container.NewVBox()

	cv.widthLayout = newWidthReportingLayout(cv.onWidth)
	measured := container.New(cv.widthLayout, cv.sections)
	cv.scroll = container.NewVScroll(measured)

	cv.emptyLabel = widget.NewLabel(cv.localization.GetText(KeyCatalogEmpty))
	cv.emptyLabel.Alignment = fyne.TextAlignCenter
	cv.emptyLabel.Hide()

	cv.bannerLabel = widget.NewLabel("")
	cv.bannerLabel.Importance = widget.DangerImportance
	cv.bannerLabel.Wrapping = fyne.TextWrapWord
	cv.banner = container.NewBorder(nil, nil, widget.NewIcon(theme.ErrorIcon()), nil, cv.bannerLabel)
	cv.banner.Hide()

	cv.statusLabel = widget.NewLabel("")
	cv.statusLabel.Importance = widget.LowImportance

	cv.issuesLabel = widget.NewLabel("")
	cv.issuesLabel.Importance = widget.WarningImportance
	cv.issuesLabel.Wrapping = fyne.TextWrapWord
	cv.issuesLabel.Hide()

	bottom := container.NewVBox(widget.NewSeparator(), cv.statusLabel, cv.issuesLabel)
	center := container.NewStack(cv.scroll, container.NewCenter(cv.emptyLabel))
	cv.content = container.NewBorder(cv.banner, bottom, nil, nil, center)
}

// Apply replaces everything on screen with the snapshot. Failed and empty
// snapshots are shown as distinct states.
func (cv *CatalogView) Apply(snap *catalog.Snapshot) {
	if snap == nil {
		return
	}
	cv.snapshot = snap

	cv.sections.RemoveAll()
	for _, section := range snap.Sections {
		cv.sections.Add(cv.createSection(section))
	}

	switch snap.State {
	case model.CatalogStateFailed:
		msg := cv.localization.GetText(KeyCatalogFailed)
		if snap.Err != nil {
			msg = fmt.Sprintf("%s: %v", msg, snap.Err)
		}
		cv.bannerLabel.SetText(msg)
		cv.banner.Show()
		cv.emptyLabel.Hide()
	case model.CatalogStateEmpty:
		cv.banner.Hide()
		cv.emptyLabel.Show()
	default:
		cv.banner.Hide()
		cv.emptyLabel.Hide()
	}

	cv.updateStatus()
	cv.sections.Refresh()
}

// RefreshTexts re-reads localized strings
func (cv *CatalogView) RefreshTexts() {
	cv.emptyLabel.SetText(cv.localization.GetText(KeyCatalogEmpty))
	if cv.snapshot != nil {
		cv.Apply(cv.snapshot)
	}
}

// createSection builds the header, count badge and card grid for one category
func (cv *CatalogView) createSection(section model.Section) fyne.CanvasObject {
	title := widget.NewLabel(section.Category)
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.SizeName = theme.SizeNameSubHeadingText

	badge := widget.NewLabel(section.Badge)
	badge.Importance = widget.LowImportance

	header := container.NewHBox(title, badge)

	if section.IsEmpty() {
		return container.NewVBox(header, widget.NewSeparator())
	}

	cellSize := fyne.NewSize(section.CardWidth, section.Cards[0].Height)
	cards := make([]fyne.CanvasObject, 0, len(section.Cards))
	for _, c := range section.Cards {
		cards = append(cards, NewProductCard(c))
	}
	hint := cv.availWidth
	if hint <= 0 {
		cols := layout.Columns(section.ItemCount)
		hint = float32(cols)*section.CardWidth + float32(cols-1)*cv.gap
	}
	grid := container.New(newCardGridLayout(cellSize, cv.gap, hint), cards...)

	return container.NewVBox(header, grid, widget.NewSeparator())
}

// updateStatus shows counts, the data source and skipped lines
func (cv *CatalogView) updateStatus() {
	snap := cv.snapshot
	if snap == nil {
		cv.statusLabel.SetText("")
		cv.issuesLabel.Hide()
		return
	}

	parts := []string{fmt.Sprintf(cv.localization.GetText(KeySummary), len(snap.Sections), model.CountCards(snap.Sections))}
	if snap.CategoriesSource == model.SourceFallback || snap.ProductsSource == model.SourceFallback {
		parts = append(parts, cv.localization.GetText(KeyBundledData))
	}
	if n := snap.SkippedCount(); n > 0 {
		parts = append(parts, IconWarning+" "+fmt.Sprintf(cv.localization.GetText(KeyLinesSkipped), n))
	}
	cv.statusLabel.SetText(strings.Join(parts, MiddleDotSeparator))

	if !cv.showIssues || len(snap.Issues) == 0 {
		cv.issuesLabel.Hide()
		return
	}
	lines := make([]string, 0, MaxListedIssues+1)
	for i, issue := range snap.Issues {
		if i == MaxListedIssues {
			lines = append(lines, fmt.Sprintf("… +%d", len(snap.Issues)-MaxListedIssues))
			break
		}
		lines = append(lines, issue.String())
	}
	cv.issuesLabel.SetText(strings.Join(lines, "\n"))
	cv.issuesLabel.Show()
}

// onWidth forwards live width changes of the scroll content
func (cv *CatalogView) onWidth(width float32) {
	cv.availWidth = width
	if cv.onResizeFunc != nil {
		cv.onResizeFunc(width)
	}
}
