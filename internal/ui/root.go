package ui

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/wondertrack/wondertrack/internal/catalog"
	"github.com/wondertrack/wondertrack/internal/config"
	"github.com/wondertrack/wondertrack/internal/layout"
	"github.com/wondertrack/wondertrack/internal/platform"
	"github.com/wondertrack/wondertrack/internal/store"
	"github.com/wondertrack/wondertrack/internal/watch"
)

// Deps carries what the main window needs from the command that starts it
type Deps struct {
	Config   *config.Config
	Settings *config.Settings
	Logger   *logrus.Entry
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	cfg          *config.Config
	settings     *config.Settings
	localization *Localization
	log          *logrus.Entry

	// Catalog pipeline, rebuilt when the data directory changes
	dataDir string
	store   *store.Store
	service *catalog.Service
	watcher *watch.Watcher

	// UI components
	header      *HeaderBar
	sidebar     *Sidebar
	catalogView *CatalogView
	pageLabel   *widget.Label
	pages       *fyne.Container

	ctx    context.Context
	cancel context.CancelFunc
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, deps Deps) (*RootUI, error) {
	cfg := deps.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := deps.Logger
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	settings := deps.Settings
	if settings == nil {
		settings = config.NewSettings(fyne.CurrentApp(), cfg)
	}

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ctx, cancel := context.WithCancel(context.Background())
	ui := &RootUI{
		window:       window,
		cfg:          cfg,
		settings:     settings,
		localization: localization,
		log:          logger.WithField("component", "ui"),
		ctx:          ctx,
		cancel:       cancel,
	}

	if err := ui.openCatalog(settings.GetDataDirectory()); err != nil {
		cancel()
		return nil, err
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.setupUI()
	ui.restartWatcher()

	ui.Refresh()
	return ui, nil
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.header = NewHeaderBar(ui.localization, ui.onManage, ui.Refresh, ui.onShowSettings)
	ui.sidebar = NewSidebar(ui.localization, ui.cfg.Window.SidebarWidth, ui.onNavigate)

	ui.catalogView = NewCatalogView(ui.localization, ui.cfg.Layout.Gap, ui.onResize)
	ui.catalogView.SetShowIssues(ui.settings.GetShowIssueList())

	ui.pageLabel = widget.NewLabel(ui.localization.GetText(KeyPageUnavailable))
	ui.pageLabel.Alignment = fyne.TextAlignCenter
	placeholder := container.NewCenter(ui.pageLabel)
	placeholder.Hide()

	ui.pages = container.NewStack(ui.catalogView.Container(), placeholder)

	content := container.NewBorder(
		ui.header.Container(),  // top
		nil,                    // bottom
		ui.sidebar.Container(), // left
		nil,                    // right
		ui.pages,               // center
	)

	ui.header.SetPage(PageProducts)
	ui.window.SetContent(content)
	ui.log.Debug("UI setup completed")
}

// openCatalog builds the store and catalog service for dataDir
func (ui *RootUI) openCatalog(dataDir string) error {
	if err := platform.CreateDirectoryIfNotExists(dataDir); err != nil {
		// Reads still fall back to the bundled catalog
		ui.log.WithError(err).Warnf("Cannot create data directory %s", dataDir)
	}

	// Reopening keeps the live width already reported by the view
	var planner *layout.Planner
	if ui.service != nil {
		planner = ui.service.Planner()
	} else {
		var err error
		if planner, err = layout.NewPlanner(ui.cfg.Layout); err != nil {
			return err
		}
	}

	ui.dataDir = dataDir
	ui.store = store.NewDirStore(dataDir, ui.cfg.Paths(), ui.log)
	ui.service = catalog.NewService(ui.store, planner, ui.settings.GetOrphanPolicy(), ui.log)
	ui.log.WithField("data_dir", dataDir).Info("Catalog opened")
	return nil
}

// restartWatcher stops the current watcher and starts a new one when enabled
func (ui *RootUI) restartWatcher() {
	if ui.watcher != nil {
		ui.watcher.Stop()
		ui.watcher = nil
	}
	if !ui.settings.GetWatchFiles() {
		return
	}

	paths := ui.cfg.Paths()
	w, err := watch.Open(ui.ctx, ui.dataDir, []string{paths.CategoriesFile, paths.ProductsFile}, ui.cfg.Watch.Debounce, func() {
		fyne.Do(ui.Refresh)
	}, ui.log)
	if err != nil {
		ui.log.WithError(err).Warn("File watching disabled")
		return
	}
	ui.watcher = w
}

// Refresh reloads the catalog from disk and replaces the products page
func (ui *RootUI) Refresh() {
	if ui.catalogView == nil {
		return
	}
	snap := ui.service.Refresh(ui.ctx)
	ui.catalogView.Apply(snap)
}

// Snapshot returns the catalog currently on screen
func (ui *RootUI) Snapshot() *catalog.Snapshot {
	return ui.catalogView.Snapshot()
}

// CurrentPage returns the selected sidebar page
func (ui *RootUI) CurrentPage() Page {
	return ui.sidebar.Current()
}

// Navigate selects a sidebar page
func (ui *RootUI) Navigate(page Page) {
	ui.sidebar.Select(page)
}

// Close stops background work
func (ui *RootUI) Close() {
	if ui.watcher != nil {
		ui.watcher.Stop()
		ui.watcher = nil
	}
	ui.cancel()
}

// onNavigate switches pages; entering products always re-reads the files
func (ui *RootUI) onNavigate(page Page) {
	ui.header.SetPage(page)

	catalogPage, placeholder := ui.pages.Objects[0], ui.pages.Objects[1]
	if page == PageProducts {
		placeholder.Hide()
		catalogPage.Show()
		ui.Refresh()
		return
	}
	catalogPage.Hide()
	placeholder.Show()
}

// onResize re-plans card widths for the live content width
func (ui *RootUI) onResize(width float32) {
	ui.service.SetAvailableWidth(width)
	ui.catalogView.Apply(ui.service.Relayout(ui.catalogView.Snapshot()))
}

// onManage opens the product management dialog; closing it refreshes the page
func (ui *RootUI) onManage() {
	NewManageDialog(ui.store, ui.localization, ui.window, ui.log, func() {
		ui.Refresh()
		ui.showToast(ui.localization.GetText(KeyCatalogRefreshed))
	}).Show()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.applySettings)
}

// applySettings picks up saved preferences without a restart
func (ui *RootUI) applySettings() {
	if dir := ui.settings.GetDataDirectory(); dir != ui.dataDir {
		if err := ui.openCatalog(dir); err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
	} else {
		ui.service.SetOrphanPolicy(ui.settings.GetOrphanPolicy())
	}

	ui.restartWatcher()
	ui.catalogView.SetShowIssues(ui.settings.GetShowIssueList())

	if lang := ui.settings.GetLanguage(); lang != ui.localization.GetCurrentLanguage() {
		ui.localization.SetLanguage(lang)
		ui.refreshUITexts()
		ui.createMenu()
	}

	if ui.sidebar.Current() == PageProducts {
		ui.Refresh()
	}
}

// onOpenDataFolder reveals the data directory in the system file manager
func (ui *RootUI) onOpenDataFolder() {
	if err := platform.OpenFolderInManager(ui.dataDir); err != nil {
		ui.log.WithError(err).Warnf("Cannot open %s", ui.dataDir)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpenFolder), err), ui.window)
	}
}

// onEditFile opens a catalog file in the default editor. Bundled data is first
// copied into the data directory so edits land where the store reads them.
// If no editor can be launched the file is revealed in the file manager instead.
func (ui *RootUI) onEditFile(name string) {
	if err := ui.store.Materialize(); err != nil {
		ui.log.WithError(err).Warn("Cannot copy catalog files into the data directory")
		dialog.ShowError(err, ui.window)
		return
	}

	path := filepath.Join(ui.dataDir, name)
	if err := platform.OpenFileWithDefaultApp(path); err != nil {
		ui.log.WithError(err).Warnf("Cannot open %s, revealing it instead", path)
		if err := platform.OpenFileInManager(path); err != nil {
			dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpenFile), err), ui.window)
		}
	}
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	l := ui.localization

	refreshItem := fyne.NewMenuItem(l.GetText(KeyRefresh), func() {
		ui.Navigate(PageProducts)
	})
	openItem := fyne.NewMenuItem(l.GetText(KeyOpenDataFolder), ui.onOpenDataFolder)
	paths := ui.cfg.Paths()
	editProductsItem := fyne.NewMenuItem(l.GetText(KeyEditProducts), func() {
		ui.onEditFile(paths.ProductsFile)
	})
	editCategoriesItem := fyne.NewMenuItem(l.GetText(KeyEditCategories), func() {
		ui.onEditFile(paths.CategoriesFile)
	})
	settingsItem := fyne.NewMenuItem(l.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(l.GetText(KeyLanguage))

	availableLanguages := l.GetAvailableLanguages()
	codes := make([]string, 0, len(availableLanguages))
	for code := range availableLanguages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = l.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(l.GetText(KeyFile), refreshItem, openItem, editProductsItem, editCategoriesItem, fyne.NewMenuItemSeparator(), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.header.RefreshTexts(ui.sidebar.Current())
	ui.sidebar.RefreshTexts()
	ui.pageLabel.SetText(ui.localization.GetText(KeyPageUnavailable))
	ui.catalogView.RefreshTexts()
}

// showToast shows a short message in the top-right corner
func (ui *RootUI) showToast(message string) {
	label := widget.NewLabel(IconRefresh + " " + message)
	label.Wrapping = fyne.TextWrapWord

	toast := widget.NewPopUp(label, ui.window.Canvas())

	canvasSize := ui.window.Canvas().Size()
	toastSize := fyne.NewSize(ToastWidth, ToastHeight)
	toast.Resize(toastSize)
	toast.Move(fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin))
	toast.Show()

	go func() {
		select {
		case <-time.After(ToastAutoHide):
		case <-ui.ctx.Done():
		}
		fyne.Do(toast.Hide)
	}()
}
