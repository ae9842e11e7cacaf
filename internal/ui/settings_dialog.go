package ui

import (
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/wondertrack/wondertrack/internal/catalog"
	"github.com/wondertrack/wondertrack/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	dataDirEntry   *widget.Entry
	languageSelect *widget.Select
	policySelect   *widget.Select
	watchCheck     *widget.Check
	issuesCheck    *widget.Check
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// preferences were written.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog creates and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window, onSaved)
	sd.Show()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	// Data directory selection
	sd.dataDirEntry = widget.NewEntry()
	sd.dataDirEntry.SetPlaceHolder(l.GetText(KeyDataDirectory))

	browseDirBtn := widget.NewButton(l.GetText(KeyBrowse), sd.onBrowseDirectory)
	dataDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.dataDirEntry)

	// Orphan policy selection
	policyOptions := []string{}
	for _, policy := range sd.settings.GetOrphanPolicyOptions() {
		policyOptions = append(policyOptions, policy.String())
	}
	sd.policySelect = widget.NewSelect(policyOptions, nil)

	sd.watchCheck = widget.NewCheck(l.GetText(KeyWatchFiles), nil)
	sd.issuesCheck = widget.NewCheck(l.GetText(KeyShowIssues), nil)

	// Language selection; sorted so the order is stable between openings
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = "Select language"

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyDataDirectory)+":"),
		dataDirRow,

		widget.NewLabel(l.GetText(KeyOrphanPolicy)+":"),
		sd.policySelect,

		sd.watchCheck,
		sd.issuesCheck,

		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.dataDirEntry.SetText(sd.settings.GetDataDirectory())
	sd.policySelect.SetSelected(sd.settings.GetOrphanPolicy().String())
	sd.watchCheck.SetChecked(sd.settings.GetWatchFiles())
	sd.issuesCheck.SetChecked(sd.settings.GetShowIssueList())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.dataDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.save()

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// save writes the form values to preferences
func (sd *SettingsDialog) save() {
	if dir := strings.TrimSpace(sd.dataDirEntry.Text); dir != "" {
		sd.settings.SetDataDirectory(dir)
	}

	if sd.policySelect.Selected != "" {
		if policy, err := catalog.ParseOrphanPolicy(sd.policySelect.Selected); err == nil {
			sd.settings.SetOrphanPolicy(policy)
		}
	}

	sd.settings.SetWatchFiles(sd.watchCheck.Checked)
	sd.settings.SetShowIssueList(sd.issuesCheck.Checked)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
