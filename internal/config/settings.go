package config

import (
	"fyne.io/fyne/v2"

	"github.com/wondertrack/wondertrack/internal/catalog"
	"github.com/wondertrack/wondertrack/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDataDir       = "data_directory"
	KeyLanguage      = "app_language"
	KeyOrphanPolicy  = "orphan_policy"
	KeyWatchFiles    = "watch_data_files"
	KeyShowIssueList = "show_load_issues"
)

// Default values
const (
	DefaultLanguage      = "system"
	DefaultOrphanPolicy  = catalog.OrphanDrop
	DefaultWatchFiles    = true
	DefaultShowIssueList = true
)

// FallbackDataDir is used when the home directory cannot be resolved
const FallbackDataDir = "/tmp/wondertrack"

// Settings manages the per-user preferences edited from the settings dialog.
// Values set here take precedence over the file/env configuration.
type Settings struct {
	app      fyne.App
	defaults *Config
}

// NewSettings creates a new settings manager. defaults may be nil.
func NewSettings(app fyne.App, defaults *Config) *Settings {
	return &Settings{app: app, defaults: defaults}
}

// GetDataDirectory returns the directory the catalog files are read from
func (s *Settings) GetDataDirectory() string {
	dir := s.app.Preferences().String(KeyDataDir)
	if dir != "" {
		return dir
	}
	if s.defaults != nil && s.defaults.Data.Dir != "" {
		return s.defaults.Data.Dir
	}
	defaultDir, err := platform.GetDefaultDataDir()
	if err != nil {
		defaultDir = FallbackDataDir
	}
	return defaultDir
}

// SetDataDirectory overrides the data directory; an empty value restores the default
func (s *Settings) SetDataDirectory(dir string) {
	s.app.Preferences().SetString(KeyDataDir, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetOrphanPolicy returns how products of undeclared categories are handled
func (s *Settings) GetOrphanPolicy() catalog.OrphanPolicy {
	value := s.app.Preferences().String(KeyOrphanPolicy)
	if value == "" {
		if s.defaults != nil && s.defaults.Catalog.OrphanPolicy != "" {
			value = s.defaults.Catalog.OrphanPolicy
		} else {
			return DefaultOrphanPolicy
		}
	}
	policy, err := catalog.ParseOrphanPolicy(value)
	if err != nil {
		return DefaultOrphanPolicy
	}
	return policy
}

// SetOrphanPolicy sets the orphan policy
func (s *Settings) SetOrphanPolicy(policy catalog.OrphanPolicy) {
	s.app.Preferences().SetString(KeyOrphanPolicy, policy.String())
}

// GetWatchFiles returns whether data file changes trigger a refresh
func (s *Settings) GetWatchFiles() bool {
	fallback := DefaultWatchFiles
	if s.defaults != nil {
		fallback = s.defaults.Watch.Enabled
	}
	return s.app.Preferences().BoolWithFallback(KeyWatchFiles, fallback)
}

// SetWatchFiles sets whether data file changes trigger a refresh
func (s *Settings) SetWatchFiles(enabled bool) {
	s.app.Preferences().SetBool(KeyWatchFiles, enabled)
}

// GetShowIssueList returns whether skipped lines are listed under the status bar
func (s *Settings) GetShowIssueList() bool {
	return s.app.Preferences().BoolWithFallback(KeyShowIssueList, DefaultShowIssueList)
}

// SetShowIssueList sets whether skipped lines are listed
func (s *Settings) SetShowIssueList(show bool) {
	s.app.Preferences().SetBool(KeyShowIssueList, show)
}

// GetOrphanPolicyOptions returns available orphan policies
func (s *Settings) GetOrphanPolicyOptions() []catalog.OrphanPolicy {
	return catalog.OrphanPolicies()
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
