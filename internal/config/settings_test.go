package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/wondertrack/wondertrack/internal/catalog"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, nil)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestDataDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, nil)

	// Test default value
	dir := settings.GetDataDirectory()
	if dir == "" {
		t.Error("Data directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/catalog"
	settings.SetDataDirectory(customDir)

	retrievedDir := settings.GetDataDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected data directory %s, got %s", customDir, retrievedDir)
	}

	// Clearing the override restores the default
	settings.SetDataDirectory("")
	if settings.GetDataDirectory() != dir {
		t.Errorf("Expected default data directory %s, got %s", dir, settings.GetDataDirectory())
	}
}

func TestDataDirectory_FromConfig(t *testing.T) {
	cfg := Default()
	cfg.Data.Dir = "/srv/wondertrack"
	settings := NewSettings(test.NewApp(), cfg)

	if got := settings.GetDataDirectory(); got != "/srv/wondertrack" {
		t.Errorf("Expected configured data directory, got %s", got)
	}
}

func TestOrphanPolicy(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, nil)

	// Test default value
	if policy := settings.GetOrphanPolicy(); policy != DefaultOrphanPolicy {
		t.Errorf("Expected default orphan policy %s, got %s", DefaultOrphanPolicy, policy)
	}

	settings.SetOrphanPolicy(catalog.OrphanOther)
	if policy := settings.GetOrphanPolicy(); policy != catalog.OrphanOther {
		t.Errorf("Expected orphan policy %s, got %s", catalog.OrphanOther, policy)
	}

	// Garbage in preferences falls back to the default
	app.Preferences().SetString(KeyOrphanPolicy, "shred")
	if policy := settings.GetOrphanPolicy(); policy != DefaultOrphanPolicy {
		t.Errorf("Expected fallback orphan policy %s, got %s", DefaultOrphanPolicy, policy)
	}
}

func TestOrphanPolicy_FromConfig(t *testing.T) {
	cfg := Default()
	cfg.Catalog.OrphanPolicy = "error"
	settings := NewSettings(test.NewApp(), cfg)

	if policy := settings.GetOrphanPolicy(); policy != catalog.OrphanError {
		t.Errorf("Expected orphan policy %s, got %s", catalog.OrphanError, policy)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, nil)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestWatchFiles(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, nil)

	if !settings.GetWatchFiles() {
		t.Error("Watching should be enabled by default")
	}

	settings.SetWatchFiles(false)
	if settings.GetWatchFiles() {
		t.Error("Watching should be disabled after SetWatchFiles(false)")
	}
}

func TestShowIssueList(t *testing.T) {
	settings := NewSettings(test.NewApp(), nil)

	if settings.GetShowIssueList() != DefaultShowIssueList {
		t.Errorf("Expected default %v", DefaultShowIssueList)
	}

	settings.SetShowIssueList(false)
	if settings.GetShowIssueList() {
		t.Error("Issue list should be hidden")
	}
}

func TestGetOrphanPolicyOptions(t *testing.T) {
	settings := NewSettings(test.NewApp(), nil)

	options := settings.GetOrphanPolicyOptions()
	expectedOptions := []catalog.OrphanPolicy{catalog.OrphanDrop, catalog.OrphanOther, catalog.OrphanError}

	if len(options) != len(expectedOptions) {
		t.Fatalf("Expected %d policy options, got %d", len(expectedOptions), len(options))
	}

	for i, expected := range expectedOptions {
		if options[i] != expected {
			t.Errorf("Policy option %d: expected %s, got %s", i, expected, options[i])
		}
	}
}

func TestGetLanguageOptions(t *testing.T) {
	settings := NewSettings(test.NewApp(), nil)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
