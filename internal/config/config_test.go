package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wondertrack/wondertrack/internal/layout"
	"github.com/wondertrack/wondertrack/internal/store"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, layout.DefaultConfig(), cfg.Layout)
	assert.Equal(t, store.DefaultPaths(), cfg.Paths())
	assert.Equal(t, DefaultWindowWidth, cfg.Window.Width)
	assert.Equal(t, DefaultSidebarWidth, cfg.Window.SidebarWidth)
	assert.True(t, cfg.Watch.Enabled)
	assert.Equal(t, 300*time.Millisecond, cfg.Watch.Debounce)
	assert.Equal(t, "drop", cfg.Catalog.OrphanPolicy)
	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wondertrack.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
data:
  dir: /srv/menu
  products_file: menu.txt
layout:
  available_width: 615
watch:
  debounce: 1s
catalog:
  orphan_policy: other
log:
  level: debug
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/menu", cfg.Data.Dir)
	assert.Equal(t, "menu.txt", cfg.Data.ProductsFile)
	assert.Equal(t, store.DefaultCategoriesFile, cfg.Data.CategoriesFile)
	assert.Equal(t, float32(615), cfg.Layout.AvailableWidth)
	assert.Equal(t, layout.DefaultGap, cfg.Layout.Gap)
	assert.Equal(t, time.Second, cfg.Watch.Debounce)
	assert.Equal(t, "other", cfg.Catalog.OrphanPolicy)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("WONDERTRACK_DATA_DIR", "/from/env")
	t.Setenv("WONDERTRACK_LAYOUT_GAP", "20")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data:\n  dir: /from/file\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.Data.Dir)
	assert.Equal(t, float32(20), cfg.Layout.Gap)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"orphan policy", "catalog:\n  orphan_policy: shred\n"},
		{"log level", "log:\n  level: loud\n"},
		{"negative gap", "layout:\n  gap: -1\n"},
		{"zero width", "layout:\n  available_width: 0\n"},
		{"empty file name", "data:\n  products_file: \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := Load(path)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
