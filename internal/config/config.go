package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/wondertrack/wondertrack/internal/layout"
	"github.com/wondertrack/wondertrack/internal/store"
)

// EnvPrefix is prepended to every environment override, e.g. WONDERTRACK_DATA_DIR
const EnvPrefix = "WONDERTRACK"

// Config file lookup
const (
	ConfigName = "config"
	ConfigType = "yaml"
	EnvFile    = ".env"
)

// Window defaults
const (
	DefaultWindowWidth  float32 = 1200
	DefaultWindowHeight float32 = 760
	DefaultSidebarWidth float32 = 200
)

// ErrInvalidConfig wraps validation failures
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the file and environment configuration
type Config struct {
	Data    DataConfig    `mapstructure:"data"`
	Layout  layout.Config `mapstructure:"layout"`
	Window  WindowConfig  `mapstructure:"window"`
	Watch   WatchConfig   `mapstructure:"watch"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Log     LogConfig     `mapstructure:"log"`
}

// DataConfig locates the catalog files
type DataConfig struct {
	Dir            string `mapstructure:"dir"`
	CategoriesFile string `mapstructure:"categories_file" validate:"required"`
	ProductsFile   string `mapstructure:"products_file" validate:"required"`
}

// WindowConfig holds the initial window geometry
type WindowConfig struct {
	Width        float32 `mapstructure:"width" validate:"gt=0"`
	Height       float32 `mapstructure:"height" validate:"gt=0"`
	SidebarWidth float32 `mapstructure:"sidebar_width" validate:"gte=0"`
}

// WatchConfig controls automatic refresh on file changes
type WatchConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Debounce time.Duration `mapstructure:"debounce" validate:"gte=0"`
}

// CatalogConfig controls grouping behavior
type CatalogConfig struct {
	OrphanPolicy string `mapstructure:"orphan_policy" validate:"oneof=drop other error"`
}

// LogConfig controls logrus output
type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=trace debug info warn warning error fatal panic"`
	JSON  bool   `mapstructure:"json"`
}

// Paths returns the store paths for the configured file names
func (c *Config) Paths() store.Paths {
	return store.Paths{
		CategoriesFile: c.Data.CategoriesFile,
		ProductsFile:   c.Data.ProductsFile,
	}
}

// LogLevel parses the configured level, defaulting to info
func (c *Config) LogLevel() logrus.Level {
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// Load reads configuration from a YAML file with environment variable overrides.
// path may be empty, in which case config.yaml is searched for in the working
// directory and ~/.wondertrack; a missing file is not an error.
func Load(path string) (*Config, error) {
	// .env is optional; real environment variables win over it
	_ = godotenv.Load(EnvFile)

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType(ConfigType)
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.wondertrack")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the built-in configuration without reading files or env
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	// Defaults always decode
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// Validate checks the configuration
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data.dir", "")
	v.SetDefault("data.categories_file", store.DefaultCategoriesFile)
	v.SetDefault("data.products_file", store.DefaultProductsFile)

	v.SetDefault("layout.available_width", layout.DefaultAvailableWidth)
	v.SetDefault("layout.gap", layout.DefaultGap)
	v.SetDefault("layout.min_card_width", layout.DefaultMinCardWidth)
	v.SetDefault("layout.card_height", layout.DefaultCardHeight)

	v.SetDefault("window.width", DefaultWindowWidth)
	v.SetDefault("window.height", DefaultWindowHeight)
	v.SetDefault("window.sidebar_width", DefaultSidebarWidth)

	v.SetDefault("watch.enabled", true)
	v.SetDefault("watch.debounce", "300ms")

	v.SetDefault("catalog.orphan_policy", "drop")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
}
