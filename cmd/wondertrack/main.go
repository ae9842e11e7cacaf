package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wondertrack/wondertrack/internal/config"
	"github.com/wondertrack/wondertrack/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.wondertrack.app"
	AppName = "WonderTrack"
)

var (
	// Global flags
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *logrus.Entry
)

// rootCmd opens the desktop window
var rootCmd = &cobra.Command{
	Use:     "wondertrack",
	Short:   "WonderTrack - waffle shop product catalog",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		logger = newLogger(cfg, verbose)
		return nil
	},
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDesktop()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default: ./config.yaml or ~/.wondertrack/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newCatalogCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the process logger from the log section of the config
func newLogger(c *config.Config, debug bool) *logrus.Entry {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(c.LogLevel())
	if debug {
		l.SetLevel(logrus.DebugLevel)
	}
	if c.Log.JSON {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return l.WithField("version", version)
}

func runDesktop() error {
	logger.Infof("%s v%s starting", AppName, version)

	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))

	root, err := ui.NewRootUI(myWindow, ui.Deps{
		Config:   cfg,
		Settings: config.NewSettings(myApp, cfg),
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	myWindow.SetOnClosed(root.Close)

	myWindow.ShowAndRun()
	return nil
}
