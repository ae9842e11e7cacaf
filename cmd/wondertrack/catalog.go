package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wondertrack/wondertrack/internal/catalog"
	"github.com/wondertrack/wondertrack/internal/config"
	"github.com/wondertrack/wondertrack/internal/layout"
	"github.com/wondertrack/wondertrack/internal/model"
	"github.com/wondertrack/wondertrack/internal/platform"
	"github.com/wondertrack/wondertrack/internal/store"
	"github.com/wondertrack/wondertrack/internal/view"
)

// ErrCatalogFailed is returned when the catalog could not be loaded
var ErrCatalogFailed = errors.New("catalog failed to load")

type catalogOptions struct {
	json    bool
	dataDir string
	width   float32
	policy  string
}

// catalogReport is the JSON form of a refresh
type catalogReport struct {
	ID               string            `json:"id"`
	State            string            `json:"state"`
	CategoriesSource model.Source      `json:"categories_source"`
	ProductsSource   model.Source      `json:"products_source"`
	TotalProducts    int               `json:"total_products"`
	Sections         []model.Section   `json:"sections"`
	Issues           []model.LoadIssue `json:"issues,omitempty"`
	Error            string            `json:"error,omitempty"`
}

func newCatalogCmd() *cobra.Command {
	opts := &catalogOptions{}

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the product catalog as the products page would show it",
		Long: `Loads the category and product files, groups products by category
and plans card widths, then prints the sections without opening a window.

Exits non-zero when the catalog fails to load.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(cmd, cfg, logger, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.json, "json", false, "print JSON instead of text")
	cmd.Flags().StringVar(&opts.dataDir, "data-dir", "", "directory with the catalog files (overrides data.dir)")
	cmd.Flags().Float32Var(&opts.width, "width", 0, "available width in pixels (overrides layout.available_width)")
	cmd.Flags().StringVar(&opts.policy, "orphans", "", "orphan policy: drop, other or error (overrides catalog.orphan_policy)")
	return cmd
}

func runCatalog(cmd *cobra.Command, c *config.Config, log *logrus.Entry, opts *catalogOptions) error {
	dataDir := opts.dataDir
	if dataDir == "" {
		dataDir = c.Data.Dir
	}
	if dataDir == "" {
		var err error
		if dataDir, err = platform.GetDefaultDataDir(); err != nil {
			return err
		}
	}

	policyName := c.Catalog.OrphanPolicy
	if opts.policy != "" {
		policyName = opts.policy
	}
	policy, err := catalog.ParseOrphanPolicy(policyName)
	if err != nil {
		return err
	}

	planner, err := layout.NewPlanner(c.Layout)
	if err != nil {
		return err
	}
	if opts.width > 0 {
		planner = planner.WithAvailableWidth(opts.width)
	}

	svc := catalog.NewService(store.NewDirStore(dataDir, c.Paths(), log), planner, policy, log)
	snap := svc.Refresh(cmd.Context())

	out := cmd.OutOrStdout()
	if opts.json {
		err = writeReport(out, snap)
	} else {
		err = writeSummary(out, snap)
	}
	if err != nil {
		return err
	}

	if snap.State.IsFailed() {
		return fmt.Errorf("%w: %v", ErrCatalogFailed, snap.Err)
	}
	return nil
}

func writeReport(w io.Writer, snap *catalog.Snapshot) error {
	report := catalogReport{
		ID:               snap.ID,
		State:            snap.State.String(),
		CategoriesSource: snap.CategoriesSource,
		ProductsSource:   snap.ProductsSource,
		Sections:         snap.Sections,
		Issues:           snap.Issues,
	}
	if report.Sections == nil {
		report.Sections = []model.Section{}
	}
	if snap.Index != nil {
		report.TotalProducts = snap.Index.TotalProducts()
	}
	if snap.Err != nil {
		report.Error = snap.Err.Error()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func writeSummary(w io.Writer, snap *catalog.Snapshot) error {
	switch snap.State {
	case model.CatalogStateFailed:
		_, err := fmt.Fprintf(w, "catalog failed to load: %v\n", snap.Err)
		return err
	case model.CatalogStateEmpty:
		if _, err := fmt.Fprintln(w, "catalog is empty"); err != nil {
			return err
		}
	default:
		if err := view.WriteText(w, snap.Sections); err != nil {
			return err
		}
	}

	for _, issue := range snap.Issues {
		if _, err := fmt.Fprintf(w, "skipped: %s\n", issue); err != nil {
			return err
		}
	}
	return nil
}
