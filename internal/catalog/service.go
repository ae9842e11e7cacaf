package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/wondertrack/wondertrack/internal/layout"
	"github.com/wondertrack/wondertrack/internal/model"
	"github.com/wondertrack/wondertrack/internal/store"
	"github.com/wondertrack/wondertrack/internal/view"
)

// Loader reads the raw catalog records
type Loader interface {
	LoadCategories() (store.CategoryResult, error)
	LoadProducts() (store.ProductResult, error)
}

// Snapshot is the result of one refresh cycle. It is never mutated after Refresh returns.
type Snapshot struct {
	ID               string
	State            model.CatalogState
	Sections         []model.Section
	Index            *model.CatalogIndex
	Issues           []model.LoadIssue
	Err              error
	CategoriesSource model.Source
	ProductsSource   model.Source
	RefreshedAt      time.Time
}

// SkippedCount returns the number of issues recorded during the refresh
func (s *Snapshot) SkippedCount() int {
	return len(s.Issues)
}

// Service runs the load → group → render pipeline
type Service struct {
	loader Loader
	policy OrphanPolicy
	log    *logrus.Entry

	mu      sync.RWMutex
	planner *layout.Planner
}

// NewService creates a catalog service
func NewService(loader Loader, planner *layout.Planner, policy OrphanPolicy, logger *logrus.Entry) *Service {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Service{
		loader:  loader,
		policy:  policy,
		planner: planner,
		log:     logger.WithField("component", "catalog"),
	}
}

// SetOrphanPolicy changes how undeclared categories are handled on the next refresh
func (s *Service) SetOrphanPolicy(policy OrphanPolicy) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.policy = policy
}

// SetAvailableWidth updates the measured container width used for card sizing
func (s *Service) SetAvailableWidth(width float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.planner = s.planner.WithAvailableWidth(width)
}

// Planner returns the current planner
func (s *Service) Planner() *layout.Planner {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.planner
}

func (s *Service) orphanPolicy() OrphanPolicy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.policy
}

// Refresh reloads both files and rebuilds every section from scratch.
// Failures are reported on the snapshot, never as a panic or partial state.
func (s *Service) Refresh(ctx context.Context) *Snapshot {
	started := time.Now()
	snap := &Snapshot{
		ID:               uuid.NewString(),
		State:            model.CatalogStateEmpty,
		Sections:         []model.Section{},
		CategoriesSource: model.SourceNone,
		ProductsSource:   model.SourceNone,
	}
	logger := s.log.WithField("refresh_id", snap.ID)

	fail := func(err error) *Snapshot {
		snap.State = model.CatalogStateFailed
		snap.Err = err
		snap.Sections = []model.Section{}
		snap.RefreshedAt = time.Now()
		logger.WithError(err).Error("Catalog refresh failed")
		return snap
	}

	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	categories, err := s.loader.LoadCategories()
	snap.CategoriesSource = categories.Source
	snap.Issues = append(snap.Issues, categories.Issues...)
	if err != nil {
		return fail(err)
	}

	products, err := s.loader.LoadProducts()
	snap.ProductsSource = products.Source
	snap.Issues = append(snap.Issues, products.Issues...)
	if err != nil {
		return fail(err)
	}

	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	index, orphanIssues, err := BuildIndex(categories.Categories, products.Products, s.orphanPolicy())
	snap.Issues = append(snap.Issues, orphanIssues...)
	snap.Index = index
	if err != nil {
		return fail(err)
	}

	sections, err := view.NewRenderer(s.Planner()).RenderIndex(index)
	if err != nil {
		return fail(err)
	}
	snap.Sections = sections
	if len(sections) > 0 {
		snap.State = model.CatalogStateLoaded
	}
	snap.RefreshedAt = time.Now()

	logger.WithFields(logrus.Fields{
		"state":        snap.State,
		"sections":     len(sections),
		"products":     model.CountCards(sections),
		"issues":       len(snap.Issues),
		"category_src": snap.CategoriesSource,
		"product_src":  snap.ProductsSource,
		"duration":     time.Since(started),
	}).Info("Catalog refreshed")

	return snap
}

// Relayout re-renders a loaded snapshot with the current planner, without
// touching the files. Used when the container is resized.
func (s *Service) Relayout(snap *Snapshot) *Snapshot {
	if snap == nil || !snap.State.HasContent() || snap.Index == nil {
		return snap
	}

	sections, err := view.NewRenderer(s.Planner()).RenderIndex(snap.Index)
	if err != nil {
		s.log.WithError(err).Warn("Relayout failed, keeping previous sections")
		return snap
	}

	next := *snap
	next.Sections = sections
	return &next
}
