package store

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/wondertrack/wondertrack/internal/model"
)

// Default file names, identical under the data directory and the bundled root
const (
	DefaultCategoriesFile = "categories.txt"
	DefaultProductsFile   = "products.txt"
)

// File permissions
const (
	DefaultFilePermissions = 0644
	DefaultDirPermissions  = 0755
)

// utf8BOM is stripped from the first line of a file
const utf8BOM = "\uFEFF"

// ErrUnreadable is returned when a data file exists but neither copy could be read.
// A missing file is not an error; it yields an empty result.
var ErrUnreadable = errors.New("catalog data unreadable")

// Paths names the two catalog files relative to the filesystem roots
type Paths struct {
	CategoriesFile string
	ProductsFile   string
}

// DefaultPaths returns the standard file names
func DefaultPaths() Paths {
	return Paths{
		CategoriesFile: DefaultCategoriesFile,
		ProductsFile:   DefaultProductsFile,
	}
}

// CategoryResult is the outcome of loading the category list
type CategoryResult struct {
	Categories []model.Category
	Source     model.Source
	Issues     []model.LoadIssue
}

// ProductResult is the outcome of loading the product list
type ProductResult struct {
	Products []model.ProductItem
	Source   model.Source
	Issues   []model.LoadIssue
}

// Store loads catalog files from a primary filesystem with a read-only fallback
type Store struct {
	primary  afero.Fs
	fallback afero.Fs
	paths    Paths
	log      *logrus.Entry
}

// New creates a store. fallback may be nil when there is no bundled copy.
func New(primary, fallback afero.Fs, paths Paths, logger *logrus.Entry) *Store {
	if paths.CategoriesFile == "" {
		paths.CategoriesFile = DefaultCategoriesFile
	}
	if paths.ProductsFile == "" {
		paths.ProductsFile = DefaultProductsFile
	}
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Store{
		primary:  primary,
		fallback: fallback,
		paths:    paths,
		log:      logger.WithField("component", "store"),
	}
}

// NewDirStore creates a store rooted at dataDir on the OS filesystem, falling back
// to the bundled catalog files
func NewDirStore(dataDir string, paths Paths, logger *logrus.Entry) *Store {
	primary := afero.NewBasePathFs(afero.NewOsFs(), dataDir)
	return New(primary, Bundled(), paths, logger)
}

// Paths returns the file names used by the store
func (s *Store) Paths() Paths {
	return s.paths
}

// LoadCategories reads the category list. Blank lines are skipped and order is
// preserved verbatim; it governs display order downstream.
func (s *Store) LoadCategories() (CategoryResult, error) {
	result := CategoryResult{Categories: []model.Category{}}

	data, source, issues, err := s.read(s.paths.CategoriesFile)
	result.Source = source
	result.Issues = append(result.Issues, issues...)
	if err != nil {
		return result, err
	}

	seen := make(map[model.Category]bool)
	lineNo := 0
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if lineNo == 1 {
			line = strings.TrimPrefix(line, utf8BOM)
		}
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}

		category := model.Category(name)
		if seen[category] {
			// Kept so every declared line still gets a section; reported for visibility
			result.Issues = append(result.Issues, model.LoadIssue{
				File:   s.paths.CategoriesFile,
				Line:   lineNo,
				Text:   name,
				Reason: model.ReasonDuplicateEntry,
				Detail: "category declared more than once",
			})
			s.log.Warnf("Duplicate category %q at %s:%d", name, s.paths.CategoriesFile, lineNo)
		}
		seen[category] = true
		result.Categories = append(result.Categories, category)
	}
	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("%w: scanning %s: %v", ErrUnreadable, s.paths.CategoriesFile, err)
	}

	s.log.WithFields(logrus.Fields{
		"source": source,
		"count":  len(result.Categories),
	}).Debug("Categories loaded")

	return result, nil
}

// LoadProducts reads the product list. Lines without exactly four fields are
// dropped and reported as issues; the remaining products keep source order.
func (s *Store) LoadProducts() (ProductResult, error) {
	result := ProductResult{Products: []model.ProductItem{}}

	data, source, issues, err := s.read(s.paths.ProductsFile)
	result.Source = source
	result.Issues = append(result.Issues, issues...)
	if err != nil {
		return result, err
	}

	lineNo := 0
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if lineNo == 1 {
			line = strings.TrimPrefix(line, utf8BOM)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		product, err := model.ParseProductLine(line)
		if err != nil {
			result.Issues = append(result.Issues, model.LoadIssue{
				File:   s.paths.ProductsFile,
				Line:   lineNo,
				Text:   line,
				Reason: model.ReasonMalformed,
				Detail: err.Error(),
			})
			s.log.Warnf("Skipping malformed product line %s:%d: %v", s.paths.ProductsFile, lineNo, err)
			continue
		}
		result.Products = append(result.Products, product)
	}
	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("%w: scanning %s: %v", ErrUnreadable, s.paths.ProductsFile, err)
	}

	s.log.WithFields(logrus.Fields{
		"source":  source,
		"count":   len(result.Products),
		"skipped": len(result.Issues),
	}).Debug("Products loaded")

	return result, nil
}

// read resolves a file against the primary filesystem, then the fallback.
// Both copies missing yields (nil, SourceNone, nil, nil).
func (s *Store) read(name string) ([]byte, model.Source, []model.LoadIssue, error) {
	data, primaryErr := afero.ReadFile(s.primary, name)
	if primaryErr == nil {
		return data, model.SourcePrimary, nil, nil
	}

	var issues []model.LoadIssue
	if !isNotExist(primaryErr) {
		s.log.Warnf("Failed to read %s from data directory, trying bundled copy: %v", name, primaryErr)
		issues = append(issues, model.LoadIssue{
			File:   name,
			Reason: model.ReasonFallback,
			Detail: primaryErr.Error(),
		})
	}

	fallbackErr := fs.ErrNotExist
	if s.fallback != nil {
		data, fallbackErr = afero.ReadFile(s.fallback, name)
		if fallbackErr == nil {
			s.log.Warnf("Using bundled copy of %s", name)
			return data, model.SourceFallback, issues, nil
		}
	}

	if isNotExist(primaryErr) && isNotExist(fallbackErr) {
		s.log.Infof("No %s found in data directory or bundled resources", name)
		return nil, model.SourceNone, issues, nil
	}

	cause := primaryErr
	if isNotExist(primaryErr) {
		cause = fallbackErr
	}
	s.log.Errorf("Failed to read %s: %v", name, cause)
	return nil, model.SourceNone, issues, fmt.Errorf("%w: %s: %v", ErrUnreadable, name, cause)
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || os.IsNotExist(err)
}
