package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/wondertrack/wondertrack/internal/model"
)

// Write errors
var (
	ErrIndexOutOfRange   = errors.New("product index out of range")
	ErrDuplicateCategory = errors.New("category already exists")
	ErrUnknownCategory   = errors.New("category not found")
)

// tmpSuffix is appended to a file name while it is being rewritten
const tmpSuffix = ".tmp"

// SaveCategories replaces the category file in the data directory
func (s *Store) SaveCategories(categories []model.Category) error {
	lines := make([]string, 0, len(categories))
	for _, c := range categories {
		if err := model.ValidateCategory(c); err != nil {
			return err
		}
		lines = append(lines, strings.TrimSpace(string(c)))
	}
	return s.writeLines(s.paths.CategoriesFile, lines)
}

// SaveProducts replaces the product file in the data directory. Records only
// need to fit on one line; new records are checked by the callers that add them.
func (s *Store) SaveProducts(products []model.ProductItem) error {
	lines := make([]string, 0, len(products))
	for _, p := range products {
		if err := model.ValidateProductLine(p); err != nil {
			return err
		}
		lines = append(lines, p.Line())
	}
	return s.writeLines(s.paths.ProductsFile, lines)
}

// AddProduct appends a product to the product file
func (s *Store) AddProduct(p model.ProductItem) error {
	if err := model.ValidateProduct(p); err != nil {
		return err
	}
	products, err := s.currentProducts()
	if err != nil {
		return err
	}
	return s.SaveProducts(append(products, p))
}

// UpdateProduct replaces the product at index (position among valid product lines)
func (s *Store) UpdateProduct(index int, p model.ProductItem) error {
	if err := model.ValidateProduct(p); err != nil {
		return err
	}
	products, err := s.currentProducts()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(products) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	products[index] = p
	return s.SaveProducts(products)
}

// RemoveProduct deletes the product at index (position among valid product lines)
func (s *Store) RemoveProduct(index int) error {
	products, err := s.currentProducts()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(products) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	products = append(products[:index], products[index+1:]...)
	return s.SaveProducts(products)
}

// AddCategory appends a category to the category file
func (s *Store) AddCategory(c model.Category) error {
	c = model.Category(strings.TrimSpace(string(c)))
	if err := model.ValidateCategory(c); err != nil {
		return err
	}
	result, err := s.LoadCategories()
	if err != nil {
		return err
	}
	for _, existing := range result.Categories {
		if existing == c {
			return fmt.Errorf("%w: %s", ErrDuplicateCategory, c)
		}
	}
	return s.SaveCategories(append(result.Categories, c))
}

// RemoveCategory deletes a category together with its products
func (s *Store) RemoveCategory(c model.Category) error {
	result, err := s.LoadCategories()
	if err != nil {
		return err
	}

	kept := make([]model.Category, 0, len(result.Categories))
	found := false
	for _, existing := range result.Categories {
		if existing == c {
			found = true
			continue
		}
		kept = append(kept, existing)
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrUnknownCategory, c)
	}

	products, err := s.currentProducts()
	if err != nil {
		return err
	}
	remaining := make([]model.ProductItem, 0, len(products))
	for _, p := range products {
		if !p.InCategory(c) {
			remaining = append(remaining, p)
		}
	}

	// Categories go first: a failed product write then leaves products
	// without a category, which refresh reports as orphans.
	if err := s.SaveCategories(kept); err != nil {
		return err
	}
	return s.SaveProducts(remaining)
}

// Materialize copies files that are only available from the fallback into the
// primary filesystem so they can be edited in place. Files already present are
// left alone.
func (s *Store) Materialize() error {
	categories, err := s.LoadCategories()
	if err != nil {
		return err
	}
	if categories.Source != model.SourcePrimary {
		if err := s.SaveCategories(categories.Categories); err != nil {
			return err
		}
	}

	products, err := s.LoadProducts()
	if err != nil {
		return err
	}
	if products.Source != model.SourcePrimary {
		if err := s.SaveProducts(products.Products); err != nil {
			return err
		}
	}
	return nil
}

// currentProducts loads the products that a rewrite starts from. Malformed lines
// are not carried over.
func (s *Store) currentProducts() ([]model.ProductItem, error) {
	result, err := s.LoadProducts()
	if err != nil {
		return nil, err
	}
	if dropped := countReason(result.Issues, model.ReasonMalformed); dropped > 0 {
		s.log.Warnf("Rewriting %s drops %d malformed line(s)", s.paths.ProductsFile, dropped)
	}
	return result.Products, nil
}

// writeLines writes the file to a temporary name and renames it into place
func (s *Store) writeLines(name string, lines []string) error {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}

	tmp := name + tmpSuffix
	if err := afero.WriteFile(s.primary, tmp, []byte(b.String()), DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := s.primary.Rename(tmp, name); err != nil {
		_ = s.primary.Remove(tmp)
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}

	s.log.Infof("Wrote %d line(s) to %s", len(lines), name)
	return nil
}

func countReason(issues []model.LoadIssue, reason string) int {
	n := 0
	for _, issue := range issues {
		if issue.Reason == reason {
			n++
		}
	}
	return n
}
