package model

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Validation errors
var (
	ErrInvalidProduct  = errors.New("invalid product")
	ErrInvalidCategory = errors.New("invalid category")
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared validator with the catalog rules registered.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation("singleline", validateSingleLine)
	})
	return validate
}

// validateSingleLine rejects values that would break the line-oriented file format
func validateSingleLine(fl validator.FieldLevel) bool {
	return !strings.ContainsAny(fl.Field().String(), FieldSeparator+"\r\n")
}

// ValidateProduct checks that a product can be stored as a single well-formed line
func ValidateProduct(p ProductItem) error {
	if err := Validator().Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: field %s failed %q", ErrInvalidProduct, strings.ToLower(fe.Field()), fe.Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidProduct, err)
	}
	return nil
}

// ValidateProductLine checks only that a loaded product still serializes to one
// four-field line. Empty fields are allowed because the loader accepts them.
func ValidateProductLine(p ProductItem) error {
	v := Validator()
	for _, f := range []struct{ name, value string }{
		{"category", p.Category},
		{"name", p.Name},
		{"description", p.Description},
		{"price", p.Price},
	} {
		if err := v.Var(f.value, "singleline"); err != nil {
			return fmt.Errorf("%w: field %s failed %q", ErrInvalidProduct, f.name, "singleline")
		}
	}
	return nil
}

// ValidateCategory checks that a category name can be stored on its own line
func ValidateCategory(c Category) error {
	name := strings.TrimSpace(string(c))
	if name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidCategory)
	}
	if strings.ContainsAny(name, "\r\n") {
		return fmt.Errorf("%w: name contains a line break", ErrInvalidCategory)
	}
	return nil
}
