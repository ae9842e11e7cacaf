package layout

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Default sizing for a 1200px wide window with a 200px sidebar
const (
	DefaultAvailableWidth float32 = 875
	DefaultGap            float32 = 15
	DefaultMinCardWidth   float32 = 265
	DefaultCardHeight     float32 = 120
)

// Columns per row for the three layout policies
const (
	SingleColumn = 1
	TwoColumns   = 2
	ThreeColumns = 3
)

// Planner errors
var (
	ErrNegativeCount = errors.New("item count must not be negative")
	ErrInvalidConfig = errors.New("invalid layout config")
)

var validate = validator.New()

// Config holds the measurements the planner works from
type Config struct {
	AvailableWidth float32 `mapstructure:"available_width" validate:"gt=0"`
	Gap            float32 `mapstructure:"gap" validate:"gte=0"`
	MinCardWidth   float32 `mapstructure:"min_card_width" validate:"gt=0"`
	CardHeight     float32 `mapstructure:"card_height" validate:"gt=0"`
}

// DefaultConfig returns the default layout measurements
func DefaultConfig() Config {
	return Config{
		AvailableWidth: DefaultAvailableWidth,
		Gap:            DefaultGap,
		MinCardWidth:   DefaultMinCardWidth,
		CardHeight:     DefaultCardHeight,
	}
}

// Validate checks that the measurements are usable
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Planner computes card sizes for a category grid
type Planner struct {
	cfg Config
}

// NewPlanner creates a planner after validating the config
func NewPlanner(cfg Config) (*Planner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Planner{cfg: cfg}, nil
}

// Config returns the planner measurements
func (p *Planner) Config() Config {
	return p.cfg
}

// WithAvailableWidth returns a planner for a container of the given width.
// Non-positive widths (an unmeasured container) keep the current width.
func (p *Planner) WithAvailableWidth(width float32) *Planner {
	if width <= 0 {
		return p
	}
	cfg := p.cfg
	cfg.AvailableWidth = width
	return &Planner{cfg: cfg}
}

// Columns returns how many cards the policy plans per row
func Columns(itemCount int) int {
	switch {
	case itemCount >= ThreeColumns:
		return ThreeColumns
	case itemCount == TwoColumns:
		return TwoColumns
	default:
		return SingleColumn
	}
}

// CardWidth returns the planned card width for a category with itemCount items
func (p *Planner) CardWidth(itemCount int) (float32, error) {
	return CardWidth(itemCount, p.cfg.AvailableWidth, p.cfg.Gap)
}

// CardSize returns the planned width and the fixed card height
func (p *Planner) CardSize(itemCount int) (width, height float32, err error) {
	width, err = p.CardWidth(itemCount)
	if err != nil {
		return 0, 0, err
	}
	return width, p.cfg.CardHeight, nil
}

// ClampWidth applies the minimum card width floor
func (p *Planner) ClampWidth(width float32) float32 {
	if width < p.cfg.MinCardWidth {
		return p.cfg.MinCardWidth
	}
	return width
}

// CardWidth plans one, two or three cards per row. Counts above three still
// plan three per row; extra cards wrap to new rows in the container.
func CardWidth(itemCount int, availableWidth, gap float32) (float32, error) {
	if itemCount < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeCount, itemCount)
	}

	columns := Columns(itemCount)
	gaps := float32(columns - 1)
	return (availableWidth - gaps*gap) / float32(columns), nil
}
