// Package marquee implements the state behind a seamless, infinitely
// looping ticker: measuring one sequence of items, deciding how many
// copies to lay out, and advancing a wall-clock driven offset that wraps
// once a full sequence has scrolled past.
package marquee

import (
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"
)

// Direction is the sign of the scroll velocity.
type Direction string

const (
	Left  Direction = "left"
	Right Direction = "right"
)

const (
	DefaultSpeed      = 120
	DefaultItemHeight = 28
	DefaultGap        = 32
	DefaultFadeColor  = "#0b0b0f"
	DefaultAriaLabel  = "Partner logos"
)

// Config is the caller-supplied configuration of one marquee. It is
// treated as immutable once handed to an Engine.
type Config struct {
	Items          []Item
	Speed          float64   `validate:"gte=0"`
	Direction      Direction `validate:"oneof=left right"`
	ContainerWidth Length
	ItemHeight     float64 `validate:"gt=0"`
	Gap            float64 `validate:"gte=0"`
	PauseOnHover   bool
	FadeEdges      bool
	FadeColor      string `validate:"omitempty,hexcolor"`
	ScaleOnHover   bool
	AriaLabel      string
}

// DefaultConfig returns a configuration with every option at its
// documented default and the given items.
func DefaultConfig(items ...Item) Config {
	return Config{
		Items:          items,
		Speed:          DefaultSpeed,
		Direction:      Left,
		ContainerWidth: Percent(100),
		ItemHeight:     DefaultItemHeight,
		Gap:            DefaultGap,
		PauseOnHover:   true,
		FadeColor:      DefaultFadeColor,
		AriaLabel:      DefaultAriaLabel,
	}
}

// WithDefaults fills unset fields. Speed and the booleans are left alone
// since their zero values are meaningful; use DefaultConfig as a starting
// point to get the default speed and PauseOnHover enabled.
func (c Config) WithDefaults() Config {
	if c.Direction == "" {
		c.Direction = Left
	}
	if c.ContainerWidth == (Length{}) {
		c.ContainerWidth = Percent(100)
	}
	if c.ItemHeight == 0 {
		c.ItemHeight = DefaultItemHeight
	}
	if c.FadeColor == "" {
		c.FadeColor = DefaultFadeColor
	}
	if c.AriaLabel == "" {
		c.AriaLabel = DefaultAriaLabel
	}
	return c
}

var validate = validator.New()

// Validate checks option bounds.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("marquee config: %w", err)
	}
	if c.ContainerWidth.Value < 0 {
		return fmt.Errorf("marquee config: %w: negative container width", ErrInvalidLength)
	}
	return nil
}

// Velocity returns the signed scroll velocity in px/s.
func (c Config) Velocity() float64 {
	return Velocity(c.Speed, c.Direction)
}

// LayoutChanged reports whether switching from c to next requires a new
// measurement: items, gap or item height differ.
func (c Config) LayoutChanged(next Config) bool {
	return c.Gap != next.Gap ||
		c.ItemHeight != next.ItemHeight ||
		!slices.Equal(c.Items, next.Items)
}
