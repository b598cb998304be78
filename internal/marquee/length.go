package marquee

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidLength is returned for container widths that are neither a
// pixel value nor a percentage.
var ErrInvalidLength = errors.New("invalid length")

// Unit is the unit of a Length.
type Unit int

const (
	UnitPx Unit = iota
	UnitPercent
)

// Length is a CSS-style width: a pixel count or a percentage of the
// parent.
type Length struct {
	Value float64
	Unit  Unit
}

// Px returns a pixel length.
func Px(v float64) Length { return Length{Value: v, Unit: UnitPx} }

// Percent returns a percentage length.
func Percent(v float64) Length { return Length{Value: v, Unit: UnitPercent} }

// ParseLength accepts "960", "960px" and "100%".
func ParseLength(s string) (Length, error) {
	s = strings.TrimSpace(s)
	unit := UnitPx
	num := s
	switch {
	case strings.HasSuffix(s, "%"):
		unit = UnitPercent
		num = strings.TrimSuffix(s, "%")
	case strings.HasSuffix(s, "px"):
		num = strings.TrimSuffix(s, "px")
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil || v < 0 {
		return Length{}, fmt.Errorf("%w: %q", ErrInvalidLength, s)
	}
	return Length{Value: v, Unit: unit}, nil
}

// Resolve converts the length to pixels against the parent width.
func (l Length) Resolve(parent float64) float64 {
	if l.Unit == UnitPercent {
		return parent * l.Value / 100
	}
	return l.Value
}

// String renders the length as CSS.
func (l Length) String() string {
	v := strconv.FormatFloat(l.Value, 'f', -1, 64)
	if l.Unit == UnitPercent {
		return v + "%"
	}
	return v + "px"
}

func (l Length) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *Length) UnmarshalText(b []byte) error {
	parsed, err := ParseLength(string(b))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
