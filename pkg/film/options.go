package film

import (
	"fmt"
	"strconv"
	"strings"
)

// LeakStyle selects the light-leak color recipe.
type LeakStyle int

const (
	StyleWarm LeakStyle = iota
	StyleCool
	StylePink
	StyleBurn
	StyleNone
	// StyleAuto is a sentinel resolved to one of the concrete styles by
	// ResolveStyle before any blending happens.
	StyleAuto
)

func (s LeakStyle) String() string {
	switch s {
	case StyleWarm:
		return "warm"
	case StyleCool:
		return "cool"
	case StylePink:
		return "pink"
	case StyleBurn:
		return "burn"
	case StyleNone:
		return "none"
	case StyleAuto:
		return "auto"
	}
	return fmt.Sprintf("LeakStyle(%d)", int(s))
}

// ParseLeakStyle maps a CLI-level style name to a LeakStyle.
func ParseLeakStyle(s string) (LeakStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "warm":
		return StyleWarm, nil
	case "cool":
		return StyleCool, nil
	case "pink":
		return StylePink, nil
	case "burn":
		return StyleBurn, nil
	case "none":
		return StyleNone, nil
	case "auto":
		return StyleAuto, nil
	}
	return StyleNone, fmt.Errorf("%w: unknown leak style %q", ErrInvalidParameter, s)
}

// LeakPosition anchors the glow center on one image corner.
type LeakPosition int

const (
	PositionUpperLeft LeakPosition = iota
	PositionUpperRight
	PositionBottomLeft
	PositionBottomRight
	// PositionNone disables the leak stage entirely.
	PositionNone
)

func (p LeakPosition) String() string {
	switch p {
	case PositionUpperLeft:
		return "upper_left"
	case PositionUpperRight:
		return "upper_right"
	case PositionBottomLeft:
		return "bottom_left"
	case PositionBottomRight:
		return "bottom_right"
	case PositionNone:
		return "none"
	}
	return fmt.Sprintf("LeakPosition(%d)", int(p))
}

// ParseLeakPosition maps a CLI-level position name to a LeakPosition.
func ParseLeakPosition(s string) (LeakPosition, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "upper_left":
		return PositionUpperLeft, nil
	case "upper_right":
		return PositionUpperRight, nil
	case "bottom_left":
		return PositionBottomLeft, nil
	case "bottom_right":
		return PositionBottomRight, nil
	case "none":
		return PositionNone, nil
	}
	return PositionNone, fmt.Errorf("%w: unknown leak position %q", ErrInvalidParameter, s)
}

// Intensity is either a fixed leak strength in [0,1] or the auto sentinel,
// which ResolveIntensity turns into a concrete value from image statistics.
type Intensity struct {
	Auto  bool
	Value float64
}

// FixedIntensity returns a literal intensity. The value is range-checked by
// Options validation, not here.
func FixedIntensity(v float64) Intensity { return Intensity{Value: v} }

// AutoIntensity returns the auto sentinel.
func AutoIntensity() Intensity { return Intensity{Auto: true} }

// ParseIntensity accepts "auto" or a decimal number.
func ParseIntensity(s string) (Intensity, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "auto" {
		return AutoIntensity(), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Intensity{}, fmt.Errorf("%w: leak intensity %q is not a number or \"auto\"", ErrInvalidParameter, s)
	}
	return FixedIntensity(v), nil
}

// Options configures one pipeline invocation. The zero value is not useful;
// start from DefaultOptions.
type Options struct {
	Style     LeakStyle    // leak color recipe, default StyleWarm
	Position  LeakPosition // leak anchor corner, default PositionUpperRight
	Intensity Intensity    // leak strength in [0,1] or auto, default fixed 0.5

	VignetteStrength float64 // edge darkening in [0,1], 0 disables
	BorderSize       int     // uniform border in pixels, 0 disables

	// Frame composites the print into the 54x86mm instax card instead of
	// the uniform border, with the classic thick bottom margin. Scale is
	// the mm-to-pixel factor (10 gives a 540x860 card around a 460x620
	// print).
	Frame bool
	Scale int

	// Caption is drawn centered in the bottom margin. FontPath may point
	// at an OpenType/TrueType file; empty uses a built-in bitmap font.
	Caption  string
	FontPath string

	// Halation in [0,1] adds a blurred warm glow around highlights,
	// imitating light scattering inside the film base. 0 disables.
	Halation float64
}

// DefaultOptions returns the documented defaults: warm leak in the upper
// right at intensity 0.5, no vignette, no border, no frame.
func DefaultOptions() Options {
	return Options{
		Style:     StyleWarm,
		Position:  PositionUpperRight,
		Intensity: FixedIntensity(0.5),
		Scale:     10,
	}
}

func (o Options) validate() error {
	switch o.Style {
	case StyleWarm, StyleCool, StylePink, StyleBurn, StyleNone, StyleAuto:
	default:
		return fmt.Errorf("%w: leak style out of range: %d", ErrInvalidParameter, int(o.Style))
	}
	switch o.Position {
	case PositionUpperLeft, PositionUpperRight, PositionBottomLeft, PositionBottomRight, PositionNone:
	default:
		return fmt.Errorf("%w: leak position out of range: %d", ErrInvalidParameter, int(o.Position))
	}
	if !o.Intensity.Auto && (o.Intensity.Value < 0 || o.Intensity.Value > 1) {
		return fmt.Errorf("%w: leak intensity %g outside [0,1]", ErrInvalidParameter, o.Intensity.Value)
	}
	if o.VignetteStrength < 0 || o.VignetteStrength > 1 {
		return fmt.Errorf("%w: vignette strength %g outside [0,1]", ErrInvalidParameter, o.VignetteStrength)
	}
	if o.BorderSize < 0 {
		return fmt.Errorf("%w: border size %d is negative", ErrInvalidParameter, o.BorderSize)
	}
	if o.Halation < 0 || o.Halation > 1 {
		return fmt.Errorf("%w: halation %g outside [0,1]", ErrInvalidParameter, o.Halation)
	}
	if o.Frame && o.Scale <= 0 {
		return fmt.Errorf("%w: frame scale %d must be positive", ErrInvalidParameter, o.Scale)
	}
	return nil
}
