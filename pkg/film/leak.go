package film

import (
	"fmt"
	"image"
	"math"
)

// gradientStop is one color stop of a leak recipe, positioned by normalized
// distance from the leak anchor (0 at the corner, 1 at the far end of the
// gradient reach).
type gradientStop struct {
	at      float64
	r, g, b float64
}

// leakRecipes maps each concrete style to its gradient. StyleNone and
// StyleAuto have no recipe on purpose: None never reaches synthesis and Auto
// must be resolved first.
var leakRecipes = map[LeakStyle][]gradientStop{
	StyleWarm: {
		{0.0, 255, 214, 96},
		{1.0, 255, 150, 0},
	},
	StyleCool: {
		{0.0, 96, 150, 255},
		{1.0, 120, 225, 255},
	},
	StylePink: {
		{0.0, 255, 96, 200},
		{1.0, 255, 232, 244},
	},
	StyleBurn: {
		// hard white highlight core, then falling off to deep orange
		{0.0, 255, 255, 255},
		{0.12, 255, 255, 255},
		{0.55, 255, 170, 60},
		{1.0, 255, 110, 20},
	},
}

// gradient reach as a fraction of the image diagonal; beyond it the color
// stays at the last stop.
const leakGradientReach = 0.75

// gaussian falloff width as a fraction of the image diagonal.
const leakSigmaFrac = 0.38

// leakColorAt interpolates the recipe at normalized distance t in [0,1].
func leakColorAt(recipe []gradientStop, t float64) (r, g, b float64) {
	t = clamp01(t)
	if t <= recipe[0].at {
		s := recipe[0]
		return s.r, s.g, s.b
	}
	for i := 1; i < len(recipe); i++ {
		if t <= recipe[i].at {
			lo := recipe[i-1]
			hi := recipe[i]
			span := hi.at - lo.at
			f := 0.0
			if span > 0 {
				f = (t - lo.at) / span
			}
			return lo.r + (hi.r-lo.r)*f, lo.g + (hi.g-lo.g)*f, lo.b + (hi.b-lo.b)*f
		}
	}
	last := recipe[len(recipe)-1]
	return last.r, last.g, last.b
}

// ResolveStyle maps StyleAuto to a concrete style from the image's own
// statistics; concrete styles pass through unchanged. Deterministic: the same
// pixels always resolve to the same style. Bright or blown-out images get
// Burn, warm-dominant images Warm, cool-dominant Cool, everything else Pink.
func ResolveStyle(src *image.NRGBA, style LeakStyle) LeakStyle {
	if style != StyleAuto {
		return style
	}
	st := computeExposureStats(src)
	switch {
	case st.blownFrac > 0.05 || st.meanLuma > 200:
		return StyleBurn
	case st.meanR-st.meanB > 15:
		return StyleWarm
	case st.meanB-st.meanR > 15:
		return StyleCool
	default:
		return StylePink
	}
}

// ResolveIntensity turns the auto sentinel into a concrete value from
// exposure statistics: darker images get a stronger leak to compensate. The
// auto result is clamped to [0.3, 0.8]. A fixed value passes through clamped
// to [0,1] (range violations are rejected earlier, by Options validation).
func ResolveIntensity(src *image.NRGBA, in Intensity) float64 {
	if !in.Auto {
		return clamp01(in.Value)
	}
	st := computeExposureStats(src)
	v := 0.85 - 0.55*(st.meanLuma/255.0)
	if v < 0.3 {
		v = 0.3
	}
	if v > 0.8 {
		v = 0.8
	}
	return v
}

// leakAnchor returns the glow center pixel for a corner position.
func leakAnchor(pos LeakPosition, w, h int) (x, y float64, err error) {
	switch pos {
	case PositionUpperLeft:
		return 0, 0, nil
	case PositionUpperRight:
		return float64(w - 1), 0, nil
	case PositionBottomLeft:
		return 0, float64(h - 1), nil
	case PositionBottomRight:
		return float64(w - 1), float64(h - 1), nil
	}
	return 0, 0, fmt.Errorf("%w: leak position out of range: %d", ErrInvalidParameter, int(pos))
}

// LightLeak screen-blends the style's gradient glow, anchored at pos, onto
// src and returns a new buffer. style and intensity must already be resolved
// to concrete values; intensity is the blend alpha scale in [0,1]. Position
// None (or style None) is a passthrough clone. A sentinel or unknown style
// reaching this function fails with ErrInvalidParameter.
//
// The mask is a gaussian falloff of the distance d from the corner anchor,
// normalized so it is exactly 1 at the anchor and exactly 0 at the opposite
// corner. Each pixel's leak color interpolates the recipe by d, and the final
// pixel is screen(src, leak) alpha-composited over src with alpha =
// mask * intensity. Screen never darkens, so the leak behaves like added
// light.
func LightLeak(src *image.NRGBA, style LeakStyle, pos LeakPosition, intensity float64) (*image.NRGBA, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil source", ErrInvalidImage)
	}
	if pos == PositionNone || style == StyleNone {
		return CloneNRGBA(src), nil
	}
	recipe, ok := leakRecipes[style]
	if !ok {
		return nil, fmt.Errorf("%w: leak style %s has no recipe", ErrInvalidParameter, style)
	}
	intensity = clamp01(intensity)

	b := src.Bounds()
	w := b.Dx()
	h := b.Dy()
	ax, ay, err := leakAnchor(pos, w, h)
	if err != nil {
		return nil, err
	}

	diag := math.Hypot(float64(w), float64(h))
	sigma := leakSigmaFrac * diag
	// normalize so the far corner of the image sits at exactly zero
	floor := math.Exp(-0.5 * (diag * diag) / (sigma * sigma))

	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := src.PixOffset(x, y)
			d := math.Hypot(float64(x-b.Min.X)-ax, float64(y-b.Min.Y)-ay)

			mask := math.Exp(-0.5 * (d * d) / (sigma * sigma))
			mask = (mask - floor) / (1 - floor)
			if mask < 0 {
				mask = 0
			}

			lr, lg, lb := leakColorAt(recipe, d/(leakGradientReach*diag))
			alpha := mask * intensity

			sr := float64(src.Pix[i+0]) / 255.0
			sg := float64(src.Pix[i+1]) / 255.0
			sb := float64(src.Pix[i+2]) / 255.0

			// screen blend, then composite by alpha
			br := 1 - (1-sr)*(1-lr/255.0)
			bg := 1 - (1-sg)*(1-lg/255.0)
			bb := 1 - (1-sb)*(1-lb/255.0)

			out.Pix[i+0] = uint8(clampFloatToUint8(((1-alpha)*sr + alpha*br) * 255.0))
			out.Pix[i+1] = uint8(clampFloatToUint8(((1-alpha)*sg + alpha*bg) * 255.0))
			out.Pix[i+2] = uint8(clampFloatToUint8(((1-alpha)*sb + alpha*bb) * 255.0))
			out.Pix[i+3] = src.Pix[i+3]
		}
	}
	return out, nil
}
