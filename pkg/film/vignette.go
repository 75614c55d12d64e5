package film

import (
	"image"
	"math"
)

// vignette falloff window: no darkening inside 0.35 of the corner distance,
// full darkening weight at the corners.
const (
	vignetteInner = 0.35
	vignetteOuter = 1.0
)

func smoothstep(e0, e1, x float64) float64 {
	t := clamp01((x - e0) / (e1 - e0))
	return t * t * (3 - 2*t)
}

// Vignette darkens src toward its edges and returns a new buffer. strength
// is in [0,1]; 0 returns a pixel-identical clone. The darkening weight is a
// smoothstep of the normalized center distance (0 at center, 1 at the
// corners), so at the corners each channel is multiplied by exactly
// (1 - strength). Alpha is preserved.
func Vignette(src *image.NRGBA, strength float64) *image.NRGBA {
	if src == nil {
		return nil
	}
	if strength <= 0 {
		return CloneNRGBA(src)
	}
	strength = clamp01(strength)

	b := src.Bounds()
	w := b.Dx()
	h := b.Dy()
	cx := float64(w-1) / 2.0
	cy := float64(h-1) / 2.0
	maxR := math.Hypot(cx, cy)
	if maxR == 0 {
		maxR = 1
	}

	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := src.PixOffset(x, y)
			d := math.Hypot(float64(x-b.Min.X)-cx, float64(y-b.Min.Y)-cy) / maxR
			weight := smoothstep(vignetteInner, vignetteOuter, d)
			factor := 1.0 - strength*weight
			out.Pix[i+0] = uint8(clampFloatToUint8(float64(src.Pix[i+0]) * factor))
			out.Pix[i+1] = uint8(clampFloatToUint8(float64(src.Pix[i+1]) * factor))
			out.Pix[i+2] = uint8(clampFloatToUint8(float64(src.Pix[i+2]) * factor))
			out.Pix[i+3] = src.Pix[i+3]
		}
	}
	return out
}
