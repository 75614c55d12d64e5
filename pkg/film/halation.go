package film

import "image"

// halation highlight threshold in luma units.
const halationThreshold = 180.0

// Halation adds a blurred warm glow around bright areas, imitating light
// scattering back through the film base. amount is in [0,1]; 0 (or below)
// returns an unmodified clone. The glow is weighted toward red so highlights
// bleed orange, the way film halation looks.
func Halation(src *image.NRGBA, amount float64) *image.NRGBA {
	if src == nil {
		return nil
	}
	if amount <= 0 {
		return CloneNRGBA(src)
	}
	amount = clamp01(amount)

	b := src.Bounds()
	w := b.Dx()
	h := b.Dy()

	// extract the highlights, everything else black
	high := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			si := src.PixOffset(x, y)
			r := float64(src.Pix[si+0])
			g := float64(src.Pix[si+1])
			b_ := float64(src.Pix[si+2])
			lum := 0.2126*r + 0.7152*g + 0.0722*b_
			hi := high.PixOffset(x-b.Min.X, y-b.Min.Y)
			if lum >= halationThreshold {
				high.Pix[hi+0] = src.Pix[si+0]
				high.Pix[hi+1] = src.Pix[si+1]
				high.Pix[hi+2] = src.Pix[si+2]
			}
			high.Pix[hi+3] = 255
		}
	}

	glow := separableGaussianBlur(high, 0.02*float64(minInt(w, h)))

	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			si := src.PixOffset(x, y)
			gi := glow.PixOffset(x-b.Min.X, y-b.Min.Y)
			oi := out.PixOffset(x, y)
			// warm channel weighting
			hr := float64(glow.Pix[gi+0]) * amount * 0.9
			hg := float64(glow.Pix[gi+1]) * amount * 0.45
			hb := float64(glow.Pix[gi+2]) * amount * 0.2
			out.Pix[oi+0] = uint8(clampFloatToUint8(float64(src.Pix[si+0]) + hr))
			out.Pix[oi+1] = uint8(clampFloatToUint8(float64(src.Pix[si+1]) + hg))
			out.Pix[oi+2] = uint8(clampFloatToUint8(float64(src.Pix[si+2]) + hb))
			out.Pix[oi+3] = src.Pix[si+3]
		}
	}
	return out
}
