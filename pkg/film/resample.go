package film

import (
	"image"
	"math"
)

// sinc helper
func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	x = math.Pi * x
	return math.Sin(x) / x
}

// lanczosKernel returns lanczos weight for distance x with parameter a.
func lanczosKernel(x, a float64) float64 {
	x = math.Abs(x)
	if x < 1e-12 {
		return 1
	}
	if x >= a {
		return 0
	}
	return sinc(x) * sinc(x/a)
}

// ResampleLanczos resamples src to dstW x dstH using Lanczos with window a
// (commonly 3).
func ResampleLanczos(src *image.NRGBA, dstW, dstH int, a float64) *image.NRGBA {
	if src == nil {
		return nil
	}
	srcB := src.Bounds()
	srcW := srcB.Dx()
	srcH := srcB.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, dstW, dstH))
	if dstW == 0 || dstH == 0 {
		return dst
	}

	xScale := float64(srcW) / float64(dstW)
	yScale := float64(srcH) / float64(dstH)

	// for each destination pixel, compute the source coordinate and apply
	// the windowed kernel.
	for y := 0; y < dstH; y++ {
		sy := (float64(y)+0.5)*yScale - 0.5
		for x := 0; x < dstW; x++ {
			sx := (float64(x)+0.5)*xScale - 0.5
			sumR, sumG, sumB, sumA := 0.0, 0.0, 0.0, 0.0
			weightSum := 0.0
			xMin := int(math.Floor(sx - a + 1))
			xMax := int(math.Ceil(sx + a - 1))
			yMin := int(math.Floor(sy - a + 1))
			yMax := int(math.Ceil(sy + a - 1))
			for yi := yMin; yi <= yMax; yi++ {
				wy := lanczosKernel(float64(yi)-sy, a)
				for xi := xMin; xi <= xMax; xi++ {
					wx := lanczosKernel(float64(xi)-sx, a)
					w := wx * wy
					c := samplePixelClamped(src, xi, yi)
					sumR += float64(c.R) * w
					sumG += float64(c.G) * w
					sumB += float64(c.B) * w
					sumA += float64(c.A) * w
					weightSum += w
				}
			}
			if weightSum == 0 {
				weightSum = 1
			}
			i := dst.PixOffset(x, y)
			dst.Pix[i+0] = uint8(clampFloatToUint8(sumR / weightSum))
			dst.Pix[i+1] = uint8(clampFloatToUint8(sumG / weightSum))
			dst.Pix[i+2] = uint8(clampFloatToUint8(sumB / weightSum))
			dst.Pix[i+3] = uint8(clampFloatToUint8(sumA / weightSum))
		}
	}
	return dst
}
