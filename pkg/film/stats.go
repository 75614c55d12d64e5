package film

import "image"

// exposureStats summarizes the channel and brightness distribution of an
// image. It backs the auto style/intensity heuristics: the same pixels always
// produce the same stats, so auto resolution is a pure function of the image.
type exposureStats struct {
	meanR, meanG, meanB float64
	meanLuma            float64 // Rec. 709 luma, 0..255
	blownFrac           float64 // fraction of pixels with luma >= 250
}

func computeExposureStats(src *image.NRGBA) exposureStats {
	var st exposureStats
	if src == nil {
		return st
	}
	b := src.Bounds()
	w := b.Dx()
	h := b.Dy()
	n := w * h
	if n == 0 {
		return st
	}
	var sumR, sumG, sumB, sumL float64
	blown := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := src.PixOffset(x, y)
			r := float64(src.Pix[i+0])
			g := float64(src.Pix[i+1])
			b_ := float64(src.Pix[i+2])
			lum := 0.2126*r + 0.7152*g + 0.0722*b_
			sumR += r
			sumG += g
			sumB += b_
			sumL += lum
			if lum >= 250 {
				blown++
			}
		}
	}
	fn := float64(n)
	st.meanR = sumR / fn
	st.meanG = sumG / fn
	st.meanB = sumB / fn
	st.meanLuma = sumL / fn
	st.blownFrac = float64(blown) / fn
	return st
}
