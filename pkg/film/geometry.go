package film

import (
	"fmt"
	"image"
	"image/draw"
)

// Instax mini print geometry, in millimeters. The exposed print area is
// 46x62; frame mode composites it into a 54x86 card with the print sitting
// 7mm below the top edge, leaving the classic thick bottom margin. A scale
// factor converts mm to pixels (scale 10: 460x620 print in a 540x860 card).
const (
	printWidthMM  = 46
	printHeightMM = 62
	frameWidthMM  = 54
	frameHeightMM = 86
	frameTopMM    = 7
)

// CropToFilmRatio returns the largest centered crop of src at the 46:62
// instax print ratio. src is not mutated. Fails with ErrInvalidImage for a
// nil or zero-dimension buffer.
func CropToFilmRatio(src *image.NRGBA) (*image.NRGBA, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil source", ErrInvalidImage)
	}
	b := src.Bounds()
	w := b.Dx()
	h := b.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("%w: zero-dimension source (%dx%d)", ErrInvalidImage, w, h)
	}

	target := float64(printWidthMM) / float64(printHeightMM)
	var cw, ch int
	if float64(w)/float64(h) > target {
		// wide source: use the full height and derive the width
		ch = h
		cw = int(float64(h) * target)
	} else {
		// tall source: use the full width and derive the height
		cw = w
		ch = int(float64(w) / target)
	}
	if cw < 1 {
		cw = 1
	}
	if ch < 1 {
		ch = 1
	}

	x0 := b.Min.X + (w-cw)/2
	y0 := b.Min.Y + (h-ch)/2
	rect := image.Rect(x0, y0, x0+cw, y0+ch)
	out := image.NewNRGBA(image.Rect(0, 0, cw, ch))
	draw.Draw(out, out.Bounds(), src, rect.Min, draw.Src)
	return out, nil
}

// NormalizeGeometry crops src to the film ratio and resizes the crop to the
// canonical print resolution for the given scale (46*scale x 62*scale),
// using Lanczos resampling.
func NormalizeGeometry(src *image.NRGBA, scale int) (*image.NRGBA, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("%w: scale %d must be positive", ErrInvalidParameter, scale)
	}
	cropped, err := CropToFilmRatio(src)
	if err != nil {
		return nil, err
	}
	tw := printWidthMM * scale
	th := printHeightMM * scale
	if cropped.Bounds().Dx() == tw && cropped.Bounds().Dy() == th {
		return cropped, nil
	}
	return ResampleLanczos(cropped, tw, th, 3.0), nil
}
