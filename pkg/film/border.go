package film

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// FrameColor is the cream card-stock tone of an instax print.
var FrameColor = color.NRGBA{R: 250, G: 246, B: 238, A: 255}

// Border pads src on all four sides with size pixels of FrameColor and
// returns the larger buffer. size == 0 returns src unchanged (no copy).
func Border(src *image.NRGBA, size int) (*image.NRGBA, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil source", ErrInvalidImage)
	}
	if size < 0 {
		return nil, fmt.Errorf("%w: border size %d is negative", ErrInvalidParameter, size)
	}
	if size == 0 {
		return src, nil
	}
	b := src.Bounds()
	w := b.Dx()
	h := b.Dy()
	out := makeSolidNRGBA(w+2*size, h+2*size, FrameColor)
	draw.Draw(out, image.Rect(size, size, size+w, size+h), src, b.Min, draw.Src)
	return out, nil
}

// InstaxFrame composites the print into the 54x86mm card: horizontally
// centered, 7mm from the top, leaving the classic thick bottom margin. src
// should already be at the inner print size for the given scale
// (46*scale x 62*scale); other sizes are centered the same way.
func InstaxFrame(src *image.NRGBA, scale int) (*image.NRGBA, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil source", ErrInvalidImage)
	}
	if scale <= 0 {
		return nil, fmt.Errorf("%w: frame scale %d must be positive", ErrInvalidParameter, scale)
	}
	fw := frameWidthMM * scale
	fh := frameHeightMM * scale
	top := frameTopMM * scale

	b := src.Bounds()
	w := b.Dx()
	h := b.Dy()
	out := makeSolidNRGBA(fw, fh, FrameColor)
	px := (fw - w) / 2
	draw.Draw(out, image.Rect(px, top, px+w, top+h), src, b.Min, draw.Src)
	return out, nil
}
