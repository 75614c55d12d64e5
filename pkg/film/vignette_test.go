package film

import (
	"bytes"
	"image/color"
	"testing"
)

func TestVignetteZeroIsNoop(t *testing.T) {
	src := makeSolidNRGBA(100, 140, color.NRGBA{R: 200, G: 150, B: 100, A: 255})
	out := Vignette(src, 0)
	if out == src {
		t.Fatal("expected a new buffer, got the source")
	}
	if !bytes.Equal(out.Pix, src.Pix) {
		t.Fatal("strength 0 must be pixel-identical to the input")
	}
}

func TestVignetteFullDarkensCorners(t *testing.T) {
	src := makeSolidNRGBA(100, 100, color.NRGBA{R: 128, G: 128, B: 128, A: 255})
	out := Vignette(src, 1.0)

	center := out.Pix[out.PixOffset(50, 50)]
	corner := out.Pix[out.PixOffset(0, 0)]
	if center != 128 {
		t.Fatalf("center changed: %d", center)
	}
	if int(corner) > int(center)/2 {
		t.Fatalf("corner %d not at least 50%% darker than center %d", corner, center)
	}
}

func TestVignettePartialStrength(t *testing.T) {
	src := makeSolidNRGBA(80, 80, color.NRGBA{R: 200, G: 200, B: 200, A: 255})
	half := Vignette(src, 0.5)
	full := Vignette(src, 1.0)

	hc := half.Pix[half.PixOffset(0, 0)]
	fc := full.Pix[full.PixOffset(0, 0)]
	if !(fc < hc && hc < 200) {
		t.Fatalf("expected monotonic darkening: full=%d half=%d original=200", fc, hc)
	}
}

func TestVignettePreservesAlpha(t *testing.T) {
	src := makeSolidNRGBA(40, 40, color.NRGBA{R: 128, G: 128, B: 128, A: 200})
	out := Vignette(src, 1.0)
	if a := out.Pix[out.PixOffset(0, 0)+3]; a != 200 {
		t.Fatalf("alpha changed: %d", a)
	}
}
