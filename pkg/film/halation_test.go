package film

import (
	"bytes"
	"image/color"
	"testing"
)

func TestHalationZeroIsNoop(t *testing.T) {
	src := makeSolidNRGBA(60, 60, color.NRGBA{R: 220, G: 220, B: 220, A: 255})
	out := Halation(src, 0)
	if out == src {
		t.Fatal("expected a new buffer, got the source")
	}
	if !bytes.Equal(out.Pix, src.Pix) {
		t.Fatal("amount 0 must be pixel-identical to the input")
	}
}

func TestHalationBleedsAroundHighlights(t *testing.T) {
	// dark field with a bright core in the middle
	src := makeSolidNRGBA(100, 100, color.NRGBA{R: 30, G: 30, B: 30, A: 255})
	for y := 45; y < 55; y++ {
		for x := 45; x < 55; x++ {
			i := src.PixOffset(x, y)
			src.Pix[i+0] = 255
			src.Pix[i+1] = 255
			src.Pix[i+2] = 255
		}
	}

	out := Halation(src, 1.0)

	// a pixel just outside the core picks up glow, warm-weighted (r >= b)
	i := out.PixOffset(57, 50)
	r, g, b := out.Pix[i], out.Pix[i+1], out.Pix[i+2]
	if r <= 30 {
		t.Fatalf("no glow outside the highlight: r=%d", r)
	}
	if r < b {
		t.Fatalf("glow not warm-weighted: r=%d g=%d b=%d", r, g, b)
	}

	// far corner stays dark
	i = out.PixOffset(2, 2)
	if out.Pix[i] != 30 {
		t.Fatalf("far corner changed: %d", out.Pix[i])
	}
}

func TestHalationDeterministic(t *testing.T) {
	src := makeSolidNRGBA(50, 50, color.NRGBA{R: 240, G: 200, B: 180, A: 255})
	a := Halation(src, 0.5)
	b := Halation(src, 0.5)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Fatal("repeated invocations differ")
	}
}
