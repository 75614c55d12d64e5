package film

import (
	"bytes"
	"errors"
	"image/color"
	"testing"
)

func TestDrawCaptionEmptyText(t *testing.T) {
	src := makeSolidNRGBA(100, 60, color.NRGBA{R: 250, G: 246, B: 238, A: 255})
	out, err := DrawCaption(src, "", "", 12, 40)
	if err != nil {
		t.Fatalf("DrawCaption failed: %v", err)
	}
	if !bytes.Equal(out.Pix, src.Pix) {
		t.Fatal("empty caption must leave pixels unchanged")
	}
}

func TestDrawCaptionBasicFont(t *testing.T) {
	src := makeSolidNRGBA(200, 80, FrameColor)
	out, err := DrawCaption(src, "summer 2026", "", 12, 50)
	if err != nil {
		t.Fatalf("DrawCaption failed: %v", err)
	}
	if bytes.Equal(out.Pix, src.Pix) {
		t.Fatal("caption drew nothing")
	}
	// glyphs land around the baseline, roughly centered
	changed := 0
	for y := 38; y < 52; y++ {
		for x := 40; x < 160; x++ {
			i := out.PixOffset(x, y)
			if out.Pix[i] != FrameColor.R || out.Pix[i+1] != FrameColor.G || out.Pix[i+2] != FrameColor.B {
				changed++
			}
		}
	}
	if changed == 0 {
		t.Fatal("no caption pixels near the baseline")
	}
}

func TestDrawCaptionMissingFontFallsBack(t *testing.T) {
	src := makeSolidNRGBA(200, 80, FrameColor)
	out, err := DrawCaption(src, "hello", "/nonexistent/font.ttf", 12, 50)
	if err != nil {
		t.Fatalf("DrawCaption should fall back, got: %v", err)
	}
	if bytes.Equal(out.Pix, src.Pix) {
		t.Fatal("fallback font drew nothing")
	}
}

func TestDrawCaptionNilSource(t *testing.T) {
	if _, err := DrawCaption(nil, "x", "", 12, 10); !errors.Is(err, ErrInvalidImage) {
		t.Fatalf("error = %v; want ErrInvalidImage", err)
	}
}
