package film

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestCropToFilmRatioSquareSource(t *testing.T) {
	src := makeSolidNRGBA(1000, 1000, color.NRGBA{R: 128, G: 128, B: 128, A: 255})
	out, err := CropToFilmRatio(src)
	if err != nil {
		t.Fatalf("CropToFilmRatio failed: %v", err)
	}
	ratio := float64(printWidthMM) / float64(printHeightMM)
	wantW := int(1000.0 * ratio)
	if out.Bounds().Dx() != wantW || out.Bounds().Dy() != 1000 {
		t.Fatalf("crop = %dx%d; want %dx1000", out.Bounds().Dx(), out.Bounds().Dy(), wantW)
	}
	// color untouched
	i := out.PixOffset(out.Bounds().Dx()/2, 500)
	if out.Pix[i] != 128 || out.Pix[i+1] != 128 || out.Pix[i+2] != 128 {
		t.Fatalf("crop changed pixel values: %v", out.Pix[i:i+3])
	}
}

func TestCropToFilmRatioTallSource(t *testing.T) {
	src := makeSolidNRGBA(400, 1200, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	out, err := CropToFilmRatio(src)
	if err != nil {
		t.Fatalf("CropToFilmRatio failed: %v", err)
	}
	ratio := float64(printWidthMM) / float64(printHeightMM)
	wantH := int(400.0 / ratio)
	if out.Bounds().Dx() != 400 || out.Bounds().Dy() != wantH {
		t.Fatalf("crop = %dx%d; want 400x%d", out.Bounds().Dx(), out.Bounds().Dy(), wantH)
	}
}

func TestCropToFilmRatioZeroDimension(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 0, 0))
	if _, err := CropToFilmRatio(src); !errors.Is(err, ErrInvalidImage) {
		t.Fatalf("error = %v; want ErrInvalidImage", err)
	}
	if _, err := CropToFilmRatio(nil); !errors.Is(err, ErrInvalidImage) {
		t.Fatalf("nil source error = %v; want ErrInvalidImage", err)
	}
}

func TestCropToFilmRatioDoesNotMutateSource(t *testing.T) {
	src := makeSolidNRGBA(300, 200, color.NRGBA{R: 77, G: 88, B: 99, A: 255})
	before := make([]uint8, len(src.Pix))
	copy(before, src.Pix)
	if _, err := CropToFilmRatio(src); err != nil {
		t.Fatalf("CropToFilmRatio failed: %v", err)
	}
	if !bytes.Equal(before, src.Pix) {
		t.Fatal("source buffer was mutated")
	}
}

func TestNormalizeGeometryCanonicalSize(t *testing.T) {
	src := makeSolidNRGBA(920, 1500, color.NRGBA{R: 128, G: 128, B: 128, A: 255})
	out, err := NormalizeGeometry(src, 10)
	if err != nil {
		t.Fatalf("NormalizeGeometry failed: %v", err)
	}
	if out.Bounds().Dx() != 460 || out.Bounds().Dy() != 620 {
		t.Fatalf("normalized = %dx%d; want 460x620", out.Bounds().Dx(), out.Bounds().Dy())
	}
	// solid input stays solid through Lanczos
	i := out.PixOffset(230, 310)
	if out.Pix[i] != 128 || out.Pix[i+1] != 128 || out.Pix[i+2] != 128 {
		t.Fatalf("resample changed a solid color: %v", out.Pix[i:i+3])
	}
}

func TestNormalizeGeometryBadScale(t *testing.T) {
	src := makeSolidNRGBA(100, 100, color.NRGBA{A: 255})
	if _, err := NormalizeGeometry(src, 0); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("error = %v; want ErrInvalidParameter", err)
	}
}
