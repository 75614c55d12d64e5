package film

import (
	"image/color"
	"math"
	"testing"
)

func TestComputeExposureStatsSolid(t *testing.T) {
	src := makeSolidNRGBA(16, 16, color.NRGBA{R: 100, G: 150, B: 200, A: 255})
	st := computeExposureStats(src)
	if st.meanR != 100 || st.meanG != 150 || st.meanB != 200 {
		t.Fatalf("means = %g/%g/%g; want 100/150/200", st.meanR, st.meanG, st.meanB)
	}
	wantLuma := 0.2126*100 + 0.7152*150 + 0.0722*200
	if math.Abs(st.meanLuma-wantLuma) > 1e-9 {
		t.Fatalf("meanLuma = %g; want %g", st.meanLuma, wantLuma)
	}
	if st.blownFrac != 0 {
		t.Fatalf("blownFrac = %g; want 0", st.blownFrac)
	}
}

func TestComputeExposureStatsBlown(t *testing.T) {
	src := makeSolidNRGBA(8, 8, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	st := computeExposureStats(src)
	if st.blownFrac != 1 {
		t.Fatalf("blownFrac = %g; want 1", st.blownFrac)
	}
}

func TestComputeExposureStatsEmpty(t *testing.T) {
	st := computeExposureStats(nil)
	if st.meanLuma != 0 || st.blownFrac != 0 {
		t.Fatalf("nil image should yield zero stats, got %+v", st)
	}
}
