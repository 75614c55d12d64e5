package film

import (
	"fmt"
	"image"
)

// Apply runs the full instant-film pipeline over img and returns the final
// buffer:
//
//	crop/normalize -> resolve auto params -> light leak -> halation ->
//	vignette -> border or instax frame -> caption
//
// Stage failures propagate unchanged; there is no partial output. The
// pipeline is pure and deterministic, owns every intermediate buffer it
// creates, and never mutates img, so concurrent invocations need no
// synchronization.
func Apply(img image.Image, opts Options) (*image.NRGBA, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil source", ErrInvalidImage)
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	src := ToNRGBA(img)

	var cur *image.NRGBA
	var err error
	if opts.Frame {
		// frame mode needs the exact inner print size
		cur, err = NormalizeGeometry(src, opts.Scale)
	} else {
		cur, err = CropToFilmRatio(src)
	}
	if err != nil {
		return nil, err
	}

	// auto sentinels become concrete before any blending
	style := ResolveStyle(cur, opts.Style)
	intensity := ResolveIntensity(cur, opts.Intensity)

	cur, err = LightLeak(cur, style, opts.Position, intensity)
	if err != nil {
		return nil, err
	}

	if opts.Halation > 0 {
		cur = Halation(cur, opts.Halation)
	}

	cur = Vignette(cur, opts.VignetteStrength)

	if opts.Frame {
		cur, err = InstaxFrame(cur, opts.Scale)
	} else {
		cur, err = Border(cur, opts.BorderSize)
	}
	if err != nil {
		return nil, err
	}

	if opts.Caption != "" {
		size, baseline := captionLayout(cur, opts)
		cur, err = DrawCaption(cur, opts.Caption, opts.FontPath, size, baseline)
		if err != nil {
			return nil, err
		}
	}

	return cur, nil
}

// captionLayout picks a font size and baseline for the caption: centered in
// the thick bottom margin in frame mode, inside the bottom border otherwise,
// or hugging the bottom edge when there is no border at all.
func captionLayout(img *image.NRGBA, opts Options) (size float64, baselineY int) {
	h := img.Bounds().Dy()
	if opts.Frame {
		printBottom := (frameTopMM + printHeightMM) * opts.Scale
		margin := h - printBottom
		size = float64(5 * opts.Scale)
		baselineY = img.Bounds().Min.Y + printBottom + (margin+int(size))/2
		return size, baselineY
	}
	if opts.BorderSize > 0 {
		size = 0.6 * float64(opts.BorderSize)
		baselineY = img.Bounds().Max.Y - opts.BorderSize/2 + int(size)/3
		return size, baselineY
	}
	return 16, img.Bounds().Max.Y - 12
}
