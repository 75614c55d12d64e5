package film

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// captionColor is a soft graphite, like pencil on the card stock.
var captionColor = color.NRGBA{R: 70, G: 70, B: 75, A: 255}

// DrawCaption renders text horizontally centered with its baseline at
// baselineY and returns a new buffer. fontPath may name an OpenType/TrueType
// file; empty (or unreadable) falls back to a built-in bitmap font, for which
// size is ignored.
func DrawCaption(src *image.NRGBA, text, fontPath string, size float64, baselineY int) (*image.NRGBA, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil source", ErrInvalidImage)
	}
	out := CloneNRGBA(src)
	if text == "" {
		return out, nil
	}

	var face font.Face
	if fontPath != "" {
		data, err := os.ReadFile(fontPath)
		if err != nil {
			log.Printf("failed to read font file %s: %v, falling back to basic font", fontPath, err)
			face = basicfont.Face7x13
		} else {
			tt, err := opentype.Parse(data)
			if err != nil {
				log.Printf("failed to parse font: %v, falling back to basic", err)
				face = basicfont.Face7x13
			} else {
				faceTmp, err := opentype.NewFace(tt, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
				if err != nil {
					log.Printf("failed to create font face: %v, falling back to basic", err)
					face = basicfont.Face7x13
				} else {
					face = faceTmp
				}
			}
		}
	} else {
		face = basicfont.Face7x13
	}

	width := font.MeasureString(face, text)
	x := (out.Bounds().Dx() - width.Ceil()) / 2
	if x < 0 {
		x = 0
	}

	d := &font.Drawer{
		Dst:  out,
		Src:  image.NewUniform(captionColor),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(out.Bounds().Min.X + x), Y: fixed.I(baselineY)},
	}
	d.DrawString(text)
	return out, nil
}
