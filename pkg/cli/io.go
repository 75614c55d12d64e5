package cli

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// LoadImage decodes the image at path. EXIF orientation is applied on load
// so phone photos come out upright.
func LoadImage(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return img, nil
}

// SaveImage encodes img to path, picking the format from the file extension.
// quality applies to JPEG output only.
func SaveImage(img image.Image, path string, quality int) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".tif", ".tiff", ".bmp":
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}
	if err := imaging.Save(img, path, imaging.JPEGQuality(quality)); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
