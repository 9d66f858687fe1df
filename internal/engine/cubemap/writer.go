package cubemap

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

// EncodeFace writes one face readback to disk. The pixel data is tightly
// packed RGBA in GL row order and is saved as-is; loading the file back
// through LoadDir reproduces the original texture layout.
func EncodeFace(path string, pixels []uint8, size int32) error {
	img := &image.RGBA{
		Pix:    pixels,
		Stride: int(size) * 4,
		Rect:   image.Rect(0, 0, int(size), int(size)),
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create cubemap dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create cubemap face %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: 95})
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		return fmt.Errorf("encode cubemap face %s: %w", path, err)
	}
	return nil
}
