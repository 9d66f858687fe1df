package cubemap

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strconv"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// FacePath returns the on-disk location of one cubemap face.
func FacePath(dir, name, ext string) string {
	return filepath.Join(dir, name+"."+ext)
}

// LoadDir loads the six face images from a directory and uploads them as a
// single-level cubemap. All six faces must be present.
func LoadDir(dir, ext string, srgb bool) (*Cubemap, error) {
	faces, err := loadFaces(dir, ext)
	if err != nil {
		return nil, err
	}
	return FromImages(faces, srgb), nil
}

// LoadMips loads a prefiltered cubemap stored as numeric per-level
// subdirectories (0/, 1/, ...). Levels are read in order until the first
// missing directory; a bundle with no levels at all is an error.
func LoadMips(dir, ext string, srgb bool) (*Cubemap, error) {
	var mips [][6]*image.RGBA
	for level := 0; ; level++ {
		levelDir := filepath.Join(dir, strconv.Itoa(level))
		if _, err := os.Stat(levelDir); err != nil {
			break
		}
		faces, err := loadFaces(levelDir, ext)
		if err != nil {
			return nil, fmt.Errorf("level %d: %w", level, err)
		}
		mips = append(mips, faces)
	}
	if len(mips) == 0 {
		return nil, fmt.Errorf("no mip levels found in %s", dir)
	}
	return FromMipImages(mips, srgb), nil
}

func loadFaces(dir, ext string) ([6]*image.RGBA, error) {
	var faces [6]*image.RGBA
	for i, face := range Faces {
		img, err := loadImage(FacePath(dir, face.Name, ext))
		if err != nil {
			return faces, err
		}
		faces[i] = img
	}
	return faces, nil
}

func loadImage(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open cubemap face %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode cubemap face %s: %w", path, err)
	}

	rgba, ok := img.(*image.RGBA)
	if !ok {
		rgba = image.NewRGBA(img.Bounds())
		draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	}
	return rgba, nil
}
