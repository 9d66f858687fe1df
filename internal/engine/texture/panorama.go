package texture

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/mdouchement/hdr"
	_ "github.com/mdouchement/hdr/codec/rgbe"
	"golang.org/x/image/draw"
)

// maxPanoramaWidth caps panorama resolution; wider sources are downscaled
// before upload to keep GPU memory in check.
const maxPanoramaWidth = 8192

// Panorama holds an equirectangular image as linear RGB floats, already
// mirrored about the vertical center axis so that cubemap renders come out
// with the expected handedness.
type Panorama struct {
	Pixels []float32
	Width  int32
	Height int32
}

// LoadPanorama reads an equirectangular panorama from disk. Radiance .hdr
// files keep their full dynamic range; other formats are decoded as LDR.
func LoadPanorama(path string) (*Panorama, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open panorama %s: %w", path, err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".hdr") {
		return loadHDR(f, path)
	}
	return loadLDR(f, path)
}

func loadHDR(f *os.File, path string) (*Panorama, error) {
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode hdr panorama %s: %w", path, err)
	}
	hdrImg, ok := img.(hdr.Image)
	if !ok {
		return nil, fmt.Errorf("decode hdr panorama %s: not a radiance image", path)
	}

	bounds := hdrImg.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]float32, w*h*3)

	parallelRows(h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < w; x++ {
				r, g, b, _ := hdrImg.HDRAt(bounds.Min.X+x, bounds.Min.Y+y).HDRRGBA()
				i := (y*w + x) * 3
				pixels[i] = float32(r)
				pixels[i+1] = float32(g)
				pixels[i+2] = float32(b)
			}
		}
	})

	pixels, w, h = downscaleFloat(pixels, w, h)
	mirrorRows(pixels, w, h)
	return &Panorama{Pixels: pixels, Width: int32(w), Height: int32(h)}, nil
}

func loadLDR(f *os.File, path string) (*Panorama, error) {
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode panorama %s: %w", path, err)
	}

	if img.Bounds().Dx() > maxPanoramaWidth {
		img = downscaleImage(img)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]float32, w*h*3)

	parallelRows(h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < w; x++ {
				r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
				i := (y*w + x) * 3
				pixels[i] = float32(r) / 65535
				pixels[i+1] = float32(g) / 65535
				pixels[i+2] = float32(b) / 65535
			}
		}
	})

	mirrorRows(pixels, w, h)
	return &Panorama{Pixels: pixels, Width: int32(w), Height: int32(h)}, nil
}

// Upload creates an RGB16F texture from the panorama data.
func (p *Panorama) Upload() *Texture2D {
	return FromFloatRGB(p.Pixels, p.Width, p.Height)
}

// mirrorRows flips each row of an RGB float buffer about the vertical
// center axis in place.
func mirrorRows(pixels []float32, w, h int) {
	parallelRows(h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			row := pixels[y*w*3 : (y+1)*w*3]
			for x := 0; x < w/2; x++ {
				l := x * 3
				r := (w - 1 - x) * 3
				row[l], row[r] = row[r], row[l]
				row[l+1], row[r+1] = row[r+1], row[l+1]
				row[l+2], row[r+2] = row[r+2], row[l+2]
			}
		}
	})
}

// downscaleFloat box-averages an RGB float buffer down to maxPanoramaWidth
// when the source is wider.
func downscaleFloat(pixels []float32, w, h int) ([]float32, int, int) {
	if w <= maxPanoramaWidth {
		return pixels, w, h
	}
	factor := (w + maxPanoramaWidth - 1) / maxPanoramaWidth
	nw, nh := w/factor, h/factor
	out := make([]float32, nw*nh*3)
	norm := float32(1) / float32(factor*factor)

	parallelRows(nh, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < nw; x++ {
				var r, g, b float32
				for dy := 0; dy < factor; dy++ {
					for dx := 0; dx < factor; dx++ {
						i := ((y*factor+dy)*w + x*factor + dx) * 3
						r += pixels[i]
						g += pixels[i+1]
						b += pixels[i+2]
					}
				}
				o := (y*nw + x) * 3
				out[o] = r * norm
				out[o+1] = g * norm
				out[o+2] = b * norm
			}
		}
	})
	return out, nw, nh
}

func downscaleImage(img image.Image) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	nw := maxPanoramaWidth
	nh := h * nw / w
	dst := image.NewRGBA64(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst
}

// parallelRows splits [0, h) into contiguous chunks across the available
// CPUs and runs fn on each.
func parallelRows(h int, fn func(y0, y1 int)) {
	workers := runtime.NumCPU()
	if workers > h {
		workers = h
	}
	if workers <= 1 {
		fn(0, h)
		return
	}

	chunk := (h + workers - 1) / workers
	var wg sync.WaitGroup
	for y0 := 0; y0 < h; y0 += chunk {
		y1 := y0 + chunk
		if y1 > h {
			y1 = h
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			fn(y0, y1)
		}(y0, y1)
	}
	wg.Wait()
}
