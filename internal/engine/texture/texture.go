package texture

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Texture2D is a two-dimensional GL texture.
type Texture2D struct {
	id     uint32
	width  int32
	height int32
}

// LoadFile decodes an image file and uploads it as an RGBA8 texture.
func LoadFile(path string) (*Texture2D, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %s: %w", path, err)
	}

	rgba, ok := img.(*image.RGBA)
	if !ok {
		rgba = image.NewRGBA(img.Bounds())
		draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	}
	return FromRGBA(rgba), nil
}

// FromRGBA uploads an RGBA image as a texture with trilinear mipmapping.
func FromRGBA(img *image.RGBA) *Texture2D {
	t := &Texture2D{
		width:  int32(img.Rect.Dx()),
		height: int32(img.Rect.Dy()),
	}

	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, t.width, t.height, 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t
}

// FromFloatRGB uploads tightly packed RGB float data into an RGB32F
// texture. Used for high dynamic range panoramas.
func FromFloatRGB(pixels []float32, width, height int32) *Texture2D {
	t := &Texture2D{width: width, height: height}

	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB32F, width, height, 0,
		gl.RGB, gl.FLOAT, gl.Ptr(pixels))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t
}

// FromID wraps an existing GL texture name.
func FromID(id uint32, width, height int32) *Texture2D {
	return &Texture2D{id: id, width: width, height: height}
}

// Solid creates a 1x1 texture filled with a constant color. Material
// parameters are expressed this way so the shaders sample uniformly.
func Solid(r, g, b float32) *Texture2D {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Pix[0] = floatToByte(r)
	img.Pix[1] = floatToByte(g)
	img.Pix[2] = floatToByte(b)
	img.Pix[3] = 255
	return FromRGBA(img)
}

func floatToByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Bind activates the given texture unit and binds the texture to it.
func (t *Texture2D) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
}

// ID returns the GL texture name.
func (t *Texture2D) ID() uint32 {
	return t.id
}

// Size returns the texture dimensions.
func (t *Texture2D) Size() (int32, int32) {
	return t.width, t.height
}

// Destroy releases the GL texture.
func (t *Texture2D) Destroy() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}
