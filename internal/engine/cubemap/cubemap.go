package cubemap

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Cubemap is a GL cube-map texture. The srgb flag records whether the face
// data was uploaded through an sRGB internal format; image-based lighting
// expects linear cubemaps and checks this flag before sampling.
type Cubemap struct {
	id   uint32
	size int32
	mips int32
	srgb bool
}

// New allocates an empty RGB16F cubemap with the given number of mip
// levels, for passes that render directly into the faces.
func New(size int32, mipLevels int32) *Cubemap {
	c := &Cubemap{size: size, mips: mipLevels}

	gl.GenTextures(1, &c.id)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, c.id)
	for level := int32(0); level < mipLevels; level++ {
		levelSize := size >> uint(level)
		if levelSize < 1 {
			levelSize = 1
		}
		for i := 0; i < 6; i++ {
			gl.TexImage2D(uint32(gl.TEXTURE_CUBE_MAP_POSITIVE_X+i), level, gl.RGB16F,
				levelSize, levelSize, 0, gl.RGB, gl.FLOAT, nil)
		}
	}
	c.setParams(mipLevels > 1)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)
	return c
}

// FromImages uploads six decoded face images as a single-level cubemap.
// The images must be square and equally sized, in Faces order.
func FromImages(imgs [6]*image.RGBA, srgb bool) *Cubemap {
	size := int32(imgs[0].Rect.Dx())
	c := &Cubemap{id: 0, size: size, mips: 1, srgb: srgb}

	internal := int32(gl.RGBA8)
	if srgb {
		internal = gl.SRGB8_ALPHA8
	}

	gl.GenTextures(1, &c.id)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, c.id)
	for i, img := range imgs {
		gl.TexImage2D(uint32(gl.TEXTURE_CUBE_MAP_POSITIVE_X+i), 0, internal,
			size, size, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	}
	c.setParams(false)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)
	return c
}

// FromMipImages uploads a full mip chain of face images. mips[level][face]
// follows Faces order; every level must be square.
func FromMipImages(mips [][6]*image.RGBA, srgb bool) *Cubemap {
	size := int32(mips[0][0].Rect.Dx())
	c := &Cubemap{size: size, mips: int32(len(mips)), srgb: srgb}

	internal := int32(gl.RGBA8)
	if srgb {
		internal = gl.SRGB8_ALPHA8
	}

	gl.GenTextures(1, &c.id)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, c.id)
	for level, faces := range mips {
		levelSize := int32(faces[0].Rect.Dx())
		for i, img := range faces {
			gl.TexImage2D(uint32(gl.TEXTURE_CUBE_MAP_POSITIVE_X+i), int32(level), internal,
				levelSize, levelSize, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
		}
	}
	c.setParams(len(mips) > 1)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAX_LEVEL, int32(len(mips))-1)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)
	return c
}

func (c *Cubemap) setParams(mipmapped bool) {
	minFilter := int32(gl.LINEAR)
	if mipmapped {
		minFilter = gl.LINEAR_MIPMAP_LINEAR
	}
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, minFilter)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
}

// Bind activates the given texture unit and binds the cubemap to it.
func (c *Cubemap) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, c.id)
}

// ID returns the GL texture name.
func (c *Cubemap) ID() uint32 {
	return c.id
}

// Size returns the edge length of the base level.
func (c *Cubemap) Size() int32 {
	return c.size
}

// MipLevels returns the number of allocated mip levels.
func (c *Cubemap) MipLevels() int32 {
	return c.mips
}

// SRGB reports whether the faces were uploaded with an sRGB internal format.
func (c *Cubemap) SRGB() bool {
	return c.srgb
}

// Destroy releases the GL texture.
func (c *Cubemap) Destroy() {
	if c.id != 0 {
		gl.DeleteTextures(1, &c.id)
		c.id = 0
	}
}
