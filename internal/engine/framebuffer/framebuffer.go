package framebuffer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Framebuffer is an offscreen render target with a color texture and a
// depth renderbuffer.
type Framebuffer struct {
	fbo   uint32
	color uint32
	depth uint32

	width  int32
	height int32
	float  bool
}

// New creates an RGBA8 framebuffer of the given size.
func New(width, height int32) (*Framebuffer, error) {
	return create(width, height, false)
}

// NewFloat creates an RGBA16F framebuffer of the given size, suitable for
// high dynamic range render passes.
func NewFloat(width, height int32) (*Framebuffer, error) {
	return create(width, height, true)
}

func create(width, height int32, float bool) (*Framebuffer, error) {
	f := &Framebuffer{width: width, height: height, float: float}

	gl.GenFramebuffers(1, &f.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, f.fbo)

	gl.GenTextures(1, &f.color)
	gl.BindTexture(gl.TEXTURE_2D, f.color)
	f.allocateColor()
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, f.color, 0)

	gl.GenRenderbuffers(1, &f.depth)
	gl.BindRenderbuffer(gl.RENDERBUFFER, f.depth)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, width, height)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, f.depth)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		f.Destroy()
		return nil, fmt.Errorf("framebuffer incomplete: status 0x%x", status)
	}
	return f, nil
}

func (f *Framebuffer) allocateColor() {
	if f.float {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA16F, f.width, f.height, 0, gl.RGBA, gl.FLOAT, nil)
	} else {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, f.width, f.height, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	}
}

// Bind makes the framebuffer the current draw target and returns a closure
// that restores the previous binding and viewport.
func (f *Framebuffer) Bind() func() {
	return f.BindWithViewport(0, 0, f.width, f.height)
}

// BindWithViewport binds the framebuffer with an explicit viewport.
func (f *Framebuffer) BindWithViewport(x, y, w, h int32) func() {
	var prevFBO int32
	gl.GetIntegerv(gl.FRAMEBUFFER_BINDING, &prevFBO)
	var prevViewport [4]int32
	gl.GetIntegerv(gl.VIEWPORT, &prevViewport[0])

	gl.BindFramebuffer(gl.FRAMEBUFFER, f.fbo)
	gl.Viewport(x, y, w, h)

	return func() {
		gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(prevFBO))
		gl.Viewport(prevViewport[0], prevViewport[1], prevViewport[2], prevViewport[3])
	}
}

// ID returns the GL framebuffer object name.
func (f *Framebuffer) ID() uint32 {
	return f.fbo
}

// ColorTexture returns the color attachment texture name.
func (f *Framebuffer) ColorTexture() uint32 {
	return f.color
}

// Size returns the framebuffer dimensions.
func (f *Framebuffer) Size() (int32, int32) {
	return f.width, f.height
}

// Clear clears color and depth. The framebuffer must be bound.
func (f *Framebuffer) Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.ClearDepth(1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// ReadPixels reads back the full color attachment as tightly packed RGBA
// bytes, bottom-up in GL row order.
func (f *Framebuffer) ReadPixels() []uint8 {
	restore := f.Bind()
	defer restore()

	data := make([]uint8, f.width*f.height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, f.width, f.height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(data))
	return data
}

// DetachColor releases ownership of the color texture so Destroy leaves
// it alive. Returns the texture name.
func (f *Framebuffer) DetachColor() uint32 {
	id := f.color
	f.color = 0
	return id
}

// Resize reallocates the attachments for a new size.
func (f *Framebuffer) Resize(width, height int32) {
	f.width = width
	f.height = height

	gl.BindTexture(gl.TEXTURE_2D, f.color)
	f.allocateColor()
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.BindRenderbuffer(gl.RENDERBUFFER, f.depth)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, width, height)
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)
}

// Destroy releases the GL objects.
func (f *Framebuffer) Destroy() {
	if f.color != 0 {
		gl.DeleteTextures(1, &f.color)
		f.color = 0
	}
	if f.depth != 0 {
		gl.DeleteRenderbuffers(1, &f.depth)
		f.depth = 0
	}
	if f.fbo != 0 {
		gl.DeleteFramebuffers(1, &f.fbo)
		f.fbo = 0
	}
}
