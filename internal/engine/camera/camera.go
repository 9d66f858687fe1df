package camera

import "github.com/ember3d/ember/pkg/math"

// Near and far clip planes shared by every perspective camera.
const (
	ZNear = 0.1
	ZFar  = 1024.0
)

// Camera produces the perspective projection for a viewport.
type Camera struct {
	fovy   float32
	width  float32
	height float32
}

// New creates a camera with the given vertical field of view in radians.
func New(fovy, width, height float32) *Camera {
	return &Camera{fovy: fovy, width: width, height: height}
}

// SetSize updates the viewport dimensions, e.g. after a window resize.
func (c *Camera) SetSize(width, height float32) {
	c.width = width
	c.height = height
}

// SetFovy updates the vertical field of view in radians.
func (c *Camera) SetFovy(fovy float32) {
	c.fovy = fovy
}

// Fovy returns the vertical field of view in radians.
func (c *Camera) Fovy() float32 {
	return c.fovy
}

// Aspect returns width over height.
func (c *Camera) Aspect() float32 {
	if c.height == 0 {
		return 1
	}
	return c.width / c.height
}

// Matrix returns the perspective projection matrix.
func (c *Camera) Matrix() math.Mat4 {
	return math.Perspective(c.fovy, c.Aspect(), ZNear, ZFar)
}
