// Package ibl precomputes the image-based lighting maps: the environment
// cubemap, its diffuse irradiance convolution, the roughness-prefiltered
// mip chain and the BRDF integration lookup table.
package ibl

import (
	"fmt"
	gomath "math"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/ember3d/ember/internal/engine/cubemap"
	"github.com/ember3d/ember/internal/engine/framebuffer"
	"github.com/ember3d/ember/internal/engine/render"
	"github.com/ember3d/ember/internal/engine/shader"
	"github.com/ember3d/ember/pkg/math"
)

// captureNear and captureFar bound the unit capture cube.
const (
	captureNear = 0.1
	captureFar  = 10.0
)

// UniformFn lets a pass set its extra uniforms after the program is
// bound, before the faces are drawn.
type UniformFn func(prog *shader.Program)

// CubeRenderer draws a unit cube once per face with a 90 degree capture
// camera, the building block of every cubemap pass.
type CubeRenderer struct {
	cube *render.Mesh
}

// NewCubeRenderer uploads the capture cube.
func NewCubeRenderer() *CubeRenderer {
	return &CubeRenderer{cube: render.NewMeshFromVertices(render.CubeVertices())}
}

// projection is the shared 90 degree, square capture projection.
func (r *CubeRenderer) projection() math.Mat4 {
	return math.Perspective(float32(gomath.Pi/2), 1, captureNear, captureFar)
}

// RenderToDir renders all six faces offscreen and writes them to
// <dir>/<face>.<ext>.
func (r *CubeRenderer) RenderToDir(size int32, dir, ext string, prog *shader.Program, setUniforms UniformFn) error {
	fb, err := framebuffer.NewFloat(size, size)
	if err != nil {
		return fmt.Errorf("capture framebuffer: %w", err)
	}
	defer fb.Destroy()

	restore := fb.Bind()
	defer restore()

	r.prepare(prog, setUniforms)
	for _, face := range cubemap.Faces {
		r.drawFace(fb, prog, face)
		if err := cubemap.EncodeFace(cubemap.FacePath(dir, face.Name, ext), fb.ReadPixels(), size); err != nil {
			return err
		}
	}
	return nil
}

// RenderToCubemap renders all six faces directly into one mip level of a
// cubemap texture.
func (r *CubeRenderer) RenderToCubemap(cm *cubemap.Cubemap, level int32, prog *shader.Program, setUniforms UniformFn) error {
	size := cm.Size() >> uint(level)
	if size < 1 {
		size = 1
	}

	fb, err := framebuffer.NewFloat(size, size)
	if err != nil {
		return fmt.Errorf("capture framebuffer: %w", err)
	}
	defer fb.Destroy()

	restore := fb.Bind()
	defer restore()

	r.prepare(prog, setUniforms)
	for _, face := range cubemap.Faces {
		gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, face.Layer, cm.ID(), level)
		r.drawFace(fb, prog, face)
	}
	return nil
}

func (r *CubeRenderer) prepare(prog *shader.Program, setUniforms UniformFn) {
	prog.Use()
	prog.SetMat4("projection", r.projection())
	if setUniforms != nil {
		setUniforms(prog)
	}
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
}

func (r *CubeRenderer) drawFace(fb *framebuffer.Framebuffer, prog *shader.Program, face cubemap.Face) {
	fb.Clear(1, 0, 0, 0)
	prog.SetMat4("view", face.View())
	r.cube.Draw()
}

// Destroy releases the capture cube.
func (r *CubeRenderer) Destroy() {
	r.cube.Destroy()
}
