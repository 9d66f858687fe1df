package ibl

import (
	"fmt"

	"github.com/ember3d/ember/internal/engine/cubemap"
	"github.com/ember3d/ember/internal/engine/framebuffer"
	"github.com/ember3d/ember/internal/engine/material/shaders"
	"github.com/ember3d/ember/internal/engine/render"
	"github.com/ember3d/ember/internal/engine/shader"
	"github.com/ember3d/ember/internal/engine/texture"
)

// BRDFSize is the resolution of the split-sum lookup table.
const BRDFSize = 512

// BRDF integrates the split-sum approximation into a 2D lookup texture,
// indexed by view angle and roughness. The pass takes no uniforms.
type BRDF struct {
	prog *shader.Program
	quad *render.Mesh
}

// NewBRDF compiles the integration pass and uploads its fullscreen quad.
func NewBRDF() (*BRDF, error) {
	prog, err := shader.NewProgram(shaders.QuadVertexShader, shaders.BRDFFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("compile brdf pass: %w", err)
	}
	return &BRDF{
		prog: prog,
		quad: render.NewMesh(render.QuadVertices(), render.QuadIndices()),
	}, nil
}

// render draws the integration quad into a fresh float framebuffer. The
// caller owns the returned framebuffer.
func (b *BRDF) render() (*framebuffer.Framebuffer, error) {
	fb, err := framebuffer.NewFloat(BRDFSize, BRDFSize)
	if err != nil {
		return nil, fmt.Errorf("brdf framebuffer: %w", err)
	}

	restore := fb.Bind()
	fb.Clear(1, 0, 0, 0)
	b.prog.Use()
	b.quad.Draw()
	restore()
	return fb, nil
}

// Compute integrates the table and returns it as a texture.
func (b *BRDF) Compute() (*texture.Texture2D, error) {
	fb, err := b.render()
	if err != nil {
		return nil, err
	}
	// hand the color attachment over; only the fbo and depth go away
	tex := texture.FromID(fb.ColorTexture(), BRDFSize, BRDFSize)
	fb.DetachColor()
	fb.Destroy()
	return tex, nil
}

// ComputeToFile integrates the table and writes it to path.
func (b *BRDF) ComputeToFile(path string) error {
	fb, err := b.render()
	if err != nil {
		return err
	}
	defer fb.Destroy()

	return cubemap.EncodeFace(path, fb.ReadPixels(), BRDFSize)
}

// Destroy releases the program and quad.
func (b *BRDF) Destroy() {
	b.prog.Destroy()
	b.quad.Destroy()
}
