package ibl

import (
	"fmt"

	"github.com/ember3d/ember/internal/engine/cubemap"
	"github.com/ember3d/ember/internal/engine/material/shaders"
	"github.com/ember3d/ember/internal/engine/shader"
)

// IrradianceSize is the face size of the diffuse irradiance map. The
// convolution blurs away all detail, so a tiny map suffices regardless of
// the source resolution.
const IrradianceSize = 32

// Irradiance convolves an environment cubemap into a diffuse irradiance
// map.
type Irradiance struct {
	prog *shader.Program
}

// NewIrradiance compiles the convolution pass.
func NewIrradiance() (*Irradiance, error) {
	prog, err := shader.NewProgram(shaders.CubeVertexShader, shaders.IrradianceFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("compile irradiance pass: %w", err)
	}
	return &Irradiance{prog: prog}, nil
}

// Compute convolves env and writes the six face images to
// <destDir>/<face>.<ext>.
func (ir *Irradiance) Compute(env *cubemap.Cubemap, destDir, ext string, r *CubeRenderer) error {
	return r.RenderToDir(IrradianceSize, destDir, ext, ir.prog, func(prog *shader.Program) {
		env.Bind(0)
		prog.SetInt("environment_map", 0)
	})
}

// Destroy releases the program.
func (ir *Irradiance) Destroy() {
	ir.prog.Destroy()
}
