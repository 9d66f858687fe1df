package ibl

import (
	"fmt"

	"github.com/ember3d/ember/internal/engine/material/shaders"
	"github.com/ember3d/ember/internal/engine/shader"
	"github.com/ember3d/ember/internal/engine/texture"
)

// DefaultCubemapSize is the face size of an environment baked from a
// panorama.
const DefaultCubemapSize = 1024

// Equirect converts an equirectangular panorama into the six faces of an
// environment cubemap.
type Equirect struct {
	prog *shader.Program
	Size int32
}

// NewEquirect compiles the conversion pass.
func NewEquirect() (*Equirect, error) {
	prog, err := shader.NewProgram(shaders.CubeVertexShader, shaders.EquirectFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("compile equirect pass: %w", err)
	}
	return &Equirect{prog: prog, Size: DefaultCubemapSize}, nil
}

// ComputeFromFile loads a panorama and writes the six face images to
// <destDir>/<face>.<ext>.
func (e *Equirect) ComputeFromFile(source, destDir, ext string, r *CubeRenderer) error {
	pano, err := texture.LoadPanorama(source)
	if err != nil {
		return err
	}
	tex := pano.Upload()
	defer tex.Destroy()

	return e.Compute(tex, destDir, ext, r)
}

// Compute renders the panorama texture onto the cube faces and writes
// them to disk.
func (e *Equirect) Compute(pano *texture.Texture2D, destDir, ext string, r *CubeRenderer) error {
	return r.RenderToDir(e.Size, destDir, ext, e.prog, func(prog *shader.Program) {
		pano.Bind(0)
		prog.SetInt("equirectangular_map", 0)
	})
}

// Destroy releases the program.
func (e *Equirect) Destroy() {
	e.prog.Destroy()
}
