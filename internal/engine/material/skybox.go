package material

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/ember3d/ember/internal/engine/cubemap"
	"github.com/ember3d/ember/internal/engine/material/shaders"
	"github.com/ember3d/ember/internal/engine/render"
	"github.com/ember3d/ember/internal/engine/shader"
	"github.com/ember3d/ember/pkg/math"
)

// SkyboxMat draws an environment cubemap at the far plane.
type SkyboxMat struct {
	prog     *shader.Program
	cube     *cubemap.Cubemap
	Rotation math.Mat4
}

// NewSkyboxMat compiles the skybox program around the given cubemap.
func NewSkyboxMat(cube *cubemap.Cubemap) (*SkyboxMat, error) {
	prog, err := shader.NewProgram(shaders.SkyboxVertexShader, shaders.SkyboxFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("compile skybox material: %w", err)
	}
	return &SkyboxMat{prog: prog, cube: cube, Rotation: math.Identity()}, nil
}

// Cubemap returns the environment texture this material samples.
func (m *SkyboxMat) Cubemap() *cubemap.Cubemap {
	return m.cube
}

// Render draws the box with depth forced to the far plane, so it only
// fills pixels no geometry covered.
func (m *SkyboxMat) Render(mesh render.Drawable, target render.Target, camera, world math.Mat4, scene *render.SceneData) error {
	target.Bind()
	m.prog.Use()

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	defer gl.DepthFunc(gl.LESS)

	m.prog.SetMat4("projection", camera)
	m.prog.SetMat4("view", world)
	m.prog.SetMat4("model", m.Rotation)

	m.cube.Bind(0)
	m.prog.SetInt("skybox", 0)

	mesh.Draw()
	return nil
}

// Kind returns the queue bucket for skybox materials.
func (m *SkyboxMat) Kind() render.Kind {
	return render.KindSkybox
}

// Equal reports whether the other material wraps the same cubemap.
func (m *SkyboxMat) Equal(other render.Material) bool {
	o, ok := other.(*SkyboxMat)
	return ok && o.cube == m.cube
}

// Clone returns a copy sharing the compiled program and cubemap.
func (m *SkyboxMat) Clone() render.Material {
	c := *m
	return &c
}

// Destroy releases the program. The cubemap belongs to the skybox.
func (m *SkyboxMat) Destroy() {
	m.prog.Destroy()
}
