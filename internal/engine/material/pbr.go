package material

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/ember3d/ember/internal/engine/material/shaders"
	"github.com/ember3d/ember/internal/engine/render"
	"github.com/ember3d/ember/internal/engine/shader"
	"github.com/ember3d/ember/pkg/math"
)

// PBR renders the physically based shading model with image-based
// lighting. Without a complete linear environment in the scene the
// material draws nothing, so geometry published before the skybox bakes
// becomes visible once the bundle is in place.
type PBR struct {
	prog       *shader.Program
	Textures   *PBRTextures
	Model      math.Mat4
	LightPos   math.Vec3
	LightColor math.Vec3
}

// NewPBR compiles the PBR program with the given surface maps.
func NewPBR(textures *PBRTextures) (*PBR, error) {
	prog, err := shader.NewProgram(shaders.PBRVertexShader, shaders.PBRFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("compile pbr material: %w", err)
	}
	return &PBR{
		prog:       prog,
		Textures:   textures,
		Model:      math.Identity(),
		LightPos:   math.Vec3{X: 0, Y: 10, Z: 0},
		LightColor: math.Vec3{X: 300, Y: 300, Z: 300},
	}, nil
}

// Render draws the mesh, or silently skips when the environment is
// missing, incomplete or was loaded through an sRGB format.
func (m *PBR) Render(mesh render.Drawable, target render.Target, camera, world math.Mat4, scene *render.SceneData) error {
	env := scene.Env()
	if !env.Complete() || env.Prefilter.SRGB() {
		return nil
	}

	target.Bind()
	m.prog.Use()
	gl.Enable(gl.DEPTH_TEST)

	m.prog.SetMat4("projection", camera)
	m.prog.SetMat4("view", world)
	m.prog.SetMat4("model", m.Model)
	m.prog.SetVec3("camera_pos", world.Translation())

	lightPos, lightColor := m.LightPos, m.LightColor
	if scene.Lights != nil && scene.Lights.Count() > 0 {
		light := scene.Lights.Light(0)
		lightPos, lightColor = light.Position, light.Color
	}
	m.prog.SetVec3("light_pos", lightPos)
	m.prog.SetVec3("light_color", lightColor)

	m.Textures.Albedo.Bind(0)
	m.prog.SetInt("albedo_map", 0)
	m.Textures.Metallic.Bind(1)
	m.prog.SetInt("metallic_map", 1)
	m.Textures.Roughness.Bind(2)
	m.prog.SetInt("roughness_map", 2)
	m.Textures.AO.Bind(3)
	m.prog.SetInt("ao_map", 3)

	env.Irradiance.Bind(4)
	m.prog.SetInt("irradiance_map", 4)
	env.Prefilter.Bind(5)
	m.prog.SetInt("prefilter_map", 5)
	env.BRDF.Bind(6)
	m.prog.SetInt("brdf_lut", 6)

	mesh.Draw()
	return nil
}

// Kind returns the queue bucket for PBR materials.
func (m *PBR) Kind() render.Kind {
	return render.KindPBR
}

// Equal always reports false: PBR instances carry mutable per-segment
// state (model matrix, surface maps) that makes sharing unsafe.
func (m *PBR) Equal(other render.Material) bool {
	return false
}

// Clone returns a copy sharing the compiled program and surface maps.
func (m *PBR) Clone() render.Material {
	c := *m
	return &c
}

// Destroy releases the program. Surface maps may be shared and are left
// to their owner.
func (m *PBR) Destroy() {
	m.prog.Destroy()
}
