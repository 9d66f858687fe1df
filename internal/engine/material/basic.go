package material

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/ember3d/ember/internal/engine/material/shaders"
	"github.com/ember3d/ember/internal/engine/render"
	"github.com/ember3d/ember/internal/engine/shader"
	"github.com/ember3d/ember/pkg/math"
)

// BasicParams are the Blinn-Phong reflectance terms.
type BasicParams struct {
	Ambient   math.Vec3
	Diffuse   math.Vec3
	Specular  math.Vec3
	Shininess float32
}

// DefaultBasicParams returns the coral-ish defaults.
func DefaultBasicParams() BasicParams {
	return BasicParams{
		Ambient:   math.Vec3{X: 1, Y: 0.5, Z: 0.31},
		Diffuse:   math.Vec3{X: 0.5, Y: 0.5, Z: 0.5},
		Specular:  math.Vec3{X: 0.5, Y: 0.5, Z: 0.5},
		Shininess: 32,
	}
}

// Basic renders Blinn-Phong with separate ambient, diffuse and specular
// colors.
type Basic struct {
	prog   *shader.Program
	Params BasicParams
	Model  math.Mat4
}

// NewBasic compiles the basic program.
func NewBasic(params BasicParams) (*Basic, error) {
	prog, err := shader.NewProgram(shaders.MeshVertexShader, shaders.BasicFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("compile basic material: %w", err)
	}
	return &Basic{prog: prog, Params: params, Model: math.Identity()}, nil
}

// Render draws the mesh lit by the first scene light.
func (m *Basic) Render(mesh render.Drawable, target render.Target, camera, world math.Mat4, scene *render.SceneData) error {
	target.Bind()
	m.prog.Use()
	gl.Enable(gl.DEPTH_TEST)

	m.prog.SetMat4("projection", camera)
	m.prog.SetMat4("view", world)
	m.prog.SetMat4("model", m.Model)
	m.prog.SetVec3("ambient_color", m.Params.Ambient)
	m.prog.SetVec3("diffuse_color", m.Params.Diffuse)
	m.prog.SetVec3("specular_color", m.Params.Specular)
	m.prog.SetFloat("shininess", m.Params.Shininess)
	m.prog.SetVec3("camera_pos", world.Translation())

	light := math.Vec3{X: 0, Y: 10, Z: 0}
	if scene != nil && scene.Lights != nil && scene.Lights.Count() > 0 {
		light = scene.Lights.Light(0).Position
	}
	m.prog.SetVec3("u_light", light)

	mesh.Draw()
	return nil
}

// Kind returns the queue bucket for basic materials.
func (m *Basic) Kind() render.Kind {
	return render.KindBasic
}

// Equal reports whether the other material shares this program and params.
func (m *Basic) Equal(other render.Material) bool {
	o, ok := other.(*Basic)
	return ok && o.prog == m.prog && o.Params == m.Params
}

// Clone returns a copy sharing the compiled program.
func (m *Basic) Clone() render.Material {
	c := *m
	return &c
}

// Destroy releases the program.
func (m *Basic) Destroy() {
	m.prog.Destroy()
}
