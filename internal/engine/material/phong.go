package material

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/ember3d/ember/internal/engine/material/shaders"
	"github.com/ember3d/ember/internal/engine/render"
	"github.com/ember3d/ember/internal/engine/shader"
	"github.com/ember3d/ember/pkg/math"
)

// Phong renders a single-light Phong shading model.
type Phong struct {
	prog  *shader.Program
	Color math.Vec3
	Model math.Mat4
}

// NewPhong compiles the Phong program with the given base color.
func NewPhong(color math.Vec3) (*Phong, error) {
	prog, err := shader.NewProgram(shaders.MeshVertexShader, shaders.PhongFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("compile phong material: %w", err)
	}
	return &Phong{prog: prog, Color: color, Model: math.Identity()}, nil
}

// Render draws the mesh lit by the first scene light.
func (m *Phong) Render(mesh render.Drawable, target render.Target, camera, world math.Mat4, scene *render.SceneData) error {
	target.Bind()
	m.prog.Use()
	gl.Enable(gl.DEPTH_TEST)

	m.prog.SetMat4("projection", camera)
	m.prog.SetMat4("view", world)
	m.prog.SetMat4("model", m.Model)
	m.prog.SetVec3("material_color", m.Color)
	m.prog.SetVec3("camera_pos", world.Translation())

	light := math.Vec3{X: 0, Y: 10, Z: 0}
	if scene != nil && scene.Lights != nil && scene.Lights.Count() > 0 {
		light = scene.Lights.Light(0).Position
	}
	m.prog.SetVec3("u_light", light)

	mesh.Draw()
	return nil
}

// Kind returns the queue bucket for Phong materials.
func (m *Phong) Kind() render.Kind {
	return render.KindPhong
}

// Equal reports whether the other material shares this program and color.
func (m *Phong) Equal(other render.Material) bool {
	o, ok := other.(*Phong)
	return ok && o.prog == m.prog && o.Color == m.Color
}

// Clone returns a copy sharing the compiled program.
func (m *Phong) Clone() render.Material {
	c := *m
	return &c
}

// Destroy releases the program.
func (m *Phong) Destroy() {
	m.prog.Destroy()
}
