// Package material implements the shading models drawables render with.
package material

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/ember3d/ember/internal/engine/material/shaders"
	"github.com/ember3d/ember/internal/engine/render"
	"github.com/ember3d/ember/internal/engine/shader"
	"github.com/ember3d/ember/pkg/math"
)

// Simple renders a flat, unlit color.
type Simple struct {
	prog  *shader.Program
	Color math.Vec3
	Model math.Mat4
}

// NewSimple compiles the simple program with the given color.
func NewSimple(color math.Vec3) (*Simple, error) {
	prog, err := shader.NewProgram(shaders.MeshVertexShader, shaders.SimpleFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("compile simple material: %w", err)
	}
	return &Simple{prog: prog, Color: color, Model: math.Identity()}, nil
}

// Render draws the mesh with the flat color.
func (m *Simple) Render(mesh render.Drawable, target render.Target, camera, world math.Mat4, scene *render.SceneData) error {
	target.Bind()
	m.prog.Use()
	gl.Enable(gl.DEPTH_TEST)

	m.prog.SetMat4("projection", camera)
	m.prog.SetMat4("view", world)
	m.prog.SetMat4("model", m.Model)
	m.prog.SetVec3("material_color", m.Color)

	mesh.Draw()
	return nil
}

// Kind returns the queue bucket for simple materials.
func (m *Simple) Kind() render.Kind {
	return render.KindSimple
}

// Equal reports whether the other material shares this program and color.
func (m *Simple) Equal(other render.Material) bool {
	o, ok := other.(*Simple)
	return ok && o.prog == m.prog && o.Color == m.Color
}

// Clone returns a copy sharing the compiled program.
func (m *Simple) Clone() render.Material {
	c := *m
	return &c
}

// Destroy releases the program.
func (m *Simple) Destroy() {
	m.prog.Destroy()
}
