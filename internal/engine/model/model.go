// Package model groups meshes and their PBR materials into placeable
// scene objects.
package model

import (
	"github.com/ember3d/ember/internal/engine/material"
	"github.com/ember3d/ember/internal/engine/render"
	"github.com/ember3d/ember/pkg/math"
)

// Segment pairs one mesh with its own material instance so segments can
// carry distinct surface maps while sharing the compiled program.
type Segment struct {
	Mesh *render.Mesh
	Mat  *material.PBR
}

// PbrModel is a positioned group of PBR segments.
type PbrModel struct {
	position math.Vec3
	rotation math.Vec3
	segments []Segment
}

// FromMesh wraps a single mesh and material as a one-segment model.
func FromMesh(mesh *render.Mesh, mat *material.PBR) *PbrModel {
	m := &PbrModel{segments: []Segment{{Mesh: mesh, Mat: mat}}}
	m.rebuild()
	return m
}

// FromSegments builds a model from prepared segments.
func FromSegments(segments []Segment) *PbrModel {
	m := &PbrModel{segments: segments}
	m.rebuild()
	return m
}

// Position returns the model translation.
func (m *PbrModel) Position() math.Vec3 {
	return m.position
}

// SetPosition places the model.
func (m *PbrModel) SetPosition(pos math.Vec3) {
	m.position = pos
	m.rebuild()
}

// Move translates the model by a delta.
func (m *PbrModel) Move(delta math.Vec3) {
	m.position = m.position.Add(delta)
	m.rebuild()
}

// SetRotation sets the model rotation as Euler angles in radians.
func (m *PbrModel) SetRotation(rot math.Vec3) {
	m.rotation = rot
	m.rebuild()
}

// Rotate adds to the model rotation.
func (m *PbrModel) Rotate(delta math.Vec3) {
	m.rotation = m.rotation.Add(delta)
	m.rebuild()
}

// Segments exposes the mesh/material pairs.
func (m *PbrModel) Segments() []Segment {
	return m.segments
}

// ModelMatrix returns the current placement transform.
func (m *PbrModel) ModelMatrix() math.Mat4 {
	mat := math.Translate(m.position)
	mat = mat.Mul(math.RotateX(m.rotation.X))
	mat = mat.Mul(math.RotateY(m.rotation.Y))
	mat = mat.Mul(math.RotateZ(m.rotation.Z))
	return mat
}

// rebuild pushes the placement transform into every segment material.
func (m *PbrModel) rebuild() {
	mat := m.ModelMatrix()
	for i := range m.segments {
		m.segments[i].Mat.Model = mat
	}
}

// Render publishes every segment to the queue.
func (m *PbrModel) Render(q *render.Queue) error {
	for _, seg := range m.segments {
		if err := q.Publish(seg.Mesh, seg.Mat); err != nil {
			return err
		}
	}
	return nil
}

// Destroy releases the segment meshes and materials.
func (m *PbrModel) Destroy() {
	for _, seg := range m.segments {
		seg.Mesh.Destroy()
		seg.Mat.Destroy()
	}
}
