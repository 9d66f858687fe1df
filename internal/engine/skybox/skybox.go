// Package skybox ties an environment cubemap, its draw material and the
// baked lighting maps into one publishable unit.
package skybox

import (
	gomath "math"

	"github.com/ember3d/ember/internal/engine/cubemap"
	"github.com/ember3d/ember/internal/engine/ibl"
	"github.com/ember3d/ember/internal/engine/material"
	"github.com/ember3d/ember/internal/engine/render"
	"github.com/ember3d/ember/pkg/math"
)

// Skybox is the environment backdrop of a scene. It implements
// render.Skybox so a queue can publish it directly.
type Skybox struct {
	mesh *render.Mesh
	mat  *material.SkyboxMat
	env  *render.Environment
}

// New builds a skybox around an environment cubemap. The box is rotated a
// quarter turn so the panorama seam lines up with the capture cameras.
func New(cube *cubemap.Cubemap) (*Skybox, error) {
	mat, err := material.NewSkyboxMat(cube)
	if err != nil {
		return nil, err
	}
	mat.Rotation = math.RotateY(float32(gomath.Pi / 2))

	return &Skybox{
		mesh: render.NewMeshFromVertices(render.SkyboxVertices()),
		mat:  mat,
	}, nil
}

// Mesh returns the inward-facing cube.
func (s *Skybox) Mesh() render.Drawable {
	return s.mesh
}

// Material returns the skybox draw material.
func (s *Skybox) Material() render.Material {
	return s.mat
}

// Environment returns the baked lighting maps, or nil before
// SetEnvironment is called.
func (s *Skybox) Environment() *render.Environment {
	return s.env
}

// SetEnvironment attaches the baked irradiance, prefilter and BRDF maps.
func (s *Skybox) SetEnvironment(env *render.Environment) {
	s.env = env
}

// ApplyIBL attaches a baked lighting bundle.
func (s *Skybox) ApplyIBL(bundle *ibl.IBL) {
	s.env = bundle.Environment()
}

// Cubemap returns the environment texture the box is drawn with.
func (s *Skybox) Cubemap() *cubemap.Cubemap {
	return s.mat.Cubemap()
}

// Destroy releases the mesh, material and environment maps.
func (s *Skybox) Destroy() {
	s.mesh.Destroy()
	s.mat.Cubemap().Destroy()
	s.mat.Destroy()
	s.env.Destroy()
}
