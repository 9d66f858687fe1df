package render

import (
	"github.com/ember3d/ember/internal/engine/camera"
	"github.com/ember3d/ember/internal/engine/cubemap"
	"github.com/ember3d/ember/internal/engine/lighting"
	"github.com/ember3d/ember/internal/engine/texture"
	"github.com/ember3d/ember/pkg/math"
)

// Environment holds the precomputed image-based lighting maps a PBR
// material samples: the diffuse irradiance cubemap, the roughness
// prefiltered cubemap and the BRDF integration lookup texture.
type Environment struct {
	Irradiance *cubemap.Cubemap
	Prefilter  *cubemap.Cubemap
	BRDF       *texture.Texture2D
}

// Complete reports whether all three maps are present.
func (e *Environment) Complete() bool {
	return e != nil && e.Irradiance != nil && e.Prefilter != nil && e.BRDF != nil
}

// Destroy releases the owned GL objects.
func (e *Environment) Destroy() {
	if e == nil {
		return
	}
	if e.Irradiance != nil {
		e.Irradiance.Destroy()
	}
	if e.Prefilter != nil {
		e.Prefilter.Destroy()
	}
	if e.BRDF != nil {
		e.BRDF.Destroy()
	}
}

// Skybox is the published environment backdrop. The queue renders it like
// any other drawable and materials reach through it for the IBL maps.
type Skybox interface {
	Mesh() Drawable
	Material() Material
	Environment() *Environment
}

// SceneData carries the per-frame state every material may consult. It is
// a closed set of fields rather than an open registry, so materials access
// scene state without type assertions.
type SceneData struct {
	Camera    *camera.Camera
	CameraPos math.Vec3
	CameraRot math.Vec3
	Skybox    Skybox
	Lights    *lighting.Lights
}

// Env returns the active environment, or nil when no skybox is published.
func (s *SceneData) Env() *Environment {
	if s == nil || s.Skybox == nil {
		return nil
	}
	return s.Skybox.Environment()
}
