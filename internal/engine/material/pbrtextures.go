package material

import (
	"fmt"

	"github.com/ember3d/ember/internal/engine/texture"
	"github.com/ember3d/ember/pkg/math"
)

// PBRTextures are the four sampled surface maps of a PBR material.
type PBRTextures struct {
	Albedo    *texture.Texture2D
	Metallic  *texture.Texture2D
	Roughness *texture.Texture2D
	AO        *texture.Texture2D
}

// PBRParams describe a uniform surface; they expand into 1x1 textures so
// the shader has a single sampling path.
type PBRParams struct {
	Albedo    math.Vec3
	Metallic  float32
	Roughness float32
	AO        float32
}

// TexturesFromParams builds solid-color maps for a uniform surface.
func TexturesFromParams(p PBRParams) *PBRTextures {
	return &PBRTextures{
		Albedo:    texture.Solid(p.Albedo.X, p.Albedo.Y, p.Albedo.Z),
		Metallic:  texture.Solid(p.Metallic, p.Metallic, p.Metallic),
		Roughness: texture.Solid(p.Roughness, p.Roughness, p.Roughness),
		AO:        texture.Solid(p.AO, p.AO, p.AO),
	}
}

// LoadPBRTextures reads the four maps from files.
func LoadPBRTextures(albedo, metallic, roughness, ao string) (*PBRTextures, error) {
	var t PBRTextures
	var err error
	if t.Albedo, err = texture.LoadFile(albedo); err != nil {
		return nil, fmt.Errorf("albedo: %w", err)
	}
	if t.Metallic, err = texture.LoadFile(metallic); err != nil {
		return nil, fmt.Errorf("metallic: %w", err)
	}
	if t.Roughness, err = texture.LoadFile(roughness); err != nil {
		return nil, fmt.Errorf("roughness: %w", err)
	}
	if t.AO, err = texture.LoadFile(ao); err != nil {
		return nil, fmt.Errorf("ao: %w", err)
	}
	return &t, nil
}

// Complete reports whether all four maps are present.
func (t *PBRTextures) Complete() bool {
	return t != nil && t.Albedo != nil && t.Metallic != nil && t.Roughness != nil && t.AO != nil
}

// Destroy releases the owned textures.
func (t *PBRTextures) Destroy() {
	if t == nil {
		return
	}
	for _, tex := range []*texture.Texture2D{t.Albedo, t.Metallic, t.Roughness, t.AO} {
		if tex != nil {
			tex.Destroy()
		}
	}
}
