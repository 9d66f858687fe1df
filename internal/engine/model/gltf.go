package model

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/ember3d/ember/internal/engine/material"
	"github.com/ember3d/ember/internal/engine/render"
	"github.com/ember3d/ember/pkg/math"
)

// maxShininess caps legacy shininess values before the roughness mapping.
const maxShininess = 900

// RoughnessFromShininess converts a legacy Phong shininess exponent to a
// PBR roughness value, floored so surfaces never turn into perfect
// mirrors.
func RoughnessFromShininess(shininess float32) float32 {
	if shininess > maxShininess {
		shininess = maxShininess
	}
	smoothness := shininess / maxShininess
	roughness := 1 - smoothness
	if roughness < 0.05 {
		roughness = 0.05
	}
	return roughness
}

// LoadGLTF loads every mesh primitive of a glTF file as one model. Each
// primitive becomes a segment whose material clones proto and takes its
// surface parameters from the file's metallic-roughness factors.
func LoadGLTF(path string, proto *material.PBR) (*PbrModel, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}

	var segments []Segment
	for _, mesh := range doc.Meshes {
		for i, prim := range mesh.Primitives {
			seg, err := loadPrimitive(doc, *prim, proto)
			if err != nil {
				return nil, fmt.Errorf("gltf %q mesh %q primitive %d: %w", path, mesh.Name, i, err)
			}
			segments = append(segments, seg)
		}
	}
	if len(segments) == 0 {
		return nil, fmt.Errorf("gltf %q: no mesh primitives", path)
	}
	return FromSegments(segments), nil
}

func loadPrimitive(doc *gltf.Document, prim gltf.Primitive, proto *material.PBR) (Segment, error) {
	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return Segment{}, fmt.Errorf("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return Segment{}, fmt.Errorf("positions: %w", err)
	}

	var normals [][3]float32
	var uvs [][2]float32
	if idx, ok := prim.Attributes["NORMAL"]; ok {
		normals, _ = modeler.ReadNormal(doc, doc.Accessors[idx], nil)
	}
	if idx, ok := prim.Attributes["TEXCOORD_0"]; ok {
		uvs, _ = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil)
	}

	verts := make([]render.Vertex, len(positions))
	for i, p := range positions {
		v := render.Vertex{
			Position: p,
			Normal:   [3]float32{0, 1, 0},
		}
		if i < len(normals) {
			v.Normal = normals[i]
		}
		if i < len(uvs) {
			v.TexCoords = uvs[i]
		}
		verts[i] = v
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return Segment{}, fmt.Errorf("indices: %w", err)
		}
	}

	mat := proto.Clone().(*material.PBR)
	if prim.Material != nil {
		mat.Textures = primitiveTextures(doc.Materials[*prim.Material])
	}

	var mesh *render.Mesh
	if len(indices) > 0 {
		mesh = render.NewMesh(verts, indices)
	} else {
		mesh = render.NewMeshFromVertices(verts)
	}
	return Segment{Mesh: mesh, Mat: mat}, nil
}

// primitiveTextures expands a glTF material's metallic-roughness factors
// into solid surface maps.
func primitiveTextures(gm *gltf.Material) *material.PBRTextures {
	params := material.PBRParams{
		Albedo:    math.Vec3{X: 1, Y: 1, Z: 1},
		Metallic:  1,
		Roughness: 1,
		AO:        1,
	}
	if pbr := gm.PBRMetallicRoughness; pbr != nil {
		cf := pbr.BaseColorFactorOrDefault()
		params.Albedo = math.Vec3{X: float32(cf[0]), Y: float32(cf[1]), Z: float32(cf[2])}
		params.Metallic = float32(pbr.MetallicFactorOrDefault())
		params.Roughness = float32(pbr.RoughnessFactorOrDefault())
	}
	return material.TexturesFromParams(params)
}
