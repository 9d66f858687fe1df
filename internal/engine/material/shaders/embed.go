// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// CubeVertexShader projects cube geometry for offscreen cubemap renders.
//
//go:embed cube.vert
var CubeVertexShader string

// MeshVertexShader is the shared vertex shader for lit mesh materials.
//
//go:embed mesh.vert
var MeshVertexShader string

// PBRVertexShader is the vertex shader for physically based shading.
//
//go:embed pbr.vert
var PBRVertexShader string

// SkyboxVertexShader renders the environment box at the far plane.
//
//go:embed skybox.vert
var SkyboxVertexShader string

// QuadVertexShader passes a fullscreen quad through in clip space.
//
//go:embed quad.vert
var QuadVertexShader string

// SimpleFragmentShader outputs a flat material color.
//
//go:embed simple.frag
var SimpleFragmentShader string

// PhongFragmentShader is a single-light Phong shading model.
//
//go:embed phong.frag
var PhongFragmentShader string

// BasicFragmentShader is Blinn-Phong with per-material reflectance terms.
//
//go:embed basic.frag
var BasicFragmentShader string

// PBRFragmentShader is the full physically based shading model with
// image-based lighting.
//
//go:embed pbr.frag
var PBRFragmentShader string

// SkyboxFragmentShader samples the environment cubemap.
//
//go:embed skybox.frag
var SkyboxFragmentShader string

// EquirectFragmentShader samples an equirectangular panorama onto a cube
// face.
//
//go:embed equirect.frag
var EquirectFragmentShader string

// IrradianceFragmentShader convolves the environment into a diffuse
// irradiance map.
//
//go:embed irradiance.frag
var IrradianceFragmentShader string

// PrefilterFragmentShader importance-samples the environment per roughness
// level.
//
//go:embed prefilter.frag
var PrefilterFragmentShader string

// BRDFFragmentShader integrates the split-sum BRDF lookup table.
//
//go:embed brdf.frag
var BRDFFragmentShader string
