package render

import gomath "math"

// CubeVertices is a unit cube (half extent 1) with outward normals,
// 36 unindexed vertices.
func CubeVertices() []Vertex {
	return []Vertex{
		// back face (-Z)
		{Position: [3]float32{-1, -1, -1}, Normal: [3]float32{0, 0, -1}, TexCoords: [2]float32{0, 0}},
		{Position: [3]float32{1, 1, -1}, Normal: [3]float32{0, 0, -1}, TexCoords: [2]float32{1, 1}},
		{Position: [3]float32{1, -1, -1}, Normal: [3]float32{0, 0, -1}, TexCoords: [2]float32{1, 0}},
		{Position: [3]float32{1, 1, -1}, Normal: [3]float32{0, 0, -1}, TexCoords: [2]float32{1, 1}},
		{Position: [3]float32{-1, -1, -1}, Normal: [3]float32{0, 0, -1}, TexCoords: [2]float32{0, 0}},
		{Position: [3]float32{-1, 1, -1}, Normal: [3]float32{0, 0, -1}, TexCoords: [2]float32{0, 1}},
		// front face (+Z)
		{Position: [3]float32{-1, -1, 1}, Normal: [3]float32{0, 0, 1}, TexCoords: [2]float32{0, 0}},
		{Position: [3]float32{1, -1, 1}, Normal: [3]float32{0, 0, 1}, TexCoords: [2]float32{1, 0}},
		{Position: [3]float32{1, 1, 1}, Normal: [3]float32{0, 0, 1}, TexCoords: [2]float32{1, 1}},
		{Position: [3]float32{1, 1, 1}, Normal: [3]float32{0, 0, 1}, TexCoords: [2]float32{1, 1}},
		{Position: [3]float32{-1, 1, 1}, Normal: [3]float32{0, 0, 1}, TexCoords: [2]float32{0, 1}},
		{Position: [3]float32{-1, -1, 1}, Normal: [3]float32{0, 0, 1}, TexCoords: [2]float32{0, 0}},
		// left face (-X)
		{Position: [3]float32{-1, 1, 1}, Normal: [3]float32{-1, 0, 0}, TexCoords: [2]float32{1, 0}},
		{Position: [3]float32{-1, 1, -1}, Normal: [3]float32{-1, 0, 0}, TexCoords: [2]float32{1, 1}},
		{Position: [3]float32{-1, -1, -1}, Normal: [3]float32{-1, 0, 0}, TexCoords: [2]float32{0, 1}},
		{Position: [3]float32{-1, -1, -1}, Normal: [3]float32{-1, 0, 0}, TexCoords: [2]float32{0, 1}},
		{Position: [3]float32{-1, -1, 1}, Normal: [3]float32{-1, 0, 0}, TexCoords: [2]float32{0, 0}},
		{Position: [3]float32{-1, 1, 1}, Normal: [3]float32{-1, 0, 0}, TexCoords: [2]float32{1, 0}},
		// right face (+X)
		{Position: [3]float32{1, 1, 1}, Normal: [3]float32{1, 0, 0}, TexCoords: [2]float32{1, 0}},
		{Position: [3]float32{1, -1, -1}, Normal: [3]float32{1, 0, 0}, TexCoords: [2]float32{0, 1}},
		{Position: [3]float32{1, 1, -1}, Normal: [3]float32{1, 0, 0}, TexCoords: [2]float32{1, 1}},
		{Position: [3]float32{1, -1, -1}, Normal: [3]float32{1, 0, 0}, TexCoords: [2]float32{0, 1}},
		{Position: [3]float32{1, 1, 1}, Normal: [3]float32{1, 0, 0}, TexCoords: [2]float32{1, 0}},
		{Position: [3]float32{1, -1, 1}, Normal: [3]float32{1, 0, 0}, TexCoords: [2]float32{0, 0}},
		// bottom face (-Y)
		{Position: [3]float32{-1, -1, -1}, Normal: [3]float32{0, -1, 0}, TexCoords: [2]float32{0, 1}},
		{Position: [3]float32{1, -1, -1}, Normal: [3]float32{0, -1, 0}, TexCoords: [2]float32{1, 1}},
		{Position: [3]float32{1, -1, 1}, Normal: [3]float32{0, -1, 0}, TexCoords: [2]float32{1, 0}},
		{Position: [3]float32{1, -1, 1}, Normal: [3]float32{0, -1, 0}, TexCoords: [2]float32{1, 0}},
		{Position: [3]float32{-1, -1, 1}, Normal: [3]float32{0, -1, 0}, TexCoords: [2]float32{0, 0}},
		{Position: [3]float32{-1, -1, -1}, Normal: [3]float32{0, -1, 0}, TexCoords: [2]float32{0, 1}},
		// top face (+Y)
		{Position: [3]float32{-1, 1, -1}, Normal: [3]float32{0, 1, 0}, TexCoords: [2]float32{0, 1}},
		{Position: [3]float32{1, 1, 1}, Normal: [3]float32{0, 1, 0}, TexCoords: [2]float32{1, 0}},
		{Position: [3]float32{1, 1, -1}, Normal: [3]float32{0, 1, 0}, TexCoords: [2]float32{1, 1}},
		{Position: [3]float32{1, 1, 1}, Normal: [3]float32{0, 1, 0}, TexCoords: [2]float32{1, 0}},
		{Position: [3]float32{-1, 1, -1}, Normal: [3]float32{0, 1, 0}, TexCoords: [2]float32{0, 1}},
		{Position: [3]float32{-1, 1, 1}, Normal: [3]float32{0, 1, 0}, TexCoords: [2]float32{0, 0}},
	}
}

// SkyboxVertices is the same cube with the winding reversed so the inside
// faces the camera.
func SkyboxVertices() []Vertex {
	cube := CubeVertices()
	out := make([]Vertex, len(cube))
	for i := 0; i < len(cube); i += 3 {
		out[i] = cube[i]
		out[i+1] = cube[i+2]
		out[i+2] = cube[i+1]
		out[i].Normal = negate(out[i].Normal)
		out[i+1].Normal = negate(out[i+1].Normal)
		out[i+2].Normal = negate(out[i+2].Normal)
	}
	return out
}

func negate(n [3]float32) [3]float32 {
	return [3]float32{-n[0], -n[1], -n[2]}
}

// QuadVertices is a fullscreen quad in clip space.
func QuadVertices() []Vertex {
	return []Vertex{
		{Position: [3]float32{-1, -1, 0}, Normal: [3]float32{0, 0, 1}, TexCoords: [2]float32{0, 0}},
		{Position: [3]float32{1, -1, 0}, Normal: [3]float32{0, 0, 1}, TexCoords: [2]float32{1, 0}},
		{Position: [3]float32{-1, 1, 0}, Normal: [3]float32{0, 0, 1}, TexCoords: [2]float32{0, 1}},
		{Position: [3]float32{1, 1, 0}, Normal: [3]float32{0, 0, 1}, TexCoords: [2]float32{1, 1}},
	}
}

// QuadIndices matches QuadVertices as two triangles.
func QuadIndices() []uint32 {
	return []uint32{0, 1, 2, 1, 3, 2}
}

// UVSphere builds a latitude/longitude sphere of the given radius.
func UVSphere(radius float32, rings, sectors int) ([]Vertex, []uint32) {
	vertices := make([]Vertex, 0, (rings+1)*(sectors+1))
	for r := 0; r <= rings; r++ {
		phi := gomath.Pi * float64(r) / float64(rings)
		for s := 0; s <= sectors; s++ {
			theta := 2 * gomath.Pi * float64(s) / float64(sectors)
			nx := float32(gomath.Sin(phi) * gomath.Cos(theta))
			ny := float32(gomath.Cos(phi))
			nz := float32(gomath.Sin(phi) * gomath.Sin(theta))
			vertices = append(vertices, Vertex{
				Position:  [3]float32{nx * radius, ny * radius, nz * radius},
				Normal:    [3]float32{nx, ny, nz},
				TexCoords: [2]float32{float32(s) / float32(sectors), float32(r) / float32(rings)},
			})
		}
	}

	indices := make([]uint32, 0, rings*sectors*6)
	stride := uint32(sectors + 1)
	for r := 0; r < rings; r++ {
		for s := 0; s < sectors; s++ {
			i := uint32(r)*stride + uint32(s)
			indices = append(indices,
				i, i+stride, i+1,
				i+1, i+stride, i+stride+1)
		}
	}
	return vertices, indices
}
