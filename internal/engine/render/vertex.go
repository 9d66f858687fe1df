package render

// Vertex is the interleaved layout shared by every mesh: position, normal
// and texture coordinates, 32 bytes per vertex.
type Vertex struct {
	Position  [3]float32
	Normal    [3]float32
	TexCoords [2]float32
}

// VertexStride is the byte size of one Vertex.
const VertexStride = 8 * 4
