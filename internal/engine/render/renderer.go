package render

// Renderer tracks per-frame statistics and hands out fresh queues.
type Renderer struct {
	polygons int32
}

// NewRenderer creates a renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// BeginScene starts a new frame and returns its queue.
func (r *Renderer) BeginScene() *Queue {
	return NewQueue()
}

// EndScene records the triangle count reported by a finished queue.
func (r *Renderer) EndScene(triangles int32) {
	r.polygons = triangles
}

// Polygons returns the triangle count of the last finished frame.
func (r *Renderer) Polygons() int32 {
	return r.polygons
}
