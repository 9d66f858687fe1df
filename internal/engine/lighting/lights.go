package lighting

import "github.com/ember3d/ember/pkg/math"

// Light is a point light with a linear-space color. Colors well above 1.0
// are normal for physically based shading.
type Light struct {
	Position math.Vec3
	Color    math.Vec3
}

// Lights is an ordered collection of point lights. Order is preserved so
// shader array uniforms line up deterministically across frames.
type Lights struct {
	lights []Light
}

// NewLights creates an empty collection.
func NewLights() *Lights {
	return &Lights{}
}

// Add appends a light.
func (l *Lights) Add(position, color math.Vec3) {
	l.lights = append(l.lights, Light{Position: position, Color: color})
}

// Count returns the number of lights.
func (l *Lights) Count() int {
	return len(l.lights)
}

// Light returns the light at index i.
func (l *Lights) Light(i int) Light {
	return l.lights[i]
}

// Positions flattens the light positions for a vec3 array uniform.
func (l *Lights) Positions() []float32 {
	out := make([]float32, 0, len(l.lights)*3)
	for _, light := range l.lights {
		out = append(out, light.Position.X, light.Position.Y, light.Position.Z)
	}
	return out
}

// Colors flattens the light colors for a vec3 array uniform.
func (l *Lights) Colors() []float32 {
	out := make([]float32, 0, len(l.lights)*3)
	for _, light := range l.lights {
		out = append(out, light.Color.X, light.Color.Y, light.Color.Z)
	}
	return out
}
