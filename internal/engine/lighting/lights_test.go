package lighting

import (
	"testing"

	"github.com/ember3d/ember/pkg/math"
)

func TestLightsOrderPreserved(t *testing.T) {
	l := NewLights()
	l.Add(math.Vec3{X: 1}, math.Vec3{X: 300})
	l.Add(math.Vec3{Y: 2}, math.Vec3{Y: 150})

	if l.Count() != 2 {
		t.Fatalf("Count = %d, want 2", l.Count())
	}
	if l.Light(0).Position.X != 1 || l.Light(1).Position.Y != 2 {
		t.Errorf("lights out of order: %+v, %+v", l.Light(0), l.Light(1))
	}
}

func TestFlattenedUniforms(t *testing.T) {
	l := NewLights()
	l.Add(math.Vec3{X: 1, Y: 2, Z: 3}, math.Vec3{X: 4, Y: 5, Z: 6})

	pos := l.Positions()
	if len(pos) != 3 || pos[0] != 1 || pos[1] != 2 || pos[2] != 3 {
		t.Errorf("Positions = %v", pos)
	}
	colors := l.Colors()
	if len(colors) != 3 || colors[0] != 4 || colors[1] != 5 || colors[2] != 6 {
		t.Errorf("Colors = %v", colors)
	}
}

func TestEmptyLights(t *testing.T) {
	l := NewLights()
	if l.Count() != 0 || len(l.Positions()) != 0 {
		t.Error("empty collection must flatten to nothing")
	}
}
