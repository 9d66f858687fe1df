package camera

import (
	gomath "math"
	"testing"
)

func TestAspect(t *testing.T) {
	c := New(gomath.Pi/3, 1920, 1080)
	want := float32(1920.0 / 1080.0)
	if got := c.Aspect(); got != want {
		t.Errorf("Aspect = %v, want %v", got, want)
	}
}

func TestAspectZeroHeight(t *testing.T) {
	c := New(1, 100, 0)
	if got := c.Aspect(); got != 1 {
		t.Errorf("Aspect with zero height = %v, want 1", got)
	}
}

func TestSetSize(t *testing.T) {
	c := New(1, 100, 100)
	c.SetSize(200, 100)
	if got := c.Aspect(); got != 2 {
		t.Errorf("Aspect after SetSize = %v, want 2", got)
	}
}

func TestMatrixProjectsForward(t *testing.T) {
	c := New(gomath.Pi/2, 100, 100)
	m := c.Matrix()
	// w component must be -z for a perspective projection
	if m[11] != -1 {
		t.Errorf("m[11] = %v, want -1", m[11])
	}
	// 90 degree fov at square aspect gives unit focal terms
	if diff := float64(m[0] - 1); gomath.Abs(diff) > 1e-5 {
		t.Errorf("m[0] = %v, want 1", m[0])
	}
	if diff := float64(m[5] - 1); gomath.Abs(diff) > 1e-5 {
		t.Errorf("m[5] = %v, want 1", m[5])
	}
}
