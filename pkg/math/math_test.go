package math

import (
	"math"
	"testing"
)

const eps = 1e-5

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < eps
}

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(Vec3{1, 2, 3})
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(Vec3{5, 10, 15})
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}

	p := m.TransformPoint(Vec3{1, 2, 3})
	if p != (Vec3{6, 12, 18}) {
		t.Errorf("TransformPoint: got %v, want {6 12 18}", p)
	}
}

func TestRotateYQuarterTurn(t *testing.T) {
	m := RotateY(float32(math.Pi / 2))
	p := m.TransformPoint(Vec3{1, 0, 0})

	// +X rotates to -Z for a positive quarter turn around Y.
	if !near(p.X, 0) || !near(p.Y, 0) || !near(p.Z, -1) {
		t.Errorf("RotateY(pi/2) * (1,0,0): got %v, want {0 0 -1}", p)
	}
}

func TestRotationComposition(t *testing.T) {
	// T * Rx * Ry * Rz with zero angles must reduce to the translation alone.
	world := Translate(Vec3{1, 2, 3}).Mul(RotateX(0)).Mul(RotateY(0)).Mul(RotateZ(0))
	if world.Translation() != (Vec3{1, 2, 3}) {
		t.Errorf("world translation: got %v, want {1 2 3}", world.Translation())
	}
}

func TestPerspective(t *testing.T) {
	fovy := float32(math.Pi / 2)
	m := Perspective(fovy, 1.0, 0.1, 1024.0)

	f := float32(1.0 / math.Tan(float64(fovy)/2.0))
	if !near(m[0], f) || !near(m[5], f) {
		t.Errorf("Perspective focal terms: got (%f, %f), want %f", m[0], m[5], f)
	}
	if m[11] != -1 {
		t.Errorf("Perspective m[11]: got %f, want -1", m[11])
	}
}

func TestLookAtOrigin(t *testing.T) {
	// Looking down -Z from the origin should be close to identity.
	m := LookAt(Vec3{}, Vec3{0, 0, -1}, Vec3{0, 1, 0})
	p := m.TransformPoint(Vec3{1, 2, -3})
	if !near(p.X, 1) || !near(p.Y, 2) || !near(p.Z, -3) {
		t.Errorf("LookAt -Z should be identity-like, got %v", p)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 0, 4}.Normalize()
	if !near(v.Length(), 1) {
		t.Errorf("normalized length: got %f, want 1", v.Length())
	}
	if (Vec3{}).Normalize() != (Vec3{}) {
		t.Error("normalizing zero vector should return zero vector")
	}
}

func TestVec3Cross(t *testing.T) {
	c := Vec3{1, 0, 0}.Cross(Vec3{0, 1, 0})
	if c != (Vec3{0, 0, 1}) {
		t.Errorf("X cross Y: got %v, want {0 0 1}", c)
	}
}
