package model

import (
	gomath "math"
	"testing"

	"github.com/ember3d/ember/internal/engine/material"
	"github.com/ember3d/ember/pkg/math"
)

func TestRoughnessFromShininess(t *testing.T) {
	cases := []struct {
		shininess float32
		want      float32
	}{
		{0, 1},
		{450, 0.5},
		{900, 0.05},
		{2000, 0.05},
	}
	for _, c := range cases {
		if got := RoughnessFromShininess(c.shininess); gomath.Abs(float64(got-c.want)) > 1e-6 {
			t.Errorf("RoughnessFromShininess(%v) = %v, want %v", c.shininess, got, c.want)
		}
	}
}

func TestModelMatrixFollowsPlacement(t *testing.T) {
	mat := &material.PBR{Model: math.Identity()}
	m := FromSegments([]Segment{{Mat: mat}})

	pos := math.Vec3{X: 1, Y: 2, Z: 3}
	m.SetPosition(pos)

	if m.ModelMatrix().Translation() != pos {
		t.Errorf("model matrix translation = %+v, want %+v", m.ModelMatrix().Translation(), pos)
	}
	if mat.Model.Translation() != pos {
		t.Errorf("segment material not rebuilt: %+v", mat.Model.Translation())
	}
}

func TestMoveAccumulates(t *testing.T) {
	mat := &material.PBR{Model: math.Identity()}
	m := FromSegments([]Segment{{Mat: mat}})

	m.Move(math.Vec3{X: 1})
	m.Move(math.Vec3{X: 2, Z: -1})

	want := math.Vec3{X: 3, Z: -1}
	if m.Position() != want {
		t.Errorf("Position = %+v, want %+v", m.Position(), want)
	}
}

func TestSetRotationRebuildsSegments(t *testing.T) {
	a := &material.PBR{Model: math.Identity()}
	b := &material.PBR{Model: math.Identity()}
	m := FromSegments([]Segment{{Mat: a}, {Mat: b}})

	m.SetRotation(math.Vec3{Y: float32(gomath.Pi)})

	if a.Model != b.Model {
		t.Error("all segments must share the placement transform")
	}
	if a.Model == math.Identity() {
		t.Error("rotation not applied")
	}
}
