package render

import (
	gomath "math"
	"testing"

	"github.com/ember3d/ember/pkg/math"
)

// fakeDrawable records nothing; draw calls happen through the material.
type fakeDrawable struct {
	indices int32
}

func (d *fakeDrawable) Draw()             {}
func (d *fakeDrawable) IndexCount() int32 { return d.indices }

// fakeMaterial records the order it was asked to render in.
type fakeMaterial struct {
	kind  Kind
	log   *[]renderCall
	fail  error
	world *math.Mat4
}

type renderCall struct {
	kind Kind
	mesh Drawable
}

func (m *fakeMaterial) Render(mesh Drawable, target Target, camera, world math.Mat4, scene *SceneData) error {
	if m.fail != nil {
		return m.fail
	}
	if m.log != nil {
		*m.log = append(*m.log, renderCall{kind: m.kind, mesh: mesh})
	}
	if m.world != nil {
		*m.world = world
	}
	return nil
}

func (m *fakeMaterial) Kind() Kind                { return m.kind }
func (m *fakeMaterial) Equal(other Material) bool { return m == other }
func (m *fakeMaterial) Clone() Material           { c := *m; return &c }

type fakeSkybox struct {
	mesh Drawable
	mat  Material
	env  *Environment
}

func (s *fakeSkybox) Mesh() Drawable            { return s.mesh }
func (s *fakeSkybox) Material() Material        { return s.mat }
func (s *fakeSkybox) Environment() *Environment { return s.env }

type nullTarget struct{}

func (nullTarget) Bind() {}

func TestIntraBucketOrderPreserved(t *testing.T) {
	var log []renderCall
	mat := &fakeMaterial{kind: KindSimple, log: &log}
	meshes := []*fakeDrawable{{indices: 3}, {indices: 6}, {indices: 9}}

	q := NewQueue()
	for _, m := range meshes {
		if err := q.Publish(m, mat); err != nil {
			t.Fatalf("Publish: %v", err)
		}
	}
	if _, err := q.Finish(nullTarget{}); err != nil {
		t.Fatalf("Finish: %v", err)
	}

	if len(log) != 3 {
		t.Fatalf("rendered %d drawables, want 3", len(log))
	}
	for i, call := range log {
		if call.mesh != meshes[i] {
			t.Errorf("position %d: wrong drawable", i)
		}
	}
}

func TestSkyboxRendersFirst(t *testing.T) {
	var log []renderCall
	simple := &fakeMaterial{kind: KindSimple, log: &log}
	pbr := &fakeMaterial{kind: KindPBR, log: &log}
	skyMat := &fakeMaterial{kind: KindSkybox, log: &log}
	sky := &fakeSkybox{mesh: &fakeDrawable{indices: 36}, mat: skyMat}

	q := NewQueue()
	q.Publish(&fakeDrawable{indices: 3}, simple)
	q.Publish(&fakeDrawable{indices: 3}, pbr)
	if err := q.SetSkybox(sky); err != nil {
		t.Fatalf("SetSkybox: %v", err)
	}

	if _, err := q.Finish(nullTarget{}); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if len(log) != 3 {
		t.Fatalf("rendered %d drawables, want 3", len(log))
	}
	if log[0].kind != KindSkybox {
		t.Errorf("first rendered kind = %v, want skybox", log[0].kind)
	}
}

func TestSetSkyboxPublishesEnvironment(t *testing.T) {
	sky := &fakeSkybox{
		mesh: &fakeDrawable{indices: 36},
		mat:  &fakeMaterial{kind: KindSkybox},
		env:  &Environment{},
	}
	q := NewQueue()
	if err := q.SetSkybox(sky); err != nil {
		t.Fatalf("SetSkybox: %v", err)
	}
	if q.Scene().Skybox != sky {
		t.Error("scene skybox not set")
	}
	if q.Scene().Env() != sky.env {
		t.Error("scene environment not reachable through skybox")
	}
}

func TestSetSkyboxNilClearsWithoutQueueing(t *testing.T) {
	sky := &fakeSkybox{
		mesh: &fakeDrawable{indices: 36},
		mat:  &fakeMaterial{kind: KindSkybox},
		env:  &Environment{},
	}
	q := NewQueue()
	if err := q.SetSkybox(sky); err != nil {
		t.Fatalf("SetSkybox: %v", err)
	}
	if err := q.SetSkybox(nil); err != nil {
		t.Fatalf("SetSkybox(nil): %v", err)
	}
	if q.Scene().Skybox != nil {
		t.Error("scene skybox not cleared")
	}

	// Only the first SetSkybox queued a draw.
	q2 := NewQueue()
	if err := q2.SetSkybox(nil); err != nil {
		t.Fatalf("SetSkybox(nil) on empty queue: %v", err)
	}
	triangles, err := q2.Finish(nullTarget{})
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if triangles != 0 {
		t.Errorf("triangles = %d, want 0", triangles)
	}
}

func TestTriangleCount(t *testing.T) {
	mat := &fakeMaterial{kind: KindBasic}
	q := NewQueue()
	q.Publish(&fakeDrawable{indices: 36}, mat)
	q.Publish(&fakeDrawable{indices: 6}, mat)

	triangles, err := q.Finish(nullTarget{})
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if triangles != 14 {
		t.Errorf("triangles = %d, want 14", triangles)
	}
}

func TestQueueConsumedAfterFinish(t *testing.T) {
	q := NewQueue()
	if _, err := q.Finish(nullTarget{}); err != nil {
		t.Fatalf("first Finish: %v", err)
	}
	if _, err := q.Finish(nullTarget{}); err != ErrFinished {
		t.Errorf("second Finish error = %v, want ErrFinished", err)
	}
	if err := q.Publish(&fakeDrawable{}, &fakeMaterial{kind: KindSimple}); err != ErrFinished {
		t.Errorf("Publish after Finish error = %v, want ErrFinished", err)
	}
}

func TestWorldMatrixFromCameraState(t *testing.T) {
	var world math.Mat4
	mat := &fakeMaterial{kind: KindSimple, world: &world}

	pos := math.Vec3{X: 1, Y: 2, Z: 3}
	rot := math.Vec3{Y: float32(gomath.Pi / 2)}

	q := NewQueue()
	q.SetCameraPos(pos)
	q.SetCameraRot(rot)
	q.Publish(&fakeDrawable{indices: 3}, mat)
	if _, err := q.Finish(nullTarget{}); err != nil {
		t.Fatalf("Finish: %v", err)
	}

	want := math.Translate(pos).
		Mul(math.RotateX(rot.X)).
		Mul(math.RotateY(rot.Y)).
		Mul(math.RotateZ(rot.Z))
	for i := range want {
		if diff := float64(world[i] - want[i]); gomath.Abs(diff) > 1e-6 {
			t.Fatalf("world[%d] = %v, want %v", i, world[i], want[i])
		}
	}
	if world.Translation() != pos {
		t.Errorf("world translation = %+v, want %+v", world.Translation(), pos)
	}
}

func TestPublishBoundedQueuesLikePublish(t *testing.T) {
	var log []renderCall
	mat := &fakeMaterial{kind: KindBasic, log: &log}

	q := NewQueue()
	bounds := Bounds{Center: math.Vec3{X: 1}, Radius: 2}
	if err := q.PublishBounded(&fakeDrawable{indices: 3}, bounds, mat); err != nil {
		t.Fatalf("PublishBounded: %v", err)
	}
	if _, err := q.Finish(nullTarget{}); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if len(log) != 1 {
		t.Errorf("rendered %d drawables, want 1", len(log))
	}
}

func TestKindStrings(t *testing.T) {
	kinds := map[Kind]string{
		KindSimple: "simple",
		KindPhong:  "phong",
		KindBasic:  "basic",
		KindPBR:    "pbr",
		KindSkybox: "skybox",
	}
	seen := make(map[string]bool)
	for kind, want := range kinds {
		got := kind.String()
		if got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", kind, got, want)
		}
		if seen[got] {
			t.Errorf("duplicate kind name %q", got)
		}
		seen[got] = true
	}
}
