package material

import (
	"testing"

	"github.com/ember3d/ember/internal/engine/render"
	"github.com/ember3d/ember/pkg/math"
)

type countingDrawable struct {
	draws int
}

func (d *countingDrawable) Draw()             { d.draws++ }
func (d *countingDrawable) IndexCount() int32 { return 3 }

type panicTarget struct{}

func (panicTarget) Bind() { panic("target must not be bound") }

func TestPBRSkipsWithoutEnvironment(t *testing.T) {
	// no GL context exists in tests; the guard must return before any
	// GL call, so a zero-value material is enough
	m := &PBR{Model: math.Identity()}
	mesh := &countingDrawable{}

	scene := &render.SceneData{}
	if err := m.Render(mesh, panicTarget{}, math.Identity(), math.Identity(), scene); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if mesh.draws != 0 {
		t.Errorf("mesh drawn %d times without environment, want 0", mesh.draws)
	}
}

func TestPBRSkipsWithIncompleteEnvironment(t *testing.T) {
	m := &PBR{Model: math.Identity()}
	mesh := &countingDrawable{}

	scene := &render.SceneData{
		Skybox: &stubSkybox{env: &render.Environment{}},
	}
	if err := m.Render(mesh, panicTarget{}, math.Identity(), math.Identity(), scene); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if mesh.draws != 0 {
		t.Errorf("mesh drawn with incomplete environment")
	}
}

type stubSkybox struct {
	env *render.Environment
}

func (s *stubSkybox) Mesh() render.Drawable            { return nil }
func (s *stubSkybox) Material() render.Material        { return nil }
func (s *stubSkybox) Environment() *render.Environment { return s.env }

func TestPBREqualAlwaysFalse(t *testing.T) {
	a := &PBR{}
	if a.Equal(a) {
		t.Error("PBR materials must never compare equal")
	}
}

func TestKindsDistinct(t *testing.T) {
	kinds := map[render.Kind]string{}
	for _, m := range []render.Material{
		&Simple{}, &Phong{}, &Basic{}, &PBR{}, &SkyboxMat{},
	} {
		if prev, dup := kinds[m.Kind()]; dup {
			t.Errorf("kind %v claimed by both %s and %T", m.Kind(), prev, m)
		}
		kinds[m.Kind()] = m.Kind().String()
	}
}

func TestDefaultBasicParams(t *testing.T) {
	p := DefaultBasicParams()
	if p.Shininess != 32 {
		t.Errorf("Shininess = %v, want 32", p.Shininess)
	}
	if p.Ambient != (math.Vec3{X: 1, Y: 0.5, Z: 0.31}) {
		t.Errorf("Ambient = %+v", p.Ambient)
	}
}

func TestCloneSharesProgram(t *testing.T) {
	orig := &Simple{Color: math.Vec3{X: 1}}
	clone := orig.Clone().(*Simple)
	if clone.prog != orig.prog {
		t.Error("clone must share the compiled program")
	}
	clone.Color = math.Vec3{Y: 1}
	if orig.Color == clone.Color {
		t.Error("clone must not alias the original's parameters")
	}
}

func TestPBRCloneSharesProgram(t *testing.T) {
	proto := &PBR{Model: math.Identity()}
	clone := proto.Clone().(*PBR)
	if clone.prog != proto.prog {
		t.Error("clone must share the compiled program")
	}
	clone.Textures = &PBRTextures{}
	if proto.Textures == clone.Textures {
		t.Error("clone must not alias the prototype's textures")
	}
}
