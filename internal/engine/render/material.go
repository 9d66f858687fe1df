package render

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/ember3d/ember/pkg/math"
)

// Kind identifies a material family. The queue buckets drawables by kind,
// so the set is closed: adding a material means adding a constant here.
type Kind int

const (
	KindSimple Kind = iota
	KindPhong
	KindBasic
	KindPBR
	KindSkybox
)

func (k Kind) String() string {
	switch k {
	case KindSimple:
		return "simple"
	case KindPhong:
		return "phong"
	case KindBasic:
		return "basic"
	case KindPBR:
		return "pbr"
	case KindSkybox:
		return "skybox"
	default:
		return "unknown"
	}
}

// Drawable is anything a material can render.
type Drawable interface {
	Draw()
	IndexCount() int32
}

// Target is a render destination. Bind must leave the target current.
type Target interface {
	Bind()
}

// Screen targets the default framebuffer at the given viewport size.
type Screen struct {
	Width  int32
	Height int32
}

// Bind makes the default framebuffer current.
func (s Screen) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, s.Width, s.Height)
}

// Material renders a drawable with a specific shading model. camera is the
// projection matrix and world the view matrix for the frame.
type Material interface {
	Render(mesh Drawable, target Target, camera, world math.Mat4, scene *SceneData) error
	Kind() Kind
	Equal(other Material) bool
	Clone() Material
}
