package cubemap

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/ember3d/ember/pkg/math"
)

// Face describes one side of a cubemap: the camera orientation used to
// render it and the GL layer it attaches to.
type Face struct {
	Name      string
	Direction math.Vec3
	Up        math.Vec3
	Layer     uint32
}

// Faces enumerates the six cube faces in GL layer order (+X, -X, +Y, -Y,
// +Z, -Z). The directions define the capture cameras for offscreen renders;
// the names double as file names when a cubemap is persisted.
var Faces = [6]Face{
	{Name: "right", Direction: math.Vec3{X: 0, Y: 0, Z: 1}, Up: math.Vec3{X: 0, Y: 1, Z: 0}, Layer: gl.TEXTURE_CUBE_MAP_POSITIVE_X},
	{Name: "left", Direction: math.Vec3{X: 0, Y: 0, Z: -1}, Up: math.Vec3{X: 0, Y: 1, Z: 0}, Layer: gl.TEXTURE_CUBE_MAP_NEGATIVE_X},
	{Name: "top", Direction: math.Vec3{X: 0, Y: 1, Z: 0}, Up: math.Vec3{X: 1, Y: 0, Z: 0}, Layer: gl.TEXTURE_CUBE_MAP_POSITIVE_Y},
	{Name: "bottom", Direction: math.Vec3{X: 0, Y: -1, Z: 0}, Up: math.Vec3{X: -1, Y: 0, Z: 0}, Layer: gl.TEXTURE_CUBE_MAP_NEGATIVE_Y},
	{Name: "front", Direction: math.Vec3{X: -1, Y: 0, Z: 0}, Up: math.Vec3{X: 0, Y: 1, Z: 0}, Layer: gl.TEXTURE_CUBE_MAP_POSITIVE_Z},
	{Name: "back", Direction: math.Vec3{X: 1, Y: 0, Z: 0}, Up: math.Vec3{X: 0, Y: 1, Z: 0}, Layer: gl.TEXTURE_CUBE_MAP_NEGATIVE_Z},
}

// View returns the look-at matrix for rendering this face from the origin.
func (f Face) View() math.Mat4 {
	return math.LookAt(math.Vec3{}, f.Direction, f.Up)
}
