package cubemap

import (
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
)

func TestFacesLayerOrder(t *testing.T) {
	for i, face := range Faces {
		want := uint32(gl.TEXTURE_CUBE_MAP_POSITIVE_X + i)
		if face.Layer != want {
			t.Errorf("face %d (%s): layer = 0x%x, want 0x%x", i, face.Name, face.Layer, want)
		}
	}
}

func TestFacesNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, face := range Faces {
		if seen[face.Name] {
			t.Errorf("duplicate face name %q", face.Name)
		}
		seen[face.Name] = true
	}
	for _, name := range []string{"right", "left", "top", "bottom", "front", "back"} {
		if !seen[name] {
			t.Errorf("missing face %q", name)
		}
	}
}

func TestFacesDirectionsUnitAndOrthogonalToUp(t *testing.T) {
	for _, face := range Faces {
		if l := face.Direction.Length(); l < 0.999 || l > 1.001 {
			t.Errorf("face %s: direction length %v, want 1", face.Name, l)
		}
		if dot := face.Direction.Dot(face.Up); dot > 0.001 || dot < -0.001 {
			t.Errorf("face %s: direction not orthogonal to up (dot %v)", face.Name, dot)
		}
	}
}
