package texture

import "testing"

func TestMirrorRowsSwapsAboutCenter(t *testing.T) {
	w, h := 4, 2
	pixels := make([]float32, w*h*3)
	// marker pixel at (1, 0)
	pixels[(0*w+1)*3] = 1.0
	// marker pixel at (3, 1)
	pixels[(1*w+3)*3+1] = 2.0

	mirrorRows(pixels, w, h)

	if got := pixels[(0*w+2)*3]; got != 1.0 {
		t.Errorf("expected marker mirrored to x=2, got %v", got)
	}
	if got := pixels[(0*w+1)*3]; got != 0 {
		t.Errorf("expected original position cleared, got %v", got)
	}
	if got := pixels[(1*w+0)*3+1]; got != 2.0 {
		t.Errorf("expected row 1 marker mirrored to x=0, got %v", got)
	}
}

func TestMirrorRowsOddWidthKeepsCenter(t *testing.T) {
	w, h := 3, 1
	pixels := make([]float32, w*h*3)
	pixels[1*3] = 5.0 // center column

	mirrorRows(pixels, w, h)

	if got := pixels[1*3]; got != 5.0 {
		t.Errorf("center column must stay in place, got %v", got)
	}
}

func TestDownscaleFloatAverages(t *testing.T) {
	// 16384 wide forces a factor-2 downscale; build a 2x2-block pattern
	// cheaply by checking a small synthetic case through the same helper.
	w, h := maxPanoramaWidth*2, 2
	pixels := make([]float32, w*h*3)
	for i := range pixels {
		pixels[i] = 1.0
	}

	out, nw, nh := downscaleFloat(pixels, w, h)
	if nw != maxPanoramaWidth || nh != 1 {
		t.Fatalf("expected %dx1, got %dx%d", maxPanoramaWidth, nw, nh)
	}
	if out[0] != 1.0 || out[len(out)-1] != 1.0 {
		t.Errorf("constant image must stay constant after averaging")
	}
}

func TestDownscaleFloatNoopWhenSmall(t *testing.T) {
	pixels := []float32{1, 2, 3}
	out, nw, nh := downscaleFloat(pixels, 1, 1)
	if nw != 1 || nh != 1 || &out[0] != &pixels[0] {
		t.Errorf("small panoramas must pass through unchanged")
	}
}

func TestFloatToByte(t *testing.T) {
	cases := []struct {
		in   float32
		want uint8
	}{
		{-1, 0},
		{0, 0},
		{0.5, 128},
		{1, 255},
		{2, 255},
	}
	for _, c := range cases {
		if got := floatToByte(c.in); got != c.want {
			t.Errorf("floatToByte(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}
