package ibl

import "testing"

func TestRoughnessForLevelEndpoints(t *testing.T) {
	if got := roughnessForLevel(0, 5); got != 0 {
		t.Errorf("level 0 roughness = %v, want 0", got)
	}
	if got := roughnessForLevel(4, 5); got != 1 {
		t.Errorf("last level roughness = %v, want 1", got)
	}
}

func TestRoughnessForLevelMonotonic(t *testing.T) {
	prev := float32(-1)
	for level := int32(0); level < 5; level++ {
		r := roughnessForLevel(level, 5)
		if r <= prev {
			t.Errorf("roughness not increasing at level %d: %v <= %v", level, r, prev)
		}
		prev = r
	}
}

func TestRoughnessForLevelSingleLevel(t *testing.T) {
	if got := roughnessForLevel(0, 1); got != 0 {
		t.Errorf("single-level roughness = %v, want 0", got)
	}
	if got := roughnessForLevel(0, 0); got != 0 {
		t.Errorf("degenerate chain roughness = %v, want 0", got)
	}
}

func TestLevelSizeHalves(t *testing.T) {
	sizes := []int32{128, 64, 32, 16, 8}
	for level, want := range sizes {
		if got := levelSize(PrefilterBaseSize, int32(level)); got != want {
			t.Errorf("level %d size = %d, want %d", level, got, want)
		}
	}
}

func TestLevelSizeClampsToOne(t *testing.T) {
	if got := levelSize(4, 10); got != 1 {
		t.Errorf("deep level size = %d, want 1", got)
	}
}

func TestLevels(t *testing.T) {
	p := &Prefilter{BaseSize: PrefilterBaseSize, MaxLevels: PrefilterMaxLevels}
	cases := []struct {
		source int32
		want   int32
	}{
		{0, 1},
		{1, 1},
		{3, 3},
		{5, 5},
		{8, 5},
	}
	for _, c := range cases {
		if got := p.Levels(c.source); got != c.want {
			t.Errorf("Levels(%d) = %d, want %d", c.source, got, c.want)
		}
	}
}

func TestLevelsHonorsMaxLevels(t *testing.T) {
	p := &Prefilter{BaseSize: 256, MaxLevels: 3}
	if got := p.Levels(8); got != 3 {
		t.Errorf("Levels(8) with cap 3 = %d, want 3", got)
	}
	if got := p.Levels(2); got != 2 {
		t.Errorf("Levels(2) with cap 3 = %d, want 2", got)
	}
}

func TestOptionsApplyOverridesDefaults(t *testing.T) {
	p := &Prefilter{BaseSize: PrefilterBaseSize, MaxLevels: PrefilterMaxLevels}
	Options{PrefilterSize: 256, PrefilterLevels: 6}.apply(p)
	if p.BaseSize != 256 {
		t.Errorf("BaseSize = %d, want 256", p.BaseSize)
	}
	if p.MaxLevels != 6 {
		t.Errorf("MaxLevels = %d, want 6", p.MaxLevels)
	}

	p = &Prefilter{BaseSize: PrefilterBaseSize, MaxLevels: PrefilterMaxLevels}
	Options{}.apply(p)
	if p.BaseSize != PrefilterBaseSize || p.MaxLevels != PrefilterMaxLevels {
		t.Errorf("zero options changed defaults: size %d, levels %d", p.BaseSize, p.MaxLevels)
	}
}
