package ibl

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/ember3d/ember/internal/engine/cubemap"
	"github.com/ember3d/ember/internal/engine/material/shaders"
	"github.com/ember3d/ember/internal/engine/shader"
)

const (
	// PrefilterBaseSize is the face size of level 0.
	PrefilterBaseSize = 128
	// PrefilterMaxLevels caps the roughness mip chain.
	PrefilterMaxLevels = 5
)

// Prefilter renders the roughness-prefiltered specular mip chain of an
// environment cubemap. BaseSize and MaxLevels may be overridden after
// construction, like Equirect.Size.
type Prefilter struct {
	prog *shader.Program

	// BaseSize is the face size of level 0.
	BaseSize int32
	// MaxLevels caps the roughness mip chain.
	MaxLevels int32
}

// NewPrefilter compiles the importance sampling pass.
func NewPrefilter() (*Prefilter, error) {
	prog, err := shader.NewProgram(shaders.CubeVertexShader, shaders.PrefilterFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("compile prefilter pass: %w", err)
	}
	return &Prefilter{
		prog:      prog,
		BaseSize:  PrefilterBaseSize,
		MaxLevels: PrefilterMaxLevels,
	}, nil
}

// Levels returns how many mip levels a source with the given mip count
// produces.
func (p *Prefilter) Levels(sourceMips int32) int32 {
	if sourceMips > p.MaxLevels {
		return p.MaxLevels
	}
	if sourceMips < 1 {
		return 1
	}
	return sourceMips
}

// roughnessForLevel spreads roughness 0..1 linearly over the mip chain.
func roughnessForLevel(level, levels int32) float32 {
	if levels <= 1 {
		return 0
	}
	return float32(level) / float32(levels-1)
}

// levelSize halves the base size per level, clamped to 1.
func levelSize(base, level int32) int32 {
	size := base >> uint(level)
	if size < 1 {
		return 1
	}
	return size
}

// Compute renders one mip chain per roughness step and writes the faces
// to <destDir>/<level>/<face>.<ext>.
func (p *Prefilter) Compute(env *cubemap.Cubemap, destDir, ext string, r *CubeRenderer) error {
	levels := p.Levels(env.MipLevels())
	for level := int32(0); level < levels; level++ {
		rough := roughnessForLevel(level, levels)
		levelDir := filepath.Join(destDir, strconv.Itoa(int(level)))
		err := r.RenderToDir(levelSize(p.BaseSize, level), levelDir, ext, p.prog, func(prog *shader.Program) {
			env.Bind(0)
			prog.SetInt("environment_map", 0)
			prog.SetFloat("roughness", rough)
		})
		if err != nil {
			return fmt.Errorf("prefilter level %d: %w", level, err)
		}
	}
	return nil
}

// Destroy releases the program.
func (p *Prefilter) Destroy() {
	p.prog.Destroy()
}
