package ibl

import (
	"fmt"
	"path/filepath"

	"github.com/ember3d/ember/internal/engine/cubemap"
	"github.com/ember3d/ember/internal/engine/render"
	"github.com/ember3d/ember/internal/engine/shader"
	"github.com/ember3d/ember/internal/engine/texture"
)

// Bundle layout under the output directory.
const (
	irradianceDirName = "ibl_map"
	prefilterDirName  = "prefilter"
	brdfFileName      = "brdf.png"
)

// IrradianceDir returns where a bundle keeps the irradiance faces.
func IrradianceDir(dir string) string {
	return filepath.Join(dir, irradianceDirName)
}

// PrefilterDir returns where a bundle keeps the prefiltered mip chain.
func PrefilterDir(dir string) string {
	return filepath.Join(dir, prefilterDirName)
}

// BRDFPath returns where a bundle keeps the lookup table.
func BRDFPath(dir string) string {
	return filepath.Join(dir, brdfFileName)
}

// Options tunes the generated maps. Zero fields keep the package
// defaults.
type Options struct {
	// PrefilterSize is the face size of prefilter level 0.
	PrefilterSize int32
	// PrefilterLevels caps the roughness mip chain.
	PrefilterLevels int32
}

func (o Options) apply(p *Prefilter) {
	if o.PrefilterSize > 0 {
		p.BaseSize = o.PrefilterSize
	}
	if o.PrefilterLevels > 0 {
		p.MaxLevels = o.PrefilterLevels
	}
}

// IBL bundles the three baked lighting maps of one environment.
type IBL struct {
	Irradiance *cubemap.Cubemap
	Prefilter  *cubemap.Cubemap
	BRDF       *texture.Texture2D
}

// Generate bakes all three maps from an environment cubemap into a bundle
// directory. Cubemap faces are written with the given extension; the
// lookup table is always PNG.
func Generate(env *cubemap.Cubemap, dir, ext string, opts Options) error {
	r := NewCubeRenderer()
	defer r.Destroy()

	ir, err := NewIrradiance()
	if err != nil {
		return err
	}
	defer ir.Destroy()
	if err := ir.Compute(env, IrradianceDir(dir), ext, r); err != nil {
		return fmt.Errorf("irradiance: %w", err)
	}

	pf, err := NewPrefilter()
	if err != nil {
		return err
	}
	defer pf.Destroy()
	opts.apply(pf)
	if err := pf.Compute(env, PrefilterDir(dir), ext, r); err != nil {
		return fmt.Errorf("prefilter: %w", err)
	}

	brdf, err := NewBRDF()
	if err != nil {
		return err
	}
	defer brdf.Destroy()
	if err := brdf.ComputeToFile(BRDFPath(dir)); err != nil {
		return fmt.Errorf("brdf: %w", err)
	}
	return nil
}

// GenerateGPU bakes all three maps straight into GPU memory, skipping
// the bundle round-trip. The caller owns the returned maps.
func GenerateGPU(env *cubemap.Cubemap, opts Options) (*IBL, error) {
	r := NewCubeRenderer()
	defer r.Destroy()

	ir, err := NewIrradiance()
	if err != nil {
		return nil, err
	}
	defer ir.Destroy()
	irrMap := cubemap.New(IrradianceSize, 1)
	err = r.RenderToCubemap(irrMap, 0, ir.prog, func(prog *shader.Program) {
		env.Bind(0)
		prog.SetInt("environment_map", 0)
	})
	if err != nil {
		irrMap.Destroy()
		return nil, fmt.Errorf("irradiance: %w", err)
	}

	pf, err := NewPrefilter()
	if err != nil {
		irrMap.Destroy()
		return nil, err
	}
	defer pf.Destroy()
	opts.apply(pf)
	levels := pf.Levels(env.MipLevels())
	pfMap := cubemap.New(pf.BaseSize, levels)
	for level := int32(0); level < levels; level++ {
		rough := roughnessForLevel(level, levels)
		err := r.RenderToCubemap(pfMap, level, pf.prog, func(prog *shader.Program) {
			env.Bind(0)
			prog.SetInt("environment_map", 0)
			prog.SetFloat("roughness", rough)
		})
		if err != nil {
			irrMap.Destroy()
			pfMap.Destroy()
			return nil, fmt.Errorf("prefilter level %d: %w", level, err)
		}
	}

	brdf, err := NewBRDF()
	if err != nil {
		irrMap.Destroy()
		pfMap.Destroy()
		return nil, err
	}
	defer brdf.Destroy()
	lut, err := brdf.Compute()
	if err != nil {
		irrMap.Destroy()
		pfMap.Destroy()
		return nil, fmt.Errorf("brdf: %w", err)
	}

	return &IBL{Irradiance: irrMap, Prefilter: pfMap, BRDF: lut}, nil
}

// LoadDir loads a baked bundle. All maps are uploaded linear; sampling
// them through sRGB would double-correct the lighting.
func LoadDir(dir, ext string) (*IBL, error) {
	irr, err := cubemap.LoadDir(IrradianceDir(dir), ext, false)
	if err != nil {
		return nil, fmt.Errorf("irradiance: %w", err)
	}

	pf, err := cubemap.LoadMips(PrefilterDir(dir), ext, false)
	if err != nil {
		irr.Destroy()
		return nil, fmt.Errorf("prefilter: %w", err)
	}

	brdf, err := texture.LoadFile(BRDFPath(dir))
	if err != nil {
		irr.Destroy()
		pf.Destroy()
		return nil, fmt.Errorf("brdf: %w", err)
	}

	return &IBL{Irradiance: irr, Prefilter: pf, BRDF: brdf}, nil
}

// Environment adapts the bundle for scene publication.
func (i *IBL) Environment() *render.Environment {
	return &render.Environment{
		Irradiance: i.Irradiance,
		Prefilter:  i.Prefilter,
		BRDF:       i.BRDF,
	}
}

// Destroy releases the GL objects.
func (i *IBL) Destroy() {
	if i.Irradiance != nil {
		i.Irradiance.Destroy()
	}
	if i.Prefilter != nil {
		i.Prefilter.Destroy()
	}
	if i.BRDF != nil {
		i.BRDF.Destroy()
	}
}
