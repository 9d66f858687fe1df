package shader

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/ember3d/ember/pkg/math"
)

// Program wraps a linked GL program with cached uniform locations.
//
// Programs are shared between material instances by pointer; cloning a
// material never recompiles its program.
type Program struct {
	id       uint32
	uniforms map[string]int32
}

// NewProgram compiles and links a program from vertex and fragment sources.
func NewProgram(vertexSrc, fragmentSrc string) (*Program, error) {
	id, err := CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	return &Program{id: id, uniforms: make(map[string]int32)}, nil
}

// ID returns the underlying GL program object.
func (p *Program) ID() uint32 {
	return p.id
}

// Use makes this program current.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// Destroy deletes the GL program object.
func (p *Program) Destroy() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

// location returns the cached uniform location; -1 for inactive uniforms.
func (p *Program) location(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.uniforms[name] = loc
	return loc
}

// SetMat4 uploads a 4x4 matrix uniform.
func (p *Program) SetMat4(name string, m math.Mat4) {
	gl.UniformMatrix4fv(p.location(name), 1, false, m.Ptr())
}

// SetVec3 uploads a vec3 uniform.
func (p *Program) SetVec3(name string, v math.Vec3) {
	gl.Uniform3f(p.location(name), v.X, v.Y, v.Z)
}

// SetVec3Slice uploads an array of vec3 uniforms from a flattened slice.
func (p *Program) SetVec3Slice(name string, data []float32) {
	if len(data) == 0 {
		return
	}
	gl.Uniform3fv(p.location(name), int32(len(data)/3), &data[0])
}

// SetFloat uploads a float uniform.
func (p *Program) SetFloat(name string, v float32) {
	gl.Uniform1f(p.location(name), v)
}

// SetInt uploads an int uniform (also used for sampler bindings).
func (p *Program) SetInt(name string, v int32) {
	gl.Uniform1i(p.location(name), v)
}
