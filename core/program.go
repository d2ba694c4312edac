package core

import (
	"errors"

	"github.com/go-gl/gl/v3.3-core/gl"
	log "github.com/sirupsen/logrus"
)

// ErrNoShaders is returned when a program link is attempted
// without any compiled shaders.
var ErrNoShaders = errors.New("no shaders given to link")

// NewProgram links previously compiled shaders into one GPU program.
// Shaders are attached in argument order. Stage completeness is not
// checked here, the driver decides what it will link. On link failure
// the partially created GL program is released and the linker log is
// reported.
func NewProgram(shaders ...*Shader) (*Program, error) {
	if len(shaders) == 0 {
		return nil, ErrNoShaders
	}

	handle := gl.CreateProgram()
	if handle == 0 {
		return nil, errors.New("gl.CreateProgram(): could not allocate a program object")
	}

	for _, shader := range shaders {
		gl.AttachShader(handle, shader.Handle())
	}
	gl.LinkProgram(handle)

	if err := statusError(handle, gl.LINK_STATUS, gl.GetProgramiv, gl.GetProgramInfoLog, "gl.LinkProgram()"); err != nil {
		gl.DeleteProgram(handle)
		log.Errorf("program link: %s", err)
		return nil, err
	}

	return &Program{
		handle:  handle,
		shaders: shaders,
	}, nil
}

// Program owns one linked GPU executable. It retains the shaders
// it was linked from, so a shader may be shared between programs
// and outlive any one of them.
type Program struct {
	handle  uint32
	shaders []*Shader
}

// Use binds this program as the current rendering program.
// The slot is global GL state, binding another program unbinds this one.
func (p *Program) Use() {
	gl.UseProgram(p.handle)
}

// Handle is a read-only accessor to the raw GL program id,
// for uniform binding and similar advanced use.
func (p *Program) Handle() uint32 {
	return p.handle
}

// UniformLocation looks up a uniform by name in the linked program
func (p *Program) UniformLocation(name string) int32 {
	return gl.GetUniformLocation(p.handle, gl.Str(name+"\x00"))
}

// Destroy implements interface. The attached shaders are not
// destroyed, they belong to whoever compiled them. Repeated
// calls are no-ops.
func (p *Program) Destroy() {
	if p.handle == 0 {
		return
	}
	gl.DeleteProgram(p.handle)
	p.handle = 0
}
