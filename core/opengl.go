package core

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	glm "github.com/go-gl/mathgl/mgl32"
	log "github.com/sirupsen/logrus"
)

// NewGLRenderer creates a not yet initialised OpenGL renderer
func NewGLRenderer(cfg RendererConfiguration) (Renderer, error) {
	return &GLRenderer{
		configuration: cfg,
	}, nil
}

// GLRenderer draws a single point through a fixed shader pair.
// It owns the program it links and the shaders that went into it,
// all of which Destroy releases. Every method must run on the
// thread that owns the GL context.
type GLRenderer struct {
	configuration RendererConfiguration

	shaders []*Shader
	program *Program

	vao uint32
}

// Initialise implements interface. It compiles the two configured
// shader files, links them and prepares the fixed draw state. Any
// failure aborts the whole initialisation, no partially initialised
// renderer is left behind.
func (r *GLRenderer) Initialise() error {
	clear := r.configuration.ClearColor
	gl.ClearColor(clear.X(), clear.Y(), clear.Z(), clear.W())

	vertex, err := NewShaderFromFile(r.configuration.VertexShaderPath, VertexShaderType)
	if err != nil {
		return err
	}

	fragment, err := NewShaderFromFile(r.configuration.FragmentShaderPath, FragmentShaderType)
	if err != nil {
		vertex.Destroy()
		return err
	}

	program, err := NewProgram(vertex, fragment)
	if err != nil {
		vertex.Destroy()
		fragment.Destroy()
		return err
	}

	r.shaders = []*Shader{vertex, fragment}
	r.program = program

	// Core profile refuses to draw without a bound vertex array,
	// even for a vertexless point.
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	program.Use()
	transform := glm.Ident4()
	gl.UniformMatrix4fv(program.UniformLocation("transform"), 1, false, &transform[0])

	return CheckGLError("core.GLRenderer.Initialise()")
}

// Resize implements interface
func (r *GLRenderer) Resize(width, height int32) {
	gl.Viewport(0, 0, width, height)
}

// Draw implements interface. It clears the color buffer, activates
// the owned program and issues one point draw.
func (r *GLRenderer) Draw() error {
	gl.Clear(gl.COLOR_BUFFER_BIT)
	r.program.Use()
	gl.DrawArrays(gl.POINTS, 0, 1)
	return CheckGLError("core.GLRenderer.Draw()")
}

// Program is an accessor to the linked program, for callers that
// need to bind their own uniforms.
func (r *GLRenderer) Program() *Program {
	return r.program
}

// Destroy implements interface. Safe to call more than once.
func (r *GLRenderer) Destroy() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}

	if r.program != nil {
		r.program.Destroy()
	}

	for _, shader := range r.shaders {
		shader.Destroy()
	}
	r.shaders = nil

	log.Debug("renderer destroyed")
}
