package core

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	log "github.com/sirupsen/logrus"
)

// NewShader compiles GLSL source text into a shader object of the given
// type. On compile failure the partially created GL object is released,
// the compiler log is reported and no Shader is returned.
func NewShader(source string, shaderType ShaderType) (*Shader, error) {
	return newShader(source, shaderType, shaderType.String())
}

// NewShaderFromFile loads GLSL source from a file and compiles it.
// A file that cannot be read fails before any GL object is created.
func NewShaderFromFile(path string, shaderType ShaderType) (*Shader, error) {
	source, err := ReadTextFile(path)
	if err != nil {
		return nil, err
	}

	filename := filepath.Base(path)
	shaderName := strings.TrimSuffix(filename, filepath.Ext(filename))
	return newShader(source, shaderType, shaderName)
}

func newShader(source string, shaderType ShaderType, name string) (*Shader, error) {
	if source == "" {
		return nil, errors.New("no shader source given to compile")
	}

	stage, err := shaderType.glEnum()
	if err != nil {
		return nil, err
	}

	handle := gl.CreateShader(stage)
	if handle == 0 {
		return nil, errors.New("gl.CreateShader(): could not allocate a shader object")
	}

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)

	if err := statusError(handle, gl.COMPILE_STATUS, gl.GetShaderiv, gl.GetShaderInfoLog, "gl.CompileShader()"); err != nil {
		gl.DeleteShader(handle)
		log.Errorf("shader %q: %s", name, err)
		return nil, err
	}

	return &Shader{
		name:       name,
		shaderType: shaderType,
		handle:     handle,
	}, nil
}

// Shader owns one compiled GPU shader stage
type Shader struct {
	name       string
	shaderType ShaderType
	handle     uint32
}

// Type implements interface
func (s *Shader) Type() ShaderType {
	return s.shaderType
}

// Name implements interface
func (s *Shader) Name() string {
	return s.name
}

// Handle is an accessor to the internal GL shader object
func (s *Shader) Handle() uint32 {
	return s.handle
}

// Destroy implements interface. Repeated calls are no-ops.
func (s *Shader) Destroy() {
	if s.handle == 0 {
		return
	}
	gl.DeleteShader(s.handle)
	s.handle = 0
}

func (t ShaderType) glEnum() (uint32, error) {
	switch t {
	case VertexShaderType:
		return gl.VERTEX_SHADER, nil
	case FragmentShaderType:
		return gl.FRAGMENT_SHADER, nil
	default:
		return 0, errors.New("unsupported shader type attempted creation")
	}
}
