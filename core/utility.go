package core

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	log "github.com/sirupsen/logrus"

	"github.com/varis3d/varis/utility/spak"
)

// ReadTextFile loads an entire UTF-8 text file into memory.
func ReadTextFile(path string) (string, error) {
	contents, err := ioutil.ReadFile(path)
	if err != nil {
		log.Errorf("core.ReadTextFile(): %s", err)
		return "", err
	}
	return string(contents), nil
}

// ReadTextFromArchive pulls one named source file out of a shader pack,
// with the same contract as ReadTextFile.
func ReadTextFromArchive(archive *spak.Archive, name string) (string, error) {
	contents, err := archive.ReadAll(name)
	if err != nil {
		log.Errorf("core.ReadTextFromArchive(): %q: %s", name, err)
		return "", err
	}
	return string(contents), nil
}

// Suffixes that identify GLSL source stages
const (
	vertexSuffix   = ".vert"
	fragmentSuffix = ".frag"
)

// StageFromPath classifies a shader source file by its suffix.
// Files that are not recognised get UnknownShaderType.
func StageFromPath(path string) ShaderType {
	switch filepath.Ext(path) {
	case vertexSuffix:
		return VertexShaderType
	case fragmentSuffix:
		return FragmentShaderType
	default:
		return UnknownShaderType
	}
}

// FindShaderFiles gets the list of GLSL source files in a directory.
// The stage of each file is taken from its suffix, anything that is
// not a recognised shader source is skipped. All shader files found
// will be returned.
func FindShaderFiles(dir string) ([]string, []ShaderType, error) {
	var (
		shaders     []string
		shaderTypes []ShaderType
	)
	if err := filepath.Walk(dir, func(path string, f os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if f.IsDir() {
			return nil
		}
		if shaderType := StageFromPath(f.Name()); shaderType != UnknownShaderType {
			shaders = append(shaders, path)
			shaderTypes = append(shaderTypes, shaderType)
		}
		return nil
	}); err != nil {
		return nil, nil, err
	}
	return shaders, shaderTypes, nil
}

type getObjectIV func(handle uint32, pname uint32, params *int32)
type getObjectInfoLog func(handle uint32, bufSize int32, length *int32, infoLog *uint8)

// statusError checks an object status parameter after a compile or
// link call and, when the operation failed, pulls the driver's info
// log into the returned error. The getter pair is a parameter so
// failure paths can be exercised without a live GL context.
func statusError(handle uint32, pname uint32, getIV getObjectIV, getInfoLog getObjectInfoLog, label string) error {
	var status int32
	getIV(handle, pname, &status)
	if status != gl.FALSE {
		return nil
	}

	var logLength int32
	getIV(handle, gl.INFO_LOG_LENGTH, &logLength)

	infoLog := make([]byte, logLength+1)
	getInfoLog(handle, logLength, nil, &infoLog[0])
	return fmt.Errorf("%s: %s", label, strings.TrimRight(string(infoLog[:logLength]), "\x00\n"))
}

// CheckGLError drains the GL error queue into a single error value,
// nil when the queue was empty.
func CheckGLError(label string) error {
	var names []string
	for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
		names = append(names, glErrorName(code))
	}
	if len(names) == 0 {
		return nil
	}
	return fmt.Errorf("%s: %s", label, strings.Join(names, ", "))
}

func glErrorName(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	default:
		return fmt.Sprintf("0x%04x", code)
	}
}
