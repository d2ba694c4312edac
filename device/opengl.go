package device

import (
	"github.com/go-gl/gl/v3.3-core/gl"
)

// NewGLDevice wraps the device behind the current OpenGL context.
// A context must be current on the calling thread and the function
// pointers must already be loaded.
func NewGLDevice() Device {
	return &GLDevice{}
}

// GLDevice queries the live context for its properties
type GLDevice struct{}

// Info implements interface
func (d *GLDevice) Info() Info {
	info := Info{
		Vendor:      gl.GoStr(gl.GetString(gl.VENDOR)),
		Renderer:    gl.GoStr(gl.GetString(gl.RENDERER)),
		Version:     gl.GoStr(gl.GetString(gl.VERSION)),
		GLSLVersion: gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
	}

	var numExtensions int32
	gl.GetIntegerv(gl.NUM_EXTENSIONS, &numExtensions)
	for idx := int32(0); idx < numExtensions; idx++ {
		info.Extensions = append(info.Extensions, gl.GoStr(gl.GetStringi(gl.EXTENSIONS, uint32(idx))))
	}
	return info
}
