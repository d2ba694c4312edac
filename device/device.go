package device

// Info describes the graphics adapter and driver behind the
// current rendering context
type Info struct {
	Vendor      string
	Renderer    string
	Version     string
	GLSLVersion string
	Extensions  []string
}

// Device describes a non-concrete rendering device
type Device interface {
	Info() Info
}
