// Package hostapi defines the narrow surface of the embedding host that the
// rest of the program is allowed to touch, and the probe that decides
// whether that surface is live in the current process.
package hostapi

// ObjectMode is the interaction mode that must be active before objects
// can be removed from the scene.
const ObjectMode = "OBJECT"

// ExportOptions mirror the host exporter's switches.
type ExportOptions struct {
	Overwrite      bool // replace an existing file at the target path
	SelectionOnly  bool // export only selected objects
	Animation      bool // include animation data
	ApplyModifiers bool // apply modifier effects to exported mesh data
}

// Scene is the host's current document. One process drives exactly one
// scene and all calls are synchronous; there is no concurrent access.
type Scene interface {
	// HasActiveObject reports whether any object is currently active,
	// meaning the host may be mid-interaction.
	HasActiveObject() (bool, error)

	// SetMode switches the host's interaction mode.
	SetMode(mode string) error

	// RemoveAllObjects deletes every object. The scene is empty afterwards.
	RemoveAllObjects() error

	// Objects returns the names of all top-level objects.
	Objects() ([]string, error)

	// DeselectAll clears any selection state.
	DeselectAll() error

	// ImportOBJ loads a Wavefront OBJ file into the scene.
	ImportOBJ(path string) error

	// AddModifier attaches a modifier of the given kind, with the given
	// numeric parameter, to the named object.
	AddModifier(object, kind string, levels int) error

	// ExportOBJ writes the scene to path as a Wavefront OBJ.
	ExportOBJ(path string, opts ExportOptions) error
}

// API couples a live scene with metadata learned during the handshake.
type API interface {
	Scene() Scene

	// HostVersion is the host's reported version string.
	HostVersion() string

	// HostArgv is the full argument vector the host was started with,
	// including host flags and the separator token.
	HostArgv() []string

	Close() error
}
