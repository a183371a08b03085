package triangle

// Stage identifies a programmable pipeline stage.
type Stage int

const (
	StageVertex Stage = iota
	StageFragment
	// StageProgram names the link step in diagnostics; it is not a shader
	// stage CreateShader accepts.
	StageProgram
)

// String returns the stage name used in shader diagnostics.
func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "VERTEX"
	case StageFragment:
		return "FRAGMENT"
	case StageProgram:
		return "PROGRAM"
	default:
		return "UNKNOWN"
	}
}

// ShaderDevice is the subset of the graphics API needed to compile and link
// a shader program. Handles are opaque, zero means "no object".
type ShaderDevice interface {
	CreateShader(stage Stage) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)
}

// MeshDevice is the subset of the graphics API needed to upload and
// describe vertex data.
type MeshDevice interface {
	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)

	GenBuffer() uint32
	BindArrayBuffer(vbo uint32)
	// BufferStaticData uploads data into the bound array buffer.
	BufferStaticData(data []float32)
	DeleteBuffer(vbo uint32)

	// VertexAttribFloat describes attribute index as size floats per vertex.
	VertexAttribFloat(index uint32, size, stride int32, offset uintptr)
	EnableVertexAttribArray(index uint32)
}

// Device is everything the renderer touches.
type Device interface {
	ShaderDevice
	MeshDevice

	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	ClearColorBuffer()
	DrawTriangles(first, count int32)
}
