package triangle

// Vertices holds the triangle in normalized device coordinates as
// consecutive (x, y, z) positions: left, right, top.
var Vertices = [9]float32{
	-1.0, -1.0, 0.0,
	1.0, -1.0, 0.0,
	0.0, 1.0, 0.0,
}

const (
	positionAttrib      = 0
	componentsPerVertex = 3
	floatSize           = 4
)

// Mesh is a vertex array plus the buffer it reads from.
type Mesh struct {
	dev   MeshDevice
	vao   uint32
	vbo   uint32
	count int32
}

// NewTriangleMesh uploads Vertices into a static buffer and binds attribute 0
// to its positions. The vertex array is left bound.
func NewTriangleMesh(dev MeshDevice) *Mesh {
	m := &Mesh{dev: dev, count: int32(len(Vertices) / componentsPerVertex)}

	m.vao = dev.GenVertexArray()
	dev.BindVertexArray(m.vao)

	m.vbo = dev.GenBuffer()
	dev.BindArrayBuffer(m.vbo)
	dev.BufferStaticData(Vertices[:])

	dev.VertexAttribFloat(positionAttrib, componentsPerVertex, componentsPerVertex*floatSize, 0)
	dev.EnableVertexAttribArray(positionAttrib)

	return m
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int32 { return m.count }

// Bind binds the mesh's vertex array.
func (m *Mesh) Bind() {
	m.dev.BindVertexArray(m.vao)
}

// Delete releases the vertex array and buffer.
func (m *Mesh) Delete() {
	if m.vbo != 0 {
		m.dev.DeleteBuffer(m.vbo)
		m.vbo = 0
	}
	if m.vao != 0 {
		m.dev.DeleteVertexArray(m.vao)
		m.vao = 0
	}
}
