// Package geometry holds the courtyard's vertex data and the generators for
// its procedural shapes. Nothing here touches the GPU.
package geometry

// Attribute is one interleaved vertex attribute.
type Attribute struct {
	Location uint32
	Size     int32 // float components
}

// Layout lists attributes in buffer order.
type Layout []Attribute

var (
	// Pos is a bare position, used by the skybox cube.
	Pos = Layout{{Location: 0, Size: 3}}
	// PosUV matches the textured shader.
	PosUV = Layout{{Location: 0, Size: 3}, {Location: 1, Size: 2}}
	// PosUVNormal is the sphere layout; the textured shader ignores location 2.
	PosUVNormal = Layout{{Location: 0, Size: 3}, {Location: 1, Size: 2}, {Location: 2, Size: 3}}
	// PosNormal matches the reflect shader.
	PosNormal = Layout{{Location: 0, Size: 3}, {Location: 1, Size: 3}}
)

// Floats is the number of floats per vertex.
func (l Layout) Floats() int {
	n := 0
	for _, a := range l {
		n += int(a.Size)
	}
	return n
}

// Stride in bytes.
func (l Layout) Stride() int32 {
	return int32(l.Floats() * 4)
}

// Offset in bytes of attribute i.
func (l Layout) Offset(i int) int {
	off := 0
	for _, a := range l[:i] {
		off += int(a.Size)
	}
	return off * 4
}

// Mesh is interleaved vertex data plus an optional index list.
type Mesh struct {
	Name     string
	Vertices []float32
	Indices  []uint32
	Layout   Layout
}

// VertexCount is the number of whole vertices in Vertices.
func (m Mesh) VertexCount() int {
	f := m.Layout.Floats()
	if f == 0 {
		return 0
	}
	return len(m.Vertices) / f
}

// Vertex returns the floats of vertex i.
func (m Mesh) Vertex(i int) []float32 {
	f := m.Layout.Floats()
	return m.Vertices[i*f : (i+1)*f]
}
