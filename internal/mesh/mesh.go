package mesh

import (
	"errors"
	"fmt"
	"math"

	"icosphere-renderer/internal/mathutil"
)

var (
	// ErrDanglingIndex is returned by Validate when a triangle references a missing vertex.
	ErrDanglingIndex = errors.New("mesh: dangling vertex index")

	// ErrIndexOverflow is returned when a mesh has too many vertices for 16-bit indices.
	ErrIndexOverflow = errors.New("mesh: too many vertices for 16-bit indices")
)

// Triangle holds three indices into Mesh.Vertices.
type Triangle [3]uint32

// Mesh is an indexed triangle mesh. Vertex order is the index order.
// A Mesh is never modified after Build returns it.
type Mesh struct {
	Shape     Shape
	Quality   int
	Vertices  []mathutil.Vec3
	Triangles []Triangle
}

// addVertex appends v and returns its index.
func (m *Mesh) addVertex(v mathutil.Vec3) uint32 {
	m.Vertices = append(m.Vertices, v)
	return uint32(len(m.Vertices) - 1)
}

func (m *Mesh) addFace(a, b, c uint32) {
	m.Triangles = append(m.Triangles, Triangle{a, b, c})
}

// Positions returns the vertices as interleaved xyz float32 values, ready for a vertex buffer.
func (m *Mesh) Positions() []float32 {
	out := make([]float32, 0, len(m.Vertices)*3)
	for _, v := range m.Vertices {
		out = append(out, float32(v[0]), float32(v[1]), float32(v[2]))
	}
	return out
}

// Indices returns the flattened triangle list.
func (m *Mesh) Indices() []uint32 {
	out := make([]uint32, 0, len(m.Triangles)*3)
	for _, t := range m.Triangles {
		out = append(out, t[0], t[1], t[2])
	}
	return out
}

// Indices16 returns the flattened triangle list as 16-bit indices, the element type
// WebGL 1 draws with. Fails when the mesh has more than 65536 vertices.
func (m *Mesh) Indices16() ([]uint16, error) {
	if len(m.Vertices) > math.MaxUint16+1 {
		return nil, fmt.Errorf("%w: %d vertices", ErrIndexOverflow, len(m.Vertices))
	}
	out := make([]uint16, 0, len(m.Triangles)*3)
	for _, t := range m.Triangles {
		out = append(out, uint16(t[0]), uint16(t[1]), uint16(t[2]))
	}
	return out, nil
}

// Validate checks that every triangle index refers to an existing vertex.
func (m *Mesh) Validate() error {
	n := uint32(len(m.Vertices))
	for i, t := range m.Triangles {
		for _, idx := range t {
			if idx >= n {
				return fmt.Errorf("%w: triangle %d references %d (have %d vertices)", ErrDanglingIndex, i, idx, n)
			}
		}
	}
	return nil
}

// FaceNormal returns the unit normal of triangle i following its winding.
func (m *Mesh) FaceNormal(i int) mathutil.Vec3 {
	t := m.Triangles[i]
	a, b, c := m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}
