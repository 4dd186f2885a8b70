package mesh

import "icosphere-renderer/internal/mathutil"

// edge is an unordered vertex pair stored as (min, max).
type edge [2]uint32

func makeEdge(i, j uint32) edge {
	if i > j {
		i, j = j, i
	}
	return edge{i, j}
}

// midpointCache maps an edge to the vertex created at its normalized midpoint, so
// triangles sharing an edge share the new vertex.
type midpointCache struct {
	m     *Mesh
	index map[edge]uint32
}

func newMidpointCache(m *Mesh) *midpointCache {
	return &midpointCache{m: m, index: make(map[edge]uint32)}
}

// get returns the midpoint vertex of (i, j), creating it on first request.
func (c *midpointCache) get(i, j uint32) uint32 {
	key := makeEdge(i, j)
	if idx, ok := c.index[key]; ok {
		return idx
	}

	mid := c.m.Vertices[i].Mid(c.m.Vertices[j])
	idx := c.m.addVertex(mid.Normalize())
	c.index[key] = idx
	return idx
}

// subdivide replaces every triangle with four, reusing midpoints across shared edges.
// Only the triangles present when the pass starts are split.
func subdivide(m *Mesh) {
	cache := newMidpointCache(m)
	faces := m.Triangles
	m.Triangles = make([]Triangle, 0, len(faces)*4)
	for _, f := range faces {
		a, b, c := f[0], f[1], f[2]
		ab := cache.get(a, b)
		bc := cache.get(b, c)
		ca := cache.get(c, a)

		m.addFace(a, ab, ca)
		m.addFace(b, bc, ab)
		m.addFace(c, ca, bc)
		m.addFace(ab, bc, ca)
	}
}

func unit(x, y, z float64) mathutil.Vec3 {
	return mathutil.Vec3{x, y, z}.Normalize()
}
