package mesh

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Stats summarises a mesh's geometry.
type Stats struct {
	Vertices  int     `json:"vertices"`
	Triangles int     `json:"triangles"`
	Edges     int     `json:"edges"`
	Parts     int     `json:"components"`
	Min       Vec3    `json:"bbox_min"`
	Max       Vec3    `json:"bbox_max"`
	MinRadius float64 `json:"min_radius"`
	MaxRadius float64 `json:"max_radius"`
	MinEdge   float64 `json:"min_edge"`
	MaxEdge   float64 `json:"max_edge"`
	Area      float64 `json:"area"`
}

func toR3(v Vec3) r3.Vec {
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}
}

// Stats computes counts, extents and surface measures. Edges are counted once per
// unordered vertex pair.
func (m *Mesh) Stats() Stats {
	s := Stats{
		Vertices:  len(m.Vertices),
		Triangles: len(m.Triangles),
		Min:       Vec3{math.Inf(1), math.Inf(1), math.Inf(1)},
		Max:       Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)},
		MinRadius: math.Inf(1),
		MinEdge:   math.Inf(1),
	}
	if len(m.Vertices) == 0 {
		return Stats{}
	}

	for _, v := range m.Vertices {
		for k := 0; k < 3; k++ {
			s.Min[k] = math.Min(s.Min[k], v[k])
			s.Max[k] = math.Max(s.Max[k], v[k])
		}
		r := r3.Norm(toR3(v))
		s.MinRadius = math.Min(s.MinRadius, r)
		s.MaxRadius = math.Max(s.MaxRadius, r)
	}

	seen := make(map[edge]struct{}, len(m.Triangles)*3/2)
	for _, t := range m.Triangles {
		s.Area += m.triangleArea(t)

		for k := 0; k < 3; k++ {
			e := makeEdge(t[k], t[(k+1)%3])
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			l := r3.Norm(r3.Sub(toR3(m.Vertices[e[0]]), toR3(m.Vertices[e[1]])))
			s.MinEdge = math.Min(s.MinEdge, l)
			s.MaxEdge = math.Max(s.MaxEdge, l)
		}
	}
	s.Edges = len(seen)
	s.Parts = len(m.Components())
	if s.Edges == 0 {
		s.MinEdge = 0
	}
	return s
}

// Area returns the total surface area of the mesh.
func (m *Mesh) Area() float64 {
	var area float64
	for _, t := range m.Triangles {
		area += m.triangleArea(t)
	}
	return area
}

func (m *Mesh) triangleArea(t Triangle) float64 {
	a, b, c := toR3(m.Vertices[t[0]]), toR3(m.Vertices[t[1]]), toR3(m.Vertices[t[2]])
	return 0.5 * r3.Norm(r3.Cross(r3.Sub(b, a), r3.Sub(c, a)))
}
