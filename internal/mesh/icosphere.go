package mesh

import "math"

// icosahedronFaces is the base adjacency over the 12 vertices added by BuildIcosphere.
// Every face winds counter-clockwise seen from outside.
var icosahedronFaces = [20]Triangle{
	{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
	{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
	{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
	{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
}

// BuildIcosphere returns a unit icosahedron subdivided quality times.
// Quality 0 is the plain icosahedron: 12 vertices, 20 triangles. Each level multiplies
// the triangle count by 4. Panics on negative quality; use Build to validate input.
func BuildIcosphere(quality int) *Mesh {
	if quality < 0 {
		panic("mesh: negative icosphere quality")
	}

	t := (1.0 + math.Sqrt(5.0)) / 2.0

	nv := 12
	if quality <= MaxQuality {
		nv = 10<<(2*quality) + 2
	}
	m := &Mesh{
		Shape:     Icosphere,
		Quality:   quality,
		Vertices:  make([]Vec3, 0, nv),
		Triangles: make([]Triangle, 0, len(icosahedronFaces)),
	}

	m.addVertex(unit(-1, t, 0))
	m.addVertex(unit(1, t, 0))
	m.addVertex(unit(-1, -t, 0))
	m.addVertex(unit(1, -t, 0))

	m.addVertex(unit(0, -1, t))
	m.addVertex(unit(0, 1, t))
	m.addVertex(unit(0, -1, -t))
	m.addVertex(unit(0, 1, -t))

	m.addVertex(unit(t, 0, -1))
	m.addVertex(unit(t, 0, 1))
	m.addVertex(unit(-t, 0, -1))
	m.addVertex(unit(-t, 0, 1))

	m.Triangles = append(m.Triangles, icosahedronFaces[:]...)

	for i := 0; i < quality; i++ {
		subdivide(m)
	}
	return m
}
