package mesh

// cubeCorners: the front face (z = +1) is 0–3, the back face (z = −1) is 4–7.
var cubeCorners = [8]Vec3{
	{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
	{-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}, {1, -1, -1},
}

// CubeFace names the faces in the order BuildCube emits them. Triangles 2f and 2f+1
// belong to face f.
type CubeFace int

const (
	Front CubeFace = iota
	Back
	Top
	Bottom
	Right
	Left
)

var cubeFaceNames = [...]string{"front", "back", "top", "bottom", "right", "left"}

func (f CubeFace) String() string {
	if f < 0 || int(f) >= len(cubeFaceNames) {
		return "unknown"
	}
	return cubeFaceNames[f]
}

// cubeFaces lists each face's corners in winding order.
var cubeFaces = [6][4]uint32{
	Front:  {0, 1, 2, 3},
	Back:   {4, 5, 6, 7},
	Top:    {5, 3, 2, 6},
	Bottom: {4, 7, 1, 0},
	Right:  {7, 6, 2, 1},
	Left:   {4, 0, 3, 5},
}

// cubeSplits gives each face's two triangles in face-local numbering.
// The back face lists its triangles in the opposite order.
var cubeSplits = [6][2][3]int{
	Front:  {{0, 1, 2}, {0, 2, 3}},
	Back:   {{0, 2, 3}, {0, 1, 2}},
	Top:    {{0, 1, 2}, {0, 2, 3}},
	Bottom: {{0, 1, 2}, {0, 2, 3}},
	Right:  {{0, 1, 2}, {0, 2, 3}},
	Left:   {{0, 1, 2}, {0, 2, 3}},
}

// BuildCube returns the fixed 8-vertex, 12-triangle cube spanning [-1, 1]³.
// Every triangle winds counter-clockwise seen from outside.
func BuildCube() *Mesh {
	m := &Mesh{
		Shape:     Cube,
		Vertices:  make([]Vec3, 0, len(cubeCorners)),
		Triangles: make([]Triangle, 0, 12),
	}
	m.Vertices = append(m.Vertices, cubeCorners[:]...)

	for f, corners := range cubeFaces {
		for _, tri := range cubeSplits[f] {
			m.addFace(corners[tri[0]], corners[tri[1]], corners[tri[2]])
		}
	}
	return m
}

// FaceOf returns the cube face triangle i belongs to.
func FaceOf(i int) CubeFace {
	return CubeFace(i / 2)
}
