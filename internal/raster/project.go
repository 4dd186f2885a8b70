package raster

import (
	"icosphere-renderer/internal/mathutil"
	"icosphere-renderer/internal/mesh"
	"icosphere-renderer/internal/scene"
)

// minW rejects vertices at or behind the camera plane.
const minW = 1e-6

// Projected holds per-vertex screen positions for one frame.
type Projected struct {
	X, Y  []float64       // pixel coordinates, y down
	Depth []float64       // -NDC z, larger is nearer
	Eye   []mathutil.Vec3 // eye-space positions, for face normals
	Valid []bool          // false when the vertex is behind the camera
}

// Project transforms the frame's mesh vertices to screen space for a w×h target.
func Project(f scene.Frame, w, h int) Projected {
	m := f.Mesh
	n := len(m.Vertices)
	p := Projected{
		X:     make([]float64, n),
		Y:     make([]float64, n),
		Depth: make([]float64, n),
		Eye:   make([]mathutil.Vec3, n),
		Valid: make([]bool, n),
	}

	mv := f.ModelView()
	halfW, halfH := float64(w)/2, float64(h)/2

	for i, v := range m.Vertices {
		eye := mv.MulPoint(v)
		clip := f.Projection.MulVec4(eye, 1)
		p.Eye[i] = eye

		if clip[3] <= minW {
			continue
		}
		invW := 1 / clip[3]
		p.X[i] = (clip[0]*invW + 1) * halfW
		p.Y[i] = (1 - clip[1]*invW) * halfH
		p.Depth[i] = -clip[2] * invW
		p.Valid[i] = true
	}
	return p
}

// faceNormal returns the eye-space unit normal of t following its winding.
func (p *Projected) faceNormal(t mesh.Triangle) mathutil.Vec3 {
	a, b, c := p.Eye[t[0]], p.Eye[t[1]], p.Eye[t[2]]
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}
