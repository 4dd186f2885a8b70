package mathutil

import "errors"

// Mat4 is a 4×4 matrix stored column-major: element (row r, col c) lives at [c*4+r].
// Indices 12–14 hold the translation. Value type, same layout as a GL uniform.
type Mat4 [16]float64

var (
	// ErrDegenerateProjection is returned for a projection with zero depth range or an
	// unusable field of view.
	ErrDegenerateProjection = errors.New("mathutil: degenerate projection")

	// ErrDegenerateAxis is returned when a rotation axis is too short to normalize.
	ErrDegenerateAxis = errors.New("mathutil: degenerate rotation axis")
)

// axisEpsilon is the shortest axis RotateAxisAngle will normalize.
const axisEpsilon = 1e-6

func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Identity resets out to the identity matrix.
func Identity(out *Mat4) {
	*out = Mat4Identity()
}

// Mat4Mul returns a × b.
func Mat4Mul(a, b Mat4) Mat4 {
	var m Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			m[c*4+r] = a[0*4+r]*b[c*4+0] + a[1*4+r]*b[c*4+1] +
				a[2*4+r]*b[c*4+2] + a[3*4+r]*b[c*4+3]
		}
	}
	return m
}

// MulVec4 returns M × (v, w).
func (m Mat4) MulVec4(v Vec3, w float64) [4]float64 {
	return [4]float64{
		m[0]*v[0] + m[4]*v[1] + m[8]*v[2] + m[12]*w,
		m[1]*v[0] + m[5]*v[1] + m[9]*v[2] + m[13]*w,
		m[2]*v[0] + m[6]*v[1] + m[10]*v[2] + m[14]*w,
		m[3]*v[0] + m[7]*v[1] + m[11]*v[2] + m[15]*w,
	}
}

// MulPoint transforms a 3D point (w=1) and drops w. Affine matrices only.
func (m Mat4) MulPoint(v Vec3) Vec3 {
	r := m.MulVec4(v, 1)
	return Vec3{r[0], r[1], r[2]}
}

// Float32 narrows the matrix for upload to a float32 uniform.
func (m Mat4) Float32() [16]float32 {
	var f [16]float32
	for i, v := range m {
		f[i] = float32(v)
	}
	return f
}

// IsIdentity checks if the matrix is approximately identity.
func (m Mat4) IsIdentity() bool {
	id := Mat4Identity()
	for i := 0; i < 16; i++ {
		d := m[i] - id[i]
		if d > 1e-8 || d < -1e-8 {
			return false
		}
	}
	return true
}

// Translate writes a translated by v into out. out may alias a; when it does not, out
// first receives a copy of a. Only the translation column (12–15) differs from a.
func Translate(out, a *Mat4, v Vec3) {
	x, y, z := v[0], v[1], v[2]
	t0 := a[0]*x + a[4]*y + a[8]*z + a[12]
	t1 := a[1]*x + a[5]*y + a[9]*z + a[13]
	t2 := a[2]*x + a[6]*y + a[10]*z + a[14]
	t3 := a[3]*x + a[7]*y + a[11]*z + a[15]

	if out != a {
		*out = *a
	}
	out[12], out[13], out[14], out[15] = t0, t1, t2, t3
}

// RotateAxisAngle writes a × R(rad, axis) into out, where R is the Rodrigues rotation
// about the normalized axis. out may alias a. Returns ErrDegenerateAxis and leaves out
// unchanged when |axis| < 1e-6.
func RotateAxisAngle(out, a *Mat4, rad float64, axis Vec3) error {
	l := axis.Len()
	if !(l >= axisEpsilon) {
		return ErrDegenerateAxis
	}
	x, y, z := axis[0]/l, axis[1]/l, axis[2]/l

	s, c := sincos(rad)
	t := 1 - c

	// Rotation columns.
	b00, b01, b02 := x*x*t+c, y*x*t+z*s, z*x*t-y*s
	b10, b11, b12 := x*y*t-z*s, y*y*t+c, z*y*t+x*s
	b20, b21, b22 := x*z*t+y*s, y*z*t-x*s, z*z*t+c

	src := *a
	var m Mat4
	for r := 0; r < 4; r++ {
		a0, a1, a2 := src[0*4+r], src[1*4+r], src[2*4+r]
		m[0*4+r] = a0*b00 + a1*b01 + a2*b02
		m[1*4+r] = a0*b10 + a1*b11 + a2*b12
		m[2*4+r] = a0*b20 + a1*b21 + a2*b22
	}
	m[12], m[13], m[14], m[15] = src[12], src[13], src[14], src[15]

	*out = m
	return nil
}
