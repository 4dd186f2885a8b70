package mathutil

import "math"

// RotateX rotates m in place about the world X axis. Angle in radians, right-handed.
// Rows 1 and 2 of the upper 3×3 are mixed; the translation column is left alone.
func RotateX(m *Mat4, a float64) {
	s, c := sincos(a)
	m1, m5, m9 := m[1], m[5], m[9]

	m[1] = m[1]*c - m[2]*s
	m[5] = m[5]*c - m[6]*s
	m[9] = m[9]*c - m[10]*s

	m[2] = m[2]*c + m1*s
	m[6] = m[6]*c + m5*s
	m[10] = m[10]*c + m9*s
}

// RotateY rotates m in place about the world Y axis.
func RotateY(m *Mat4, a float64) {
	s, c := sincos(a)
	m0, m4, m8 := m[0], m[4], m[8]

	m[0] = c*m[0] + s*m[2]
	m[4] = c*m[4] + s*m[6]
	m[8] = c*m[8] + s*m[10]

	m[2] = c*m[2] - s*m0
	m[6] = c*m[6] - s*m4
	m[10] = c*m[10] - s*m8
}

// RotateZ rotates m in place about the world Z axis.
func RotateZ(m *Mat4, a float64) {
	s, c := sincos(a)
	m0, m4, m8 := m[0], m[4], m[8]

	m[0] = c*m[0] - s*m[1]
	m[4] = c*m[4] - s*m[5]
	m[8] = c*m[8] - s*m[9]

	m[1] = c*m[1] + s*m0
	m[5] = c*m[5] + s*m4
	m[9] = c*m[9] + s*m8
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

func sincos(a float64) (float64, float64) {
	return math.Sincos(a)
}
