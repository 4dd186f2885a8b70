package mathutil

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func approxEqual(a, b Mat4, eps float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

// sample is an arbitrary affine matrix: a rotation plus a translation.
func sample() Mat4 {
	m := Mat4(mgl64.HomogRotate3D(0.7, mgl64.Vec3{1, 2, 3}.Normalize()))
	m[12], m[13], m[14] = 0.5, -1.25, 3
	return m
}

func TestIdentity(t *testing.T) {
	m := sample()
	Identity(&m)
	if m != Mat4(mgl64.Ident4()) {
		t.Errorf("Identity produced %v", m)
	}
	if !m.IsIdentity() {
		t.Errorf("IsIdentity false for %v", m)
	}
}

func TestMat4MulMatchesMathgl(t *testing.T) {
	a := sample()
	b := Mat4(mgl64.Translate3D(1, 2, 3).Mul4(mgl64.HomogRotate3DY(0.3)))

	got := Mat4Mul(a, b)
	want := Mat4(mgl64.Mat4(a).Mul4(mgl64.Mat4(b)))
	if !approxEqual(got, want, 1e-12) {
		t.Errorf("Mat4Mul mismatch.\n got: %v\nwant: %v", got, want)
	}
}

func TestPerspective(t *testing.T) {
	m, err := Perspective(40, 1.0, 1, 100)
	if err != nil {
		t.Fatalf("Perspective: %v", err)
	}
	if want := -101.0 / 99.0; math.Abs(m[10]-want) > 1e-12 {
		t.Errorf("m[10] = %v, want %v", m[10], want)
	}
	if want := -200.0 / 99.0; math.Abs(m[14]-want) > 1e-12 {
		t.Errorf("m[14] = %v, want %v", m[14], want)
	}
	if m[11] != -1 || m[15] != 0 {
		t.Errorf("w row = (%v, %v), want (-1, 0)", m[11], m[15])
	}
	ang := math.Tan(Deg2Rad(20))
	if math.Abs(m[0]-0.5/ang) > 1e-12 || math.Abs(m[5]-0.5/ang) > 1e-12 {
		t.Errorf("scales = (%v, %v), want %v", m[0], m[5], 0.5/ang)
	}

	wide, _ := Perspective(40, 2.0, 1, 100)
	if math.Abs(wide[5]-2*m[5]) > 1e-12 {
		t.Errorf("aspect should scale y: %v vs %v", wide[5], m[5])
	}
}

func TestPerspectiveDegenerate(t *testing.T) {
	tests := []struct {
		name                   string
		fov, aspect, near, far float64
	}{
		{"near equals far", 40, 1, 5, 5},
		{"zero fov", 0, 1, 1, 100},
		{"straight fov", 180, 1, 1, 100},
		{"negative fov", -10, 1, 1, 100},
		{"nan", math.NaN(), 1, 1, 100},
		{"inf far", 40, 1, 1, math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Perspective(tt.fov, tt.aspect, tt.near, tt.far)
			if !errors.Is(err, ErrDegenerateProjection) {
				t.Errorf("err = %v, want ErrDegenerateProjection", err)
			}
		})
	}
}

func TestTranslateAliasing(t *testing.T) {
	a := sample()
	v := Vec3{0.25, -3, 7}

	var distinct Mat4
	Translate(&distinct, &a, v)

	aliased := a
	Translate(&aliased, &aliased, v)

	if distinct != aliased {
		t.Errorf("aliased and distinct results differ.\n distinct: %v\n  aliased: %v", distinct, aliased)
	}
	for i := 0; i < 12; i++ {
		if distinct[i] != a[i] {
			t.Errorf("element %d changed: %v -> %v", i, a[i], distinct[i])
		}
	}

	want := Mat4(mgl64.Mat4(a).Mul4(mgl64.Translate3D(v[0], v[1], v[2])))
	if !approxEqual(distinct, want, 1e-12) {
		t.Errorf("Translate mismatch.\n got: %v\nwant: %v", distinct, want)
	}
}

func TestAxisRotationsMatchMathgl(t *testing.T) {
	angle := Deg2Rad(35)
	tests := []struct {
		name   string
		rotate func(*Mat4, float64)
		ref    mgl64.Mat4
	}{
		{"x", RotateX, mgl64.HomogRotate3DX(angle)},
		{"y", RotateY, mgl64.HomogRotate3DY(angle)},
		{"z", RotateZ, mgl64.HomogRotate3DZ(angle)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Mat4Identity()
			tt.rotate(&m, angle)
			if !approxEqual(m, Mat4(tt.ref), 1e-12) {
				t.Errorf("identity rotated: %v, want %v", m, tt.ref)
			}

			// World-axis rotation composes on the left of an existing rotation.
			base := Mat4(mgl64.HomogRotate3D(0.4, mgl64.Vec3{0, 1, 1}.Normalize()))
			m = base
			tt.rotate(&m, angle)
			want := Mat4(tt.ref.Mul4(mgl64.Mat4(base)))
			if !approxEqual(m, want, 1e-12) {
				t.Errorf("composed rotation: %v, want %v", m, want)
			}
		})
	}
}

func TestAxisRotationKeepsTranslation(t *testing.T) {
	m := sample()
	RotateX(&m, 1)
	RotateY(&m, 2)
	RotateZ(&m, 3)
	if m[12] != 0.5 || m[13] != -1.25 || m[14] != 3 || m[15] != 1 {
		t.Errorf("translation column changed: %v", m[12:])
	}
}

func TestRotateAxisAngleMatchesMathgl(t *testing.T) {
	a := sample()
	axis := Vec3{-0.5, 1, 1}
	rad := Deg2Rad(-74)

	var out Mat4
	if err := RotateAxisAngle(&out, &a, rad, axis); err != nil {
		t.Fatalf("RotateAxisAngle: %v", err)
	}
	n := axis.Normalize()
	want := Mat4(mgl64.Mat4(a).Mul4(mgl64.HomogRotate3D(rad, mgl64.Vec3{n[0], n[1], n[2]})))
	if !approxEqual(out, want, 1e-12) {
		t.Errorf("RotateAxisAngle mismatch.\n got: %v\nwant: %v", out, want)
	}

	aliased := a
	if err := RotateAxisAngle(&aliased, &aliased, rad, axis); err != nil {
		t.Fatalf("RotateAxisAngle aliased: %v", err)
	}
	if aliased != out {
		t.Errorf("aliased result differs.\n got: %v\nwant: %v", aliased, out)
	}
}

func TestRotateAxisAngleDegenerate(t *testing.T) {
	for _, axis := range []Vec3{{1e-9, 0, 0}, {}, {math.NaN(), 0, 0}} {
		m := sample()
		before := m
		err := RotateAxisAngle(&m, &m, 1.2, axis)
		if !errors.Is(err, ErrDegenerateAxis) {
			t.Errorf("axis %v: err = %v, want ErrDegenerateAxis", axis, err)
		}
		if m != before {
			t.Errorf("axis %v: matrix changed to %v", axis, m)
		}
	}
}

func TestRotateAxisAngleMatchesAxisRotations(t *testing.T) {
	m := Mat4Identity()
	if err := RotateAxisAngle(&m, &m, 0.9, Vec3{0, 0, 2}); err != nil {
		t.Fatal(err)
	}
	z := Mat4Identity()
	RotateZ(&z, 0.9)
	if !approxEqual(m, z, 1e-12) {
		t.Errorf("axis-angle about Z: %v, RotateZ: %v", m, z)
	}
}

func TestMulVec4(t *testing.T) {
	m := Mat4Identity()
	Translate(&m, &m, Vec3{1, 2, 3})
	p := m.MulPoint(Vec3{1, 1, 1})
	if p != (Vec3{2, 3, 4}) {
		t.Errorf("MulPoint = %v, want (2, 3, 4)", p)
	}
	h := m.MulVec4(Vec3{1, 1, 1}, 0)
	if h != [4]float64{1, 1, 1, 0} {
		t.Errorf("direction should ignore translation: %v", h)
	}
}
