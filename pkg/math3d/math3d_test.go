package math3d

import (
	"math"
	"testing"
)

const tol = 1e-9

func TestVec3Cross(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec3
		want Vec3
	}{
		{"x cross y", V3(1, 0, 0), V3(0, 1, 0), V3(0, 0, 1)},
		{"y cross z", V3(0, 1, 0), V3(0, 0, 1), V3(1, 0, 0)},
		{"z cross x", V3(0, 0, 1), V3(1, 0, 0), V3(0, 1, 0)},
		{"anti-commutative", V3(0, 1, 0), V3(1, 0, 0), V3(0, 0, -1)},
		{"parallel", V3(2, 4, 6), V3(1, 2, 3), V3(0, 0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Cross(tc.b); got != tc.want {
				t.Errorf("%v.Cross(%v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestVec3Cross2D(t *testing.T) {
	a := V3(3, 1, 99)
	b := V3(1, 2, -42)
	// Z components must not contribute.
	if got, want := a.Cross2D(b), a.Cross(b).Z; got != want {
		t.Errorf("Cross2D = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := V3(3, 4, 12).Normalize()
	if math.Abs(n.Len()-1) > tol {
		t.Errorf("Normalize().Len() = %v, want 1", n.Len())
	}
	if z := Zero3().Normalize(); z != Zero3() {
		t.Errorf("zero vector normalized to %v", z)
	}
}

func TestVec3WithLength(t *testing.T) {
	r := math.Sqrt(30000)
	tests := []struct {
		name string
		v    Vec3
	}{
		{"cube corner", V3(100, 100, 100)},
		{"edge midpoint", V3(0, 0, 100)},
		{"tiny", V3(1e-3, -2e-3, 5e-4)},
		{"large", V3(-1e6, 3e5, 2e6)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.v.WithLength(r)
			if math.Abs(got.Len()-r) > 1e-9*r {
				t.Errorf("len = %v, want %v", got.Len(), r)
			}
			// direction preserved
			if math.Abs(got.Normalize().Dot(tc.v.Normalize())-1) > tol {
				t.Errorf("direction changed: %v -> %v", tc.v, got)
			}
		})
	}

	if got := Zero3().WithLength(r); got != Zero3() {
		t.Errorf("zero vector rescaled to %v", got)
	}
}

func TestVec3Midpoint(t *testing.T) {
	got := V3(100, 100, 100).Midpoint(V3(-100, -100, 100))
	want := V3(0, 0, 100)
	if got != want {
		t.Errorf("Midpoint = %v, want %v", got, want)
	}
}

func TestRotationBuilders(t *testing.T) {
	tests := []struct {
		name string
		m    Mat3
		in   Vec3
		want Vec3
	}{
		{"identity", Identity3(), V3(1, 2, 3), V3(1, 2, 3)},
		{"RotateX 90 y", RotateX(math.Pi / 2), V3(0, 1, 0), V3(0, 0, 1)},
		{"RotateX 90 z", RotateX(math.Pi / 2), V3(0, 0, 1), V3(0, -1, 0)},
		{"RotateY 90 x", RotateY(math.Pi / 2), V3(1, 0, 0), V3(0, 0, 1)},
		{"RotateY 90 z", RotateY(math.Pi / 2), V3(0, 0, 1), V3(-1, 0, 0)},
		{"RotateY keeps y", RotateY(1.234), V3(0, 5, 0), V3(0, 5, 0)},
		{"RotateX keeps x", RotateX(1.234), V3(5, 0, 0), V3(5, 0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.m.MulVec3(tc.in); !got.ApproxEqual(tc.want, tol) {
				t.Errorf("MulVec3(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestRotationCompositionOrder(t *testing.T) {
	angles := []struct{ h, v float64 }{
		{0, 0}, {90, 90}, {30, -45}, {-120, 200}, {720.5, -33.3},
	}
	points := []Vec3{
		V3(1, 0, 0), V3(0, 1, 0), V3(0, 0, 1), V3(100, -100, 100),
	}

	for _, a := range angles {
		combined := Rotation(a.h, a.v)
		h := RotateY(DegToRad(a.h))
		v := RotateX(DegToRad(a.v))
		for _, p := range points {
			got := combined.MulVec3(p)
			want := h.MulVec3(v.MulVec3(p))
			if !got.ApproxEqual(want, 1e-9) {
				t.Errorf("Rotation(%v, %v) on %v = %v, want vertical-then-horizontal %v", a.h, a.v, p, got, want)
			}
		}
	}

	// The order is observable: (0,1,0) tilted up onto +Z then turned onto -X.
	got := Rotation(90, 90).MulVec3(V3(0, 1, 0))
	if !got.ApproxEqual(V3(-1, 0, 0), tol) {
		t.Errorf("Rotation(90, 90) on +Y = %v, want (-1, 0, 0)", got)
	}
}

func TestRotationOrthonormal(t *testing.T) {
	for h := -360.0; h <= 360; h += 37.5 {
		for v := -360.0; v <= 360; v += 41.25 {
			m := Rotation(h, v)

			if d := m.Determinant(); math.Abs(d-1) > tol {
				t.Fatalf("Rotation(%v, %v) determinant = %v", h, v, d)
			}

			x := m.MulVec3(V3(1, 0, 0))
			y := m.MulVec3(V3(0, 1, 0))
			z := m.MulVec3(V3(0, 0, 1))
			for _, u := range []Vec3{x, y, z} {
				if math.Abs(u.Len()-1) > tol {
					t.Fatalf("Rotation(%v, %v) changed length: %v", h, v, u.Len())
				}
			}
			if math.Abs(x.Dot(y)) > tol || math.Abs(y.Dot(z)) > tol || math.Abs(x.Dot(z)) > tol {
				t.Fatalf("Rotation(%v, %v) broke orthogonality", h, v)
			}
		}
	}
}

func TestMat3TransposeIsInverseForRotation(t *testing.T) {
	m := Rotation(33, -71)
	p := m.Transpose().Mul(m)
	id := Identity3()
	for i := range p {
		if math.Abs(p[i]-id[i]) > tol {
			t.Fatalf("Mᵀ·M = %v, want identity", p)
		}
	}
}

func TestMat3GetSet(t *testing.T) {
	var m Mat3
	m.Set(1, 2, 7)
	if m.Get(1, 2) != 7 || m[5] != 7 {
		t.Errorf("Set/Get row-major mismatch: %v", m)
	}
}

func TestDegToRad(t *testing.T) {
	if got := DegToRad(180); math.Abs(got-math.Pi) > tol {
		t.Errorf("DegToRad(180) = %v", got)
	}
	if got := DegToRad(-90); math.Abs(got+math.Pi/2) > tol {
		t.Errorf("DegToRad(-90) = %v", got)
	}
}
