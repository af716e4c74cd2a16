package geom

import (
	"math"
	"testing"
)

func TestVec3_Arithmetic(t *testing.T) {
	tests := []struct {
		name   string
		got    Vec3
		expect Vec3
	}{
		{"add", V3(1, 2, 3).Add(V3(4, -5, 6)), V3(5, -3, 9)},
		{"sub", V3(1, 2, 3).Sub(V3(4, -5, 6)), V3(-3, 7, -3)},
		{"mul", V3(1, -2, 3).Mul(2), V3(2, -4, 6)},
		{"neg", V3(1, -2, 0).Neg(), V3(-1, 2, 0)},
		{"cross x*y", V3(1, 0, 0).Cross(V3(0, 1, 0)), V3(0, 0, 1)},
		{"cross y*z", V3(0, 1, 0).Cross(V3(0, 0, 1)), V3(1, 0, 0)},
		{"cross parallel", V3(2, 4, 6).Cross(V3(1, 2, 3)), V3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Approx(tt.expect, 1e-12) {
				t.Errorf("got %v, want %v", tt.got, tt.expect)
			}
		})
	}
}

func TestVec3_Length(t *testing.T) {
	v := V3(2, 3, 6)
	if got := v.LengthSq(); got != 49 {
		t.Errorf("LengthSq() = %v, want 49", got)
	}
	if got := v.Length(); got != 7 {
		t.Errorf("Length() = %v, want 7", got)
	}
	if got := v.Dot(V3(1, 1, 1)); got != 11 {
		t.Errorf("Dot() = %v, want 11", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	n := V3(0, 3, 4).Normalize()
	if math.Abs(n.Length()-1) > 1e-12 {
		t.Errorf("Normalize() length = %v, want 1", n.Length())
	}
	if !n.Approx(V3(0, 0.6, 0.8), 1e-12) {
		t.Errorf("Normalize() = %v, want (0, 0.6, 0.8)", n)
	}

	if z := (Vec3{}).Normalize(); z != (Vec3{}) {
		t.Errorf("zero.Normalize() = %v, want zero", z)
	}
}

func TestVec2_Operations(t *testing.T) {
	tests := []struct {
		name   string
		got    Vec2
		expect Vec2
	}{
		{"add", V2(1, 2).Add(V2(3, 4)), V2(4, 6)},
		{"sub", V2(5, 7).Sub(V2(2, 3)), V2(3, 4)},
		{"mul", V2(1, -2).Mul(3), V2(3, -6)},
		{"perp", V2(1, 0).Perp(), V2(0, 1)},
		{"perp twice", V2(2, 3).Perp().Perp(), V2(-2, -3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Approx(tt.expect, 1e-12) {
				t.Errorf("got %v, want %v", tt.got, tt.expect)
			}
		})
	}

	if got := V2(1, 2).Dot(V2(3, 4)); got != 11 {
		t.Errorf("Dot() = %v, want 11", got)
	}
	if got := V2(1, 0).Cross(V2(0, 1)); got != 1 {
		t.Errorf("Cross() = %v, want 1", got)
	}
}

func TestRay_At(t *testing.T) {
	r := Ray{Origin: V3(1, 2, 3), Dir: V3(0, -1, 2)}
	if got := r.At(2.5); !got.Approx(V3(1, -0.5, 8), 1e-12) {
		t.Errorf("At(2.5) = %v, want (1, -0.5, 8)", got)
	}
}
