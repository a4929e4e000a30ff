package catv

import (
	"math"
	"testing"
)

func TestVector3Constructors(t *testing.T) {
	if v := V2(1, 2); v != (Vector3{1, 2, 0}) {
		t.Errorf("V2(1, 2) = %v, want (1, 2, 0)", v)
	}
	if v := V3(1, 2, 3); v != (Vector3{1, 2, 3}) {
		t.Errorf("V3(1, 2, 3) = %v, want (1, 2, 3)", v)
	}
	if v := Zero3(); v != (Vector3{}) {
		t.Errorf("Zero3() = %v, want zero", v)
	}
}

func TestVector3Arithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, 5, 6)

	tests := []struct {
		name string
		got  Vector3
		want Vector3
	}{
		{"add", a.Add(b), V3(5, 7, 9)},
		{"sub", a.Sub(b), V3(-3, -3, -3)},
		{"scale", a.Scale(2), V3(2, 4, 6)},
		{"div", b.Div(2), V3(2, 2.5, 3)},
		{"negate", a.Negate(), V3(-1, -2, -3)},
		{"lerp half", a.Lerp(b, 0.5), V3(2.5, 3.5, 4.5)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("got %v, want %v", tc.got, tc.want)
			}
		})
	}
}

func TestVector3Dot(t *testing.T) {
	if got := V3(1, 2, 3).Dot(V3(4, 5, 6)); got != 32 {
		t.Errorf("Dot = %v, want 32", got)
	}
}

func TestVector3Cross(t *testing.T) {
	tests := []struct {
		name string
		a, b Vector3
		want Vector3
	}{
		{"x cross y", V3(1, 0, 0), V3(0, 1, 0), V3(0, 0, 1)},
		{"y cross z", V3(0, 1, 0), V3(0, 0, 1), V3(1, 0, 0)},
		{"z cross x", V3(0, 0, 1), V3(1, 0, 0), V3(0, 1, 0)},
		{"y cross x", V3(0, 1, 0), V3(1, 0, 0), V3(0, 0, -1)},
		{"parallel", V3(2, 4, 6), V3(1, 2, 3), V3(0, 0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Cross(tc.b); got != tc.want {
				t.Errorf("Cross(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestVector3Length(t *testing.T) {
	if got := V3(3, 4, 0).Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := V3(1, 2, 2).LengthSq(); got != 9 {
		t.Errorf("LengthSq = %v, want 9", got)
	}
}

func TestVector3Normalize(t *testing.T) {
	n := V3(3, 4, 0).Normalize()
	if !n.ApproxEqual(V3(0.6, 0.8, 0), 1e-6) {
		t.Errorf("Normalize = %v, want (0.6, 0.8, 0)", n)
	}
	if l := n.Length(); math.Abs(float64(l)-1) > 1e-6 {
		t.Errorf("normalized length = %v, want 1", l)
	}

	zero := Zero3().Normalize()
	if zero != (Vector3{}) {
		t.Errorf("Normalize(zero) = %v, want zero", zero)
	}
	if !zero.IsFinite() {
		t.Error("Normalize(zero) produced non-finite components")
	}
}

func TestVector3DivByZero(t *testing.T) {
	v := V3(1, 0, -1).Div(0)
	if !math.IsInf(float64(v.X), 1) {
		t.Errorf("X = %v, want +Inf", v.X)
	}
	if !math.IsNaN(float64(v.Y)) {
		t.Errorf("Y = %v, want NaN", v.Y)
	}
	if !math.IsInf(float64(v.Z), -1) {
		t.Errorf("Z = %v, want -Inf", v.Z)
	}
	if v.IsFinite() {
		t.Error("IsFinite should be false after dividing by zero")
	}
}

func TestVector3String(t *testing.T) {
	if got := V3(1, -2.5, 0).String(); got != "(1, -2.5, 0)" {
		t.Errorf("String = %q", got)
	}
}

func TestVector4Constructors(t *testing.T) {
	if p := Point4(1, 2, 3); p.W != 1 {
		t.Errorf("Point4 W = %v, want 1", p.W)
	}
	if d := Direction4(1, 2, 3); d.W != 0 {
		t.Errorf("Direction4 W = %v, want 0", d.W)
	}
	if v := (Vector4{}); v.W != 0 {
		t.Errorf("zero value W = %v, want 0", v.W)
	}
	v := V4FromV3(V3(1, 2, 3), 7)
	if v != V4(1, 2, 3, 7) {
		t.Errorf("V4FromV3 = %v", v)
	}
	if v.Vec3() != V3(1, 2, 3) {
		t.Errorf("Vec3 = %v", v.Vec3())
	}
}

func TestVector4Arithmetic(t *testing.T) {
	a := V4(1, 2, 3, 4)
	b := V4(5, 6, 7, 8)

	tests := []struct {
		name string
		got  Vector4
		want Vector4
	}{
		{"add", a.Add(b), V4(6, 8, 10, 12)},
		{"sub", b.Sub(a), V4(4, 4, 4, 4)},
		{"scale", a.Scale(-1), V4(-1, -2, -3, -4)},
		{"div", b.Div(2), V4(2.5, 3, 3.5, 4)},
		{"negate", a.Negate(), V4(-1, -2, -3, -4)},
		{"lerp end", a.Lerp(b, 1), b},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("got %v, want %v", tc.got, tc.want)
			}
		})
	}
}

func TestVector4DotIncludesW(t *testing.T) {
	if got := V4(1, 2, 3, 4).Dot(V4(5, 6, 7, 8)); got != 70 {
		t.Errorf("Dot = %v, want 70", got)
	}
	if got := V4(0, 0, 0, 2).Dot(V4(0, 0, 0, 3)); got != 6 {
		t.Errorf("W-only Dot = %v, want 6", got)
	}
}

func TestVector4Normalize(t *testing.T) {
	n := V4(1, 1, 1, 1).Normalize()
	if !n.ApproxEqual(V4(0.5, 0.5, 0.5, 0.5), 1e-6) {
		t.Errorf("Normalize = %v, want all 0.5", n)
	}
	if got := (Vector4{}).Normalize(); got != (Vector4{}) {
		t.Errorf("Normalize(zero) = %v, want zero", got)
	}
	if got := V4(0, 0, 0, 2).Length(); got != 2 {
		t.Errorf("Length = %v, want 2", got)
	}
}
