package catv

import "golang.org/x/image/math/f32"

// Conversions to and from golang.org/x/image/math/f32. Both sides are
// row-major float32, so element m[r][c] maps to a[N*r+c] and every
// conversion is exact.

// F32 returns v as an f32.Vec3.
func (a Vector3) F32() f32.Vec3 {
	return f32.Vec3{a.X, a.Y, a.Z}
}

// Vector3FromF32 converts an f32.Vec3.
func Vector3FromF32(v f32.Vec3) Vector3 {
	return Vector3{v[0], v[1], v[2]}
}

// F32 returns v as an f32.Vec4.
func (v Vector4) F32() f32.Vec4 {
	return f32.Vec4{v.X, v.Y, v.Z, v.W}
}

// Vector4FromF32 converts an f32.Vec4.
func Vector4FromF32(v f32.Vec4) Vector4 {
	return Vector4{v[0], v[1], v[2], v[3]}
}

// F32 returns m as an f32.Mat3.
func (m Matrix3) F32() f32.Mat3 {
	var a f32.Mat3
	for r := range 3 {
		for c := range 3 {
			a[3*r+c] = m[r][c]
		}
	}
	return a
}

// Matrix3FromF32 converts an f32.Mat3.
func Matrix3FromF32(a f32.Mat3) Matrix3 {
	var m Matrix3
	for r := range 3 {
		for c := range 3 {
			m[r][c] = a[3*r+c]
		}
	}
	return m
}

// F32 returns m as an f32.Mat4.
func (m Matrix4) F32() f32.Mat4 {
	var a f32.Mat4
	for r := range 4 {
		for c := range 4 {
			a[4*r+c] = m[r][c]
		}
	}
	return a
}

// Matrix4FromF32 converts an f32.Mat4.
func Matrix4FromF32(a f32.Mat4) Matrix4 {
	var m Matrix4
	for r := range 4 {
		for c := range 4 {
			m[r][c] = a[4*r+c]
		}
	}
	return m
}
