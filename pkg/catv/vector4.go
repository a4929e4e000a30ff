package catv

import "fmt"

// Vector4 represents a 4D vector or a homogeneous 3D point.
// W is 1 for points and 0 for directions.
type Vector4 struct {
	X, Y, Z, W float32
}

// V4 creates a new Vector4.
func V4(x, y, z, w float32) Vector4 {
	return Vector4{x, y, z, w}
}

// Point4 creates a homogeneous point (w = 1).
func Point4(x, y, z float32) Vector4 {
	return Vector4{x, y, z, 1}
}

// Direction4 creates a homogeneous direction (w = 0).
func Direction4(x, y, z float32) Vector4 {
	return Vector4{x, y, z, 0}
}

// V4FromV3 creates a Vector4 from a Vector3 with the given W.
func V4FromV3(v Vector3, w float32) Vector4 {
	return Vector4{v.X, v.Y, v.Z, w}
}

// Vec3 returns the XYZ portion, ignoring W.
func (v Vector4) Vec3() Vector3 {
	return Vector3{v.X, v.Y, v.Z}
}

// Add returns the vector sum.
//
//nolint:st1016 // a+b naming convention is clearer for vector operations
func (a Vector4) Add(b Vector4) Vector4 {
	return Vector4{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W}
}

// Sub returns the vector difference.
//
//nolint:st1016 // a-b naming convention is clearer for vector operations
func (a Vector4) Sub(b Vector4) Vector4 {
	return Vector4{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W}
}

// Scale returns the scalar product.
func (v Vector4) Scale(s float32) Vector4 {
	return Vector4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Div returns the scalar division. Division by zero is not trapped.
func (v Vector4) Div(s float32) Vector4 {
	return Vector4{v.X / s, v.Y / s, v.Z / s, v.W / s}
}

// Dot returns the dot product, W included.
//
//nolint:st1016 // a·b naming convention is clearer for vector operations
func (a Vector4) Dot(b Vector4) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// Length returns the Euclidean length over all four components.
func (v Vector4) Length() float32 {
	return sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W)
}

// LengthSq returns the squared length.
func (v Vector4) LengthSq() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

// Normalize returns the unit vector, or the zero vector when v has no length.
func (v Vector4) Normalize() Vector4 {
	l := v.Length()
	if l == 0 {
		return Vector4{}
	}
	return Vector4{v.X / l, v.Y / l, v.Z / l, v.W / l}
}

// Negate returns the negated vector.
func (v Vector4) Negate() Vector4 {
	return Vector4{-v.X, -v.Y, -v.Z, -v.W}
}

// Lerp returns linear interpolation.
//
//nolint:st1016 // a,b naming convention is clearer for interpolation
func (a Vector4) Lerp(b Vector4, t float32) Vector4 {
	return Vector4{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
		a.W + (b.W-a.W)*t,
	}
}

// ApproxEqual reports whether every component is within eps.
//
//nolint:st1016 // a,b naming convention is clearer for comparisons
func (a Vector4) ApproxEqual(b Vector4, eps float32) bool {
	return near(a.X, b.X, eps) && near(a.Y, b.Y, eps) &&
		near(a.Z, b.Z, eps) && near(a.W, b.W, eps)
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vector4) IsFinite() bool {
	return finite(v.X) && finite(v.Y) && finite(v.Z) && finite(v.W)
}

func (v Vector4) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", v.X, v.Y, v.Z, v.W)
}
