// Package catv provides fixed-size float32 vectors and matrices for 2D and 3D
// engines: Vector3, Vector4, Matrix3 and Matrix4.
//
// Every type is a plain value. Operations never mutate their receiver except
// the explicit setters (Set, SwapRows) on pointer receivers.
package catv

import (
	"fmt"
	"math"
)

// Vector3 represents a 3D vector.
type Vector3 struct {
	X, Y, Z float32
}

// V3 creates a new Vector3.
func V3(x, y, z float32) Vector3 {
	return Vector3{x, y, z}
}

// V2 creates a Vector3 in the XY plane (z = 0).
func V2(x, y float32) Vector3 {
	return Vector3{x, y, 0}
}

// Zero3 returns the zero vector.
func Zero3() Vector3 {
	return Vector3{}
}

// Add returns the vector sum a + b.
func (a Vector3) Add(b Vector3) Vector3 {
	return Vector3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns the vector difference a - b.
func (a Vector3) Sub(b Vector3) Vector3 {
	return Vector3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Scale returns the scalar product a * s.
func (a Vector3) Scale(s float32) Vector3 {
	return Vector3{a.X * s, a.Y * s, a.Z * s}
}

// Div returns the scalar division a / s. A zero s yields Inf or NaN
// components.
func (a Vector3) Div(s float32) Vector3 {
	return Vector3{a.X / s, a.Y / s, a.Z / s}
}

// Dot returns the dot product a · b.
func (a Vector3) Dot(b Vector3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the right-handed cross product a × b.
func (a Vector3) Cross(b Vector3) Vector3 {
	return Vector3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Length returns the Euclidean length of the vector.
func (a Vector3) Length() float32 {
	return sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z)
}

// LengthSq returns the squared length (no sqrt).
func (a Vector3) LengthSq() float32 {
	return a.X*a.X + a.Y*a.Y + a.Z*a.Z
}

// Normalize returns the unit vector in the same direction.
// The zero vector normalizes to itself.
func (a Vector3) Normalize() Vector3 {
	l := a.Length()
	if l == 0 {
		return Vector3{}
	}
	return Vector3{a.X / l, a.Y / l, a.Z / l}
}

// Negate returns the negated vector.
func (a Vector3) Negate() Vector3 {
	return Vector3{-a.X, -a.Y, -a.Z}
}

// Lerp returns the linear interpolation between a and b by t.
func (a Vector3) Lerp(b Vector3, t float32) Vector3 {
	return Vector3{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
	}
}

// ApproxEqual reports whether every component of a is within eps of b.
func (a Vector3) ApproxEqual(b Vector3, eps float32) bool {
	return near(a.X, b.X, eps) && near(a.Y, b.Y, eps) && near(a.Z, b.Z, eps)
}

// IsFinite reports whether no component is NaN or infinite.
func (a Vector3) IsFinite() bool {
	return finite(a.X) && finite(a.Y) && finite(a.Z)
}

func (a Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", a.X, a.Y, a.Z)
}

func sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

func abs(x float32) float32 {
	return float32(math.Abs(float64(x)))
}

func near(a, b, eps float32) bool {
	return abs(a-b) <= eps
}

func finite(x float32) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
