// Package motion eases transitions between catv values with spring physics.
package motion

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/catv/pkg/catv"
)

// Default spring parameters. Damping 1.0 is critically damped (no
// overshoot).
const (
	DefaultFrequency = 6.0
	DefaultDamping   = 1.0
)

// Blend animates a parameter T from 0 toward 1 with a harmonica spring.
type Blend struct {
	T        float64
	Velocity float64
	spring   harmonica.Spring
}

// NewBlend creates a blend stepped fps times per second.
func NewBlend(fps int, frequency, damping float64) *Blend {
	return &Blend{
		spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
	}
}

// Step advances one frame and returns the new T.
func (b *Blend) Step() float64 {
	b.T, b.Velocity = b.spring.Update(b.T, b.Velocity, 1)
	return b.T
}

// Done reports whether T has settled within eps of 1.
func (b *Blend) Done(eps float64) bool {
	return math.Abs(1-b.T) <= eps && math.Abs(b.Velocity) <= eps
}

// Reset returns the blend to T = 0 at rest.
func (b *Blend) Reset() {
	b.T, b.Velocity = 0, 0
}

// Matrix4Frames returns n eased frames moving from one matrix to another.
// Frame i is from.Lerp(to, T) after i+1 spring steps.
func Matrix4Frames(from, to catv.Matrix4, fps, n int) []catv.Matrix4 {
	b := NewBlend(fps, DefaultFrequency, DefaultDamping)
	frames := make([]catv.Matrix4, n)
	for i := range frames {
		frames[i] = from.Lerp(to, float32(b.Step()))
	}
	return frames
}

// Vector3Frames returns n eased frames moving from one vector to another.
func Vector3Frames(from, to catv.Vector3, fps, n int) []catv.Vector3 {
	b := NewBlend(fps, DefaultFrequency, DefaultDamping)
	frames := make([]catv.Vector3, n)
	for i := range frames {
		frames[i] = from.Lerp(to, float32(b.Step()))
	}
	return frames
}
