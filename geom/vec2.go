// Package geom provides the 2D value types shared by the narrow-phase
// colliders and the constant-volume joint: a vector, a rotation, and a
// rigid transform composing the two. All three are plain value types —
// no shared state, no allocation beyond the values themselves.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 is a 2-element vector, also used as a point. It is mgl64's own
// Vec2 rather than a hand-rolled struct, so the arithmetic (Add, Sub,
// Mul, Dot, Len, Normalize...) all comes from the library.
type Vec2 = mgl64.Vec2

// Cross returns the 2D (scalar) cross product of a and b. mgl64 has no
// 2D cross since cross is a vector op in 3D and a scalar op in 2D; this
// is the one piece of Vec2 arithmetic the library doesn't hand us.
func Cross(a, b Vec2) float64 {
	return a.X()*b.Y() - a.Y()*b.X()
}

// CrossSV returns the vector v rotated 90 degrees counter-clockwise and
// scaled by s: cross(s, v) in the convention where s is a scalar and v
// a vector.
func CrossSV(s float64, v Vec2) Vec2 {
	return Vec2{-s * v.Y(), s * v.X()}
}

// Skew returns v rotated 90 degrees counter-clockwise: (-v.Y, v.X).
func Skew(v Vec2) Vec2 {
	return Vec2{-v.Y(), v.X()}
}

// AeqZero reports whether v is close enough to the zero vector that it
// makes no numerical difference, using the package Epsilon tolerance.
func AeqZero(v Vec2) bool {
	return v.Dot(v) < Epsilon*Epsilon
}

// Lerp returns the point a fraction t of the way from a to b.
func Lerp(a, b Vec2, t float64) Vec2 {
	return Vec2{a.X() + (b.X()-a.X())*t, a.Y() + (b.Y()-a.Y())*t}
}

// ClampMagnitude returns v scaled down so its length does not exceed
// max; v is returned unchanged if it is already within bounds.
func ClampMagnitude(v Vec2, max float64) Vec2 {
	lenSqr := v.Dot(v)
	if lenSqr <= max*max {
		return v
	}
	scale := max / math.Sqrt(lenSqr)
	return v.Mul(scale)
}
