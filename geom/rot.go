package geom

import "math"

// Rot is a 2D rotation stored as (cos, sin) rather than an angle, so
// composing and applying rotations is pure multiply-add, never a
// trigonometric call on the hot path.
type Rot struct {
	C, S float64
}

// Identity is the zero-angle rotation.
var Identity = Rot{C: 1, S: 0}

// NewRot builds a Rot from an angle in radians.
func NewRot(angle float64) Rot {
	return Rot{C: math.Cos(angle), S: math.Sin(angle)}
}

// Angle recovers the angle in radians. Rarely needed on the hot path;
// provided for debugging and tests.
func (r Rot) Angle() float64 {
	return math.Atan2(r.S, r.C)
}

// Mul rotates v by r.
func (r Rot) Mul(v Vec2) Vec2 {
	return Vec2{r.C*v.X() - r.S*v.Y(), r.S*v.X() + r.C*v.Y()}
}

// MulT rotates v by the inverse (transpose) of r.
func (r Rot) MulT(v Vec2) Vec2 {
	return Vec2{r.C*v.X() + r.S*v.Y(), -r.S*v.X() + r.C*v.Y()}
}

// MulRot composes two rotations: the result rotates by a then by b.
func MulRot(a, b Rot) Rot {
	return Rot{
		C: a.C*b.C - a.S*b.S,
		S: a.S*b.C + a.C*b.S,
	}
}

// MulTRot returns the rotation that takes b's frame back through a's
// inverse: aᵀ·b.
func MulTRot(a, b Rot) Rot {
	return Rot{
		C: a.C*b.C + a.S*b.S,
		S: a.C*b.S - a.S*b.C,
	}
}
