package geom

// Transform is a rigid transform: rotate by Q, then translate by P.
// Applying it to a local point v gives a world point Q·v + P.
type Transform struct {
	P Vec2
	Q Rot
}

// NewTransform builds a Transform from a position and an angle.
func NewTransform(p Vec2, angle float64) Transform {
	return Transform{P: p, Q: NewRot(angle)}
}

// IdentityTransform is the zero translation, zero rotation transform.
var IdentityTransform = Transform{P: Vec2{}, Q: Identity}

// Mul maps a local point v into world space.
func (t Transform) Mul(v Vec2) Vec2 {
	return t.Q.Mul(v).Add(t.P)
}

// MulT maps a world point v back into the frame described by t.
func (t Transform) MulT(v Vec2) Vec2 {
	return t.Q.MulT(v.Sub(t.P))
}

// MulTransform composes two transforms: MulTransform(a, b).Mul(v) equals
// a.Mul(b.Mul(v)) — b is applied first, then a.
func MulTransform(a, b Transform) Transform {
	return Transform{
		P: a.Mul(b.P),
		Q: MulRot(a.Q, b.Q),
	}
}

// MulTTransform returns the transform that expresses b relative to a's
// frame: a⁻¹ ∘ b.
func MulTTransform(a, b Transform) Transform {
	return Transform{
		P: a.Q.MulT(b.P.Sub(a.P)),
		Q: MulTRot(a.Q, b.Q),
	}
}
