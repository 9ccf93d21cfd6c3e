package rigid2d

// ManifoldType tags what a Manifold's localPoint/localNormal mean.
type ManifoldType int

const (
	ManifoldCircles ManifoldType = iota
	ManifoldFaceA
	ManifoldFaceB
)

// ManifoldPoint is one contact point: its position in the incident
// shape's local frame (so it transforms correctly under small body
// rotations, which is what makes warm-starting valid), its feature ID,
// and solver-owned accumulators the narrow phase never touches.
type ManifoldPoint struct {
	LocalPoint     Vec2
	ID             ContactID
	NormalImpulse  float64
	TangentImpulse float64
}

// Manifold is the output of every pairwise collider: zero to two
// contact points plus the reference-frame geometry needed to separate
// the shapes. PointCount = 0 is the sole "no contact" signal; there is
// no error return from a collider.
type Manifold struct {
	Type        ManifoldType
	LocalPoint  Vec2
	LocalNormal Vec2
	PointCount  int
	Points      [MaxManifoldPoints]ManifoldPoint
}

// Reset clears m to the empty manifold, ready for reuse by the next
// pairwise test on the same shape pair.
func (m *Manifold) Reset() {
	*m = Manifold{}
}
