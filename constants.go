package rigid2d

// Epsilon is the fuzz tolerance for "close enough to on the edge"
// comparisons in the colliders.
const Epsilon = 1e-12

// LinearSlop is the physical tolerance (in meters) below which a
// position correction is considered satisfied.
const LinearSlop = 0.005

// AngularSlop is the radian tolerance used by the edge-polygon
// collider's normal-cone test, roughly 2 degrees.
const AngularSlop = 2.0 / 180.0 * 3.14159265358979323846

// MaxLinearCorrection bounds how far a single position-constraint
// iteration may move a body.
const MaxLinearCorrection = 0.2

// PolygonRadius is the polygon skin thickness; EPCollider's m_radius is
// twice this (one radius per shape).
const PolygonRadius = 2.0 * LinearSlop

// MaxManifoldPoints is the maximum number of contact points a single
// manifold can hold.
const MaxManifoldPoints = 2

// MaxPolygonVertices mirrors shapes.MaxPolygonVertices at package level;
// the polygon arrays themselves are sized by the shapes constant.
const MaxPolygonVertices = 8

// kTol is the reference-face hysteresis bias used by CollidePolygons:
// separations within this margin of each other keep polygon A as the
// reference face. The edge-polygon axis selection uses kRelativeTol and
// kAbsoluteTol instead.
const kTol = 0.1 * LinearSlop

// kRelativeTol and kAbsoluteTol bias EPCollider's edge-vs-polygon axis
// selection toward the edge axis unless the polygon axis is clearly
// better, avoiding axis flip-flop between nearly-tied separations.
const (
	kRelativeTol = 0.98
	kAbsoluteTol = 0.001
)
