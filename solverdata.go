package rigid2d

// Position is one body's center of mass position and angle, as
// maintained by the island solver.
type Position struct {
	C Vec2
	A float64
}

// Velocity is one body's linear and angular velocity.
type Velocity struct {
	V Vec2
	W float64
}

// TimeStep carries the per-step metadata the joint needs but does not
// own: the warm-start ratio between this step's dt and the previous
// one, and whether warm-starting is enabled at all.
type TimeStep struct {
	DtRatio      float64
	WarmStarting bool
}

// SolverData is what the island solver hands to every joint each
// substep: indexable position/velocity arrays (indexed by each body's
// IslandIndex) plus the step metadata. The joint mutates Positions and
// Velocities in place; it owns none of the backing arrays.
type SolverData struct {
	Positions  []Position
	Velocities []Velocity
	Step       TimeStep
}

// JointBody is the minimal per-body data a joint needs from its host
// bodies: where in the solver's flat Positions/Velocities arrays this
// body lives, and its mass properties.
type JointBody struct {
	IslandIndex int
	InvMass     float64
	Mass        float64
}
