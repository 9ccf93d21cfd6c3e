package rigid2d

import "math"

// DistanceJoint constrains the distance between two bodies to a rest
// length. ConstantVolumeJoint owns one per ring edge unless the caller
// supplies its own.
type DistanceJoint struct {
	BodyA, BodyB JointBody
	Length       float64
}

// NewDistanceJoint builds a rest-length distance joint between two
// bodies, measuring the length from their current positions.
func NewDistanceJoint(bodyA, bodyB JointBody, cA, cB Vec2) *DistanceJoint {
	return &DistanceJoint{BodyA: bodyA, BodyB: bodyB, Length: cB.Sub(cA).Len()}
}

// SolveVelocityConstraints applies one Gauss-Seidel impulse that drives
// the relative velocity along the joint axis toward zero: an
// invMass-weighted accumulate-then-apply step along a single bilateral
// axis.
func (d *DistanceJoint) SolveVelocityConstraints(data SolverData) {
	cA := data.Positions[d.BodyA.IslandIndex].C
	cB := data.Positions[d.BodyB.IslandIndex].C
	axis := cB.Sub(cA)
	length := axis.Len()
	if length < Epsilon {
		return
	}
	axis = axis.Mul(1 / length)

	vA := data.Velocities[d.BodyA.IslandIndex].V
	vB := data.Velocities[d.BodyB.IslandIndex].V

	relVel := vB.Sub(vA).Dot(axis)
	invMassSum := d.BodyA.InvMass + d.BodyB.InvMass
	if invMassSum < Epsilon {
		return
	}

	impulse := -relVel / invMassSum
	p := axis.Mul(impulse)

	data.Velocities[d.BodyA.IslandIndex].V = vA.Sub(p.Mul(d.BodyA.InvMass))
	data.Velocities[d.BodyB.IslandIndex].V = vB.Add(p.Mul(d.BodyB.InvMass))
}

// SolvePositionConstraints directly corrects positions to restore the
// rest length, clamped per-iteration the same way
// ConstantVolumeJoint.SolvePositionConstraints clamps its own
// correction.
func (d *DistanceJoint) SolvePositionConstraints(data SolverData) bool {
	cA := data.Positions[d.BodyA.IslandIndex].C
	cB := data.Positions[d.BodyB.IslandIndex].C
	axis := cB.Sub(cA)
	length := axis.Len()
	if length < Epsilon {
		return true
	}
	axis = axis.Mul(1 / length)

	c := length - d.Length
	correction := ClampMagnitude(c, MaxLinearCorrection)

	invMassSum := d.BodyA.InvMass + d.BodyB.InvMass
	if invMassSum < Epsilon {
		return true
	}
	impulse := -correction / invMassSum
	p := axis.Mul(impulse)

	data.Positions[d.BodyA.IslandIndex].C = cA.Sub(p.Mul(d.BodyA.InvMass))
	data.Positions[d.BodyB.IslandIndex].C = cB.Add(p.Mul(d.BodyB.InvMass))

	return math.Abs(c) < LinearSlop
}

// ClampMagnitude clamps a scalar correction to [-max, max].
func ClampMagnitude(v, max float64) float64 {
	if v > max {
		return max
	}
	if v < -max {
		return -max
	}
	return v
}
