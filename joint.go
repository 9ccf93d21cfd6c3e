package rigid2d

import (
	"fmt"

	"github.com/duskforge/rigid2d/geom"
)

// ConstantVolumeJoint couples an ordered ring of ≥3 bodies so the
// signed area of the polygon they form is preserved (scaled via
// Inflate), with a ring of DistanceJoints holding the edge lengths.
// Its Init/SolveVelocity/SolvePosition methods are called by an
// external island solver each substep; this type never drives its own
// stepping.
type ConstantVolumeJoint struct {
	bodies        []JointBody
	joints        []*DistanceJoint
	targetLengths []float64
	targetVolume  float64
	impulse       float64

	// normals, points and edgeNormals are instance-local scratch sized
	// once at construction and reused every solve call instead of
	// allocating temporaries per call.
	normals     []Vec2
	points      []Vec2
	edgeNormals []Vec2
}

// NewConstantVolumeJoint builds the joint from an ordered ring of
// bodies and their current positions. If joints is nil, one
// DistanceJoint per ring edge is created internally; if non-nil, its
// length must match len(bodies).
func NewConstantVolumeJoint(bodies []JointBody, positions []Vec2, joints []*DistanceJoint) (*ConstantVolumeJoint, error) {
	n := len(bodies)
	if n < 3 {
		return nil, fmt.Errorf("rigid2d: constant volume joint needs at least 3 bodies, got %d", n)
	}
	if len(positions) != n {
		return nil, fmt.Errorf("rigid2d: constant volume joint needs one position per body, got %d bodies and %d positions", n, len(positions))
	}
	if joints != nil && len(joints) != n {
		return nil, fmt.Errorf("rigid2d: constant volume joint needs one distance joint per edge, got %d bodies and %d joints", n, len(joints))
	}

	j := &ConstantVolumeJoint{
		bodies:        append([]JointBody(nil), bodies...),
		targetLengths: make([]float64, n),
		normals:       make([]Vec2, n),
		points:        make([]Vec2, n),
		edgeNormals:   make([]Vec2, n),
	}

	for i := 0; i < n; i++ {
		next := (i + 1) % n
		j.targetLengths[i] = positions[next].Sub(positions[i]).Len()
	}
	j.targetVolume = signedArea(positions)

	if joints != nil {
		j.joints = joints
	} else {
		j.joints = make([]*DistanceJoint, n)
		for i := 0; i < n; i++ {
			next := (i + 1) % n
			j.joints[i] = NewDistanceJoint(bodies[i], bodies[next], positions[i], positions[next])
		}
	}

	return j, nil
}

// signedArea computes the shoelace-formula signed area of the ring of
// points, positive for CCW winding.
func signedArea(points []Vec2) float64 {
	area := 0.0
	n := len(points)
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		area += geom.Cross(points[i], points[next])
	}
	return 0.5 * area
}

// Inflate scales the target volume by f; called once after
// construction to set a joint up to over- or under-inflate its ring
// relative to its initial area.
func (j *ConstantVolumeJoint) Inflate(f float64) {
	j.targetVolume *= f
}

// InitVelocityConstraints warm-starts the area constraint's impulse
// (scaled by the step's dt ratio) and applies it, or zeroes the
// impulse when warm-starting is disabled.
func (j *ConstantVolumeJoint) InitVelocityConstraints(data SolverData) {
	if !data.Step.WarmStarting {
		j.impulse = 0
		return
	}

	j.impulse *= data.Step.DtRatio
	n := len(j.bodies)
	for i := 0; i < n; i++ {
		prev := (i - 1 + n) % n
		next := (i + 1) % n
		d := data.Positions[j.bodies[next].IslandIndex].C.Sub(data.Positions[j.bodies[prev].IslandIndex].C)
		j.normals[i] = d

		delta := geom.Vec2{d.Y(), -d.X()}.Mul(0.5 * j.impulse * j.bodies[i].InvMass)
		v := data.Velocities[j.bodies[i].IslandIndex].V
		data.Velocities[j.bodies[i].IslandIndex].V = v.Add(delta)
	}
}

// SolveVelocityConstraints performs one Gauss-Seidel iteration of the
// area-rate constraint (the area's time derivative driven to zero),
// then solves each ring edge's DistanceJoint.
func (j *ConstantVolumeJoint) SolveVelocityConstraints(data SolverData) {
	n := len(j.bodies)

	dotMassSum := 0.0
	crossMassSum := 0.0
	for i := 0; i < n; i++ {
		prev := (i - 1 + n) % n
		next := (i + 1) % n
		d := data.Positions[j.bodies[next].IslandIndex].C.Sub(data.Positions[j.bodies[prev].IslandIndex].C)
		j.normals[i] = d

		mass := j.bodies[i].Mass
		if mass <= 0 {
			continue
		}
		dotMassSum += d.Dot(d) / mass

		v := data.Velocities[j.bodies[i].IslandIndex].V
		crossMassSum += geom.Cross(v, d)
	}

	if dotMassSum > Epsilon {
		lambda := -2 * crossMassSum / dotMassSum
		j.impulse += lambda

		for i := 0; i < n; i++ {
			delta := geom.Vec2{j.normals[i].Y(), -j.normals[i].X()}.Mul(0.5 * lambda * j.bodies[i].InvMass)
			v := data.Velocities[j.bodies[i].IslandIndex].V
			data.Velocities[j.bodies[i].IslandIndex].V = v.Add(delta)
		}
	}

	for _, dj := range j.joints {
		dj.SolveVelocityConstraints(data)
	}
}

// SolvePositionConstraints drives the current signed area back toward
// targetVolume by displacing each body along the average of its two
// adjacent edge normals, then runs each ring edge's DistanceJoint
// position correction. It returns true only once every displacement
// this call made was within LinearSlop, matching the island solver's
// "converged" contract.
func (j *ConstantVolumeJoint) SolvePositionConstraints(data SolverData) bool {
	n := len(j.bodies)

	for i := 0; i < n; i++ {
		j.points[i] = data.Positions[j.bodies[i].IslandIndex].C
	}

	perimeter := 0.0
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		edge := j.points[next].Sub(j.points[i])
		length := edge.Len()
		perimeter += length
		if length < Epsilon {
			j.edgeNormals[i] = Vec2{}
			continue
		}
		j.edgeNormals[i] = geom.Vec2{edge.Y(), -edge.X()}.Mul(1 / length)
	}
	if perimeter < Epsilon {
		perimeter = 1
	}

	currentArea := signedArea(j.points)
	deltaArea := j.targetVolume - currentArea
	toExtrude := 0.5 * deltaArea / perimeter

	converged := true
	for i := 0; i < n; i++ {
		prev := (i - 1 + n) % n
		avgNormal := j.edgeNormals[prev].Add(j.edgeNormals[i])
		displacement := avgNormal.Mul(toExtrude)
		displacement = geom.ClampMagnitude(displacement, MaxLinearCorrection)

		if displacement.Len() > LinearSlop {
			converged = false
		}

		idx := j.bodies[i].IslandIndex
		data.Positions[idx].C = data.Positions[idx].C.Add(displacement)
	}

	for _, dj := range j.joints {
		if !dj.SolvePositionConstraints(data) {
			converged = false
		}
	}

	return converged
}
