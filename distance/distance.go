// Package distance is a 2D GJK boolean overlap oracle: given two
// shapes' support functions and transforms, it answers whether their
// Minkowski difference contains the origin. It is specialized down to
// the point/line/triangle simplex cases, since 2D never reaches a
// tetrahedron.
package distance

import "github.com/duskforge/rigid2d/geom"

// Shape is the minimal read-only support-function contract the
// overlap oracle needs. CircleShape, PolygonShape and EdgeShape in the
// shapes package all satisfy it already — this is a narrow view onto
// those types, not a new shape system.
type Shape interface {
	Support(d geom.Vec2) geom.Vec2
	SupportRadius() float64
}

// Input bundles the two shapes and their world transforms for Overlap.
type Input struct {
	ShapeA, ShapeB Shape
	XfA, XfB       geom.Transform
}

// Output reports the closest points found (in world space) and the
// separation between the two shape cores (not including skin radius).
// GJK degenerates to distance 0 once the simplex encloses the origin,
// at which point PointA/PointB are not meaningful separate points and
// are left at the last simplex witness.
type Output struct {
	PointA, PointB geom.Vec2
	Distance       float64
}

const (
	maxIterations = 32
	convergeEps   = 1e-10
)

// Overlap reports whether the Minkowski difference of the two shapes
// (inflated by their skin radii) contains the origin, i.e. whether the
// shapes touch or penetrate. It is symmetric in A and B by
// construction of minkowskiSupport.
func Overlap(in Input) bool {
	out, simplex := closestDistance(in)
	radiusSum := in.ShapeA.SupportRadius() + in.ShapeB.SupportRadius()
	if simplex.count == 3 {
		return true
	}
	return out.Distance <= radiusSum
}

// minkowskiSupport returns the support point of A - B (in world space)
// along direction d, plus the witness points on each shape that
// produced it.
func minkowskiSupport(in Input, d geom.Vec2) (p, wa, wb geom.Vec2) {
	localDA := in.XfA.Q.MulT(d)
	localDB := in.XfB.Q.MulT(d.Mul(-1))
	sa := in.ShapeA.Support(localDA)
	sb := in.ShapeB.Support(localDB)
	wa = in.XfA.Mul(sa)
	wb = in.XfB.Mul(sb)
	return wa.Sub(wb), wa, wb
}

type simplexVertex struct {
	p      geom.Vec2
	wa, wb geom.Vec2
}

type simplex struct {
	v     [3]simplexVertex
	count int
}

// closestDistance runs GJK to find the point of the Minkowski
// difference closest to the origin (or detects the origin is enclosed,
// in which case the shapes' cores overlap and distance is reported as
// 0). The tetrahedron case is dropped since 2D simplices never exceed a
// triangle.
func closestDistance(in Input) (Output, simplex) {
	var s simplex
	d := in.XfB.P.Sub(in.XfA.P)
	if geom.AeqZero(d) {
		d = geom.Vec2{1, 0}
	}
	p, wa, wb := minkowskiSupport(in, d)
	s.v[0] = simplexVertex{p: p, wa: wa, wb: wb}
	s.count = 1

	for iter := 0; iter < maxIterations; iter++ {
		dir, containsOrigin := closestDirection(&s)
		if containsOrigin {
			break
		}
		if geom.AeqZero(dir) {
			break
		}
		p, wa, wb = minkowskiSupport(in, dir)
		if duplicatesVertex(&s, p) {
			break
		}
		s.v[s.count] = simplexVertex{p: p, wa: wa, wb: wb}
		s.count++
		if closestPointProgress(&s, dir) < convergeEps {
			break
		}
	}

	witnessA, witnessB, dist := closestWitness(&s)
	return Output{PointA: witnessA, PointB: witnessB, Distance: dist}, s
}

func duplicatesVertex(s *simplex, p geom.Vec2) bool {
	for i := 0; i < s.count; i++ {
		if geom.AeqZero(s.v[i].p.Sub(p)) {
			return true
		}
	}
	return false
}

func closestPointProgress(s *simplex, dir geom.Vec2) float64 {
	newest := s.v[s.count-1].p
	return newest.Dot(dir)
}

// closestDirection reduces the simplex to the feature (point, edge or
// triangle) closest to the origin and returns the direction from that
// feature toward the origin. containsOrigin is true once a triangle
// simplex is found to enclose the origin.
func closestDirection(s *simplex) (dir geom.Vec2, containsOrigin bool) {
	switch s.count {
	case 1:
		return s.v[0].p.Mul(-1), false
	case 2:
		return closestOnLine(s)
	case 3:
		return closestOnTriangle(s)
	default:
		return geom.Vec2{}, false
	}
}

func closestOnLine(s *simplex) (geom.Vec2, bool) {
	a, b := s.v[0].p, s.v[1].p
	ab := b.Sub(a)
	t := -a.Dot(ab)
	if t <= 0 {
		s.v[0] = s.v[0]
		s.count = 1
		return a.Mul(-1), false
	}
	abLenSqr := ab.Dot(ab)
	if t >= abLenSqr {
		s.v[0] = s.v[1]
		s.count = 1
		return b.Mul(-1), false
	}
	closest := a.Add(ab.Mul(t / abLenSqr))
	return closest.Mul(-1), false
}

func closestOnTriangle(s *simplex) (geom.Vec2, bool) {
	a, b, c := s.v[0].p, s.v[1].p, s.v[2].p
	area := geom.Cross(b.Sub(a), c.Sub(a))
	if area == 0 {
		s.count = 2
		return closestOnLine(s)
	}
	// Barycentric sign tests against each edge determine whether the
	// origin projects outside an edge (reduce to that edge) or is
	// enclosed by all three (origin inside the triangle).
	abOut := geom.Cross(b.Sub(a), geom.Vec2{}.Sub(a))
	bcOut := geom.Cross(c.Sub(b), geom.Vec2{}.Sub(b))
	caOut := geom.Cross(a.Sub(c), geom.Vec2{}.Sub(c))

	outside := func(v float64) bool {
		if area > 0 {
			return v < 0
		}
		return v > 0
	}
	if outside(abOut) {
		s.count = 2
		return closestOnLine(s)
	}
	if outside(bcOut) {
		s.v[0], s.v[1] = s.v[1], s.v[2]
		s.count = 2
		return closestOnLine(s)
	}
	if outside(caOut) {
		s.v[0], s.v[1] = s.v[2], s.v[0]
		s.count = 2
		return closestOnLine(s)
	}
	return geom.Vec2{}, true
}

// closestWitness recovers the closest world-space points on each shape
// from the final simplex, by barycentric combination of the simplex
// vertices' witness points.
func closestWitness(s *simplex) (wa, wb geom.Vec2, dist float64) {
	switch s.count {
	case 1:
		return s.v[0].wa, s.v[0].wb, s.v[0].p.Len()
	case 2:
		a, b := s.v[0].p, s.v[1].p
		ab := b.Sub(a)
		abLenSqr := ab.Dot(ab)
		if abLenSqr < geom.Epsilon {
			return s.v[0].wa, s.v[0].wb, a.Len()
		}
		t := -a.Dot(ab) / abLenSqr
		if t < 0 {
			t = 0
		}
		if t > 1 {
			t = 1
		}
		wa = geom.Lerp(s.v[0].wa, s.v[1].wa, t)
		wb = geom.Lerp(s.v[0].wb, s.v[1].wb, t)
		closest := a.Add(ab.Mul(t))
		return wa, wb, closest.Len()
	default:
		return s.v[0].wa, s.v[0].wb, 0
	}
}
