package rigid2d

import (
	"github.com/duskforge/rigid2d/distance"
	"github.com/duskforge/rigid2d/geom"
	"github.com/duskforge/rigid2d/shapes"
)

// distanceShape is satisfied by every concrete shape in the shapes
// package already; it's the same narrow view the distance package's
// own Shape interface describes.
type distanceShape = distance.Shape

// TestOverlap is a yes/no overlap oracle: it defers to the distance
// package's GJK implementation rather than any of the pairwise
// colliders, so it stays correct even for shape pairs the narrow-phase
// dispatch below doesn't special-case.
func TestOverlap(shapeA distanceShape, xfA geom.Transform, shapeB distanceShape, xfB geom.Transform) bool {
	return distance.Overlap(distance.Input{
		ShapeA: shapeA,
		ShapeB: shapeB,
		XfA:    xfA,
		XfB:    xfB,
	})
}

// Collide is a tagged-variant dispatch over shape kinds: the five
// colliders form a 3x3 matrix over (edge, circle, polygon) with the
// main diagonal and relevant off-diagonals populated. Unsupported
// combinations (edge-edge, which has no physical meaning) leave out
// empty.
func Collide(out *Manifold, shapeA shapes.Kind, dataA any, xfA geom.Transform, shapeB shapes.Kind, dataB any, xfB geom.Transform) {
	out.Reset()

	switch {
	case shapeA == shapes.KindCircle && shapeB == shapes.KindCircle:
		CollideCircles(out, dataA.(shapes.CircleShape), xfA, dataB.(shapes.CircleShape), xfB)
	case shapeA == shapes.KindPolygon && shapeB == shapes.KindCircle:
		CollidePolygonAndCircle(out, dataA.(*shapes.PolygonShape), xfA, dataB.(shapes.CircleShape), xfB)
	case shapeA == shapes.KindCircle && shapeB == shapes.KindPolygon:
		CollidePolygonAndCircle(out, dataB.(*shapes.PolygonShape), xfB, dataA.(shapes.CircleShape), xfA)
		flipManifold(out)
	case shapeA == shapes.KindPolygon && shapeB == shapes.KindPolygon:
		CollidePolygons(out, dataA.(*shapes.PolygonShape), xfA, dataB.(*shapes.PolygonShape), xfB)
	case shapeA == shapes.KindEdge && shapeB == shapes.KindCircle:
		CollideEdgeAndCircle(out, dataA.(shapes.EdgeShape), xfA, dataB.(shapes.CircleShape), xfB)
	case shapeA == shapes.KindCircle && shapeB == shapes.KindEdge:
		CollideEdgeAndCircle(out, dataB.(shapes.EdgeShape), xfB, dataA.(shapes.CircleShape), xfA)
		flipManifold(out)
	case shapeA == shapes.KindEdge && shapeB == shapes.KindPolygon:
		CollideEdgeAndPolygon(out, dataA.(shapes.EdgeShape), xfA, dataB.(*shapes.PolygonShape), xfB)
	case shapeA == shapes.KindPolygon && shapeB == shapes.KindEdge:
		CollideEdgeAndPolygon(out, dataB.(shapes.EdgeShape), xfB, dataA.(*shapes.PolygonShape), xfA)
		flipManifold(out)
	}
}

// flipManifold swaps a manifold's sense of reference/incident shape
// after a collider was invoked with its arguments reversed, so the
// result still reads as "A relative to B" from the caller's point of
// view: face_a becomes face_b (and vice versa) and every point ID
// flips its A/B fields. For the circles type there is no reference/
// incident shape to relabel — LocalPoint and Points[0].LocalPoint are
// each tied to literal shape identity (circle A's own center and
// circle B's own center, respectively), so they must be swapped along
// with everything else.
func flipManifold(m *Manifold) {
	switch m.Type {
	case ManifoldFaceA:
		m.Type = ManifoldFaceB
	case ManifoldFaceB:
		m.Type = ManifoldFaceA
	case ManifoldCircles:
		m.LocalPoint, m.Points[0].LocalPoint = m.Points[0].LocalPoint, m.LocalPoint
	}
	for i := 0; i < m.PointCount; i++ {
		m.Points[i].ID = m.Points[i].ID.Flip()
	}
}
