package rigid2d

import (
	"github.com/duskforge/rigid2d/geom"
	"github.com/duskforge/rigid2d/shapes"
)

// CollideEdgeAndCircle writes the manifold for an edge-circle pair.
// The circle center is barycentrically classified against the edge's
// two endpoints (region A, region B, region AB); endpoint regions defer
// to a ghost neighbor when the circle actually lies in that neighbor's
// Voronoi region, so a contact at a shared vertex is owned by exactly
// one of the two adjacent edges.
func CollideEdgeAndCircle(out *Manifold, a shapes.EdgeShape, xfA geom.Transform, b shapes.CircleShape, xfB geom.Transform) {
	out.Reset()

	q := xfA.MulT(xfB.Mul(b.Center))

	A := a.V1
	B := a.V2
	e := B.Sub(A)

	u := e.Dot(B.Sub(q))
	v := e.Dot(q.Sub(A))

	radiusSum := a.Radius + b.Radius

	if v <= 0 {
		if a.HasV0 {
			e0 := A.Sub(a.V0)
			u0 := e0.Dot(A.Sub(q))
			if u0 > 0 {
				return
			}
		}
		emitEdgeCircleVertex(out, A, q, b.Center, radiusSum)
		return
	}

	if u <= 0 {
		if a.HasV3 {
			e2 := a.V3.Sub(B)
			v2 := e2.Dot(q.Sub(B))
			if v2 > 0 {
				return
			}
		}
		emitEdgeCircleVertex(out, B, q, b.Center, radiusSum)
		return
	}

	eLenSqr := e.Dot(e)
	pointOnEdge := geom.Vec2{
		(u*A.X() + v*B.X()) / eLenSqr,
		(u*A.Y() + v*B.Y()) / eLenSqr,
	}
	d := q.Sub(pointOnEdge)
	distSqr := d.Dot(d)
	if distSqr > radiusSum*radiusSum {
		return
	}

	n := geom.Vec2{e.Y(), -e.X()}.Normalize()
	if n.Dot(q.Sub(A)) < 0 {
		n = n.Mul(-1)
	}

	out.Type = ManifoldFaceA
	out.LocalNormal = n
	out.LocalPoint = A
	out.PointCount = 1
	out.Points[0] = ManifoldPoint{
		LocalPoint: b.Center,
		ID:         NewContactID(0, 0, FeatureVertex, FeatureVertex),
	}
}

func emitEdgeCircleVertex(out *Manifold, vertex, q, circleCenter Vec2, radiusSum float64) {
	d := q.Sub(vertex)
	if d.Dot(d) > radiusSum*radiusSum {
		return
	}
	out.Type = ManifoldCircles
	out.LocalPoint = vertex
	out.LocalNormal = Vec2{}
	out.PointCount = 1
	out.Points[0] = ManifoldPoint{
		LocalPoint: circleCenter,
		ID:         NewContactID(0, 0, FeatureVertex, FeatureVertex),
	}
}
