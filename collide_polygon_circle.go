package rigid2d

import (
	"math"

	"github.com/duskforge/rigid2d/geom"
	"github.com/duskforge/rigid2d/shapes"
)

// CollidePolygonAndCircle writes the manifold for a polygon-circle
// pair. The circle center is classified against the polygon's deepest
// face into one of three regions (interior, past vertex 1, past vertex
// 2).
func CollidePolygonAndCircle(out *Manifold, a *shapes.PolygonShape, xfA geom.Transform, b shapes.CircleShape, xfB geom.Transform) {
	out.Reset()

	worldCenter := xfB.Mul(b.Center)
	cLocal := xfA.MulT(worldCenter)

	radiusSum := a.Radius + b.Radius

	normalIndex := 0
	separation := math.Inf(-1)
	for i := 0; i < a.Count; i++ {
		s := a.Normals[i].Dot(cLocal.Sub(a.Vertices[i]))
		if s > radiusSum {
			return
		}
		if s > separation {
			separation = s
			normalIndex = i
		}
	}

	v1 := a.Vertices[normalIndex]
	v2 := a.Vertices[(normalIndex+1)%a.Count]

	if separation < Epsilon {
		emitPolygonCircleFace(out, a.Normals[normalIndex], geom.Lerp(v1, v2, 0.5), b)
		return
	}

	u1 := cLocal.Sub(v1).Dot(v2.Sub(v1))
	u2 := cLocal.Sub(v2).Dot(v1.Sub(v2))

	switch {
	case u1 <= 0:
		if cLocal.Sub(v1).Dot(cLocal.Sub(v1)) > radiusSum*radiusSum {
			return
		}
		n := cLocal.Sub(v1).Normalize()
		emitPolygonCircleFace(out, n, v1, b)
	case u2 <= 0:
		if cLocal.Sub(v2).Dot(cLocal.Sub(v2)) > radiusSum*radiusSum {
			return
		}
		n := cLocal.Sub(v2).Normalize()
		emitPolygonCircleFace(out, n, v2, b)
	default:
		emitPolygonCircleFace(out, a.Normals[normalIndex], geom.Lerp(v1, v2, 0.5), b)
	}
}

func emitPolygonCircleFace(out *Manifold, localNormal, localPoint Vec2, b shapes.CircleShape) {
	out.Type = ManifoldFaceA
	out.LocalNormal = localNormal
	out.LocalPoint = localPoint
	out.PointCount = 1
	out.Points[0] = ManifoldPoint{
		LocalPoint: b.Center,
		ID:         NewContactID(0, 0, FeatureVertex, FeatureVertex),
	}
}
