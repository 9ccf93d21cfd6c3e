package rigid2d

import (
	"github.com/duskforge/rigid2d/geom"
	"github.com/duskforge/rigid2d/shapes"
)

// CollideCircles writes the manifold for a circle-circle pair: a
// single point if the circles overlap (including their skin radii),
// otherwise an empty manifold.
func CollideCircles(out *Manifold, a shapes.CircleShape, xfA geom.Transform, b shapes.CircleShape, xfB geom.Transform) {
	out.Reset()

	pA := xfA.Mul(a.Center)
	pB := xfB.Mul(b.Center)

	d := pB.Sub(pA)
	distSqr := d.Dot(d)
	radiusSum := a.Radius + b.Radius
	if distSqr > radiusSum*radiusSum {
		return
	}

	out.Type = ManifoldCircles
	out.LocalPoint = a.Center
	out.LocalNormal = Vec2{}
	out.PointCount = 1
	out.Points[0] = ManifoldPoint{
		LocalPoint: b.Center,
		ID:         NewContactID(0, 0, FeatureVertex, FeatureVertex),
	}
}
