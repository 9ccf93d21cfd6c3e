package rigid2d

import (
	"math"

	"github.com/duskforge/rigid2d/geom"
	"github.com/duskforge/rigid2d/shapes"
)

// findMaxSeparation finds the edge of poly1 (transformed into poly2's
// frame) with the greatest minimum separation from poly2's vertices —
// the best separating axis poly1 can offer against poly2.
func findMaxSeparation(poly1 *shapes.PolygonShape, xf1 geom.Transform, poly2 *shapes.PolygonShape, xf2 geom.Transform) (edge int, separation float64) {
	xf := geom.MulTTransform(xf2, xf1)

	bestSep := math.Inf(-1)
	bestEdge := 0
	for i := 0; i < poly1.Count; i++ {
		n := xf.Q.Mul(poly1.Normals[i])
		v1 := xf.Mul(poly1.Vertices[i])

		minSep := math.Inf(1)
		for j := 0; j < poly2.Count; j++ {
			s := n.Dot(poly2.Vertices[j].Sub(v1))
			if s < minSep {
				minSep = s
			}
		}
		if minSep > bestSep {
			bestSep = minSep
			bestEdge = i
		}
	}
	return bestEdge, bestSep
}

// findIncidentEdge picks the edge of poly2 whose outward normal is
// most anti-parallel to reference edge edge1 of poly1 — the edge of
// the incident polygon the reference face will clip against.
func findIncidentEdge(poly1 *shapes.PolygonShape, xf1 geom.Transform, edge1 int, poly2 *shapes.PolygonShape, xf2 geom.Transform) [2]ClipVertex {
	normal1 := geom.MulTRot(xf2.Q, xf1.Q).Mul(poly1.Normals[edge1])

	index := 0
	minDot := math.Inf(1)
	for i := 0; i < poly2.Count; i++ {
		d := normal1.Dot(poly2.Normals[i])
		if d < minDot {
			minDot = d
			index = i
		}
	}

	i1 := index
	i2 := (index + 1) % poly2.Count
	return [2]ClipVertex{
		{V: xf2.Mul(poly2.Vertices[i1]), ID: NewContactID(uint8(edge1), uint8(i1), FeatureFace, FeatureVertex)},
		{V: xf2.Mul(poly2.Vertices[i2]), ID: NewContactID(uint8(edge1), uint8(i2), FeatureFace, FeatureVertex)},
	}
}

// CollidePolygons writes the manifold for a polygon-polygon pair via
// SAT to pick a reference face, then two clips of the incident edge
// against the reference face's side planes.
func CollidePolygons(out *Manifold, a *shapes.PolygonShape, xfA geom.Transform, b *shapes.PolygonShape, xfB geom.Transform) {
	out.Reset()

	totalRadius := a.Radius + b.Radius

	edgeA, sepA := findMaxSeparation(a, xfA, b, xfB)
	if sepA > totalRadius {
		return
	}
	edgeB, sepB := findMaxSeparation(b, xfB, a, xfA)
	if sepB > totalRadius {
		return
	}

	var refPoly, incPoly *shapes.PolygonShape
	var refXf, incXf geom.Transform
	var refEdge int
	flip := false

	if sepB > sepA+kTol {
		refPoly, incPoly = b, a
		refXf, incXf = xfB, xfA
		refEdge = edgeB
		flip = true
	} else {
		refPoly, incPoly = a, b
		refXf, incXf = xfA, xfB
		refEdge = edgeA
		flip = false
	}

	incidentEdge := findIncidentEdge(refPoly, refXf, refEdge, incPoly, incXf)

	i1 := refEdge
	i2 := (refEdge + 1) % refPoly.Count
	v1 := refPoly.Vertices[i1]
	v2 := refPoly.Vertices[i2]

	localTangent := v2.Sub(v1).Normalize()
	localNormal := geom.Vec2{localTangent.Y(), -localTangent.X()}
	planePoint := geom.Lerp(v1, v2, 0.5)

	tangent := refXf.Q.Mul(localTangent)
	normal := geom.Vec2{tangent.Y(), -tangent.X()}
	v1w := refXf.Mul(v1)
	v2w := refXf.Mul(v2)

	frontOffset := normal.Dot(v1w)
	sideOffset1 := -tangent.Dot(v1w) + totalRadius
	sideOffset2 := tangent.Dot(v2w) + totalRadius

	var clipPoints1, clipPoints2 [2]ClipVertex
	negTangent := tangent.Mul(-1)
	np1 := ClipSegmentToLine(&clipPoints1, incidentEdge, negTangent, sideOffset1, uint8(i1))
	if np1 < 2 {
		return
	}

	var trimmed1 [2]ClipVertex
	copy(trimmed1[:], clipPoints1[:np1])
	np2 := ClipSegmentToLine(&clipPoints2, trimmed1, tangent, sideOffset2, uint8(i2))
	if np2 < 2 {
		return
	}

	out.LocalNormal = localNormal
	out.LocalPoint = planePoint
	if flip {
		out.Type = ManifoldFaceB
	} else {
		out.Type = ManifoldFaceA
	}

	pointCount := 0
	for i := 0; i < np2; i++ {
		separation := normal.Dot(clipPoints2[i].V) - frontOffset
		if separation > totalRadius {
			continue
		}
		id := clipPoints2[i].ID
		if flip {
			id = id.Flip()
		}
		localP := incXf.MulT(clipPoints2[i].V)
		out.Points[pointCount] = ManifoldPoint{LocalPoint: localP, ID: id}
		pointCount++
	}
	out.PointCount = pointCount
	if pointCount == 0 {
		out.Reset()
	}
}
