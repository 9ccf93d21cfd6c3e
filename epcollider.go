package rigid2d

import (
	"math"

	"github.com/duskforge/rigid2d/geom"
	"github.com/duskforge/rigid2d/shapes"
)

// epNormalSlot names one of the three candidate axis normals (or its
// negation) a truth-table row can select, so the table itself can be
// plain data instead of a branch per case.
type epNormalSlot int

const (
	slotN0 epNormalSlot = iota
	slotNegN0
	slotN1
	slotNegN1
	slotN2
	slotNegN2
)

func (s epNormalSlot) resolve(n0, n1, n2 Vec2) Vec2 {
	switch s {
	case slotN0:
		return n0
	case slotNegN0:
		return n0.Mul(-1)
	case slotNegN1:
		return n1.Mul(-1)
	case slotN2:
		return n2
	case slotNegN2:
		return n2.Mul(-1)
	default:
		return n1
	}
}

// epRow is one line of the adjacency normal-limit truth table.
// convex1/convex2 are nil where the row doesn't care about that flag
// (the hasV0=false or hasV3=false rows).
type epRow struct {
	hasV0, hasV3       bool
	convex1, convex2   *bool
	frontTest          func(o0, o1, o2 float64) bool
	frontN, frontL, frontU epNormalSlot
	backN, backL, backU    epNormalSlot
}

func boolPtr(b bool) *bool { return &b }

var epTruthTable = []epRow{
	{true, true, boolPtr(true), boolPtr(true),
		func(o0, o1, o2 float64) bool { return o0 >= 0 || o1 >= 0 || o2 >= 0 },
		slotN1, slotN0, slotN2, slotNegN1, slotNegN1, slotNegN1},
	{true, true, boolPtr(true), boolPtr(false),
		func(o0, o1, o2 float64) bool { return o0 >= 0 || (o1 >= 0 && o2 >= 0) },
		slotN1, slotN0, slotN1, slotNegN1, slotNegN2, slotNegN1},
	{true, true, boolPtr(false), boolPtr(true),
		func(o0, o1, o2 float64) bool { return o2 >= 0 || (o0 >= 0 && o1 >= 0) },
		slotN1, slotN1, slotN2, slotNegN1, slotNegN1, slotNegN0},
	{true, true, boolPtr(false), boolPtr(false),
		func(o0, o1, o2 float64) bool { return o0 >= 0 && o1 >= 0 && o2 >= 0 },
		slotN1, slotN1, slotN1, slotNegN1, slotNegN2, slotNegN0},
	{true, false, boolPtr(true), nil,
		func(o0, o1, o2 float64) bool { return o0 >= 0 || o1 >= 0 },
		slotN1, slotN0, slotNegN1, slotNegN1, slotN1, slotNegN1},
	{true, false, boolPtr(false), nil,
		func(o0, o1, o2 float64) bool { return o0 >= 0 && o1 >= 0 },
		slotN1, slotN1, slotNegN1, slotNegN1, slotN1, slotNegN0},
	{false, true, nil, boolPtr(true),
		func(o0, o1, o2 float64) bool { return o1 >= 0 || o2 >= 0 },
		slotN1, slotNegN1, slotN2, slotNegN1, slotNegN1, slotN1},
	{false, true, nil, boolPtr(false),
		func(o0, o1, o2 float64) bool { return o1 >= 0 && o2 >= 0 },
		slotN1, slotNegN1, slotN1, slotNegN1, slotNegN2, slotN1},
	{false, false, nil, nil,
		func(o0, o1, o2 float64) bool { return o1 >= 0 },
		slotN1, slotNegN1, slotNegN1, slotNegN1, slotN1, slotN1},
}

func matchFlag(want *bool, have bool) bool {
	return want == nil || *want == have
}

// epAxisType distinguishes which shape's normal won the SAT contest.
type epAxisType int

const (
	epAxisNone epAxisType = iota
	epAxisEdgeA
	epAxisPolygonB
)

// CollideEdgeAndPolygon writes the manifold for an edge-polygon pair:
// edge A (with optional ghost neighbors) against convex polygon B. This
// is the adjacency-aware SAT routine whose truth table above encodes
// the normal-limit cone so a sliding polygon never snags on an interior
// chain vertex.
func CollideEdgeAndPolygon(out *Manifold, a shapes.EdgeShape, xfA geom.Transform, b *shapes.PolygonShape, xfB geom.Transform) {
	out.Reset()

	xf := geom.MulTTransform(xfA, xfB)

	centroid := xf.Mul(b.Centroid)

	v1 := a.V1
	v2 := a.V2
	edge1 := v2.Sub(v1).Normalize()
	normal1 := geom.Vec2{edge1.Y(), -edge1.X()}

	var normal0, normal2 Vec2
	var convex1, convex2 bool
	var o0, o1, o2 float64

	o1 = normal1.Dot(centroid.Sub(v1))

	if a.HasV0 {
		edge0 := v1.Sub(a.V0).Normalize()
		normal0 = geom.Vec2{edge0.Y(), -edge0.X()}
		convex1 = geom.Cross(edge0, edge1) >= 0
		o0 = normal0.Dot(centroid.Sub(a.V0))
	}
	if a.HasV3 {
		edge2 := a.V3.Sub(v2).Normalize()
		normal2 = geom.Vec2{edge2.Y(), -edge2.X()}
		convex2 = geom.Cross(edge1, edge2) > 0
		o2 = normal2.Dot(centroid.Sub(v2))
	}

	var row *epRow
	for i := range epTruthTable {
		r := &epTruthTable[i]
		if r.hasV0 == a.HasV0 && r.hasV3 == a.HasV3 &&
			matchFlag(r.convex1, convex1) && matchFlag(r.convex2, convex2) {
			row = r
			break
		}
	}
	if row == nil {
		return
	}

	front := row.frontTest(o0, o1, o2)

	var normal, lower, upper Vec2
	if front {
		normal = row.frontN.resolve(normal0, normal1, normal2)
		lower = row.frontL.resolve(normal0, normal1, normal2)
		upper = row.frontU.resolve(normal0, normal1, normal2)
	} else {
		normal = row.backN.resolve(normal0, normal1, normal2)
		lower = row.backL.resolve(normal0, normal1, normal2)
		upper = row.backU.resolve(normal0, normal1, normal2)
	}

	totalRadius := a.Radius + b.Radius

	edgeAxisSep := computeEdgeSeparation(b, xf, v1, normal)

	if edgeAxisSep > totalRadius {
		return
	}

	polyAxisIndex, polyAxisSep, ok := computePolygonSeparation(b, xf, v1, v2, lower, upper, totalRadius)
	if polyAxisSep > totalRadius {
		return
	}

	var axis epAxisType
	if !ok {
		axis = epAxisEdgeA
	} else if polyAxisSep > kRelativeTol*edgeAxisSep+kAbsoluteTol {
		axis = epAxisPolygonB
	} else {
		axis = epAxisEdgeA
	}

	switch axis {
	case epAxisEdgeA:
		emitEdgeReference(out, a, xfA, v1, v2, normal, front, b, xfB, totalRadius)
	case epAxisPolygonB:
		emitPolygonReference(out, a, xfA, v1, v2, b, xfB, polyAxisIndex, totalRadius)
	}
}

// computeEdgeSeparation is the minimum separation of B's vertices
// (transformed into A's frame) past the candidate edge normal.
func computeEdgeSeparation(b *shapes.PolygonShape, xf geom.Transform, v1, normal Vec2) float64 {
	sep := math.Inf(1)
	for i := 0; i < b.Count; i++ {
		s := normal.Dot(xf.Mul(b.Vertices[i]).Sub(v1))
		if s < sep {
			sep = s
		}
	}
	return sep
}

// computePolygonSeparation tests each of B's edge normals (negated,
// since we're testing from B's perspective back at A) against edge A's
// endpoints. The no-collision test (s > totalRadius) runs on every
// candidate normal regardless of cone admissibility: any axis showing
// positive separation beyond the combined radius proves the shapes are
// disjoint, independent of whether that axis would also be an
// admissible contact normal. Only once disjointness is ruled out does
// the admissible [lower, upper] normal cone filter which axis can win
// "best separating axis" — ok is false if no candidate axis survives
// that cone test, signaling the caller should fall back to the edge
// axis. When an axis proves disjointness, ok is also false and sep is
// that axis's separation (greater than totalRadius), on which the
// caller returns an empty manifold.
func computePolygonSeparation(b *shapes.PolygonShape, xf geom.Transform, v1, v2, lower, upper Vec2, totalRadius float64) (index int, sep float64, ok bool) {
	sep = math.Inf(-1)
	ok = false
	for i := 0; i < b.Count; i++ {
		n := xf.Q.Mul(b.Normals[i]).Mul(-1)

		vB := xf.Mul(b.Vertices[i])
		s := math.Min(n.Dot(vB.Sub(v1)), n.Dot(vB.Sub(v2)))
		if s > totalRadius {
			return i, s, false
		}

		if n.Dot(lower) < -AngularSlop || n.Dot(upper) < -AngularSlop {
			// Outside the admissible normal cone for a concave corner;
			// not a candidate for "best axis", but its no-collision
			// check above still stands.
			continue
		}

		if s > sep {
			sep = s
			index = i
			ok = true
		}
	}
	return index, sep, ok
}

// emitEdgeReference clips incident polygon edge (found on B) against
// edge A's own two side planes, mirroring the polygon-polygon clip.
func emitEdgeReference(out *Manifold, a shapes.EdgeShape, xfA geom.Transform, v1, v2, normal Vec2, front bool, b *shapes.PolygonShape, xfB geom.Transform, totalRadius float64) {
	xf := geom.MulTTransform(xfA, xfB)
	localNormalInB := geom.MulTRot(xfB.Q, xfA.Q).Mul(normal)

	index := 0
	minDot := math.Inf(1)
	for i := 0; i < b.Count; i++ {
		d := localNormalInB.Dot(b.Normals[i])
		if d < minDot {
			minDot = d
			index = i
		}
	}
	i1 := index
	i2 := (index + 1) % b.Count
	incidentEdge := [2]ClipVertex{
		{V: xfB.Mul(b.Vertices[i1]), ID: NewContactID(1, uint8(i1), FeatureFace, FeatureVertex)},
		{V: xfB.Mul(b.Vertices[i2]), ID: NewContactID(1, uint8(i2), FeatureFace, FeatureVertex)},
	}

	tangent := geom.Vec2{-normal.Y(), normal.X()}
	worldTangent := xfA.Q.Mul(tangent)
	worldNormal := xfA.Q.Mul(normal)
	v1w := xfA.Mul(v1)
	v2w := xfA.Mul(v2)

	sideOffset1 := -worldTangent.Dot(v1w) + totalRadius
	sideOffset2 := worldTangent.Dot(v2w) + totalRadius
	frontOffset := worldNormal.Dot(v1w)

	var clip1, clip2 [2]ClipVertex
	np1 := ClipSegmentToLine(&clip1, incidentEdge, worldTangent.Mul(-1), sideOffset1, 0)
	if np1 < 2 {
		return
	}
	var trimmed [2]ClipVertex
	copy(trimmed[:], clip1[:np1])
	np2 := ClipSegmentToLine(&clip2, trimmed, worldTangent, sideOffset2, 1)
	if np2 < 2 {
		return
	}

	out.Type = ManifoldFaceA
	out.LocalNormal = normal
	out.LocalPoint = v1
	if !front {
		out.LocalPoint = v2
	}

	pointCount := 0
	for i := 0; i < np2; i++ {
		sep := worldNormal.Dot(clip2[i].V) - frontOffset
		if sep > totalRadius {
			continue
		}
		localP := xfB.MulT(clip2[i].V)
		out.Points[pointCount] = ManifoldPoint{LocalPoint: localP, ID: clip2[i].ID}
		pointCount++
	}
	out.PointCount = pointCount
	if pointCount == 0 {
		out.Reset()
	}
}

// emitPolygonReference clips edge A (the full incident "edge") against
// the chosen reference edge of polygon B.
func emitPolygonReference(out *Manifold, a shapes.EdgeShape, xfA geom.Transform, v1, v2 Vec2, b *shapes.PolygonShape, xfB geom.Transform, refIndex int, totalRadius float64) {
	i1 := refIndex
	i2 := (refIndex + 1) % b.Count
	rv1 := b.Vertices[i1]
	rv2 := b.Vertices[i2]

	localTangent := rv2.Sub(rv1).Normalize()
	tangent := xfB.Q.Mul(localTangent)
	normal := geom.Vec2{tangent.Y(), -tangent.X()}
	v1w := xfB.Mul(rv1)
	v2w := xfB.Mul(rv2)

	frontOffset := normal.Dot(v1w)
	sideOffset1 := -tangent.Dot(v1w) + totalRadius
	sideOffset2 := tangent.Dot(v2w) + totalRadius

	incidentEdge := [2]ClipVertex{
		{V: xfA.Mul(v1), ID: NewContactID(0, uint8(i1), FeatureVertex, FeatureFace)},
		{V: xfA.Mul(v2), ID: NewContactID(1, uint8(i1), FeatureVertex, FeatureFace)},
	}

	var clip1, clip2 [2]ClipVertex
	np1 := ClipSegmentToLine(&clip1, incidentEdge, tangent.Mul(-1), sideOffset1, uint8(i1))
	if np1 < 2 {
		return
	}
	var trimmed [2]ClipVertex
	copy(trimmed[:], clip1[:np1])
	np2 := ClipSegmentToLine(&clip2, trimmed, tangent, sideOffset2, uint8(i2))
	if np2 < 2 {
		return
	}

	out.Type = ManifoldFaceB
	out.LocalNormal = geom.Vec2{localTangent.Y(), -localTangent.X()}
	out.LocalPoint = geom.Lerp(rv1, rv2, 0.5)

	pointCount := 0
	for i := 0; i < np2; i++ {
		sep := normal.Dot(clip2[i].V) - frontOffset
		if sep > totalRadius {
			continue
		}
		localP := xfA.MulT(clip2[i].V)
		out.Points[pointCount] = ManifoldPoint{LocalPoint: localP, ID: clip2[i].ID.Flip()}
		pointCount++
	}
	out.PointCount = pointCount
	if pointCount == 0 {
		out.Reset()
	}
}
