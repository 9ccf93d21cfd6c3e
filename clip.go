package rigid2d

// ClipVertex is one endpoint of the 2-vertex segment ClipSegmentToLine
// operates on: a position plus the feature ID that produced it, so
// Sutherland-Hodgman clipping carries feature metadata through to the
// output vertices.
type ClipVertex struct {
	V  Vec2
	ID ContactID
}

// ClipSegmentToLine clips the 2-vertex segment vIn against the
// half-plane {x : normal·x <= offset}, writing surviving (and any
// newly interpolated) vertices to vOut and returning how many it wrote
// (0, 1 or 2).
//
// vertexIndexA is the index of the reference edge's first vertex; it
// is burned into the ID of any vertex created by interpolation, since
// that vertex represents "a vertex of A pierced a face of B".
func ClipSegmentToLine(vOut *[2]ClipVertex, vIn [2]ClipVertex, normal Vec2, offset float64, vertexIndexA uint8) int {
	count := 0

	d0 := normal.Dot(vIn[0].V) - offset
	d1 := normal.Dot(vIn[1].V) - offset

	if d0 <= 0 {
		vOut[count] = vIn[0]
		count++
	}
	if d1 <= 0 {
		vOut[count] = vIn[1]
		count++
	}

	if d0*d1 < 0 {
		t := d0 / (d0 - d1)
		v := Lerp(vIn[0].V, vIn[1].V, t)
		id := NewContactID(vertexIndexA, vIn[0].ID.IndexB(), FeatureVertex, FeatureFace)
		vOut[count] = ClipVertex{V: v, ID: id}
		count++
	}

	return count
}

// Lerp is the segment-interpolation helper ClipSegmentToLine uses. The
// colliders themselves call geom.Lerp, which computes the same value.
func Lerp(a, b Vec2, t float64) Vec2 {
	return Vec2{a.X() + (b.X()-a.X())*t, a.Y() + (b.Y()-a.Y())*t}
}
