package shapes

import "github.com/duskforge/rigid2d/geom"

// PolygonShape is a convex polygon in CCW vertex order with a matching
// outward-normal array and a precomputed centroid. Vertices/normals are
// fixed-size arrays sized to MaxPolygonVertices, with Count the number
// actually in use — this avoids a heap-allocated slice per polygon.
type PolygonShape struct {
	Vertices [MaxPolygonVertices]geom.Vec2
	Normals  [MaxPolygonVertices]geom.Vec2
	Count    int
	Centroid geom.Vec2
	Radius   float64
}

func (p *PolygonShape) Kind() Kind { return KindPolygon }

// NewPolygonShape builds a PolygonShape from CCW vertices, computing
// edge normals and the centroid. verts must have length in [3, MaxPolygonVertices].
func NewPolygonShape(verts []geom.Vec2, radius float64) *PolygonShape {
	n := len(verts)
	p := &PolygonShape{Count: n, Radius: radius}
	for i := 0; i < n; i++ {
		p.Vertices[i] = verts[i]
	}
	for i := 0; i < n; i++ {
		v1 := p.Vertices[i]
		v2 := p.Vertices[(i+1)%n]
		edge := v2.Sub(v1)
		p.Normals[i] = geom.Vec2{edge.Y(), -edge.X()}.Normalize()
	}
	p.Centroid = computeCentroid(p.Vertices[:n])
	return p
}

// computeCentroid returns the area-weighted centroid of a CCW polygon
// via the standard shoelace decomposition into triangles from the
// origin.
func computeCentroid(verts []geom.Vec2) geom.Vec2 {
	c := geom.Vec2{}
	area := 0.0
	origin := verts[0]
	const inv3 = 1.0 / 3.0
	for i := 1; i < len(verts)-1; i++ {
		e1 := verts[i].Sub(origin)
		e2 := verts[i+1].Sub(origin)
		d := geom.Cross(e1, e2)
		triArea := 0.5 * d
		area += triArea
		c = c.Add(e1.Add(e2).Mul(triArea * inv3))
	}
	if area > geom.Epsilon {
		c = c.Mul(1.0 / area)
	}
	return c.Add(origin)
}

// Support returns the polygon vertex farthest along direction d.
func (p *PolygonShape) Support(d geom.Vec2) geom.Vec2 {
	best := 0
	bestDot := p.Vertices[0].Dot(d)
	for i := 1; i < p.Count; i++ {
		dot := p.Vertices[i].Dot(d)
		if dot > bestDot {
			bestDot = dot
			best = i
		}
	}
	return p.Vertices[best]
}

func (p *PolygonShape) SupportRadius() float64 {
	return p.Radius
}
