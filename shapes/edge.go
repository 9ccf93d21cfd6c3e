package shapes

import "github.com/duskforge/rigid2d/geom"

// EdgeShape is a single segment V1->V2, optionally aware of the
// neighboring "ghost" vertices of the adjacent edges in its containing
// chain. Ghosts are read-only context used to classify corner
// convexity in the edge-polygon collider; they are never part of this
// edge's own geometry.
type EdgeShape struct {
	V1, V2 geom.Vec2
	V0     geom.Vec2
	HasV0  bool
	V3     geom.Vec2
	HasV3  bool
	Radius float64
}

func (e EdgeShape) Kind() Kind { return KindEdge }

// Support returns whichever endpoint is farthest along d.
func (e EdgeShape) Support(d geom.Vec2) geom.Vec2 {
	if e.V1.Dot(d) > e.V2.Dot(d) {
		return e.V1
	}
	return e.V2
}

func (e EdgeShape) SupportRadius() float64 {
	return e.Radius
}
