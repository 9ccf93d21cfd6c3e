package shapes

import "github.com/duskforge/rigid2d/geom"

// CircleShape is a circle in its own local frame: Center need not be
// the origin (it is for most bodies, but compound shapes offset it).
type CircleShape struct {
	Center geom.Vec2
	Radius float64
}

func (c CircleShape) Kind() Kind { return KindCircle }

// Support returns the circle's core point, its center, for every
// direction d; the radius is reported separately by SupportRadius. Used
// by the distance package's GJK oracle.
func (c CircleShape) Support(d geom.Vec2) geom.Vec2 {
	return c.Center
}

func (c CircleShape) SupportRadius() float64 {
	return c.Radius
}
