package shapes

import (
	"math"
	"testing"

	"github.com/duskforge/rigid2d/geom"
)

func floatEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func vec2Equal(a, b geom.Vec2) bool {
	return floatEqual(a.X(), b.X()) && floatEqual(a.Y(), b.Y())
}

func TestNewPolygonShapeCentroidAndNormals(t *testing.T) {
	p := NewPolygonShape([]geom.Vec2{
		{0.5, -0.5},
		{0.5, 0.5},
		{-0.5, 0.5},
		{-0.5, -0.5},
	}, 0)

	if !vec2Equal(p.Centroid, geom.Vec2{}) {
		t.Errorf("centroid = %v, want origin", p.Centroid)
	}

	for i := 0; i < p.Count; i++ {
		n := p.Normals[i]
		if !floatEqual(n.Dot(n), 1) {
			t.Errorf("normal %d = %v, not unit length", i, n)
		}
	}
}

func TestPolygonSupport(t *testing.T) {
	p := NewPolygonShape([]geom.Vec2{
		{0.5, -0.5},
		{0.5, 0.5},
		{-0.5, 0.5},
		{-0.5, -0.5},
	}, 0)

	got := p.Support(geom.Vec2{1, 1})
	if !vec2Equal(got, geom.Vec2{0.5, 0.5}) {
		t.Errorf("Support((1,1)) = %v, want (0.5,0.5)", got)
	}
}

func TestCircleSupportIsCenter(t *testing.T) {
	c := CircleShape{Center: geom.Vec2{2, 3}, Radius: 1}
	if got := c.Support(geom.Vec2{1, 0}); !vec2Equal(got, c.Center) {
		t.Errorf("Support = %v, want center %v", got, c.Center)
	}
}

func TestEdgeSupport(t *testing.T) {
	e := EdgeShape{V1: geom.Vec2{-1, 0}, V2: geom.Vec2{1, 0}}
	if got := e.Support(geom.Vec2{1, 0}); !vec2Equal(got, e.V2) {
		t.Errorf("Support((1,0)) = %v, want V2 = %v", got, e.V2)
	}
	if got := e.Support(geom.Vec2{-1, 0}); !vec2Equal(got, e.V1) {
		t.Errorf("Support((-1,0)) = %v, want V1 = %v", got, e.V1)
	}
}
