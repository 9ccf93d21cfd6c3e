package rigid2d

import (
	"testing"

	"github.com/duskforge/rigid2d/geom"
	"github.com/duskforge/rigid2d/shapes"
)

func unitSquare() *shapes.PolygonShape {
	return shapes.NewPolygonShape([]geom.Vec2{
		{0.5, -0.5},
		{0.5, 0.5},
		{-0.5, 0.5},
		{-0.5, -0.5},
	}, 0)
}

func TestCollidePolygonsOverlappingSquares(t *testing.T) {
	a := unitSquare()
	b := unitSquare()

	xfA := geom.IdentityTransform
	xfB := geom.NewTransform(Vec2{0.9, 0}, 0)

	var m Manifold
	CollidePolygons(&m, a, xfA, b, xfB)

	if m.PointCount != 2 {
		t.Fatalf("pointCount = %d, want 2", m.PointCount)
	}
	if m.Type != ManifoldFaceA {
		t.Errorf("type = %v, want face_a", m.Type)
	}
	if !vec2Equal(m.LocalNormal, Vec2{1, 0}) {
		t.Errorf("localNormal = %v, want (1,0)", m.LocalNormal)
	}

	sawNegY, sawPosY := false, false
	for i := 0; i < m.PointCount; i++ {
		p := m.Points[i].LocalPoint
		if !floatEqual(p.X(), -0.5) {
			t.Errorf("point %d x = %v, want -0.5", i, p.X())
		}
		if floatEqual(p.Y(), -0.5) {
			sawNegY = true
		}
		if floatEqual(p.Y(), 0.5) {
			sawPosY = true
		}
	}
	if !sawNegY || !sawPosY {
		t.Errorf("expected points at y=-0.5 and y=0.5, got %+v", m.Points[:m.PointCount])
	}
}

func TestCollidePolygonsDisjoint(t *testing.T) {
	a := unitSquare()
	b := unitSquare()

	xfA := geom.IdentityTransform
	xfB := geom.NewTransform(Vec2{10, 0}, 0)

	var m Manifold
	CollidePolygons(&m, a, xfA, b, xfB)

	if m.PointCount != 0 {
		t.Fatalf("pointCount = %d, want 0", m.PointCount)
	}
}

func TestCollidePolygonsReferenceFaceHysteresis(t *testing.T) {
	a := unitSquare()
	b := unitSquare()

	xfA := geom.IdentityTransform
	xfB := geom.NewTransform(Vec2{1.0, 0}, 0)

	var m1, m2 Manifold
	CollidePolygons(&m1, a, xfA, b, xfB)

	xfBPerturbed := geom.NewTransform(Vec2{1.0 - 1e-6, 1e-7}, 0)
	CollidePolygons(&m2, a, xfA, b, xfBPerturbed)

	if m1.Type != m2.Type {
		t.Errorf("reference face flipped under infinitesimal perturbation: %v vs %v", m1.Type, m2.Type)
	}
}
