package rigid2d

import (
	"testing"

	"github.com/duskforge/rigid2d/geom"
	"github.com/duskforge/rigid2d/shapes"
)

func TestCollidePolygonAndCircleFaceContact(t *testing.T) {
	poly := unitSquare()
	circle := shapes.CircleShape{Center: Vec2{}, Radius: 0.3}

	xfA := geom.IdentityTransform
	xfB := geom.NewTransform(Vec2{0.9, 0}, 0)

	var m Manifold
	CollidePolygonAndCircle(&m, poly, xfA, circle, xfB)

	if m.PointCount != 1 {
		t.Fatalf("pointCount = %d, want 1", m.PointCount)
	}
	if m.Type != ManifoldFaceA {
		t.Errorf("type = %v, want face_a", m.Type)
	}
}

func TestCollidePolygonAndCircleDisjoint(t *testing.T) {
	poly := unitSquare()
	circle := shapes.CircleShape{Center: Vec2{}, Radius: 0.3}

	xfA := geom.IdentityTransform
	xfB := geom.NewTransform(Vec2{5, 0}, 0)

	var m Manifold
	CollidePolygonAndCircle(&m, poly, xfA, circle, xfB)

	if m.PointCount != 0 {
		t.Fatalf("pointCount = %d, want 0", m.PointCount)
	}
}

func TestCollidePolygonAndCircleVertexRegion(t *testing.T) {
	poly := unitSquare()
	circle := shapes.CircleShape{Center: Vec2{}, Radius: 0.3}

	xfA := geom.IdentityTransform
	xfB := geom.NewTransform(Vec2{0.7, 0.7}, 0)

	var m Manifold
	CollidePolygonAndCircle(&m, poly, xfA, circle, xfB)

	if m.PointCount != 1 {
		t.Fatalf("pointCount = %d, want 1", m.PointCount)
	}
	if !vec2Equal(m.LocalPoint, Vec2{0.5, 0.5}) {
		t.Errorf("localPoint = %v, want the corner (0.5, 0.5)", m.LocalPoint)
	}
}
