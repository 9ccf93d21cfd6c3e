package rigid2d

import (
	"math"
	"testing"
)

func floatEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func vec2Equal(a, b Vec2) bool {
	return floatEqual(a.X(), b.X()) && floatEqual(a.Y(), b.Y())
}

func TestClipSegmentToLineBothInside(t *testing.T) {
	vIn := [2]ClipVertex{
		{V: Vec2{-1, 0}, ID: NewContactID(0, 1, FeatureVertex, FeatureVertex)},
		{V: Vec2{1, 0}, ID: NewContactID(0, 2, FeatureVertex, FeatureVertex)},
	}
	var vOut [2]ClipVertex
	n := ClipSegmentToLine(&vOut, vIn, Vec2{0, 1}, 1, 5)
	if n != 2 {
		t.Fatalf("count = %d, want 2", n)
	}
	if !vec2Equal(vOut[0].V, vIn[0].V) || vOut[0].ID != vIn[0].ID {
		t.Errorf("vOut[0] = %+v, want unchanged %+v", vOut[0], vIn[0])
	}
	if !vec2Equal(vOut[1].V, vIn[1].V) || vOut[1].ID != vIn[1].ID {
		t.Errorf("vOut[1] = %+v, want unchanged %+v", vOut[1], vIn[1])
	}
}

func TestClipSegmentToLineOnePierces(t *testing.T) {
	vIn := [2]ClipVertex{
		{V: Vec2{0, -1}, ID: NewContactID(0, 1, FeatureVertex, FeatureVertex)},
		{V: Vec2{0, 1}, ID: NewContactID(0, 2, FeatureVertex, FeatureVertex)},
	}
	var vOut [2]ClipVertex
	n := ClipSegmentToLine(&vOut, vIn, Vec2{0, 1}, 0, 7)
	if n != 2 {
		t.Fatalf("count = %d, want 2", n)
	}
	var interpolated ClipVertex
	found := false
	for _, v := range vOut[:n] {
		if v.ID.TypeA() == FeatureVertex && v.ID.IndexA() == 7 {
			interpolated = v
			found = true
		}
	}
	if !found {
		t.Fatalf("no interpolated vertex with vertexIndexA in output: %+v", vOut)
	}
	if !vec2Equal(interpolated.V, Vec2{0, 0}) {
		t.Errorf("interpolated vertex = %v, want (0,0)", interpolated.V)
	}
}

func TestClipSegmentToLineBothOutside(t *testing.T) {
	vIn := [2]ClipVertex{
		{V: Vec2{0, 2}, ID: 0},
		{V: Vec2{1, 2}, ID: 0},
	}
	var vOut [2]ClipVertex
	n := ClipSegmentToLine(&vOut, vIn, Vec2{0, 1}, 1, 0)
	if n != 0 {
		t.Errorf("count = %d, want 0", n)
	}
}

func TestClipSegmentToLineIdempotentOnPlane(t *testing.T) {
	vIn := [2]ClipVertex{
		{V: Vec2{-1, 1}, ID: NewContactID(0, 1, FeatureVertex, FeatureVertex)},
		{V: Vec2{1, 1}, ID: NewContactID(0, 2, FeatureVertex, FeatureVertex)},
	}
	var vOut [2]ClipVertex
	n := ClipSegmentToLine(&vOut, vIn, Vec2{0, 1}, 1, 0)
	if n != 2 {
		t.Fatalf("count = %d, want 2", n)
	}
	if !vec2Equal(vOut[0].V, vIn[0].V) || !vec2Equal(vOut[1].V, vIn[1].V) {
		t.Errorf("clip against a plane containing both endpoints should leave positions unchanged: got %+v", vOut)
	}
}
