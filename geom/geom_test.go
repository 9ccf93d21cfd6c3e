package geom

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

func TestCross(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec2
		want float64
	}{
		{"unit axes", Vec2{1, 0}, Vec2{0, 1}, 1},
		{"swapped axes", Vec2{0, 1}, Vec2{1, 0}, -1},
		{"parallel", Vec2{2, 0}, Vec2{4, 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Cross(tt.a, tt.b); !floatEqual(got, tt.want) {
				t.Errorf("Cross(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRotMulRoundTrip(t *testing.T) {
	r := NewRot(0.7)
	v := Vec2{3, -2}
	rotated := r.Mul(v)
	back := r.MulT(rotated)
	if !vec2Equal(back, v) {
		t.Errorf("Mul/MulT round trip: got %v, want %v", back, v)
	}
}

func TestRotIdentity(t *testing.T) {
	v := Vec2{1, 2}
	if got := Identity.Mul(v); !vec2Equal(got, v) {
		t.Errorf("Identity.Mul(%v) = %v, want unchanged", v, got)
	}
}

func TestTransformMulTRoundTrip(t *testing.T) {
	tf := NewTransform(Vec2{5, -1}, 0.3)
	v := Vec2{2, 7}
	world := tf.Mul(v)
	local := tf.MulT(world)
	if !vec2Equal(local, v) {
		t.Errorf("Transform Mul/MulT round trip: got %v, want %v", local, v)
	}
}

func TestMulTTransformIdentity(t *testing.T) {
	a := NewTransform(Vec2{1, 1}, 0.5)
	composed := MulTTransform(a, a)
	if !vec2Equal(composed.P, Vec2{}) || !floatEqual(composed.Q.C, 1) || !floatEqual(composed.Q.S, 0) {
		t.Errorf("MulTTransform(a, a) = %+v, want identity", composed)
	}
}

func TestClampMagnitude(t *testing.T) {
	v := Vec2{3, 4}
	clamped := ClampMagnitude(v, 2)
	if !floatEqual(clamped.Len(), 2) {
		t.Errorf("ClampMagnitude length = %v, want 2", clamped.Len())
	}

	unclamped := ClampMagnitude(v, 10)
	if !vec2Equal(unclamped, v) {
		t.Errorf("ClampMagnitude should not alter vectors within bounds: got %v, want %v", unclamped, v)
	}
}
