package core

import (
	"math"
	"testing"
)

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{3, 4}
	b := Vec2{1, -2}

	if got := a.Add(b); got != (Vec2{4, 2}) {
		t.Errorf("Add() = %v, expected {4 2}", got)
	}
	if got := a.Sub(b); got != (Vec2{2, 6}) {
		t.Errorf("Sub() = %v, expected {2 6}", got)
	}
	if got := a.Scale(2); got != (Vec2{6, 8}) {
		t.Errorf("Scale(2) = %v, expected {6 8}", got)
	}
	if got := a.Dot(b); got != 3*1+4*(-2) {
		t.Errorf("Dot() = %v, expected -5", got)
	}
	if got := a.Cross(b); got != 3*(-2)-4*1 {
		t.Errorf("Cross() = %v, expected -10", got)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}

	if got := v.Length(); got != 5 {
		t.Errorf("Length() = %v, expected 5", got)
	}
	if got := v.LengthSquared(); got != 25 {
		t.Errorf("LengthSquared() = %v, expected 25", got)
	}
}

func TestVec2Normalize(t *testing.T) {
	v := Vec2{10, 0}
	n := v.Normalize()
	if n != (Vec2{1, 0}) {
		t.Errorf("Normalize() = %v, expected {1 0}", n)
	}

	diag := Vec2{5, 5}.Normalize()
	if math.Abs(diag.Length()-1) > 1e-12 {
		t.Errorf("Normalized diagonal has length %v, expected 1", diag.Length())
	}

	// Zero vector must not produce NaN
	z := Vec2{}.Normalize()
	if z != (Vec2{}) {
		t.Errorf("Normalize() of zero vector = %v, expected zero", z)
	}
}

func TestVec2Midpoint(t *testing.T) {
	a := Vec2{0, 0}
	b := Vec2{10, 20}

	if got := a.Midpoint(b); got != (Vec2{5, 10}) {
		t.Errorf("Midpoint() = %v, expected {5 10}", got)
	}
	// Symmetric
	if got := b.Midpoint(a); got != (Vec2{5, 10}) {
		t.Errorf("Midpoint() (reversed) = %v, expected {5 10}", got)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(0) != 0 {
		t.Error("Abs(0) should be 0")
	}
}
