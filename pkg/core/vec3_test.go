package core

import (
	"math"
	"testing"
)

func TestVec3_Normalize(t *testing.T) {
	tests := []struct {
		name   string
		vector Vec3
	}{
		{"axis aligned", NewVec3(0, 0, -5)},
		{"mixed signs", NewVec3(1, -2, 5)},
		{"tiny", NewVec3(1e-6, 2e-6, -3e-6)},
		{"large", NewVec3(1e8, -3e7, 4e8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			length := tt.vector.Normalize().Length()
			if math.Abs(length-1) > 1e-9 {
				t.Errorf("Expected unit length, got %v", length)
			}
		})
	}
}

func TestVec3_NormalizeZero(t *testing.T) {
	if n := NewVec3(0, 0, 0).Normalize(); !n.IsZero() {
		t.Errorf("Expected zero vector to stay zero, got %v", n)
	}
}

func TestVec3_NormalizeComponents(t *testing.T) {
	n := NewVec3(1, 2, 5).Normalize()
	expected := NewVec3(1/math.Sqrt(30), math.Sqrt(2.0/15.0), math.Sqrt(5.0/6.0))
	if n.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected %v, got %v", expected, n)
	}
}

func TestVec3_DotMatchesLength(t *testing.T) {
	vectors := []Vec3{
		NewVec3(1, 2, 3),
		NewVec3(-4, 0.5, 9),
		NewVec3(0, 0, 0),
		NewVec3(1e3, -1e-3, 7),
	}
	for _, v := range vectors {
		length := v.Length()
		if math.Abs(v.Dot(v)-length*length) > 1e-9*math.Max(1, v.Dot(v)) {
			t.Errorf("dot(%v, %v) = %v, length^2 = %v", v, v, v.Dot(v), length*length)
		}
	}
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 0)
	b := NewVec3(-1, -1, 2)

	if got := a.Add(b); got != NewVec3(0, 1, 2) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Subtract(b); got != NewVec3(2, 3, -2) {
		t.Errorf("Subtract: got %v", got)
	}
	if got := NewVec3(-1, 2, -3).Negate(); got != NewVec3(1, -2, 3) {
		t.Errorf("Negate: got %v", got)
	}
	if got := a.Multiply(3); got != NewVec3(3, 6, 0) {
		t.Errorf("Multiply: got %v", got)
	}
	if got := NewVec3(1, 2, 3).Dot(NewVec3(-1, 0.5, -1)); got != -3 {
		t.Errorf("Dot: got %v", got)
	}
	if got := NewVec3(1, 2, 3).Length(); got != math.Sqrt(14) {
		t.Errorf("Length: got %v", got)
	}
}

func TestVec3_Cross(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3
		expected Vec3
	}{
		{"x cross y", NewVec3(1, 0, 0), NewVec3(0, 1, 0), NewVec3(0, 0, 1)},
		{"y cross z", NewVec3(0, 1, 0), NewVec3(0, 0, 1), NewVec3(1, 0, 0)},
		{"general", NewVec3(1, -1, 2), NewVec3(-1, 1, -1), NewVec3(-1, -1, 0)},
		{"parallel", NewVec3(0, 2, 0), NewVec3(0, -5, 0), NewVec3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cross(tt.b); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestVec3FromArray(t *testing.T) {
	if got := Vec3FromArray([3]float64{1, 2, 3}); got != NewVec3(1, 2, 3) {
		t.Errorf("Expected (1,2,3), got %v", got)
	}
}
