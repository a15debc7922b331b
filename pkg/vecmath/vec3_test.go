package vecmath

import (
	"math"
	"testing"
)

const tolerance = 1e-6

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) <= tolerance
}

func nearVec(a, b Vec3) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z)
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 0.5)

	tests := []struct {
		name     string
		got      Vec3
		expected Vec3
	}{
		{"Add", a.Add(b), NewVec3(5, -3, 3.5)},
		{"Sub", a.Sub(b), NewVec3(-3, 7, 2.5)},
		{"MulVec", a.MulVec(b), NewVec3(4, -10, 1.5)},
		{"Mul", a.Mul(2), NewVec3(2, 4, 6)},
		{"Div", a.Div(2), NewVec3(0.5, 1, 1.5)},
		{"Neg", a.Neg(), NewVec3(-1, -2, -3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !nearVec(tt.got, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}

	if d := a.Dot(b); !near(d, 4-10+1.5) {
		t.Errorf("Dot: expected %v, got %v", 4-10+1.5, d)
	}
	if l := NewVec3(3, 4, 0).Length(); !near(l, 5) {
		t.Errorf("Length: expected 5, got %v", l)
	}
}

func TestVec3_Normalized(t *testing.T) {
	n := NewVec3(0, 3, 4).Normalized()
	if !nearVec(n, NewVec3(0, 0.6, 0.8)) {
		t.Errorf("Expected (0, 0.6, 0.8), got %v", n)
	}

	// Degenerate vectors must stay finite
	for _, v := range []Vec3{{}, NewVec3(1e-20, 0, 0), NewVec3(-1e-30, 1e-30, 0)} {
		if got := v.Normalized(); !got.IsFinite() {
			t.Errorf("Normalized(%v) = %v, want finite", v, got)
		}
	}
}

func TestVec3_Clamp01Idempotent(t *testing.T) {
	inputs := []Vec3{
		NewVec3(-1, 0.5, 2),
		NewVec3(0, 1, 0.25),
		NewVec3(100, -100, 1.0000001),
		NewVec3(float32(math.Inf(1)), float32(math.Inf(-1)), 0.3),
		NewVec3(float32(math.NaN()), 0.5, float32(math.NaN())),
	}

	for _, in := range inputs {
		once := in.Clamp01()
		twice := once.Clamp01()
		if once != twice {
			t.Errorf("Clamp01 not idempotent for %v: %v vs %v", in, once, twice)
		}
		for _, ch := range []float32{once.X, once.Y, once.Z} {
			if ch < 0 || ch > 1 {
				t.Errorf("Clamp01(%v) channel %v out of range", in, ch)
			}
		}
	}
}

func TestVec3_Mix(t *testing.T) {
	a := NewVec3(0, 0, 0)
	b := NewVec3(1, 2, 4)

	tests := []struct {
		k        float32
		expected Vec3
	}{
		{0, a},
		{1, b},
		{0.5, NewVec3(0.5, 1, 2)},
		{2, NewVec3(2, 4, 8)}, // extrapolates
	}

	for _, tt := range tests {
		if got := a.Mix(b, tt.k); !nearVec(got, tt.expected) {
			t.Errorf("Mix(k=%v): expected %v, got %v", tt.k, tt.expected, got)
		}
	}
}
