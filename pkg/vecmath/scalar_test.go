package vecmath

import (
	"math"
	"testing"
)

func TestSaturate(t *testing.T) {
	tests := []struct {
		name     string
		input    float32
		expected float32
	}{
		{"inside", 0.25, 0.25},
		{"below", -3, 0},
		{"above", 7, 1},
		{"positive infinity", float32(math.Inf(1)), 1},
		{"negative infinity", float32(math.Inf(-1)), 0},
		{"nan", float32(math.NaN()), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Saturate(tt.input); got != tt.expected {
				t.Errorf("Saturate(%v) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFract(t *testing.T) {
	tests := []struct {
		input    float32
		expected float32
	}{
		{1.25, 0.25},
		{-0.25, 0.75},
		{3, 0},
		{-1e-9, belowOne},
	}

	for _, tt := range tests {
		got := Fract(tt.input)
		if !near(got, tt.expected) {
			t.Errorf("Fract(%v) = %v, expected %v", tt.input, got, tt.expected)
		}
		if got < 0 || got >= 1 {
			t.Errorf("Fract(%v) = %v, outside [0,1)", tt.input, got)
		}
	}
}
