package vecmath

import (
	"math"
	"testing"
)

func TestHexRGB(t *testing.T) {
	const step = 1.0 / 255

	tests := []struct {
		name     string
		hex      string
		expected Color
	}{
		{"black", "#000000", RGB(0, 0, 0)},
		{"white", "#ffffff", RGB(1, 1, 1)},
		{"no hash", "ff8000", RGB(1, 128.0/255, 0)},
		{"upper case", "#FFB347", RGB(1, 0xb3/255.0, 0x47/255.0)},
		{"bad green", "#00zz00", RGB(0, 1, 0)},
		{"truncated", "#1020", RGB(0x10/255.0, 0x20/255.0, 1)},
		{"empty", "", RGB(1, 1, 1)},
		{"signed channel", "#+f0000", RGB(1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HexRGB(tt.hex)
			if math.Abs(float64(got.X-tt.expected.X)) > step ||
				math.Abs(float64(got.Y-tt.expected.Y)) > step ||
				math.Abs(float64(got.Z-tt.expected.Z)) > step {
				t.Errorf("HexRGB(%q) = %v, expected %v", tt.hex, got, tt.expected)
			}
		})
	}
}

func TestHex_RoundTrip(t *testing.T) {
	for _, hex := range []string{"#000000", "#ffffff", "#ffb347", "#1c3b6b", "#0a0b0c"} {
		if got := Hex(HexRGB(hex)); got != hex {
			t.Errorf("Hex(HexRGB(%q)) = %q", hex, got)
		}
	}
}
