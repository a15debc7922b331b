package vecmath

import (
	"strconv"
	"strings"
)

// Color is an RGB triple in linear [0,1] space
type Color = Vec3

// RGB builds a color from its channels
func RGB(r, g, b float32) Color {
	return Color{X: r, Y: g, Z: b}
}

// HexRGB parses a "#rrggbb" string into [0,1] channels. A channel that is
// missing or not valid hex becomes 1.0, so a bad palette entry shows up as a
// saturated color instead of an error.
func HexRGB(hex string) Color {
	h := strings.TrimPrefix(hex, "#")
	return RGB(hexChannel(h, 0), hexChannel(h, 2), hexChannel(h, 4))
}

func hexChannel(h string, offset int) float32 {
	if len(h) < offset+2 {
		return 1
	}
	v, err := strconv.ParseUint(h[offset:offset+2], 16, 8)
	if err != nil {
		return 1
	}
	return float32(v) / 255
}

// Hex formats a color as "#rrggbb", clamping channels first
func Hex(c Color) string {
	c = c.Clamp01()
	var b strings.Builder
	b.WriteByte('#')
	for _, ch := range [3]float32{c.X, c.Y, c.Z} {
		v := strconv.FormatUint(uint64(ch*255+0.5), 16)
		if len(v) < 2 {
			b.WriteByte('0')
		}
		b.WriteString(v)
	}
	return b.String()
}
