package vecmath

import "github.com/chewxy/math32"

// Pi as float32
const Pi float32 = math32.Pi

// Clamp restricts a value to be between lo and hi
func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Saturate clamps x to [0,1]. NaN maps to 0.
func Saturate(x float32) float32 {
	if math32.IsNaN(x) {
		return 0
	}
	return Clamp(x, 0, 1)
}

// Mix linearly interpolates a toward b by k without clamping k
func Mix(a, b, k float32) float32 {
	return a*(1-k) + b*k
}

// largest float32 below 1
const belowOne float32 = 0.99999994

// Fract returns x - floor(x), which lies in [0,1) for finite x. Tiny
// negative inputs would round up to 1 and are pinned below it.
func Fract(x float32) float32 {
	return math32.Min(x-math32.Floor(x), belowOne)
}
