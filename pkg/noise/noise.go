// Package noise provides the deterministic value noise used by every
// procedural pattern in the shaders. There is no RNG state: all randomness
// comes from hashing lattice coordinates.
package noise

import (
	"github.com/chewxy/math32"

	"interstellar/pkg/vecmath"
)

// Hash coefficients
const (
	hashX     float32 = 127.1
	hashY     float32 = 311.7
	hashZ     float32 = 74.7
	hashScale float32 = 43758.5453
)

// Hash31 maps three coordinates to a pseudo-random scalar in [0,1).
// Identical inputs always produce identical outputs.
func Hash31(x, y, z float32) float32 {
	return vecmath.Fract(math32.Sin(x*hashX+y*hashY+z*hashZ) * hashScale)
}

// smoothstep weight 3t² - 2t³
func fade(t float32) float32 {
	return t * t * (3 - 2*t)
}

// ValueNoise3 interpolates Hash31 at the 8 lattice corners around p.
// At integer p it returns Hash31(p) exactly.
func ValueNoise3(p vecmath.Vec3) float32 {
	ix, iy, iz := math32.Floor(p.X), math32.Floor(p.Y), math32.Floor(p.Z)
	fx, fy, fz := p.X-ix, p.Y-iy, p.Z-iz
	ux, uy, uz := fade(fx), fade(fy), fade(fz)

	h000 := Hash31(ix, iy, iz)
	h100 := Hash31(ix+1, iy, iz)
	h010 := Hash31(ix, iy+1, iz)
	h110 := Hash31(ix+1, iy+1, iz)
	h001 := Hash31(ix, iy, iz+1)
	h101 := Hash31(ix+1, iy, iz+1)
	h011 := Hash31(ix, iy+1, iz+1)
	h111 := Hash31(ix+1, iy+1, iz+1)

	// Interpolate along x
	x00 := vecmath.Mix(h000, h100, ux)
	x10 := vecmath.Mix(h010, h110, ux)
	x01 := vecmath.Mix(h001, h101, ux)
	x11 := vecmath.Mix(h011, h111, ux)

	// Interpolate along y
	y0 := vecmath.Mix(x00, x10, uy)
	y1 := vecmath.Mix(x01, x11, uy)

	// Interpolate along z
	return vecmath.Mix(y0, y1, uz)
}

// FBM3 sums octaves of ValueNoise3. The first octave has amplitude 0.5,
// each following octave samples at lacunarity times the frequency and gain
// times the amplitude. Zero octaves yields 0.
func FBM3(p vecmath.Vec3, octaves int, lacunarity, gain float32) float32 {
	amplitude := float32(0.5)
	sum := float32(0)

	for i := 0; i < octaves; i++ {
		sum += amplitude * ValueNoise3(p)
		p = p.Mul(lacunarity)
		amplitude *= gain
	}

	return sum
}
