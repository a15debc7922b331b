package shader

import "interstellar/pkg/vecmath"

// palette3 ramps a->b over [0,0.5) and b->c over [0.5,1]
func palette3(u float32, a, b, c vecmath.Color) vecmath.Color {
	if u < 0.5 {
		return a.Mix(b, u*2)
	}
	return b.Mix(c, (u-0.5)*2)
}

// nlMix is the fixed 70/30 diffuse term of the two lights
func nlMix(n, l0, l1 vecmath.Vec3) float32 {
	a := vecmath.Saturate(n.Dot(l0))
	b := vecmath.Saturate(n.Dot(l1))
	return 0.7*a + 0.3*b
}

// smoothBand maps x to [0,1] linearly across [lo, hi]
func smoothBand(x, lo, hi float32) float32 {
	return vecmath.Saturate((x - lo) / (hi - lo))
}
