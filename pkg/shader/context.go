package shader

import "interstellar/pkg/vecmath"

// ShadingCtx is the per-sample input to Shade. Callers build a fresh one for
// every sample; the shaders never modify or keep it.
type ShadingCtx struct {
	P    vecmath.Vec3 // world position
	N    vecmath.Vec3 // unit normal
	V    vecmath.Vec3 // unit view direction
	L0   vecmath.Vec3 // primary light direction (unit)
	L1   vecmath.Vec3 // secondary light direction (unit)
	T    float32      // time, advanced by the caller
	Seed float32
}
