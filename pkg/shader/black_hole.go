package shader

import "interstellar/pkg/vecmath"

var blackHoleTint = vecmath.RGB(0.06, 0.03, 0.10)

// shadeBlackHole is near black with a faint purple glow toward the silhouette.
// Horizon and photon ring geometry belong to the caller.
func shadeBlackHole(ctx *ShadingCtx) vecmath.Color {
	glow := vecmath.RimTerm(ctx.N, ctx.V, 3.5)
	return blackHoleTint.Mul(glow * 0.25)
}
