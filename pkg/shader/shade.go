// Package shader turns a sample's geometry and lighting into a color for
// one of five celestial body kinds. Everything here is a pure function of
// its arguments, so Shade may be called from any number of goroutines.
package shader

import "interstellar/pkg/vecmath"

// Shade dispatches to the body's algorithm and clamps the result to [0,1]
func Shade(ctx *ShadingCtx, body Body, params *Params) vecmath.Color {
	var col vecmath.Color

	switch body {
	case BlackHole:
		col = shadeBlackHole(ctx)
	case AccretionDisk:
		col = shadeAccretion(ctx, &params.Disk)
	case Rocky:
		col = shadeRocky(ctx, &params.Common, &params.Rocky)
	case GasGiant:
		col = shadeGasGiant(ctx, &params.Common, &params.Gas)
	case Ice:
		col = shadeIce(ctx, &params.Common, &params.Ice)
	}

	return col.Clamp01()
}
