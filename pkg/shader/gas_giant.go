package shader

import (
	"github.com/chewxy/math32"

	"interstellar/pkg/noise"
	"interstellar/pkg/vecmath"
)

var stormSpot = vecmath.HexRGB("#b24d2a")

// Storm ellipse in (lon, lat)
const (
	stormLon    float32 = 0.35
	stormLat    float32 = 0.15
	stormRadLon float32 = 0.12
	stormRadLat float32 = 0.08
	stormMix    float32 = 0.6
)

func shadeGasGiant(ctx *ShadingCtx, common *CommonParams, p *GasParams) vecmath.Color {
	lat, lon := vecmath.LatLonFromNormal(ctx.N)

	// Undulate band boundaries with world-space noise
	d := noise.FBM3(ctx.P.Mul(p.NoiseFreq), 4, 2.0, 0.5)
	lat = vecmath.Saturate(lat + p.DistAmp*(d-0.5))
	bands := math32.Sin(p.KBands*lat*2*vecmath.Pi)*0.5 + 0.5

	col := palette3(bands, p.A, p.B, p.C)
	col = col.Mix(stormSpot, stormMix*stormMask(lat, lon, ctx.T*p.StormSpeed))

	// Thick atmosphere terminator
	nl := nlMix(ctx.N, ctx.L0, ctx.L1)
	col = col.Mul(0.45 + 0.55*nl)
	rim := vecmath.RimTerm(ctx.N, ctx.V, 2.8)
	return col.Add(common.Warm.Mul(0.10 * rim))
}

// stormMask is 1 at the storm center, falling off cubically to 0 at the
// ellipse edge. The longitude frame drifts by shift, wrapping at 1.
func stormMask(lat, lon, shift float32) float32 {
	frameLon := vecmath.Fract(lon + shift)
	dLon := (vecmath.Fract(frameLon-stormLon+0.5) - 0.5) / stormRadLon
	dLat := (lat - stormLat) / stormRadLat
	s := vecmath.Saturate(1 - (dLon*dLon + dLat*dLat))
	return s * s * s
}
