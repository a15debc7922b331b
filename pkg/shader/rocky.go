package shader

import (
	"github.com/chewxy/math32"

	"interstellar/pkg/noise"
	"interstellar/pkg/vecmath"
)

var rockySnow = vecmath.HexRGB("#e6edf3")

// Snow bands on normalized elevation and on latitude
const (
	peakLow   float32 = 0.62
	peakHigh  float32 = 0.70
	polarLat  float32 = 0.35 // |lat-0.5| where polar caps start
	polarFade float32 = 0.15 // distance over which caps reach full strength
	polarMix  float32 = 0.35
)

func shadeRocky(ctx *ShadingCtx, common *CommonParams, p *RockyParams) vecmath.Color {
	lat, lon := vecmath.LatLonFromNormal(ctx.N)

	// Biomes
	k := noise.FBM3(vecmath.NewVec3(lat*p.BiomeFreq, lon*p.BiomeFreq, ctx.Seed), 5, 2.0, 0.5)
	base := palette3(k, p.Land1, p.Land2, p.Ocean)

	// Synthetic elevation feeds the diffuse term
	h := noise.FBM3(vecmath.NewVec3(lat*p.HeightFreq, lon*p.HeightFreq, ctx.Seed+17), 4, 2.1, 0.5)
	nl := nlMix(ctx.N, ctx.L0, ctx.L1)
	base = base.Mul(0.6 + 0.4*vecmath.Saturate(nl+p.ElevationAmp*(h-0.5)))

	// Snow on peaks, then on the caps
	base = base.Mix(rockySnow, peakSnow(h))
	base = base.Mix(rockySnow, polarMix*polarSnow(lat))

	// Thin atmosphere
	rim := vecmath.RimTerm(ctx.N, ctx.V, 2.5)
	return base.Add(common.Cool.Mul(p.AtmosphereAmp * rim))
}

// peakSnow is 0 below peakLow and 1 above peakHigh
func peakSnow(h float32) float32 {
	return smoothBand(h, peakLow, peakHigh)
}

// polarSnow grows quadratically once |lat-0.5| passes polarLat
func polarSnow(lat float32) float32 {
	s := vecmath.Saturate((math32.Abs(lat-0.5) - polarLat) / polarFade)
	return s * s
}
