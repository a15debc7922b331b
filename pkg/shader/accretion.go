package shader

import (
	"github.com/chewxy/math32"

	"interstellar/pkg/noise"
	"interstellar/pkg/vecmath"
)

// grain drift per unit of time
const diskDrift float32 = 0.05

// shadeAccretion shades a disk lying in the XZ plane
func shadeAccretion(ctx *ShadingCtx, p *DiskParams) vecmath.Color {
	r := math32.Sqrt(ctx.P.X*ctx.P.X + ctx.P.Z*ctx.P.Z)

	// Emission is hottest at the inner edge
	heat := vecmath.Saturate(math32.Exp(-(r - p.RIn) * 3))

	// Radial bands distorted by animated grain
	bands := math32.Sin(p.BandsW*r+p.BandsPhi)*0.5 + 0.5
	drift := ctx.T * diskDrift
	rp := vecmath.NewVec3(ctx.P.X, 0, ctx.P.Z).Mul(p.NoiseFreq).Add(vecmath.NewVec3(drift, 0, drift))
	grain := noise.FBM3(rp, 4, 2.0, 0.5)
	distort := vecmath.Saturate(bands + p.NoiseAmp*(grain-0.5))

	warm := palette3(distort, p.C1, p.C2, p.C3)

	// Fake relativistic beaming: the side facing the viewer is brighter
	ndv := vecmath.Saturate(ctx.N.Dot(ctx.V.Neg()))
	beam := 0.6 + p.Beaming*ndv*ndv*ndv

	// Fade in past RIn and out past ROut
	width := math32.Max(p.ROut-p.RIn, vecmath.Epsilon)
	inside := vecmath.Saturate((r - p.RIn) / width)
	outer := 1 - vecmath.Saturate(r-p.ROut)
	ringMask := (1 - math32.Pow(1-inside, 16)) * outer

	return warm.Mul((0.35 + 0.65*heat) * beam * ringMask)
}
