package shader

import (
	"github.com/chewxy/math32"

	"interstellar/pkg/noise"
	"interstellar/pkg/vecmath"
)

// cracks appear in a narrow band above this marbling value
const (
	crackStart float32 = 0.65
	crackWidth float32 = 0.03
)

func shadeIce(ctx *ShadingCtx, common *CommonParams, p *IceParams) vecmath.Color {
	lat, lon := vecmath.LatLonFromNormal(ctx.N)

	warp := noise.FBM3(vecmath.NewVec3(lat*p.Freq, lon*p.Freq, ctx.Seed), 4, 2.0, 0.5)
	m := math32.Sin(lon*2*vecmath.Pi*p.Freq+p.Marbling*warp)*0.5 + 0.5
	cracks := vecmath.Saturate((m - crackStart) / crackWidth)

	col := p.Ice.Mix(p.Snow, m)
	col = col.Mix(p.Crack, cracks)

	nl := nlMix(ctx.N, ctx.L0, ctx.L1)
	col = col.Mul(0.5 + 0.5*nl)

	// Cold air on the rim
	rim := vecmath.RimTerm(ctx.N, ctx.V, 2.2)
	return col.Add(common.Cool.Mul(0.12 * rim))
}
