package shader

import "interstellar/pkg/vecmath"

// CommonParams holds the rim tints shared by the planetary shaders
type CommonParams struct {
	Warm vecmath.Color
	Cool vecmath.Color
}

// DiskParams configures the accretion disk
type DiskParams struct {
	RIn, ROut  float32 // inner and outer radius in the XZ plane
	BandsW     float32 // radial band frequency
	BandsPhi   float32 // radial band phase
	NoiseFreq  float32
	NoiseAmp   float32
	Beaming    float32
	C1, C2, C3 vecmath.Color
}

// RockyParams configures rocky planets
type RockyParams struct {
	BiomeFreq     float32
	HeightFreq    float32
	ElevationAmp  float32 // weight of elevation in the fake shading term
	AtmosphereAmp float32 // strength of the cool rim
	Land1, Land2  vecmath.Color
	Ocean         vecmath.Color
}

// GasParams configures gas giants
type GasParams struct {
	KBands     float32
	DistAmp    float32
	NoiseFreq  float32
	StormSpeed float32
	A, B, C    vecmath.Color
}

// IceParams configures ice worlds
type IceParams struct {
	Freq     float32
	Marbling float32
	Ice      vecmath.Color
	Snow     vecmath.Color
	Crack    vecmath.Color
}

// Params bundles the configuration of every body kind
type Params struct {
	Common CommonParams
	Disk   DiskParams
	Rocky  RockyParams
	Gas    GasParams
	Ice    IceParams
}

// DefaultParams returns the stock palette
func DefaultParams() Params {
	return Params{
		Common: CommonParams{
			Warm: vecmath.HexRGB("#ffb347"),
			Cool: vecmath.HexRGB("#8bb6ff"),
		},
		Disk: DiskParams{
			RIn: 1.2, ROut: 5.0,
			BandsW: 22.0, BandsPhi: 0.3,
			NoiseFreq: 2.8, NoiseAmp: 0.08,
			Beaming: 0.4,
			C1:      vecmath.HexRGB("#ff9a00"),
			C2:      vecmath.HexRGB("#ffd65c"),
			C3:      vecmath.HexRGB("#fff3e0"),
		},
		Rocky: RockyParams{
			BiomeFreq:     7.0,
			HeightFreq:    8.0,
			ElevationAmp:  0.15,
			AtmosphereAmp: 0.12,
			Land1:         vecmath.HexRGB("#6b4f2a"),
			Land2:         vecmath.HexRGB("#9db36b"),
			Ocean:         vecmath.HexRGB("#1c3b6b"),
		},
		Gas: GasParams{
			KBands:     16.0,
			DistAmp:    0.06,
			NoiseFreq:  3.0,
			StormSpeed: 0.12,
			A:          vecmath.HexRGB("#f0e1c2"),
			B:          vecmath.HexRGB("#d9a066"),
			C:          vecmath.HexRGB("#9b6b43"),
		},
		Ice: IceParams{
			Freq:     10.0,
			Marbling: 1.6,
			Ice:      vecmath.HexRGB("#9fd0ff"),
			Snow:     vecmath.HexRGB("#e6f4ff"),
			Crack:    vecmath.HexRGB("#284a73"),
		},
	}
}
