package config

import (
	"interstellar/pkg/shader"
	"interstellar/pkg/vecmath"
)

// PaletteConfig holds the shader parameters in file form. Colors are
// "#rrggbb" strings.
type PaletteConfig struct {
	Common CommonPalette `yaml:"common"`
	Disk   DiskPalette   `yaml:"disk"`
	Rocky  RockyPalette  `yaml:"rocky"`
	Gas    GasPalette    `yaml:"gas"`
	Ice    IcePalette    `yaml:"ice"`
}

// CommonPalette holds the shared rim tints
type CommonPalette struct {
	Warm string `yaml:"warm"`
	Cool string `yaml:"cool"`
}

// DiskPalette configures the accretion disk
type DiskPalette struct {
	RIn       float32 `yaml:"rin"`
	ROut      float32 `yaml:"rout"`
	BandsW    float32 `yaml:"bands_w"`
	BandsPhi  float32 `yaml:"bands_phi"`
	NoiseFreq float32 `yaml:"noise_freq"`
	NoiseAmp  float32 `yaml:"noise_amp"`
	Beaming   float32 `yaml:"beaming"`
	C1        string  `yaml:"c1"`
	C2        string  `yaml:"c2"`
	C3        string  `yaml:"c3"`
}

// RockyPalette configures rocky planets
type RockyPalette struct {
	BiomeFreq     float32 `yaml:"biome_freq"`
	HeightFreq    float32 `yaml:"height_freq"`
	ElevationAmp  float32 `yaml:"elevation_amp"`
	AtmosphereAmp float32 `yaml:"atmosphere_amp"`
	Land1         string  `yaml:"land1"`
	Land2         string  `yaml:"land2"`
	Ocean         string  `yaml:"ocean"`
}

// GasPalette configures gas giants
type GasPalette struct {
	KBands     float32 `yaml:"k_bands"`
	DistAmp    float32 `yaml:"dist_amp"`
	NoiseFreq  float32 `yaml:"noise_freq"`
	StormSpeed float32 `yaml:"storm_speed"`
	A          string  `yaml:"a"`
	B          string  `yaml:"b"`
	C          string  `yaml:"c"`
}

// IcePalette configures ice worlds
type IcePalette struct {
	Freq     float32 `yaml:"freq"`
	Marbling float32 `yaml:"marbling"`
	Ice      string  `yaml:"ice"`
	Snow     string  `yaml:"snow"`
	Crack    string  `yaml:"crack"`
}

// PaletteFromParams converts shader parameters to their file form
func PaletteFromParams(p shader.Params) PaletteConfig {
	hex := vecmath.Hex
	return PaletteConfig{
		Common: CommonPalette{Warm: hex(p.Common.Warm), Cool: hex(p.Common.Cool)},
		Disk: DiskPalette{
			RIn:       p.Disk.RIn,
			ROut:      p.Disk.ROut,
			BandsW:    p.Disk.BandsW,
			BandsPhi:  p.Disk.BandsPhi,
			NoiseFreq: p.Disk.NoiseFreq,
			NoiseAmp:  p.Disk.NoiseAmp,
			Beaming:   p.Disk.Beaming,
			C1:        hex(p.Disk.C1),
			C2:        hex(p.Disk.C2),
			C3:        hex(p.Disk.C3),
		},
		Rocky: RockyPalette{
			BiomeFreq:     p.Rocky.BiomeFreq,
			HeightFreq:    p.Rocky.HeightFreq,
			ElevationAmp:  p.Rocky.ElevationAmp,
			AtmosphereAmp: p.Rocky.AtmosphereAmp,
			Land1:         hex(p.Rocky.Land1),
			Land2:         hex(p.Rocky.Land2),
			Ocean:         hex(p.Rocky.Ocean),
		},
		Gas: GasPalette{
			KBands:     p.Gas.KBands,
			DistAmp:    p.Gas.DistAmp,
			NoiseFreq:  p.Gas.NoiseFreq,
			StormSpeed: p.Gas.StormSpeed,
			A:          hex(p.Gas.A),
			B:          hex(p.Gas.B),
			C:          hex(p.Gas.C),
		},
		Ice: IcePalette{
			Freq:     p.Ice.Freq,
			Marbling: p.Ice.Marbling,
			Ice:      hex(p.Ice.Ice),
			Snow:     hex(p.Ice.Snow),
			Crack:    hex(p.Ice.Crack),
		},
	}
}

// Params converts the palette to shader parameters. Malformed colors
// degrade to saturated channels rather than failing.
func (pc PaletteConfig) Params() shader.Params {
	rgb := vecmath.HexRGB
	return shader.Params{
		Common: shader.CommonParams{Warm: rgb(pc.Common.Warm), Cool: rgb(pc.Common.Cool)},
		Disk: shader.DiskParams{
			RIn:       pc.Disk.RIn,
			ROut:      pc.Disk.ROut,
			BandsW:    pc.Disk.BandsW,
			BandsPhi:  pc.Disk.BandsPhi,
			NoiseFreq: pc.Disk.NoiseFreq,
			NoiseAmp:  pc.Disk.NoiseAmp,
			Beaming:   pc.Disk.Beaming,
			C1:        rgb(pc.Disk.C1),
			C2:        rgb(pc.Disk.C2),
			C3:        rgb(pc.Disk.C3),
		},
		Rocky: shader.RockyParams{
			BiomeFreq:     pc.Rocky.BiomeFreq,
			HeightFreq:    pc.Rocky.HeightFreq,
			ElevationAmp:  pc.Rocky.ElevationAmp,
			AtmosphereAmp: pc.Rocky.AtmosphereAmp,
			Land1:         rgb(pc.Rocky.Land1),
			Land2:         rgb(pc.Rocky.Land2),
			Ocean:         rgb(pc.Rocky.Ocean),
		},
		Gas: shader.GasParams{
			KBands:     pc.Gas.KBands,
			DistAmp:    pc.Gas.DistAmp,
			NoiseFreq:  pc.Gas.NoiseFreq,
			StormSpeed: pc.Gas.StormSpeed,
			A:          rgb(pc.Gas.A),
			B:          rgb(pc.Gas.B),
			C:          rgb(pc.Gas.C),
		},
		Ice: shader.IceParams{
			Freq:     pc.Ice.Freq,
			Marbling: pc.Ice.Marbling,
			Ice:      rgb(pc.Ice.Ice),
			Snow:     rgb(pc.Ice.Snow),
			Crack:    rgb(pc.Ice.Crack),
		},
	}
}

// ShaderParams returns the shader parameters described by the palette section
func (c *Config) ShaderParams() shader.Params {
	return c.Palette.Params()
}
