package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"interstellar/pkg/shader"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the main configuration
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Render  RenderConfig  `yaml:"render"`
	Camera  CameraConfig  `yaml:"camera"`
	Log     LogConfig     `yaml:"log"`
	Palette PaletteConfig `yaml:"palette"`
}

// WindowConfig contains viewer window configuration
type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	FrameRate int    `yaml:"framerate"`
	VSync     bool   `yaml:"vsync"`
}

// RenderConfig contains the shading resolution and the per-sample inputs the
// caller feeds into every ShadingCtx
type RenderConfig struct {
	Width      int         `yaml:"width"`
	Height     int         `yaml:"height"`
	Body       shader.Body `yaml:"body"`
	Seed       float32     `yaml:"seed"`
	TimeStep   float32     `yaml:"time_step"`   // time advanced per frame
	DiskTilt   float32     `yaml:"disk_tilt"`   // elevation of the view above the disk plane, radians
	DiskExtent float32     `yaml:"disk_extent"` // disk units covered by half the screen
	HoleRadius float32     `yaml:"hole_radius"` // horizon radius drawn over the disk, disk units
	OutputDir  string      `yaml:"output_dir"`
}

// CameraConfig contains pan/zoom/spin limits for the viewer
type CameraConfig struct {
	Zoom     float32 `yaml:"zoom"`
	MinZoom  float32 `yaml:"min_zoom"`
	MaxZoom  float32 `yaml:"max_zoom"`
	PanStep  float32 `yaml:"pan_step"`
	SpinStep float32 `yaml:"spin_step"` // radians per frame while a spin key is held
}

// LogConfig contains logger configuration
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // optional, logs go to stdout and the file
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     800,
			Height:    600,
			Title:     "Interstellar",
			FrameRate: 60,
			VSync:     true,
		},
		Render: RenderConfig{
			Width:      400,
			Height:     300,
			Body:       shader.Rocky,
			Seed:       0.5,
			TimeStep:   0.01,
			DiskTilt:   0.35,
			DiskExtent: 6.0,
			HoleRadius: 1.0,
			OutputDir:  "output",
		},
		Camera: CameraConfig{
			Zoom:     1.0,
			MinZoom:  0.3,
			MaxZoom:  5.0,
			PanStep:  0.05,
			SpinStep: 0.02,
		},
		Log: LogConfig{
			Level: "info",
		},
		Palette: PaletteFromParams(shader.DefaultParams()),
	}
}

// LoadConfig loads the configuration from a file. Missing keys keep their
// default values; on error the defaults are returned alongside it.
func LoadConfig(filePath string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return config, fmt.Errorf("config file not found, using defaults: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), fmt.Errorf("error parsing config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return DefaultConfig(), err
	}

	return config, nil
}

// SaveConfig saves the configuration to a file
func SaveConfig(config *Config, filePath string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("error serializing config: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// Validate checks the numeric ranges the viewer relies on
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	case c.Render.Width <= 0 || c.Render.Height <= 0:
		return fmt.Errorf("%w: render size %dx%d", ErrInvalidConfig, c.Render.Width, c.Render.Height)
	case c.Window.FrameRate < 0:
		return fmt.Errorf("%w: negative frame rate %d", ErrInvalidConfig, c.Window.FrameRate)
	case c.Camera.MinZoom <= 0 || c.Camera.MaxZoom < c.Camera.MinZoom:
		return fmt.Errorf("%w: zoom range [%v, %v]", ErrInvalidConfig, c.Camera.MinZoom, c.Camera.MaxZoom)
	case c.Camera.Zoom < c.Camera.MinZoom || c.Camera.Zoom > c.Camera.MaxZoom:
		return fmt.Errorf("%w: zoom %v outside [%v, %v]", ErrInvalidConfig, c.Camera.Zoom, c.Camera.MinZoom, c.Camera.MaxZoom)
	case c.Render.DiskTilt <= 0 || c.Render.DiskTilt > 1.5708:
		return fmt.Errorf("%w: disk tilt %v must be in (0, pi/2]", ErrInvalidConfig, c.Render.DiskTilt)
	case c.Render.DiskExtent <= 0:
		return fmt.Errorf("%w: disk extent %v", ErrInvalidConfig, c.Render.DiskExtent)
	case c.Render.HoleRadius < 0:
		return fmt.Errorf("%w: hole radius %v", ErrInvalidConfig, c.Render.HoleRadius)
	case c.Palette.Disk.ROut <= c.Palette.Disk.RIn:
		return fmt.Errorf("%w: disk rout %v must exceed rin %v", ErrInvalidConfig, c.Palette.Disk.ROut, c.Palette.Disk.RIn)
	}
	return nil
}
