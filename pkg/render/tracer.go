package render

import (
	"sync"

	"github.com/dgravesa/go-parallel/parallel"

	"interstellar/pkg/config"
	"interstellar/pkg/shader"
	"interstellar/pkg/vecmath"
)

// Tracer shades whole frames for the active camera
type Tracer struct {
	camera   *Camera
	params   shader.Params
	settings ViewSettings
	frame    *Frame
	mutex    sync.Mutex
}

// NewTracer creates a tracer with the render section and palette of cfg
func NewTracer(cfg *config.Config, camera *Camera) *Tracer {
	return &Tracer{
		camera: camera,
		params: cfg.ShaderParams(),
		settings: ViewSettings{
			Width:      cfg.Render.Width,
			Height:     cfg.Render.Height,
			Seed:       cfg.Render.Seed,
			DiskTilt:   cfg.Render.DiskTilt,
			DiskExtent: cfg.Render.DiskExtent,
			HoleRadius: cfg.Render.HoleRadius,
		},
		frame: NewFrame(cfg.Render.Width, cfg.Render.Height),
	}
}

// UpdateResolution resizes the frame buffer used by later renders
func (tr *Tracer) UpdateResolution(width, height int) {
	tr.mutex.Lock()
	defer tr.mutex.Unlock()

	if width < 1 || height < 1 || (width == tr.settings.Width && height == tr.settings.Height) {
		return
	}
	tr.settings.Width = width
	tr.settings.Height = height
	tr.frame = NewFrame(width, height)
}

// Resolution returns the current frame size
func (tr *Tracer) Resolution() (int, int) {
	tr.mutex.Lock()
	defer tr.mutex.Unlock()

	return tr.settings.Width, tr.settings.Height
}

// SetParams replaces the palette used by later renders
func (tr *Tracer) SetParams(params shader.Params) {
	tr.mutex.Lock()
	defer tr.mutex.Unlock()

	tr.params = params
}

// RenderFrame shades every pixel of body at time t. The returned frame is
// reused by the next call.
func (tr *Tracer) RenderFrame(body shader.Body, t float32) *Frame {
	tr.mutex.Lock()
	defer tr.mutex.Unlock()

	settings := tr.settings
	settings.T = t
	view := NewView(tr.camera, settings)
	frame := tr.frame
	params := &tr.params

	// One row per task; rows are disjoint slices of Pix
	parallel.For(frame.Height, func(y, _ int) {
		row := frame.Row(y)
		for x := 0; x < frame.Width; x++ {
			putPixel(row[4*x:], shadePixel(view, body, params, x, y))
		}
	})

	return frame
}

// shadePixel returns the background for samples that miss the body
func shadePixel(view *View, body shader.Body, params *shader.Params, x, y int) vecmath.Color {
	nx, ny := view.Screen(x, y)

	if body == shader.AccretionDisk {
		return shadeDiskScene(view, params, nx, ny)
	}

	ctx, ok := view.SphereCtx(nx, ny)
	if !ok {
		return vecmath.Color{}
	}
	return shader.Shade(&ctx, body, params)
}

// shadeDiskScene composites the disk with its horizon by depth
func shadeDiskScene(view *View, params *shader.Params, nx, ny float32) vecmath.Color {
	diskCtx := view.DiskCtx(nx, ny)
	disk := shader.Shade(&diskCtx, shader.AccretionDisk, params)

	holeCtx, inFront, ok := view.HoleCtx(nx, ny)
	if !ok || (inFront && disk != (vecmath.Color{})) {
		return disk
	}
	return shader.Shade(&holeCtx, shader.BlackHole, params)
}
