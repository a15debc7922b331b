package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"interstellar/internal/logger"
	"interstellar/internal/util"
	"interstellar/pkg/config"
	"interstellar/pkg/render"
	"interstellar/pkg/shader"
)

// zoomStep is the magnification change per key press or wheel notch
const zoomStep = 1.1

// bodyKeys maps the number row to body kinds
var bodyKeys = map[glfw.Key]shader.Body{
	glfw.Key1: shader.Rocky,
	glfw.Key2: shader.GasGiant,
	glfw.Key3: shader.Ice,
	glfw.Key4: shader.AccretionDisk,
	glfw.Key5: shader.BlackHole,
}

var trackedKeys = []glfw.Key{
	glfw.Key1, glfw.Key2, glfw.Key3, glfw.Key4, glfw.Key5,
	glfw.KeyLeft, glfw.KeyRight, glfw.KeyUp, glfw.KeyDown,
	glfw.KeyEqual, glfw.KeyKPAdd, glfw.KeyMinus, glfw.KeyKPSubtract,
	glfw.KeyA, glfw.KeyD, glfw.KeyW, glfw.KeyS,
	glfw.KeyR, glfw.KeySpace, glfw.KeyP, glfw.KeyEscape,
}

// Engine runs the interactive viewer
type Engine struct {
	window   *glfw.Window
	config   *config.Config
	logger   *logger.Logger
	renderer Renderer
	tracer   *render.Tracer
	camera   *render.Camera
	input    *InputHandler

	body   shader.Body
	t      float32
	paused bool
	frame  *render.Frame

	isRunning  bool
	lastUpdate time.Time
	frameRate  int
	frameTimes *util.RollingAverage
	lastReport time.Time
}

// NewEngine opens the window and prepares the GL pipeline. Must be called
// from the main OS thread.
func NewEngine(cfg *config.Config, log *logger.Logger) (*Engine, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}

	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	log.Debugf("OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	if cfg.Window.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	fbWidth, fbHeight := window.GetFramebufferSize()
	renderer, err := NewOpenGLRenderer(fbWidth, fbHeight)
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize renderer: %w", err)
	}

	camera := render.NewCamera(cfg.Camera)

	engine := &Engine{
		window:     window,
		config:     cfg,
		logger:     log,
		renderer:   renderer,
		tracer:     render.NewTracer(cfg, camera),
		camera:     camera,
		input:      NewInputHandler(window, trackedKeys...),
		body:       cfg.Render.Body,
		frameRate:  cfg.Window.FrameRate,
		frameTimes: util.NewRollingAverage(60),
	}

	window.SetFramebufferSizeCallback(engine.resizeCallback)
	engine.resizeCallback(window, fbWidth, fbHeight)

	return engine, nil
}

// Run starts the main loop and returns when the window closes or Esc is
// pressed
func (e *Engine) Run() {
	e.isRunning = true
	e.lastUpdate = time.Now()
	e.lastReport = e.lastUpdate

	e.logger.Infof("Showing %s", e.body)

	for e.isRunning && !e.window.ShouldClose() {
		currentTime := time.Now()
		e.frameTimes.Add(currentTime.Sub(e.lastUpdate).Seconds())
		e.lastUpdate = currentTime

		glfw.PollEvents()
		e.processInput()
		e.update()
		e.render()

		e.window.SwapBuffers()
		e.reportFrameRate(currentTime)

		// Cap the frame rate
		if e.frameRate > 0 {
			frameTime := time.Since(currentTime)
			targetFrameTime := time.Second / time.Duration(e.frameRate)
			if frameTime < targetFrameTime {
				time.Sleep(targetFrameTime - frameTime)
			}
		}
	}

	e.cleanup()
}

// processInput applies this frame's key and wheel input
func (e *Engine) processInput() {
	in := e.input
	in.Update()

	if in.IsKeyPressed(glfw.KeyEscape) {
		e.isRunning = false
	}

	for key, body := range bodyKeys {
		if in.IsKeyPressed(key) && body != e.body {
			e.body = body
			e.logger.Infof("Showing %s", body)
		}
	}

	e.camera.Pan(in.Axis(glfw.KeyLeft, glfw.KeyRight), in.Axis(glfw.KeyDown, glfw.KeyUp))

	if in.IsKeyPressed(glfw.KeyEqual) || in.IsKeyPressed(glfw.KeyKPAdd) {
		e.camera.ZoomBy(zoomStep)
	}
	if in.IsKeyPressed(glfw.KeyMinus) || in.IsKeyPressed(glfw.KeyKPSubtract) {
		e.camera.ZoomBy(1 / zoomStep)
	}
	if wheel := in.GetMouseWheelDelta(); wheel != 0 {
		e.camera.ZoomBy(float32(math.Pow(zoomStep, wheel)))
	}

	e.camera.Spin(in.Axis(glfw.KeyA, glfw.KeyD), in.Axis(glfw.KeyS, glfw.KeyW))

	if in.IsKeyPressed(glfw.KeyR) {
		e.camera.Reset()
	}

	if in.IsKeyPressed(glfw.KeySpace) {
		e.paused = !e.paused
		e.logger.Debugf("Paused: %v at t=%.2f", e.paused, e.t)
	}

	if in.IsKeyPressed(glfw.KeyP) {
		e.saveSnapshot()
	}
}

// update advances the shading clock
func (e *Engine) update() {
	if !e.paused {
		e.t += e.config.Render.TimeStep
	}
}

// render shades and presents the current frame
func (e *Engine) render() {
	e.frame = e.tracer.RenderFrame(e.body, e.t)
	e.renderer.Render(e.frame)
}

func (e *Engine) saveSnapshot() {
	if e.frame == nil {
		e.logger.Warn("No frame rendered yet, snapshot skipped")
		return
	}

	path, err := render.SavePNG(e.frame.Image(), e.config.Render.OutputDir, e.body)
	if err != nil {
		e.logger.Errorf("Snapshot failed: %v", err)
		return
	}
	e.logger.Infof("Saved %s", path)
}

// reportFrameRate logs the rolling frame rate about once a second
func (e *Engine) reportFrameRate(now time.Time) {
	if now.Sub(e.lastReport) < time.Second {
		return
	}
	e.lastReport = now

	if mean := e.frameTimes.Mean(); mean > 0 {
		w, h := e.tracer.Resolution()
		e.logger.Debugf("%.1f fps, %dx%d %s", 1/mean, w, h, e.body)
	}
}

// resizeCallback keeps the render height and follows the window's aspect
func (e *Engine) resizeCallback(_ *glfw.Window, width int, height int) {
	if width <= 0 || height <= 0 {
		return // minimized
	}

	e.renderer.UpdateResolution(width, height)

	renderHeight := e.config.Render.Height
	renderWidth := int(math.Round(float64(renderHeight) * float64(width) / float64(height)))
	if w, h := e.tracer.Resolution(); w != renderWidth || h != renderHeight {
		e.tracer.UpdateResolution(renderWidth, renderHeight)
		e.logger.Debugf("Window %dx%d, shading at %dx%d", width, height, renderWidth, renderHeight)
	}
}

// cleanup performs necessary cleanup before exiting
func (e *Engine) cleanup() {
	e.logger.Info("Shutting down viewer...")
	e.renderer.Close()
	e.window.Destroy()
	glfw.Terminate()
}
