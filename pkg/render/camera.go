package render

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"interstellar/pkg/config"
)

// maxPitch keeps the spin axis from flipping over the poles
const maxPitch = math32.Pi/2 - 0.1

// Camera holds the viewer's pan, zoom and body spin. Zoom is a
// magnification: a larger value shows a larger body.
type Camera struct {
	CenterX float32
	CenterY float32
	Zoom    float32
	Yaw     float32 // spin around Y, radians
	Pitch   float32 // tilt around X, radians

	limits config.CameraConfig
}

// NewCamera creates a camera at the configured zoom, centered, unrotated
func NewCamera(cfg config.CameraConfig) *Camera {
	c := &Camera{limits: cfg}
	c.Reset()
	return c
}

// Reset restores the initial pan, zoom and spin
func (c *Camera) Reset() {
	c.CenterX = 0
	c.CenterY = 0
	c.Zoom = c.limits.Zoom
	c.Yaw = 0
	c.Pitch = 0
}

// Pan moves the view center by steps of PanStep, scaled down as the zoom
// grows so the on-screen speed stays the same
func (c *Camera) Pan(dx, dy float32) {
	step := c.limits.PanStep / c.Zoom
	c.CenterX += dx * step
	c.CenterY += dy * step
}

// ZoomBy multiplies the zoom by factor, clamped to the configured range
func (c *Camera) ZoomBy(factor float32) {
	c.Zoom = clampf(c.Zoom*factor, c.limits.MinZoom, c.limits.MaxZoom)
}

// Spin rotates the body by steps of SpinStep around Y (yaw) and X (pitch)
func (c *Camera) Spin(dyaw, dpitch float32) {
	c.Yaw = wrapAngle(c.Yaw + dyaw*c.limits.SpinStep)
	c.Pitch = clampf(c.Pitch+dpitch*c.limits.SpinStep, -maxPitch, maxPitch)
}

// Rotation maps view-space directions into the body's frame
func (c *Camera) Rotation() mgl32.Mat3 {
	return mgl32.Rotate3DY(c.Yaw).Mul3(mgl32.Rotate3DX(c.Pitch))
}

func clampf(x, lo, hi float32) float32 {
	return math32.Min(math32.Max(x, lo), hi)
}

// wrapAngle keeps a in [-pi, pi) so long spins do not lose precision
func wrapAngle(a float32) float32 {
	return a - 2*math32.Pi*math32.Floor((a+math32.Pi)/(2*math32.Pi))
}
