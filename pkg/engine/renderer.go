package engine

import "interstellar/pkg/render"

// Renderer presents shaded frames to the screen
type Renderer interface {
	// Render draws the frame, letterboxed to keep its aspect ratio
	Render(frame *render.Frame)

	// UpdateResolution updates the window (framebuffer) size
	UpdateResolution(width, height int)

	// Close releases resources
	Close()
}
