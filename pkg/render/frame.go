package render

import (
	"image"

	"interstellar/pkg/vecmath"
)

// Frame is an opaque RGBA8 pixel buffer, row-major, top row first
type Frame struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewFrame allocates a black, opaque frame
func NewFrame(width, height int) *Frame {
	f := &Frame{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, 4*width*height),
	}
	f.Clear()
	return f
}

// Clear resets every pixel to opaque black
func (f *Frame) Clear() {
	for i := 0; i < len(f.Pix); i += 4 {
		f.Pix[i] = 0
		f.Pix[i+1] = 0
		f.Pix[i+2] = 0
		f.Pix[i+3] = 0xff
	}
}

// Row returns the bytes of row y. Rows never overlap, so different
// goroutines may fill different rows.
func (f *Frame) Row(y int) []uint8 {
	stride := 4 * f.Width
	return f.Pix[y*stride : (y+1)*stride]
}

// Image wraps the buffer without copying
func (f *Frame) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    f.Pix,
		Stride: 4 * f.Width,
		Rect:   image.Rect(0, 0, f.Width, f.Height),
	}
}

func putPixel(px []uint8, c vecmath.Color) {
	c = c.Clamp01()
	px[0] = uint8(c.X * 255)
	px[1] = uint8(c.Y * 255)
	px[2] = uint8(c.Z * 255)
	px[3] = 0xff
}
