package fractal

import (
	"fmt"
	"image"
	"image/color"
)

// Frame is a rectangular RGBA pixel buffer, 4 bytes per pixel, row-major
// starting at the top-left corner.
type Frame struct {
	width  int
	height int
	pix    []uint8
}

// NewFrame allocates a frame with the given dimensions.
func NewFrame(width, height int) *Frame {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("fractal: negative frame size %dx%d", width, height))
	}
	return &Frame{
		width:  width,
		height: height,
		pix:    make([]uint8, 4*width*height),
	}
}

// Width returns the width of the frame in pixels.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the height of the frame in pixels.
func (f *Frame) Height() int {
	return f.height
}

// Len returns the number of pixels.
func (f *Frame) Len() int {
	return f.width * f.height
}

// Pix returns the raw RGBA bytes. The slice is only valid until the next Resize.
func (f *Frame) Pix() []uint8 {
	return f.pix
}

// Resize changes the frame dimensions. Pixel contents are unspecified
// afterwards until the next render. A zero or negative dimension leaves the
// frame untouched and reports false.
func (f *Frame) Resize(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	n := 4 * width * height
	if cap(f.pix) >= n {
		f.pix = f.pix[:n]
	} else {
		f.pix = make([]uint8, n)
	}
	f.width, f.height = width, height
	return true
}

// RGBAAt returns the colour of pixel (x, y). Out of range pixels are transparent.
func (f *Frame) RGBAAt(x, y int) color.RGBA {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return color.RGBA{}
	}
	i := 4 * (y*f.width + x)
	return color.RGBA{R: f.pix[i], G: f.pix[i+1], B: f.pix[i+2], A: f.pix[i+3]}
}

// Image returns an *image.RGBA sharing the frame's pixels.
func (f *Frame) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    f.pix,
		Stride: 4 * f.width,
		Rect:   image.Rect(0, 0, f.width, f.height),
	}
}
