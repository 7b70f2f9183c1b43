package fractal

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidViewport is returned for viewports with non-finite or inverted bounds.
var ErrInvalidViewport = errors.New("fractal: invalid viewport")

// Viewport is the rectangle of the complex plane mapped onto a frame.
//
// Pixel row 0 is the top of the frame and carries MaxIm; the imaginary axis
// grows upwards while pixel rows grow downwards. Resizing a frame resamples
// the same rectangle at the new resolution; the bounds never change.
type Viewport struct {
	MinRe, MaxRe float64
	MinIm, MaxIm float64
}

// Initial viewports of the two fractal families.
var (
	MandelbrotViewport = Viewport{MinRe: -2.2, MaxRe: 0.8, MinIm: -1.125, MaxIm: 1.125}
	JuliaViewport      = Viewport{MinRe: -2, MaxRe: 2, MinIm: -2, MaxIm: 2}
)

// Validate checks that all bounds are finite and min < max on both axes.
func (v Viewport) Validate() error {
	for _, b := range [...]float64{v.MinRe, v.MaxRe, v.MinIm, v.MaxIm} {
		if math.IsNaN(b) || math.IsInf(b, 0) {
			return fmt.Errorf("%w: non-finite bound %v", ErrInvalidViewport, b)
		}
	}
	if v.MinRe >= v.MaxRe {
		return fmt.Errorf("%w: real range [%g,%g] is empty", ErrInvalidViewport, v.MinRe, v.MaxRe)
	}
	if v.MinIm >= v.MaxIm {
		return fmt.Errorf("%w: imaginary range [%g,%g] is empty", ErrInvalidViewport, v.MinIm, v.MaxIm)
	}
	return nil
}

// Forward maps pixel (x, y) of a width×height frame to the complex plane.
// The pixel is sampled at its centre, so it is the same point Inverse
// returns for a pointer resting in the middle of that pixel.
func (v Viewport) Forward(x, y, width, height int) complex128 {
	px, py := PixelCenter(x, y)
	return v.Inverse(px, py, width, height)
}

// Inverse maps a position in buffer-pixel space, such as a pointer position,
// to the complex plane using the same flipped imaginary axis as Forward.
// width and height must be positive.
func (v Viewport) Inverse(px, py float64, width, height int) complex128 {
	u := px / float64(width)
	w := py / float64(height)

	re := v.MinRe + u*(v.MaxRe-v.MinRe)
	im := v.MaxIm - w*(v.MaxIm-v.MinIm)
	return complex(re, im)
}

// PixelCenter returns the buffer-space position of the centre of pixel (x, y).
func PixelCenter(x, y int) (px, py float64) {
	return float64(x) + 0.5, float64(y) + 0.5
}

func (v Viewport) String() string {
	return fmt.Sprintf("Re ∈ [%g,%g] - Im ∈ [%g,%g]", v.MinRe, v.MaxRe, v.MinIm, v.MaxIm)
}
