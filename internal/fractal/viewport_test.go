package fractal

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"
)

const eps = 1e-12

func near(a, b complex128) bool {
	return cmplx.Abs(a-b) < eps
}

func TestViewport_Validate(t *testing.T) {
	tests := []struct {
		name    string
		vp      Viewport
		wantErr bool
	}{
		{"mandelbrot default", MandelbrotViewport, false},
		{"julia default", JuliaViewport, false},
		{"inverted real", Viewport{MinRe: 1, MaxRe: -1, MinIm: -1, MaxIm: 1}, true},
		{"empty imaginary", Viewport{MinRe: -1, MaxRe: 1, MinIm: 0.5, MaxIm: 0.5}, true},
		{"nan bound", Viewport{MinRe: math.NaN(), MaxRe: 1, MinIm: -1, MaxIm: 1}, true},
		{"infinite bound", Viewport{MinRe: -1, MaxRe: math.Inf(1), MinIm: -1, MaxIm: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.vp.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidViewport) {
				t.Errorf("Validate() error = %v, want ErrInvalidViewport", err)
			}
		})
	}
}

func TestViewport_Forward(t *testing.T) {
	tests := []struct {
		name          string
		vp            Viewport
		x, y          int
		width, height int
		want          complex128
	}{
		{"mandelbrot 3x3 centre", MandelbrotViewport, 1, 1, 3, 3, complex(-0.7, 0)},
		{"mandelbrot 3x3 top-left", MandelbrotViewport, 0, 0, 3, 3, complex(-1.7, 0.75)},
		{"mandelbrot 3x3 bottom-left", MandelbrotViewport, 0, 2, 3, 3, complex(-1.7, -0.75)},
		{"julia 4x4 pixel (3,0)", JuliaViewport, 3, 0, 4, 4, complex(1.5, 1.5)},
		{"julia 4x4 pixel (0,3)", JuliaViewport, 0, 3, 4, 4, complex(-1.5, -1.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.vp.Forward(tt.x, tt.y, tt.width, tt.height)
			if !near(got, tt.want) {
				t.Errorf("Forward(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestViewport_ImaginaryAxisFlipped(t *testing.T) {
	vp := MandelbrotViewport
	top := vp.Forward(5, 0, 10, 10)
	bottom := vp.Forward(5, 9, 10, 10)
	if imag(top) <= imag(bottom) {
		t.Errorf("row 0 im = %v, last row im = %v: row 0 should be the largest", imag(top), imag(bottom))
	}
}

func TestViewport_InverseCorners(t *testing.T) {
	vp := MandelbrotViewport
	if got := vp.Inverse(0, 0, 300, 200); !near(got, complex(vp.MinRe, vp.MaxIm)) {
		t.Errorf("Inverse(0, 0) = %v, want %v", got, complex(vp.MinRe, vp.MaxIm))
	}
	if got := vp.Inverse(300, 200, 300, 200); !near(got, complex(vp.MaxRe, vp.MinIm)) {
		t.Errorf("Inverse(w, h) = %v, want %v", got, complex(vp.MaxRe, vp.MinIm))
	}
}

func TestViewport_RoundTrip(t *testing.T) {
	const width, height = 17, 11
	for _, vp := range []Viewport{MandelbrotViewport, JuliaViewport} {
		for y := range height {
			for x := range width {
				px, py := PixelCenter(x, y)
				fwd := vp.Forward(x, y, width, height)
				inv := vp.Inverse(px, py, width, height)
				if !near(fwd, inv) {
					t.Fatalf("%v: pixel (%d,%d): Forward = %v, Inverse(centre) = %v", vp, x, y, fwd, inv)
				}
			}
		}
	}
}

func TestViewport_String(t *testing.T) {
	want := "Re ∈ [-2.2,0.8] - Im ∈ [-1.125,1.125]"
	if got := MandelbrotViewport.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
