package fractal

import "fmt"

const (
	// MaxIterations is the iteration budget shared by both fractal families.
	MaxIterations = 50

	// BailoutRadius is the escape bound on |z|. It is much larger than the
	// mathematical radius 2 to keep the iteration-to-colour mapping smooth.
	BailoutRadius = 1000.0
)

// Kind selects the fractal family of a Mode.
type Kind uint8

const (
	KindMandelbrot Kind = iota
	KindJulia
)

func (k Kind) String() string {
	switch k {
	case KindMandelbrot:
		return "Mandelbrot"
	case KindJulia:
		return "Julia"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Mode is the fractal family of an instance. Param is only meaningful for
// KindJulia, where it is the constant c.
type Mode struct {
	Kind  Kind
	Param complex128
}

// Mandelbrot returns the Mandelbrot mode.
func Mandelbrot() Mode {
	return Mode{Kind: KindMandelbrot}
}

// Julia returns the Julia mode with constant c.
func Julia(c complex128) Mode {
	return Mode{Kind: KindJulia, Param: c}
}

// Start returns the initial z and the constant c for the point p.
func (m Mode) Start(p complex128) (z0, c complex128) {
	switch m.Kind {
	case KindMandelbrot:
		return 0, p
	case KindJulia:
		return p, m.Param
	default:
		panic(fmt.Sprintf("fractal: unknown mode %v", m.Kind))
	}
}

// Evaluate returns the normalized escape value of the point p.
func (m Mode) Evaluate(p complex128, maxIter int) float32 {
	z0, c := m.Start(p)
	return Escape(z0, c, maxIter)
}

func (m Mode) String() string {
	if m.Kind == KindJulia {
		return fmt.Sprintf("Julia(%v)", m.Param)
	}
	return m.Kind.String()
}

// Escape iterates z ← z²+c from z0. If |z| exceeds BailoutRadius at
// iteration n (counting from 1) it returns n/maxIter, a value in (0,1].
// A point that survives maxIter iterations returns 0.
func Escape(z0, c complex128, maxIter int) float32 {
	const bailout2 = BailoutRadius * BailoutRadius

	z := z0
	for n := 1; n <= maxIter; n++ {
		z = z*z + c
		if re, im := real(z), imag(z); re*re+im*im > bailout2 {
			return float32(n) / float32(maxIter)
		}
	}
	return 0
}
