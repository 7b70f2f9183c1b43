package fractal

import "testing"

func TestEscape(t *testing.T) {
	tests := []struct {
		name string
		z0   complex128
		c    complex128
		want float32
	}{
		{"origin never escapes", 0, 0, 0},
		{"period two bulb", 0, complex(-1, 0), 0},
		{"far outside escapes at once", 0, complex(1000, 1000), 1.0 / 50},
		{"julia start far outside", complex(2000, 0), 0, 1.0 / 50},
		{"just outside the bound stays", 0, complex(999, 0), 2.0 / 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Escape(tt.z0, tt.c, MaxIterations); got != tt.want {
				t.Errorf("Escape(%v, %v) = %v, want %v", tt.z0, tt.c, got, tt.want)
			}
		})
	}
}

func TestEscape_Range(t *testing.T) {
	for re := -2.5; re <= 1; re += 0.13 {
		for im := -1.5; im <= 1.5; im += 0.11 {
			v := Escape(0, complex(re, im), MaxIterations)
			if v < 0 || v > 1 {
				t.Fatalf("Escape(0, %v) = %v, want value in [0,1]", complex(re, im), v)
			}
			if v != 0 && v < 1.0/MaxIterations {
				t.Fatalf("Escape(0, %v) = %v, below 1/MaxIterations", complex(re, im), v)
			}
		}
	}
}

func TestMode_Start(t *testing.T) {
	p := complex(0.25, -0.5)
	param := complex(-0.8, 0.156)

	z0, c := Mandelbrot().Start(p)
	if z0 != 0 || c != p {
		t.Errorf("Mandelbrot().Start(%v) = (%v, %v), want (0, %v)", p, z0, c, p)
	}

	z0, c = Julia(param).Start(p)
	if z0 != p || c != param {
		t.Errorf("Julia(%v).Start(%v) = (%v, %v), want (%v, %v)", param, p, z0, c, p, param)
	}
}

func TestMode_Evaluate(t *testing.T) {
	// With c = 0 the Julia set is the unit disc.
	j := Julia(0)
	if got := j.Evaluate(complex(0.5, 0), MaxIterations); got != 0 {
		t.Errorf("Julia(0) inside unit disc = %v, want 0", got)
	}
	if got := j.Evaluate(complex(1.5, 0), MaxIterations); got == 0 {
		t.Error("Julia(0) outside unit disc should escape")
	}

	if got := Mandelbrot().Evaluate(complex(-0.7, 0), MaxIterations); got != 0 {
		t.Errorf("Mandelbrot at -0.7 = %v, want 0", got)
	}
}

func TestMode_UnknownKindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Evaluate with unknown kind should panic")
		}
	}()
	Mode{Kind: Kind(7)}.Evaluate(0, MaxIterations)
}

func TestMode_String(t *testing.T) {
	tests := []struct {
		m    Mode
		want string
	}{
		{Mandelbrot(), "Mandelbrot"},
		{Julia(complex(-0.5, 0.5)), "Julia((-0.5+0.5i))"},
		{Mode{Kind: Kind(9)}, "Kind(9)"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
