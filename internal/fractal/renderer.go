package fractal

import (
	"time"

	"github.com/cellux/juliabrot/internal/parallel"
)

// Stats describes one completed render.
type Stats struct {
	Pixels  int
	Elapsed time.Duration
}

// Renderer fills frames with escape-time images on a worker pool.
type Renderer struct {
	pool         *parallel.Pool
	ownsPool     bool
	rowsPerChunk int
}

// NewRenderer creates a Renderer. Without options it starts its own pool
// with one worker per CPU.
func NewRenderer(opts ...RendererOption) *Renderer {
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &Renderer{
		pool:         o.pool,
		rowsPerChunk: o.rowsPerChunk,
	}
	if r.pool == nil {
		r.pool = parallel.NewPool(o.workers)
		r.ownsPool = true
	}
	return r
}

// Render overwrites every pixel of f with the image of vp under mode.
//
// vp and mode are taken by value, so the whole frame reflects one snapshot.
// Pixels are independent and computed concurrently; Render returns once all
// of them are written. Nothing carries over from earlier renders.
func (r *Renderer) Render(f *Frame, vp Viewport, mode Mode) Stats {
	start := time.Now()

	width, height := f.Width(), f.Height()
	total := width * height
	pix := f.Pix()
	if len(pix) != 4*total {
		panic("fractal: frame buffer does not match its dimensions")
	}

	r.pool.ForEach(total, width*r.rowsPerChunk, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			x, y := i%width, i/width
			c := ToColor(mode.Evaluate(vp.Forward(x, y, width, height), MaxIterations))

			o := 4 * i
			pix[o+0] = c.R
			pix[o+1] = c.G
			pix[o+2] = c.B
			pix[o+3] = c.A
		}
	})

	return Stats{Pixels: total, Elapsed: time.Since(start)}
}

// Close releases the worker pool if the Renderer created it.
func (r *Renderer) Close() {
	if r.ownsPool {
		r.pool.Close()
	}
}
