package fractal

import "github.com/cellux/juliabrot/internal/parallel"

// RendererOption configures a Renderer during creation.
//
// Example:
//
//	// One worker per CPU (the default)
//	r := fractal.NewRenderer()
//
//	// Share a pool between renderers
//	pool := parallel.NewPool(0)
//	r := fractal.NewRenderer(fractal.WithPool(pool))
type RendererOption func(*rendererOptions)

type rendererOptions struct {
	workers      int
	pool         *parallel.Pool
	rowsPerChunk int
}

func defaultRendererOptions() rendererOptions {
	return rendererOptions{
		workers:      0, // GOMAXPROCS
		rowsPerChunk: 4,
	}
}

// WithWorkers sets the number of render workers. 0 or less means GOMAXPROCS.
// Ignored when WithPool is given.
func WithWorkers(n int) RendererOption {
	return func(o *rendererOptions) {
		o.workers = n
	}
}

// WithPool makes the Renderer use an existing pool. The caller keeps
// ownership: Renderer.Close does not close it.
func WithPool(p *parallel.Pool) RendererOption {
	return func(o *rendererOptions) {
		o.pool = p
	}
}

// WithRowsPerChunk sets how many pixel rows make up one unit of work.
func WithRowsPerChunk(n int) RendererOption {
	return func(o *rendererOptions) {
		if n > 0 {
			o.rowsPerChunk = n
		}
	}
}
