// Package fractal renders quadratic escape-time fractals into RGBA frames and
// coordinates the windows that display them.
//
// The data flow for one redraw is:
//
//	Coordinator.Redraw -> Renderer.Render -> Viewport.Forward -> Mode.Evaluate -> ToColor -> Surface.Present
//
// Every pixel is a pure function of its mapped complex coordinate and the
// instance's Mode at the time Render is called, so the Renderer fans pixels
// out over a worker pool without any coordination between them.
//
// A Coordinator may link two instances: pointer motion over the driving
// (Mandelbrot) window sets the Julia parameter of the dependent window and
// requests a redraw of that window only.
//
// The package does not know about windows, GL or input devices. A platform
// layer implements Surface and forwards resize, redraw, pointer and close
// signals to the Coordinator from a single goroutine.
package fractal
