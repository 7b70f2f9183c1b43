package main

import (
	"runtime"

	gl "github.com/go-gl/gl/v3.1/gles2"
	"github.com/go-gl/glfw/v3.3/glfw"
)

var glInitialized bool

func init() {
	runtime.LockOSThread()
}

type GlfwApp interface {
	Init() error
	IsRunning() bool
	Update() error
	Close() error
}

// RunGL initializes GLFW, lets app open its windows and runs the event loop
// until app stops running. Everything happens on the main OS thread.
func RunGL(app GlfwApp) error {
	err := glfw.Init()
	if err != nil {
		return err
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Focused, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.ScaleToMonitor, glfw.True)
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 0)

	if err := app.Init(); err != nil {
		app.Close()
		return err
	}
	defer app.Close()
	for app.IsRunning() {
		if err := app.Update(); err != nil {
			return err
		}
		if !app.IsRunning() {
			break
		}
		glfw.WaitEvents()
	}
	return nil
}

// CreateGLWindow opens a window with its own GLES context. GL entry points
// are loaded once, after the first context becomes current.
func CreateGLWindow(title string, width, height int) (*glfw.Window, error) {
	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()
	if !glInitialized {
		if err := gl.Init(); err != nil {
			window.Destroy()
			return nil, err
		}
		glInitialized = true
	}
	glfw.SwapInterval(1)
	return window, nil
}

// CursorToFramebuffer converts a cursor position in screen coordinates to
// framebuffer pixels, which differ on HiDPI displays.
func CursorToFramebuffer(w *glfw.Window, x, y float64) (float64, float64) {
	ww, wh := w.GetSize()
	fw, fh := w.GetFramebufferSize()
	return scaleCursor(x, y, ww, wh, fw, fh)
}

func scaleCursor(x, y float64, ww, wh, fw, fh int) (float64, float64) {
	if ww > 0 && fw > 0 {
		x *= float64(fw) / float64(ww)
	}
	if wh > 0 && fh > 0 {
		y *= float64(fh) / float64(wh)
	}
	return x, y
}
