package main

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/cellux/juliabrot/internal/config"
	"github.com/cellux/juliabrot/internal/fractal"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Event is the type of callback functions sent to the app's events channel
type Event func()

type Window struct {
	id        fractal.WindowID
	win       *glfw.Window
	presenter *Presenter
}

// App owns the GLFW windows and implements fractal.Surface for the
// coordinator. All methods run on the main thread.
type App struct {
	cfg        *config.Config
	coord      *fractal.Coordinator
	windows    map[fractal.WindowID]*Window
	byHandle   map[*glfw.Window]fractal.WindowID
	nextID     fractal.WindowID
	pending    map[fractal.WindowID]bool
	hud        *HUD
	showHUD    bool
	keyMap     KeyMap
	events     chan Event
	shouldExit bool
	lastError  error
}

var _ fractal.Surface = (*App)(nil)

func CreateApp(cfg *config.Config) *App {
	return &App{
		cfg:      cfg,
		windows:  make(map[fractal.WindowID]*Window),
		byHandle: make(map[*glfw.Window]fractal.WindowID),
		pending:  make(map[fractal.WindowID]bool),
		hud:      CreateHUD(),
		showHUD:  cfg.HUD,
		events:   make(chan Event, 1024),
	}
}

// SetCoordinator must be called before Init.
func (app *App) SetCoordinator(coord *fractal.Coordinator) {
	app.coord = coord
}

func (app *App) SetLastError(err error) {
	if app.lastError == nil {
		app.lastError = err
	}
	app.shouldExit = true
}

func (app *App) postEvent(ev Event, dropIfFull bool) {
	if dropIfFull {
		select {
		case app.events <- ev:
		default:
		}
	} else {
		app.events <- ev
	}
}

func (app *App) Init() error {
	keyMap := CreateKeyMap()
	keyMap.Bind("Escape", app.Quit)
	keyMap.Bind("q", app.Quit)
	keyMap.Bind("h", app.ToggleHUD)
	keyMap.Bind("c", app.CopyJuliaParam)
	keyMap.Bind("r", app.ResetJuliaParam)
	app.keyMap = keyMap

	w, h := app.cfg.Width, app.cfg.Height
	switch app.cfg.Layout {
	case config.LayoutMandelbrot:
		_, err := app.openWindow("Mandelbrot", fractal.MandelbrotViewport, fractal.Mandelbrot(), w, h)
		return err
	case config.LayoutJulia:
		_, err := app.openWindow("Julia", fractal.JuliaViewport, fractal.Julia(app.cfg.Julia), w, h)
		return err
	}
	mandel, err := app.openWindow("Mandelbrot", fractal.MandelbrotViewport, fractal.Mandelbrot(), w, h)
	if err != nil {
		return err
	}
	julia, err := app.openWindow("Julia", fractal.JuliaViewport, fractal.Julia(app.cfg.Julia), w, h)
	if err != nil {
		return err
	}
	x, y := mandel.win.GetPos()
	ww, _ := mandel.win.GetSize()
	julia.win.SetPos(x+ww+16, y)
	return app.coord.Link(mandel.id, julia.id)
}

func (app *App) openWindow(name string, vp fractal.Viewport, mode fractal.Mode, width, height int) (*Window, error) {
	win, err := CreateGLWindow(name, width, height)
	if err != nil {
		return nil, fmt.Errorf("create %s window: %w", name, err)
	}
	presenter, err := CreatePresenter()
	if err != nil {
		win.Destroy()
		return nil, fmt.Errorf("create %s presenter: %w", name, err)
	}
	fw, fh := win.GetFramebufferSize()
	inst, err := fractal.NewInstance(name, vp, mode, fw, fh)
	if err != nil {
		presenter.Close()
		win.Destroy()
		return nil, err
	}
	app.nextID++
	w := &Window{id: app.nextID, win: win, presenter: presenter}
	if err := app.coord.Add(w.id, inst); err != nil {
		presenter.Close()
		win.Destroy()
		return nil, err
	}
	app.windows[w.id] = w
	app.byHandle[win] = w.id
	win.SetTitle(inst.Title())
	app.attachCallbacks(w)
	logger.Debug("window opened", "window", name, "id", w.id, "width", fw, "height", fh)
	app.RequestRedraw(w.id)
	return w, nil
}

func (app *App) attachCallbacks(w *Window) {
	id := w.id
	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		app.check(app.coord.Resize(id, width, height))
	})
	w.win.SetRefreshCallback(func(_ *glfw.Window) {
		app.RequestRedraw(id)
	})
	w.win.SetCursorPosCallback(func(gw *glfw.Window, x, y float64) {
		px, py := CursorToFramebuffer(gw, x, y)
		app.check(app.coord.PointerMove(id, px, py))
	})
	w.win.SetCloseCallback(func(_ *glfw.Window) {
		// windows cannot be destroyed from inside their own callbacks
		app.postEvent(func() {
			app.closeWindow(id)
		}, false)
	})
	w.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		app.OnKey(key, scancode, action, mods)
	})
}

// check records err as fatal unless it only reports a stale window id.
func (app *App) check(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, fractal.ErrUnknownWindow) {
		return
	}
	logger.Error("fatal", "error", err)
	app.SetLastError(err)
}

func (app *App) closeWindow(id fractal.WindowID) {
	w, ok := app.windows[id]
	if !ok {
		return
	}
	app.destroyWindow(w)
	app.check(app.coord.Close(id))
}

func (app *App) destroyWindow(w *Window) {
	w.win.MakeContextCurrent()
	w.presenter.Close()
	delete(app.byHandle, w.win)
	delete(app.windows, w.id)
	delete(app.pending, w.id)
	w.win.Destroy()
}

func (app *App) window(id fractal.WindowID) (*Window, error) {
	w, ok := app.windows[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", fractal.ErrUnknownWindow, id)
	}
	return w, nil
}

// ResizeBuffer makes the window's context current and adopts the new
// framebuffer size.
func (app *App) ResizeBuffer(id fractal.WindowID, width, height int) error {
	w, err := app.window(id)
	if err != nil {
		return err
	}
	w.win.MakeContextCurrent()
	return checkGLError("resize")
}

func (app *App) Present(id fractal.WindowID, frame *fractal.Frame) error {
	w, err := app.window(id)
	if err != nil {
		return err
	}
	w.win.MakeContextCurrent()
	fw, fh := w.win.GetFramebufferSize()
	var lines []string
	if app.showHUD {
		if inst, ok := app.coord.Instance(id); ok {
			lines = app.hud.Lines(inst)
		}
	}
	if err := w.presenter.Draw(Size{X: fw, Y: fh}, frame, app.hud.Render(fw, lines)); err != nil {
		return err
	}
	w.win.SwapBuffers()
	return nil
}

// RequestRedraw schedules one redraw of window id. Requests arriving before
// the scheduled redraw runs are merged into it.
func (app *App) RequestRedraw(id fractal.WindowID) {
	if app.pending[id] {
		return
	}
	app.pending[id] = true
	app.postEvent(func() {
		if !app.pending[id] {
			return
		}
		delete(app.pending, id)
		app.check(app.coord.Redraw(id))
	}, false)
}

func (app *App) Shutdown() {
	logger.Debug("last window closed")
	app.shouldExit = true
}

func (app *App) IsRunning() bool {
	return !app.shouldExit
}

func (app *App) Quit() {
	app.shouldExit = true
}

func (app *App) ToggleHUD() {
	app.showHUD = !app.showHUD
	for _, id := range app.coord.Windows() {
		app.RequestRedraw(id)
	}
}

// juliaWindow returns the window showing a Julia set, preferring the
// dependent of the link.
func (app *App) juliaWindow() (fractal.WindowID, *fractal.Instance, bool) {
	if id, ok := app.coord.Dependent(); ok {
		if inst, ok := app.coord.Instance(id); ok {
			return id, inst, true
		}
	}
	for _, id := range app.coord.Windows() {
		if inst, ok := app.coord.Instance(id); ok && inst.Mode.Kind == fractal.KindJulia {
			return id, inst, true
		}
	}
	return 0, nil, false
}

func (app *App) CopyJuliaParam() {
	_, inst, ok := app.juliaWindow()
	if !ok {
		return
	}
	text := config.FormatComplex(inst.Mode.Param)
	if err := clipboard.WriteAll(text); err != nil {
		logger.Warn("clipboard write failed", "error", err)
		return
	}
	logger.Info("copied julia parameter", "c", text)
}

func (app *App) ResetJuliaParam() {
	id, _, ok := app.juliaWindow()
	if !ok {
		return
	}
	app.check(app.coord.SetJuliaParam(id, app.cfg.Julia))
}

func (app *App) OnKey(key glfw.Key, scancode int, action glfw.Action, modes glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	keyName := KeyName(key, scancode, modes)
	if keyName == "" {
		return
	}
	if !app.keyMap.HandleKey(keyName) {
		logger.Debug("unbound key", "key", keyName)
	}
}

func (app *App) drainEvents() {
	for {
		select {
		case ev := <-app.events:
			ev()
		default:
			return // nothing queued right now
		}
	}
}

func (app *App) Update() error {
	app.drainEvents()
	return app.lastError
}

func (app *App) Close() error {
	for _, w := range app.windows {
		app.destroyWindow(w)
	}
	return nil
}
