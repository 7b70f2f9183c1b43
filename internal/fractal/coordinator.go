package fractal

import (
	"errors"
	"fmt"
	"slices"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	// ErrUnknownWindow is returned for signals addressed to a window the
	// Coordinator does not hold.
	ErrUnknownWindow = errors.New("fractal: unknown window")

	// ErrDuplicateWindow is returned when adding a window id twice.
	ErrDuplicateWindow = errors.New("fractal: window already added")

	// ErrInvalidLink is returned when two instances cannot be linked.
	ErrInvalidLink = errors.New("fractal: invalid link")
)

// WindowID is an opaque platform window identity.
type WindowID uint64

// Surface is the platform side of a Coordinator: it owns the windows and
// their display surfaces.
type Surface interface {
	// ResizeBuffer resizes the presentable buffer of a window. It is never
	// called with a zero dimension.
	ResizeBuffer(id WindowID, width, height int) error

	// Present pushes a filled frame to the window's display surface.
	Present(id WindowID, f *Frame) error

	// RequestRedraw asks the event loop to deliver a redraw signal for the
	// window later on.
	RequestRedraw(id WindowID)

	// Shutdown asks the event loop to stop. It is called after the last
	// window has been closed.
	Shutdown()
}

// Instance is the render state owned by one window.
type Instance struct {
	Name     string
	Viewport Viewport
	Mode     Mode
	Frame    *Frame

	// Stats of the most recent render.
	Stats Stats
}

// NewInstance validates vp and allocates a width×height frame.
func NewInstance(name string, vp Viewport, mode Mode, width, height int) (*Instance, error) {
	if err := vp.Validate(); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("fractal: instance %q needs a positive size, got %dx%d", name, width, height)
	}
	return &Instance{
		Name:     name,
		Viewport: vp,
		Mode:     mode,
		Frame:    NewFrame(width, height),
	}, nil
}

// Title returns a window title naming the fractal and its viewport.
func (inst *Instance) Title() string {
	return fmt.Sprintf("%s - %s", inst.Name, inst.Viewport)
}

type link struct {
	driver    WindowID
	dependent WindowID
}

// Coordinator routes window signals to the instances it holds.
//
// All methods must be called from the goroutine running the platform event
// loop; the Coordinator is the only writer of instance state.
type Coordinator struct {
	surface   Surface
	renderer  *Renderer
	instances map[WindowID]*Instance
	link      *link
	printer   *message.Printer
}

// NewCoordinator returns an empty Coordinator presenting through s.
func NewCoordinator(s Surface, r *Renderer) *Coordinator {
	return &Coordinator{
		surface:   s,
		renderer:  r,
		instances: make(map[WindowID]*Instance),
		printer:   message.NewPrinter(language.English),
	}
}

// Add registers the instance shown in window id.
func (c *Coordinator) Add(id WindowID, inst *Instance) error {
	if _, ok := c.instances[id]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateWindow, id)
	}
	c.instances[id] = inst
	return nil
}

// Link makes pointer motion over driver set the Julia parameter of dependent.
// dependent must be a Julia instance.
func (c *Coordinator) Link(driver, dependent WindowID) error {
	if driver == dependent {
		return fmt.Errorf("%w: window %d cannot drive itself", ErrInvalidLink, driver)
	}
	if _, ok := c.instances[driver]; !ok {
		return fmt.Errorf("%w: driver %d", ErrUnknownWindow, driver)
	}
	dep, ok := c.instances[dependent]
	if !ok {
		return fmt.Errorf("%w: dependent %d", ErrUnknownWindow, dependent)
	}
	if dep.Mode.Kind != KindJulia {
		return fmt.Errorf("%w: dependent %d is %v, want Julia", ErrInvalidLink, dependent, dep.Mode.Kind)
	}
	c.link = &link{driver: driver, dependent: dependent}
	return nil
}

// Dependent returns the window whose parameter is driven by another window.
func (c *Coordinator) Dependent() (WindowID, bool) {
	if c.link == nil {
		return 0, false
	}
	return c.link.dependent, true
}

// Instance returns the instance shown in window id.
func (c *Coordinator) Instance(id WindowID) (*Instance, bool) {
	inst, ok := c.instances[id]
	return inst, ok
}

// Len returns the number of live instances.
func (c *Coordinator) Len() int {
	return len(c.instances)
}

// Windows returns the ids of all live instances in ascending order.
func (c *Coordinator) Windows() []WindowID {
	ids := make([]WindowID, 0, len(c.instances))
	for id := range c.instances {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (c *Coordinator) lookup(id WindowID) (*Instance, error) {
	inst, ok := c.instances[id]
	if !ok {
		Logger().Warn("signal for unknown window", "window", id)
		return nil, fmt.Errorf("%w: %d", ErrUnknownWindow, id)
	}
	return inst, nil
}

// Resize handles a window resize. A zero dimension, as reported for a
// minimized window, is ignored: the frame is kept and no redraw is requested.
func (c *Coordinator) Resize(id WindowID, width, height int) error {
	inst, err := c.lookup(id)
	if err != nil {
		return err
	}
	if width <= 0 || height <= 0 {
		Logger().Debug("resize skipped", "window", inst.Name, "width", width, "height", height)
		return nil
	}
	if err := c.surface.ResizeBuffer(id, width, height); err != nil {
		return fmt.Errorf("resize %s to %dx%d: %w", inst.Name, width, height, err)
	}
	inst.Frame.Resize(width, height)
	Logger().Debug("resized", "window", inst.Name, "width", width, "height", height)
	c.surface.RequestRedraw(id)
	return nil
}

// Redraw renders the instance of window id from scratch and presents it.
func (c *Coordinator) Redraw(id WindowID) error {
	inst, err := c.lookup(id)
	if err != nil {
		return err
	}

	inst.Stats = c.renderer.Render(inst.Frame, inst.Viewport, inst.Mode)
	Logger().Info("render",
		"window", inst.Name,
		"pixels", c.printer.Sprintf("%d", inst.Stats.Pixels),
		"ms", c.printer.Sprintf("%.2f", float64(inst.Stats.Elapsed.Microseconds())/1000))

	if err := c.surface.Present(id, inst.Frame); err != nil {
		return fmt.Errorf("present %s: %w", inst.Name, err)
	}
	return nil
}

// PointerMove handles pointer motion at (px, py) in buffer-pixel coordinates.
// Over the driving window it sets the dependent Julia parameter to the point
// under the pointer and requests a redraw of the dependent window. The
// driving window itself is never redrawn. Motion over any other window is
// ignored.
func (c *Coordinator) PointerMove(id WindowID, px, py float64) error {
	inst, err := c.lookup(id)
	if err != nil {
		return err
	}
	if c.link == nil || c.link.driver != id {
		return nil
	}
	f := inst.Frame
	p := inst.Viewport.Inverse(px, py, f.Width(), f.Height())
	return c.SetJuliaParam(c.link.dependent, p)
}

// SetJuliaParam stores p as the parameter of the Julia instance in window id
// and requests its redraw.
func (c *Coordinator) SetJuliaParam(id WindowID, p complex128) error {
	inst, err := c.lookup(id)
	if err != nil {
		return err
	}
	if inst.Mode.Kind != KindJulia {
		return fmt.Errorf("%w: window %d is %v", ErrInvalidLink, id, inst.Mode.Kind)
	}
	inst.Mode.Param = p
	Logger().Debug("julia parameter", "window", inst.Name, "c", p)
	c.surface.RequestRedraw(id)
	return nil
}

// Close removes the instance of window id. A link involving the window is
// dropped. Closing the last instance shuts the surface down.
func (c *Coordinator) Close(id WindowID) error {
	inst, err := c.lookup(id)
	if err != nil {
		return err
	}
	delete(c.instances, id)
	if c.link != nil && (c.link.driver == id || c.link.dependent == id) {
		c.link = nil
	}
	Logger().Debug("closed", "window", inst.Name, "remaining", len(c.instances))

	if len(c.instances) == 0 {
		c.surface.Shutdown()
	}
	return nil
}
