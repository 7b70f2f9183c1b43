// Package config holds the command-line configuration of juliabrot.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

// Layout selects which windows are opened.
type Layout string

const (
	// LayoutBoth opens a Mandelbrot window driving a Julia window.
	LayoutBoth       Layout = "both"
	LayoutMandelbrot Layout = "mandelbrot"
	LayoutJulia      Layout = "julia"
)

// Config is the validated program configuration.
type Config struct {
	Layout   Layout
	Width    int
	Height   int
	Julia    complex128
	Workers  int
	HUD      bool
	LogLevel slog.Level
}

// Default window sizes. A single window gets the larger size.
const (
	singleWidth  = 1200
	singleHeight = 800
	pairedWidth  = 600
	pairedHeight = 600
)

// Parse parses args (without the program name). Usage and flag errors are
// written to output.
func Parse(name string, args []string, output io.Writer) (*Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)

	var (
		layout   = fs.String("windows", string(LayoutBoth), "windows to open: both, mandelbrot or julia")
		width    = fs.Int("width", 0, "initial window width (0 picks a default for the layout)")
		height   = fs.Int("height", 0, "initial window height (0 picks a default for the layout)")
		julia    = fs.String("julia", "0", "initial Julia parameter, e.g. -0.8+0.156i")
		workers  = fs.Int("workers", 0, "render workers (0 = one per CPU)")
		hud      = fs.Bool("hud", false, "show the HUD overlay")
		logLevel = fs.String("log-level", "info", "log level: debug, info, warn or error")
	)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	cfg := &Config{
		Layout:  Layout(*layout),
		Width:   *width,
		Height:  *height,
		Workers: *workers,
		HUD:     *hud,
	}

	switch cfg.Layout {
	case LayoutBoth, LayoutMandelbrot, LayoutJulia:
	default:
		return nil, fmt.Errorf("invalid -windows %q: want both, mandelbrot or julia", *layout)
	}

	if cfg.Width < 0 || cfg.Height < 0 {
		return nil, fmt.Errorf("invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Width == 0 {
		cfg.Width = cfg.defaultWidth()
	}
	if cfg.Height == 0 {
		cfg.Height = cfg.defaultHeight()
	}

	c, err := ParseComplex(*julia)
	if err != nil {
		return nil, fmt.Errorf("invalid -julia: %w", err)
	}
	cfg.Julia = c

	level, err := ResolveLogLevel(*logLevel)
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	return cfg, nil
}

func (cfg *Config) defaultWidth() int {
	if cfg.Layout == LayoutBoth {
		return pairedWidth
	}
	return singleWidth
}

func (cfg *Config) defaultHeight() int {
	if cfg.Layout == LayoutBoth {
		return pairedHeight
	}
	return singleHeight
}

// ParseComplex parses a complex number such as "-0.8+0.156i", "0.3" or "(1-2i)".
func ParseComplex(s string) (complex128, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty complex number")
	}
	c, err := strconv.ParseComplex(s, 128)
	if err != nil {
		return 0, err
	}
	return c, nil
}

// FormatComplex formats c so that ParseComplex reads it back.
func FormatComplex(c complex128) string {
	return strconv.FormatComplex(c, 'g', -1, 128)
}

// ResolveLogLevel maps a level name to a slog.Level.
func ResolveLogLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s", level)
	}
}
