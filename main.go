package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cellux/juliabrot/internal/config"
	"github.com/cellux/juliabrot/internal/fractal"
)

func main() {
	cfg, err := config.Parse(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "%s: %v\n", os.Args[0], err)
		os.Exit(2)
	}
	InitLogger(os.Stderr, cfg.LogLevel)

	renderer := fractal.NewRenderer(fractal.WithWorkers(cfg.Workers))
	defer renderer.Close()

	app := CreateApp(cfg)
	app.SetCoordinator(fractal.NewCoordinator(app, renderer))
	logger.Debug("starting", "windows", cfg.Layout, "width", cfg.Width, "height", cfg.Height, "julia", config.FormatComplex(cfg.Julia))
	if err := RunGL(app); err != nil {
		renderer.Close()
		log.Fatalf("%v\n", err)
	}
}
