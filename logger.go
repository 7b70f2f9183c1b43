package main

import (
	"io"
	"log/slog"

	"github.com/cellux/juliabrot/internal/fractal"
)

var logger *slog.Logger

// InitLogger installs a text logger writing to w at the given level, both
// for the application and for the fractal core.
func InitLogger(w io.Writer, level slog.Level) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	logger = slog.New(handler)
	fractal.SetLogger(logger)
}
