package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/cellux/juliabrot/internal/fractal"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const hudPadding = 4

var hudBackground = color.RGBA{0, 0, 0, 160}

// HUD renders a translucent text strip describing a window's instance.
type HUD struct {
	face    font.Face
	printer *message.Printer
	img     *image.RGBA
}

func CreateHUD() *HUD {
	return &HUD{
		face:    basicfont.Face7x13,
		printer: message.NewPrinter(language.English),
	}
}

func (h *HUD) Lines(inst *fractal.Instance) []string {
	lines := []string{inst.Title()}
	if inst.Mode.Kind == fractal.KindJulia {
		lines = append(lines, fmt.Sprintf("c = %.6f%+.6fi", real(inst.Mode.Param), imag(inst.Mode.Param)))
	}
	ms := float64(inst.Stats.Elapsed.Microseconds()) / 1000
	lines = append(lines, h.printer.Sprintf("%d px  %.2f ms", inst.Stats.Pixels, ms))
	return lines
}

// Render draws lines into an image width pixels wide. The backing image is
// reused between calls while its size stays the same.
func (h *HUD) Render(width int, lines []string) *image.RGBA {
	if width <= 0 || len(lines) == 0 {
		return nil
	}
	metrics := h.face.Metrics()
	lineHeight := metrics.Height.Ceil()
	height := 2*hudPadding + lineHeight*len(lines)
	bounds := image.Rect(0, 0, width, height)
	if h.img == nil || h.img.Bounds() != bounds {
		h.img = image.NewRGBA(bounds)
	}
	draw.Draw(h.img, bounds, image.NewUniform(hudBackground), image.Point{}, draw.Src)
	d := &font.Drawer{
		Dst:  h.img,
		Src:  image.White,
		Face: h.face,
	}
	for i, line := range lines {
		d.Dot = fixed.P(hudPadding, hudPadding+i*lineHeight+metrics.Ascent.Ceil())
		d.DrawString(line)
	}
	return h.img
}
