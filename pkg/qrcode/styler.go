package qr

import (
	"github.com/fogleman/gg"
)

// Styler renders a module matrix onto a fresh canvas. Implementations
// differ only in the primitive drawn for dark data modules; finder
// patterns are always solid squares.
type Styler interface {
	Render(m *Matrix, cfg Config) *gg.Context
}

// NewStyler picks the implementation for the configured style. The
// config must already be validated.
func NewStyler(cfg Config) Styler {
	switch cfg.Style {
	case StyleCircular:
		return circularStyler{}
	case StyleRounded:
		return roundedStyler{}
	default:
		return standardStyler{}
	}
}

// newCanvas prepares the background: the border ring in the border
// color, the symbol area in the background color.
func newCanvas(m *Matrix, cfg Config) *gg.Context {
	edge := (m.Size() + 2*cfg.Border) * cfg.BoxSize
	dc := gg.NewContext(edge, edge)

	dc.SetColor(cfg.borderColor())
	dc.Clear()

	off := float64(cfg.Border * cfg.BoxSize)
	inner := float64(m.Size() * cfg.BoxSize)
	dc.SetColor(cfg.Background)
	dc.DrawRectangle(off, off, inner, inner)
	dc.Fill()

	return dc
}

// fillSquare draws a full module box in the foreground color.
func fillSquare(dc *gg.Context, cfg Config, row, col int) {
	box := float64(cfg.BoxSize)
	x := float64(cfg.Border+col) * box
	y := float64(cfg.Border+row) * box
	dc.SetColor(cfg.Foreground)
	dc.DrawRectangle(x, y, box, box)
	dc.Fill()
}

type standardStyler struct{}

func (standardStyler) Render(m *Matrix, cfg Config) *gg.Context {
	dc := newCanvas(m, cfg)
	for row := 0; row < m.Size(); row++ {
		for col := 0; col < m.Size(); col++ {
			if m.Dark(row, col) {
				fillSquare(dc, cfg, row, col)
			}
		}
	}
	return dc
}

type circularStyler struct{}

func (circularStyler) Render(m *Matrix, cfg Config) *gg.Context {
	dc := newCanvas(m, cfg)
	box := float64(cfg.BoxSize)
	radius := box * cfg.DotScale / 2
	for row := 0; row < m.Size(); row++ {
		for col := 0; col < m.Size(); col++ {
			if !m.Dark(row, col) {
				continue
			}
			if m.InFinder(row, col) {
				fillSquare(dc, cfg, row, col)
				continue
			}
			cx := (float64(cfg.Border+col) + 0.5) * box
			cy := (float64(cfg.Border+row) + 0.5) * box
			dc.SetColor(cfg.Foreground)
			dc.DrawCircle(cx, cy, radius)
			dc.Fill()
		}
	}
	return dc
}

type roundedStyler struct{}

func (roundedStyler) Render(m *Matrix, cfg Config) *gg.Context {
	dc := newCanvas(m, cfg)
	box := float64(cfg.BoxSize)
	radius := box * cfg.CornerRadius
	for row := 0; row < m.Size(); row++ {
		for col := 0; col < m.Size(); col++ {
			if !m.Dark(row, col) {
				continue
			}
			if m.InFinder(row, col) {
				fillSquare(dc, cfg, row, col)
				continue
			}
			x := float64(cfg.Border+col) * box
			y := float64(cfg.Border+row) * box
			dc.SetColor(cfg.Foreground)
			dc.DrawRoundedRectangle(x, y, box, box, radius)
			dc.Fill()
		}
	}
	return dc
}
