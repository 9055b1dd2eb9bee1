// Package qr renders styled, optionally logo-branded QR codes.
//
// The symbol matrix comes from github.com/skip2/go-qrcode; everything
// visual (module shapes, colors, border, logo masking and compositing,
// output encoding) happens here. A Generator is stateless across
// calls: concurrent Generate invocations are safe as long as they use
// distinct output paths.
package qr

import (
	"image"

	"github.com/fogleman/gg"
)

// Generator orchestrates one generation pass:
// encode -> style -> optional composite -> save.
type Generator struct {
	cfg    Config
	styler Styler
}

// New validates the configuration and builds a generator for it.
func New(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Generator{cfg: cfg, styler: NewStyler(cfg)}, nil
}

// Config returns the generator's configuration.
func (g *Generator) Config() Config {
	return g.cfg
}

// Render produces the composited canvas without touching the
// filesystem for output. logoPath may be empty.
func (g *Generator) Render(data, logoPath string) (image.Image, error) {
	m, err := Encode(data, g.cfg.Level)
	if err != nil {
		return nil, err
	}

	dc := g.styler.Render(m, g.cfg)

	if logoPath != "" {
		if err := g.composite(dc, logoPath); err != nil {
			return nil, err
		}
	}
	return dc.Image(), nil
}

// Generate renders data and writes the result to outputPath. The
// first failing stage aborts the call; no partial file is written.
func (g *Generator) Generate(data, logoPath, outputPath string) error {
	img, err := g.Render(data, logoPath)
	if err != nil {
		return err
	}
	return Save(img, outputPath, g.cfg)
}

func (g *Generator) composite(dc *gg.Context, logoPath string) error {
	logo, err := LoadLogo(logoPath)
	if err != nil {
		return err
	}
	prepared, pos, err := PrepareLogo(logo, dc.Width(), g.cfg)
	if err != nil {
		return err
	}
	dc.DrawImage(prepared, pos.X, pos.Y)
	return nil
}
