package qr

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Style selects the geometric primitive drawn for each dark module.
type Style string

const (
	StyleStandard Style = "standard"
	StyleCircular Style = "circular"
	StyleRounded  Style = "rounded"
)

// LogoShape selects the alpha mask applied to the center logo.
type LogoShape string

const (
	LogoCircular      LogoShape = "circular"
	LogoSquare        LogoShape = "square"
	LogoSquareRounded LogoShape = "square-rounded"
)

// Level is a QR error-correction level. Higher levels tolerate more
// occluded modules at the cost of payload capacity.
type Level string

const (
	LevelL Level = "L"
	LevelM Level = "M"
	LevelQ Level = "Q"
	LevelH Level = "H"
)

// Fraction of the logo edge used as corner radius for the
// square-rounded logo shape.
const logoCornerFraction = 0.15

// Config holds every rendering parameter for a single generation.
// Values are plain data; Validate must pass before the config is used.
type Config struct {
	Level       Level
	BoxSize     int // pixels per module edge
	Border      int // quiet zone width, in modules
	Foreground  color.Color
	Background  color.Color
	BorderColor color.Color // nil falls back to Background

	Style        Style
	DotScale     float64 // circle diameter as a fraction of the box, (0, 1]
	CornerRadius float64 // rounded-module radius as a fraction of the box, [0, 0.5]

	LogoShape LogoShape
	LogoScale float64 // logo edge = canvas / LogoScale

	Quality int // JPEG quality, 1..100
}

// Standard returns the classic black-on-white square configuration.
func Standard() Config {
	return Config{
		Level:        LevelH,
		BoxSize:      10,
		Border:       4,
		Foreground:   color.Black,
		Background:   color.White,
		Style:        StyleStandard,
		DotScale:     0.8,
		CornerRadius: 0.3,
		LogoShape:    LogoCircular,
		LogoScale:    3.5,
		Quality:      95,
	}
}

// Modern returns blue circular dots on white.
func Modern() Config {
	c := Standard()
	c.Style = StyleCircular
	c.Foreground = color.RGBA{R: 0x25, G: 0x63, B: 0xeb, A: 255}
	c.DotScale = 0.8
	return c
}

// Vibrant returns bold red dots on cream with a rounded-square logo.
func Vibrant() Config {
	c := Standard()
	c.Style = StyleCircular
	c.Foreground = color.RGBA{R: 0xdc, G: 0x26, B: 0x26, A: 255}
	c.Background = color.RGBA{R: 0xfe, G: 0xf3, B: 0xc7, A: 255}
	c.DotScale = 0.9
	c.LogoShape = LogoSquareRounded
	c.LogoScale = 3.0
	return c
}

// Elegant returns subtle gray rounded squares.
func Elegant() Config {
	c := Standard()
	c.Style = StyleRounded
	c.Foreground = color.RGBA{R: 0x1f, G: 0x29, B: 0x37, A: 255}
	c.Background = color.RGBA{R: 0xf9, G: 0xfa, B: 0xfb, A: 255}
	c.CornerRadius = 0.3
	c.LogoScale = 4.0
	return c
}

// Preset returns the named preset configuration.
func Preset(name string) (Config, error) {
	switch name {
	case "standard":
		return Standard(), nil
	case "modern":
		return Modern(), nil
	case "vibrant":
		return Vibrant(), nil
	case "elegant":
		return Elegant(), nil
	}
	return Config{}, fmt.Errorf("%w: unknown preset %q", ErrConfiguration, name)
}

// Validate checks every numeric and enum parameter. It never mutates
// the config; callers decide whether to fix or abort.
func (c Config) Validate() error {
	if c.BoxSize <= 0 {
		return fmt.Errorf("%w: box size must be positive, got %d", ErrConfiguration, c.BoxSize)
	}
	if c.Border < 0 {
		return fmt.Errorf("%w: border must be non-negative, got %d", ErrConfiguration, c.Border)
	}
	if c.DotScale <= 0 || c.DotScale > 1 {
		return fmt.Errorf("%w: dot scale must be in (0, 1], got %g", ErrConfiguration, c.DotScale)
	}
	if c.CornerRadius < 0 || c.CornerRadius > 0.5 {
		return fmt.Errorf("%w: corner radius must be in [0, 0.5], got %g", ErrConfiguration, c.CornerRadius)
	}
	if c.LogoScale <= 0 {
		return fmt.Errorf("%w: logo scale must be positive, got %g", ErrConfiguration, c.LogoScale)
	}
	if c.Quality < 1 || c.Quality > 100 {
		return fmt.Errorf("%w: quality must be in 1..100, got %d", ErrConfiguration, c.Quality)
	}
	switch c.Style {
	case StyleStandard, StyleCircular, StyleRounded:
	default:
		return fmt.Errorf("%w: unknown style %q", ErrConfiguration, c.Style)
	}
	switch c.LogoShape {
	case LogoCircular, LogoSquare, LogoSquareRounded:
	default:
		return fmt.Errorf("%w: unknown logo shape %q", ErrConfiguration, c.LogoShape)
	}
	switch c.Level {
	case LevelL, LevelM, LevelQ, LevelH:
	default:
		return fmt.Errorf("%w: unknown error-correction level %q", ErrConfiguration, c.Level)
	}
	if c.Foreground == nil || c.Background == nil {
		return fmt.Errorf("%w: foreground and background colors are required", ErrConfiguration)
	}
	return nil
}

func (c Config) borderColor() color.Color {
	if c.BorderColor != nil {
		return c.BorderColor
	}
	return c.Background
}

var colorNames = map[string]color.RGBA{
	"black":  {0, 0, 0, 255},
	"white":  {255, 255, 255, 255},
	"red":    {255, 0, 0, 255},
	"green":  {0, 128, 0, 255},
	"blue":   {0, 0, 255, 255},
	"yellow": {255, 255, 0, 255},
	"orange": {255, 165, 0, 255},
	"purple": {128, 0, 128, 255},
	"teal":   {0, 128, 128, 255},
	"gray":   {128, 128, 128, 255},
	"grey":   {128, 128, 128, 255},
}

// ParseColor accepts a small set of CSS color names plus #RGB and
// #RRGGBB hex notation.
func ParseColor(s string) (color.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := colorNames[name]; ok {
		return c, nil
	}
	if strings.HasPrefix(name, "#") {
		hex := name[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) == 6 {
			v, err := strconv.ParseUint(hex, 16, 32)
			if err == nil {
				return color.RGBA{
					R: uint8(v >> 16),
					G: uint8(v >> 8),
					B: uint8(v),
					A: 255,
				}, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: cannot parse color %q", ErrConfiguration, s)
}
