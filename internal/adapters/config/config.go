// Package config turns command-line flags and an optional YAML file
// into a validated render configuration. Precedence: explicit flag,
// then config-file value, then preset, then built-in default.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	qr "github.com/neoqr/neoqr/pkg/qrcode"
)

// Options is everything one CLI invocation needs.
type Options struct {
	Data   string
	Logo   string // empty means no logo
	Output string
	Debug  bool
	Render qr.Config
}

// Get parses args (without the program name) into Options.
func Get(args []string) (*Options, error) {
	fs := pflag.NewFlagSet("neoqr", pflag.ContinueOnError)
	fs.String("data", "", "data to encode (URL, text, etc.)")
	fs.StringP("output", "o", "qrcode.png", "output file path")
	fs.StringP("logo", "l", "", "path to logo image")
	fs.Bool("no-logo", false, "generate without logo")
	fs.StringP("preset", "p", "", "preset style: standard, modern, vibrant or elegant")
	fs.String("style", string(qr.StyleStandard), "module style: standard, circular or rounded")
	fs.String("logo-shape", string(qr.LogoCircular), "logo shape: circular, square or square-rounded")
	fs.String("fg-color", "black", "foreground color (name or #hex)")
	fs.String("bg-color", "white", "background color (name or #hex)")
	fs.String("border-color", "", "border color, defaults to the background color")
	fs.Int("size", 10, "box size for QR modules, px")
	fs.Int("border", 4, "border width in modules")
	fs.Int("quality", 95, "JPEG quality 1-100")
	fs.Float64("logo-scale", 3.5, "logo size divisor (larger = smaller logo)")
	fs.Float64("dot-scale", 0.8, "dot scale for the circular style, (0, 1]")
	fs.StringP("error-correction", "e", string(qr.LevelH), "error correction level: L, M, Q or H")
	fs.String("config", "", "optional YAML config file")
	fs.Bool("debug", false, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", qr.ErrConfiguration, err)
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}
	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: %v", qr.ErrConfiguration, err)
		}
	}

	// A key counts as explicitly set when its flag was passed or the
	// config file carries it; only then does it override a preset.
	set := func(key string) bool {
		return fs.Changed(key) || v.InConfig(key)
	}

	cfg := qr.Standard()
	if name := v.GetString("preset"); name != "" {
		preset, err := qr.Preset(name)
		if err != nil {
			return nil, err
		}
		cfg = preset
	}

	var err error
	if set("style") {
		cfg.Style = qr.Style(v.GetString("style"))
	}
	if set("logo-shape") {
		cfg.LogoShape = qr.LogoShape(v.GetString("logo-shape"))
	}
	if set("error-correction") {
		cfg.Level = qr.Level(v.GetString("error-correction"))
	}
	if set("fg-color") {
		if cfg.Foreground, err = qr.ParseColor(v.GetString("fg-color")); err != nil {
			return nil, err
		}
	}
	if set("bg-color") {
		if cfg.Background, err = qr.ParseColor(v.GetString("bg-color")); err != nil {
			return nil, err
		}
	}
	if set("border-color") {
		if cfg.BorderColor, err = qr.ParseColor(v.GetString("border-color")); err != nil {
			return nil, err
		}
	}
	if set("size") {
		cfg.BoxSize = v.GetInt("size")
	}
	if set("border") {
		cfg.Border = v.GetInt("border")
	}
	if set("quality") {
		cfg.Quality = v.GetInt("quality")
	}
	if set("logo-scale") {
		cfg.LogoScale = v.GetFloat64("logo-scale")
	}
	if set("dot-scale") {
		cfg.DotScale = v.GetFloat64("dot-scale")
	}

	data := v.GetString("data")
	if data == "" {
		return nil, fmt.Errorf("%w: --data is required", qr.ErrConfiguration)
	}

	logo := v.GetString("logo")
	noLogo := v.GetBool("no-logo")
	switch {
	case logo != "" && noLogo:
		return nil, fmt.Errorf("%w: --logo and --no-logo are mutually exclusive", qr.ErrConfiguration)
	case logo == "" && !noLogo && v.GetString("preset") == "":
		return nil, fmt.Errorf("%w: either provide --logo, use --no-logo, or use --preset", qr.ErrConfiguration)
	case noLogo:
		logo = ""
	}
	if logo != "" {
		if _, err := os.Stat(logo); err != nil {
			return nil, fmt.Errorf("%w: logo file not found: %s", qr.ErrAsset, logo)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Options{
		Data:   data,
		Logo:   logo,
		Output: v.GetString("output"),
		Debug:  v.GetBool("debug"),
		Render: cfg,
	}, nil
}
