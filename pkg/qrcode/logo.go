package qr

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/nfnt/resize"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// LoadLogo decodes a logo image from disk. The file is read-only
// input; callers get an independent in-memory copy.
func LoadLogo(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAsset, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAsset, err)
	}
	return img, nil
}

// PrepareLogo resizes and masks a logo for compositing onto a canvas
// of the given pixel size. Non-square logos are center-cropped to a
// square before resizing, so every shape mask keeps its proportions.
// Returns the masked logo and its centered placement.
func PrepareLogo(logo image.Image, canvasSize int, cfg Config) (image.Image, image.Point, error) {
	if cfg.LogoScale <= 0 {
		return nil, image.Point{}, fmt.Errorf("%w: logo scale must be positive, got %g", ErrConfiguration, cfg.LogoScale)
	}
	edge := int(float64(canvasSize) / cfg.LogoScale)
	if edge < 1 {
		return nil, image.Point{}, fmt.Errorf("%w: logo scale %g leaves no room on a %dpx canvas", ErrConfiguration, cfg.LogoScale, canvasSize)
	}

	bounds := logo.Bounds()
	side := bounds.Dx()
	if bounds.Dy() < side {
		side = bounds.Dy()
	}
	square := imaging.CropCenter(logo, side, side)
	resized := resize.Resize(uint(edge), uint(edge), square, resize.Lanczos3)

	lc := gg.NewContext(edge, edge)
	lc.DrawImage(resized, 0, 0)
	if cfg.LogoShape != LogoSquare {
		applyMask(lc, cfg.LogoShape, edge)
	}

	pos := image.Pt((canvasSize-edge)/2, (canvasSize-edge)/2)
	return lc.Image(), pos, nil
}

// applyMask zeroes the alpha of every pixel outside the shape.
func applyMask(lc *gg.Context, shape LogoShape, edge int) {
	mask := gg.NewContext(edge, edge)
	mask.SetColor(color.White)
	e := float64(edge)
	if shape == LogoCircular {
		mask.DrawCircle(e/2, e/2, e/2)
	} else {
		mask.DrawRoundedRectangle(0, 0, e, e, e*logoCornerFraction)
	}
	mask.Fill()

	mi := mask.Image()
	for y := 0; y < edge; y++ {
		for x := 0; x < edge; x++ {
			if _, _, _, a := mi.At(x, y).RGBA(); a == 0 {
				lc.SetColor(color.Transparent)
				lc.SetPixel(x, y)
			}
		}
	}
}
