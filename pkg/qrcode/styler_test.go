package qr

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderMatrix(t *testing.T, cfg Config) (*Matrix, image.Image) {
	t.Helper()
	m, err := Encode("https://example.com", cfg.Level)
	require.NoError(t, err)
	return m, NewStyler(cfg).Render(m, cfg).Image()
}

// firstDarkDataModule returns a dark module outside every finder pattern.
func firstDarkDataModule(t *testing.T, m *Matrix) (int, int) {
	t.Helper()
	for row := 0; row < m.Size(); row++ {
		for col := 0; col < m.Size(); col++ {
			if m.Dark(row, col) && !m.InFinder(row, col) {
				return row, col
			}
		}
	}
	t.Fatal("no dark data module found")
	return 0, 0
}

func sameColor(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar>>8 == br>>8 && ag>>8 == bg>>8 && ab>>8 == bb>>8 && aa>>8 == ba>>8
}

func TestCanvasDimensions(t *testing.T) {
	cfg := Standard()
	m, img := renderMatrix(t, cfg)
	want := (m.Size() + 2*cfg.Border) * cfg.BoxSize
	assert.Equal(t, want, img.Bounds().Dx())
	assert.Equal(t, want, img.Bounds().Dy())
}

func TestStandardStyleFillsWholeModules(t *testing.T) {
	cfg := Standard()
	m, img := renderMatrix(t, cfg)
	row, col := firstDarkDataModule(t, m)

	px := (cfg.Border + col) * cfg.BoxSize
	py := (cfg.Border + row) * cfg.BoxSize
	for _, pt := range []image.Point{
		{px, py},
		{px + cfg.BoxSize - 1, py + cfg.BoxSize - 1},
		{px + cfg.BoxSize / 2, py + cfg.BoxSize / 2},
	} {
		assert.True(t, sameColor(cfg.Foreground, img.At(pt.X, pt.Y)),
			"pixel (%d,%d) should be foreground", pt.X, pt.Y)
	}
}

func TestCircularStyleLeavesModuleCorners(t *testing.T) {
	cfg := Standard()
	cfg.Style = StyleCircular
	m, img := renderMatrix(t, cfg)
	row, col := firstDarkDataModule(t, m)

	px := (cfg.Border + col) * cfg.BoxSize
	py := (cfg.Border + row) * cfg.BoxSize

	center := img.At(px+cfg.BoxSize/2, py+cfg.BoxSize/2)
	assert.True(t, sameColor(cfg.Foreground, center), "dot center keeps the module dark")

	corner := img.At(px, py)
	assert.True(t, sameColor(cfg.Background, corner), "box corner outside the dot stays background")
}

func TestRoundedStyleRoundsModuleCorners(t *testing.T) {
	cfg := Elegant()
	m, img := renderMatrix(t, cfg)
	row, col := firstDarkDataModule(t, m)

	px := (cfg.Border + col) * cfg.BoxSize
	py := (cfg.Border + row) * cfg.BoxSize

	center := img.At(px+cfg.BoxSize/2, py+cfg.BoxSize/2)
	assert.True(t, sameColor(cfg.Foreground, center))

	// The very corner sits outside the rounded rectangle; with
	// antialiasing it may blend, but it must not be solid foreground.
	corner := img.At(px, py)
	assert.False(t, sameColor(cfg.Foreground, corner), "module corner must be rounded off")
}

// Finder cells must render as solid squares under every style.
func TestFinderPatternsAlwaysSolid(t *testing.T) {
	for _, style := range []Style{StyleStandard, StyleCircular, StyleRounded} {
		t.Run(string(style), func(t *testing.T) {
			cfg := Standard()
			cfg.Style = style
			m, img := renderMatrix(t, cfg)

			// (0,0) and (3,3) are dark cells of the top-left finder.
			for _, cell := range [][2]int{{0, 0}, {3, 3}} {
				require.True(t, m.Dark(cell[0], cell[1]))
				px := (cfg.Border + cell[1]) * cfg.BoxSize
				py := (cfg.Border + cell[0]) * cfg.BoxSize
				for y := py; y < py+cfg.BoxSize; y++ {
					for x := px; x < px+cfg.BoxSize; x++ {
						if !sameColor(cfg.Foreground, img.At(x, y)) {
							t.Fatalf("finder cell (%d,%d) pixel (%d,%d) is not solid foreground", cell[0], cell[1], x, y)
						}
					}
				}
			}
		})
	}
}

func TestLightModulesStayBackground(t *testing.T) {
	cfg := Standard()
	cfg.Style = StyleCircular
	m, img := renderMatrix(t, cfg)

	// (1,1) is inside the finder's light separator ring.
	require.False(t, m.Dark(1, 1))
	px := (cfg.Border+1)*cfg.BoxSize + cfg.BoxSize/2
	py := (cfg.Border+1)*cfg.BoxSize + cfg.BoxSize/2
	assert.True(t, sameColor(cfg.Background, img.At(px, py)))
}

func TestBorderRingUsesBorderColor(t *testing.T) {
	cfg := Standard()
	cfg.BorderColor = color.RGBA{0xee, 0xdd, 0xcc, 255}
	_, img := renderMatrix(t, cfg)

	assert.True(t, sameColor(cfg.BorderColor, img.At(1, 1)), "outer ring uses the border color")

	inner := cfg.Border * cfg.BoxSize
	assert.True(t, sameColor(cfg.Background, img.At(inner+cfg.BoxSize+1, inner+cfg.BoxSize+1)) ||
		sameColor(cfg.Foreground, img.At(inner+cfg.BoxSize+1, inner+cfg.BoxSize+1)),
		"symbol area never uses the border color")
}
