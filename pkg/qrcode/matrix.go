package qr

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// Matrix is the boolean module grid produced by the symbol encoder.
// It is immutable once built; true means a dark module.
type Matrix struct {
	modules [][]bool
}

// Each finder pattern occupies a 7x7 module block in a corner.
const finderSpan = 7

// Encode asks the external encoder for the module grid. The encoder's
// own quiet zone is disabled; the border is rendered by the styler so
// its width and color stay under our control.
func Encode(data string, level Level) (*Matrix, error) {
	code, err := qrcode.New(data, level.recovery())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	code.DisableBorder = true
	return &Matrix{modules: code.Bitmap()}, nil
}

// Size returns the module count along one edge.
func (m *Matrix) Size() int {
	return len(m.modules)
}

// Dark reports whether the module at (row, col) is dark.
func (m *Matrix) Dark(row, col int) bool {
	return m.modules[row][col]
}

// InFinder reports whether (row, col) lies inside one of the three
// finder patterns (top-left, top-right, bottom-left). Scanners need
// these rendered as solid squares regardless of module style.
func (m *Matrix) InFinder(row, col int) bool {
	n := m.Size()
	top := row < finderSpan
	left := col < finderSpan
	bottom := row >= n-finderSpan
	right := col >= n-finderSpan
	return (top && left) || (top && right) || (bottom && left)
}

func (l Level) recovery() qrcode.RecoveryLevel {
	switch l {
	case LevelL:
		return qrcode.Low
	case LevelM:
		return qrcode.Medium
	case LevelQ:
		return qrcode.High
	default:
		return qrcode.Highest
	}
}
