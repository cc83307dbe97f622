package texture

import (
	"fmt"
	"image/color"

	"github.com/jmylchreest/texgen/internal/colour"
	"github.com/jmylchreest/texgen/internal/pixbuf"
)

// CheckerOptions describes a two-colour checkerboard.
type CheckerOptions struct {
	Width  int
	Height int

	// CellWidth and CellHeight are the cell size in pixels.
	CellWidth  int
	CellHeight int

	// Even colours cells whose column and row parities match; Odd the rest.
	Even colour.RGB
	Odd  colour.RGB
}

// DefaultChecker returns the transparency-backdrop checker with 1×1 cells.
func DefaultChecker(size int) CheckerOptions {
	return CheckerOptions{
		Width:      size,
		Height:     size,
		CellWidth:  1,
		CellHeight: 1,
		Even:       CheckerLight,
		Odd:        CheckerDark,
	}
}

// cell reports whether (x, y) falls in an even cell.
func (o CheckerOptions) cell(x, y int) bool {
	return ((x/o.CellWidth)&1)^((y/o.CellHeight)&1) == 0
}

func (o CheckerOptions) validate() error {
	if o.CellWidth <= 0 || o.CellHeight <= 0 {
		return fmt.Errorf("%w: checker cell %dx%d", ErrInvalidSize, o.CellWidth, o.CellHeight)
	}
	return nil
}

// Checker renders an opaque checkerboard.
func Checker(opts CheckerOptions) (*pixbuf.Buffer, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return paint(opts.Width, opts.Height, func(x, y int) color.NRGBA {
		if opts.cell(x, y) {
			return opts.Even.Opaque()
		}
		return opts.Odd.Opaque()
	})
}

// MaskedChecker paints the checker only where mask has non-zero alpha.
// Pixels where the mask is transparent are copied from the mask unchanged,
// and the result has the mask's size.
func MaskedChecker(mask *pixbuf.Buffer, opts CheckerOptions) (*pixbuf.Buffer, error) {
	if mask == nil {
		return nil, fmt.Errorf("mask cannot be nil")
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	return paint(mask.Width, mask.Height, func(x, y int) color.NRGBA {
		px := mask.At(x, y)
		if px.A == 0 {
			return px
		}
		if opts.cell(x, y) {
			return opts.Even.Opaque()
		}
		return opts.Odd.Opaque()
	})
}

// Disc returns a size×size mask that is opaque white inside the inscribed
// circle (distance from the centre at most the radius) and transparent
// outside. It stands in for a hand-drawn circle mask.
func Disc(size int) (*pixbuf.Buffer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: disc size %d", ErrInvalidSize, size)
	}
	center := float64(size-1) / 2.0

	return paint(size, size, func(x, y int) color.NRGBA {
		dx := float64(x) - center
		dy := float64(y) - center
		if dx*dx+dy*dy > center*center {
			return color.NRGBA{}
		}
		return colour.White.Opaque()
	})
}
