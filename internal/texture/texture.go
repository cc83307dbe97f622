// Package texture implements the procedural texture generators and the
// catalogue that maps them to their output files.
package texture

import (
	"fmt"
	"image/color"

	"github.com/jmylchreest/texgen/internal/colour"
	"github.com/jmylchreest/texgen/internal/pixbuf"
)

// ErrInvalidSize is returned when a generator is asked for a non-positive size.
var ErrInvalidSize = pixbuf.ErrInvalidSize

// Checker colours used for transparency backdrops.
var (
	CheckerLight = colour.Grey(170)
	CheckerDark  = colour.Grey(113)
)

// paint fills a new width×height buffer with fn evaluated at every pixel.
func paint(width, height int, fn func(x, y int) color.NRGBA) (*pixbuf.Buffer, error) {
	buf, err := pixbuf.New(width, height)
	if err != nil {
		return nil, err
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			buf.Set(x, y, fn(x, y))
		}
	}
	return buf, nil
}

// Solid returns a size×size opaque buffer of one colour.
func Solid(size int, c colour.RGB) (*pixbuf.Buffer, error) {
	buf, err := pixbuf.NewSquare(size)
	if err != nil {
		return nil, err
	}
	buf.Fill(c.Opaque())
	return buf, nil
}

// GridTile returns a white size×size tile crossed by a black horizontal
// and vertical line, each two pixels wide and centred on the tile. Tiled
// edge to edge it forms the background grid.
func GridTile(size int) (*pixbuf.Buffer, error) {
	if size < 2 {
		return nil, fmt.Errorf("%w: grid tile needs size >= 2, got %d", ErrInvalidSize, size)
	}
	lo, hi := size/2-1, size/2
	onLine := func(v int) bool { return v >= lo && v <= hi }

	return paint(size, size, func(x, y int) color.NRGBA {
		if onLine(x) || onLine(y) {
			return colour.Black.Opaque()
		}
		return colour.White.Opaque()
	})
}

// TextCursor returns a size×size cursor texture: a white interior framed
// by a black border that is thickness pixels tall at the top and bottom
// and thickness*ratio pixels wide at the sides.
func TextCursor(size, thickness, ratio int) (*pixbuf.Buffer, error) {
	if size <= 0 || thickness < 0 || ratio < 0 {
		return nil, fmt.Errorf("%w: text cursor size=%d thickness=%d ratio=%d", ErrInvalidSize, size, thickness, ratio)
	}
	xThickness := thickness * ratio

	return paint(size, size, func(x, y int) color.NRGBA {
		if y < thickness || y >= size-thickness || x < xThickness || x >= size-xThickness {
			return colour.Black.Opaque()
		}
		return colour.White.Opaque()
	})
}
