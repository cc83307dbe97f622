// Package pixbuf provides the in-memory pixel grid that every texture
// generator fills before it is handed to an encoder.
package pixbuf

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// BytesPerPixel is the stride of one pixel in Buffer.Pix.
const BytesPerPixel = 4

// ErrInvalidSize is returned when a buffer is requested with a
// non-positive width or height.
var ErrInvalidSize = errors.New("buffer dimensions must be positive")

// Buffer is a row-major grid of non-premultiplied RGBA pixels.
//
// The pixel at (x, y) lives at Index(x, y) = y*Width + x, and its four
// channel bytes start at Pix[Index(x, y)*BytesPerPixel].
type Buffer struct {
	Width  int
	Height int
	Pix    []uint8
}

// New allocates a fully transparent width×height buffer.
func New(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*BytesPerPixel),
	}, nil
}

// NewSquare allocates a fully transparent dimension×dimension buffer.
func NewSquare(dimension int) (*Buffer, error) {
	return New(dimension, dimension)
}

// Len returns the number of pixels in the buffer.
func (b *Buffer) Len() int {
	return b.Width * b.Height
}

// Index returns the row-major pixel index of (x, y).
func (b *Buffer) Index(x, y int) int {
	return y*b.Width + x
}

// Offset returns the byte offset of the first channel of (x, y) in Pix.
func (b *Buffer) Offset(x, y int) int {
	return b.Index(x, y) * BytesPerPixel
}

// InBounds reports whether (x, y) addresses a pixel of the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.Width && y < b.Height
}

// Set writes c at (x, y). Out-of-range coordinates are ignored.
func (b *Buffer) Set(x, y int, c color.NRGBA) {
	if !b.InBounds(x, y) {
		return
	}
	i := b.Offset(x, y)
	s := b.Pix[i : i+BytesPerPixel : i+BytesPerPixel]
	s[0], s[1], s[2], s[3] = c.R, c.G, c.B, c.A
}

// At returns the pixel at (x, y), or transparent black when out of range.
func (b *Buffer) At(x, y int) color.NRGBA {
	if !b.InBounds(x, y) {
		return color.NRGBA{}
	}
	i := b.Offset(x, y)
	s := b.Pix[i : i+BytesPerPixel : i+BytesPerPixel]
	return color.NRGBA{R: s[0], G: s[1], B: s[2], A: s[3]}
}

// Row returns the bytes of row y. Rows never overlap, so distinct rows can
// be written from different goroutines.
func (b *Buffer) Row(y int) []uint8 {
	stride := b.Width * BytesPerPixel
	return b.Pix[y*stride : (y+1)*stride : (y+1)*stride]
}

// Fill paints every pixel with c.
func (b *Buffer) Fill(c color.NRGBA) {
	for i := 0; i < len(b.Pix); i += BytesPerPixel {
		b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3] = c.R, c.G, c.B, c.A
	}
}

// Equal reports whether two buffers have the same size and identical bytes.
func (b *Buffer) Equal(other *Buffer) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.Width == other.Width && b.Height == other.Height && bytes.Equal(b.Pix, other.Pix)
}

// Image returns an *image.NRGBA view sharing the buffer's pixels.
func (b *Buffer) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.Pix,
		Stride: b.Width * BytesPerPixel,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}

// FromImage copies any image into a new buffer, converting to
// non-premultiplied RGBA. The image origin is mapped to (0, 0).
func FromImage(img image.Image) (*Buffer, error) {
	bounds := img.Bounds()
	buf, err := New(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}
	draw.Draw(buf.Image(), buf.Image().Rect, img, bounds.Min, draw.Src)
	return buf, nil
}
