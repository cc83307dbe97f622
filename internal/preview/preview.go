// Package preview renders pixel buffers as true-colour terminal art.
package preview

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/jmylchreest/texgen/internal/colour"
	"github.com/jmylchreest/texgen/internal/pixbuf"
)

// DefaultColumns is used when the output is not a terminal.
const DefaultColumns = 64

// Options configures Render.
type Options struct {
	// Columns is the preview width in terminal cells. Zero picks the
	// terminal width (capped at 2*DefaultColumns) or DefaultColumns.
	Columns int

	// Backdrop is blended under translucent pixels. Defaults to a mid grey
	// so transparent regions stay visible.
	Backdrop *colour.RGB
}

// TerminalColumns returns the width of f when it is a terminal.
func TerminalColumns(f *os.File) (int, bool) {
	fd := int(f.Fd()) // #nosec G115 - File descriptors fit in int
	if !term.IsTerminal(fd) {
		return 0, false
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return 0, false
	}
	return width, true
}

// columnsFor resolves the preview width for w.
func columnsFor(w io.Writer, requested int) int {
	if requested > 0 {
		return requested
	}
	if f, ok := w.(*os.File); ok {
		if width, ok := TerminalColumns(f); ok {
			return min(width, 2*DefaultColumns)
		}
	}
	return DefaultColumns
}

// Render writes a down-sampled preview of buf to w. Each cell shows two
// vertically stacked samples, so a square buffer previews as roughly
// square on a typical terminal font.
func Render(w io.Writer, buf *pixbuf.Buffer, opts Options) error {
	if buf == nil {
		return fmt.Errorf("buffer cannot be nil")
	}

	backdrop := colour.Grey(128)
	if opts.Backdrop != nil {
		backdrop = *opts.Backdrop
	}

	cols := min(columnsFor(w, opts.Columns), buf.Width)
	rows := max(1, buf.Height*cols/buf.Width)
	// Two samples per cell vertically.
	samplesY := rows * 2

	var b strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top := sample(buf, col, 2*row, cols, samplesY, backdrop)
			bottom := sample(buf, col, 2*row+1, cols, samplesY, backdrop)
			b.WriteString(colour.HalfBlock(top, bottom))
		}
		b.WriteString(colour.Reset())
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// sample averages the block of source pixels covered by cell (cx, cy) of a
// cols×rows grid and composites it over backdrop.
func sample(buf *pixbuf.Buffer, cx, cy, cols, rows int, backdrop colour.RGB) colour.RGB {
	x0, x1 := span(cx, cols, buf.Width)
	y0, y1 := span(cy, rows, buf.Height)

	var r, g, b, n float64
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			px := buf.At(x, y)
			a := float64(px.A) / 255
			r += float64(px.R)*a + float64(backdrop.R)*(1-a)
			g += float64(px.G)*a + float64(backdrop.G)*(1-a)
			b += float64(px.B)*a + float64(backdrop.B)*(1-a)
			n++
		}
	}
	if n == 0 {
		return backdrop
	}
	return colour.RGB{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n)}
}

// span maps cell i of cells onto a half-open pixel range of size.
func span(i, cells, size int) (int, int) {
	lo := i * size / cells
	hi := (i + 1) * size / cells
	if hi <= lo {
		hi = lo + 1
	}
	return lo, min(hi, size)
}
