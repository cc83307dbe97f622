// Package huewheel renders the colour-wheel texture: angle around the
// centre selects the hue, distance from the centre selects brightness, and
// everything outside the inscribed circle is transparent.
package huewheel

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/hashicorp/go-hclog"
	"github.com/remeh/sizedwaitgroup"

	"github.com/jmylchreest/texgen/internal/colour"
	"github.com/jmylchreest/texgen/internal/pixbuf"
)

// MinDimension is the smallest wheel with a usable radius.
const MinDimension = 2

// DefaultDimension is the size of the wheel shipped with the client.
const DefaultDimension = 2048

// ErrInvalidDimension is returned for dimensions below MinDimension.
var ErrInvalidDimension = errors.New("invalid dimension")

// RadialChannel selects which HSV component the distance from the centre drives.
type RadialChannel string

const (
	// RadialValue maps distance to value with saturation fixed at 1:
	// black centre, fully saturated rim.
	RadialValue RadialChannel = "value"

	// RadialSaturation maps distance to saturation with value fixed at 1:
	// white centre, fully saturated rim.
	RadialSaturation RadialChannel = "saturation"
)

// Valid reports whether c is a known radial channel.
func (c RadialChannel) Valid() bool {
	return c == RadialValue || c == RadialSaturation
}

var transparent = color.NRGBA{}

// Renderer renders hue wheels. The zero value renders sequentially in
// RadialValue mode.
type Renderer struct {
	// Radial selects the HSV component driven by distance. Empty means RadialValue.
	Radial RadialChannel

	// Workers bounds the number of rows rendered concurrently. Values
	// below 2 render on the calling goroutine.
	Workers int

	// Logger receives debug output. Nil discards it.
	Logger hclog.Logger
}

// Render renders a dimension×dimension wheel with the default renderer.
func Render(dimension int) (*pixbuf.Buffer, error) {
	var r Renderer
	return r.Render(context.Background(), dimension)
}

// Center returns the geometric centre coordinate shared by both axes,
// which is also the radius of the inscribed circle.
func Center(dimension int) float64 {
	return float64(dimension-1) / 2.0
}

// Render fills a new dimension×dimension buffer. The buffer is only
// returned once every row is complete; cancellation discards it.
func (r *Renderer) Render(ctx context.Context, dimension int) (*pixbuf.Buffer, error) {
	if dimension < MinDimension {
		return nil, fmt.Errorf("%w: %d (must be >= %d)", ErrInvalidDimension, dimension, MinDimension)
	}

	radial := r.Radial
	if radial == "" {
		radial = RadialValue
	}
	if !radial.Valid() {
		return nil, fmt.Errorf("unknown radial channel: %q (valid: %s, %s)", radial, RadialValue, RadialSaturation)
	}

	logger := r.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	buf, err := pixbuf.NewSquare(dimension)
	if err != nil {
		return nil, err
	}

	center := Center(dimension)
	logger.Debug("rendering hue wheel", "dimension", dimension, "center", center, "radial", radial, "workers", r.Workers)

	if r.Workers < 2 {
		for y := 0; y < dimension; y++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			renderRow(buf, y, center, radial)
		}
		return buf, nil
	}

	swg := sizedwaitgroup.New(r.Workers)
	for y := 0; y < dimension; y++ {
		if err := swg.AddWithContext(ctx); err != nil {
			swg.Wait()
			return nil, err
		}
		go func(y int) {
			defer swg.Done()
			renderRow(buf, y, center, radial)
		}(y)
	}
	swg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return buf, nil
}

// renderRow writes row y. It touches only that row's bytes.
func renderRow(buf *pixbuf.Buffer, y int, center float64, radial RadialChannel) {
	row := buf.Row(y)
	for x := 0; x < buf.Width; x++ {
		c := Pixel(x, y, center, radial)
		o := x * pixbuf.BytesPerPixel
		row[o], row[o+1], row[o+2], row[o+3] = c.R, c.G, c.B, c.A
	}
}

// Pixel computes the colour of (x, y) on a wheel centred at (center, center)
// with radius center.
func Pixel(x, y int, center float64, radial RadialChannel) color.NRGBA {
	dx := float64(x) - center
	dy := float64(y) - center
	distance := math.Sqrt(dx*dx + dy*dy)

	if distance > center {
		return transparent
	}

	hue := Hue(dx, dy)
	brightness := distance / center

	var rgb colour.RGB
	if radial == RadialSaturation {
		rgb = colour.HSVToRGB(hue, brightness, 1.0)
	} else {
		rgb = colour.HSVToRGB(hue, 1.0, brightness)
	}
	return rgb.Opaque()
}

// Hue maps the direction of (dx, dy) to a hue in [0, 1]. The negative x
// axis (angle -π) is hue 0 and hue grows with angle; the wrap point at
// angle π yields 1, which the HSV conversion treats as 0.
func Hue(dx, dy float64) float64 {
	return (math.Atan2(dy, dx) + math.Pi) / (2 * math.Pi)
}
