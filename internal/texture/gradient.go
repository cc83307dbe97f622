package texture

import (
	"fmt"
	"image/color"

	"github.com/jmylchreest/texgen/internal/colour"
	"github.com/jmylchreest/texgen/internal/pixbuf"
)

// Channel names a colour channel driven by a gradient ramp.
type Channel string

const (
	// ChannelGrey ramps all three channels together.
	ChannelGrey Channel = "grey"
	// ChannelRed ramps red with green and blue held at 255.
	ChannelRed Channel = "red"
	// ChannelGreen ramps green with red and blue held at 255.
	ChannelGreen Channel = "green"
	// ChannelBlue ramps blue with red and green held at 255.
	ChannelBlue Channel = "blue"
	// ChannelAlpha ramps alpha over opaque white.
	ChannelAlpha Channel = "alpha"
)

// rampValue maps column x of a width-wide ramp to [0, 255]. A 256-wide
// ramp uses x directly.
func rampValue(x, width int) uint8 {
	if width == 256 {
		return uint8(x)
	}
	if width == 1 {
		return 0
	}
	return uint8(x * 255 / (width - 1))
}

// Gradient returns a width×height horizontal ramp on the given channel.
// The value increases from 0 at the left edge to 255 at the right edge and
// is constant down each column.
func Gradient(width, height int, ch Channel) (*pixbuf.Buffer, error) {
	var fn func(v uint8) color.NRGBA
	switch ch {
	case ChannelGrey:
		fn = func(v uint8) color.NRGBA { return colour.Grey(v).Opaque() }
	case ChannelRed:
		fn = func(v uint8) color.NRGBA { return colour.RGB{R: v, G: 255, B: 255}.Opaque() }
	case ChannelGreen:
		fn = func(v uint8) color.NRGBA { return colour.RGB{R: 255, G: v, B: 255}.Opaque() }
	case ChannelBlue:
		fn = func(v uint8) color.NRGBA { return colour.RGB{R: 255, G: 255, B: v}.Opaque() }
	case ChannelAlpha:
		fn = func(v uint8) color.NRGBA { return colour.White.WithAlpha(v) }
	default:
		return nil, fmt.Errorf("unknown channel: %q", ch)
	}

	return paint(width, height, func(x, _ int) color.NRGBA {
		return fn(rampValue(x, width))
	})
}
