// Package colour provides the colour-space conversions and terminal colour
// helpers used by the texture generators.
package colour

import (
	"fmt"
	"image/color"
)

// RGB represents an opaque colour with 8-bit channels.
type RGB struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

// Common colours used by the generators.
var (
	Black = RGB{}
	White = RGB{R: 255, G: 255, B: 255}
)

// Grey returns the grey with all three channels set to v.
func Grey(v uint8) RGB {
	return RGB{R: v, G: v, B: v}
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// Opaque returns the colour with full alpha.
func (rgb RGB) Opaque() color.NRGBA {
	return rgb.WithAlpha(255)
}

// WithAlpha returns the colour as non-premultiplied RGBA with the given alpha.
func (rgb RGB) WithAlpha(a uint8) color.NRGBA {
	return color.NRGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: a}
}

// ToRGB converts a color.Color to RGB, discarding alpha.
// Colours are un-premultiplied first so translucent pixels keep their hue.
func ToRGB(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: n.R, G: n.G, B: n.B}
}
