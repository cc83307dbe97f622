package colour

import "math"

// HSVToRGBFloat converts HSV to RGB with every component in [0, 1].
// h is the hue as a fraction of a full turn; values outside [0, 1) wrap.
// The six 60° sectors each hold one channel at v, one at v*(1-s) and
// interpolate the third.
func HSVToRGBFloat(h, s, v float64) (r, g, b float64) {
	if s == 0 {
		return v, v, v
	}

	h -= math.Floor(h)
	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	switch int(i) % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}

// HSVToRGB converts HSV (all components in [0, 1]) to an 8-bit RGB colour.
// Channels are quantised with Quantise, so the conversion truncates.
func HSVToRGB(h, s, v float64) RGB {
	r, g, b := HSVToRGBFloat(h, s, v)
	return RGB{R: Quantise(r), G: Quantise(g), B: Quantise(b)}
}

// Quantise maps a channel in [0, 1] to [0, 255] by truncation (floor of
// c*255), clamping out-of-range input. Textures generated with rounding
// instead would differ by one on some pixels.
func Quantise(c float64) uint8 {
	if c <= 0 || math.IsNaN(c) {
		return 0
	}
	if c >= 1 {
		return 255
	}
	return uint8(c * 255)
}

// RGBToHSV converts an 8-bit RGB colour to HSV with every component in
// [0, 1]. Grey colours report a hue of 0.
func RGBToHSV(rgb RGB) (h, s, v float64) {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	v = maxVal
	if maxVal == 0 || delta == 0 {
		return 0, 0, v
	}
	s = delta / maxVal

	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}

	return h / 6, s, v
}
