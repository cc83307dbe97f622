package colour

import "math"

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(c RGB) float64 {
	rf := gammaCorrect(float64(c.R) / 255.0)
	rg := gammaCorrect(float64(c.G) / 255.0)
	rb := gammaCorrect(float64(c.B) / 255.0)

	return 0.2126*rf + 0.7152*rg + 0.0722*rb
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// HueDistance returns the shortest distance between two hues expressed as
// fractions of a turn. The result is in [0, 0.5].
func HueDistance(h1, h2 float64) float64 {
	diff := math.Abs(h1 - h2)
	diff -= math.Floor(diff)
	if diff > 0.5 {
		diff = 1 - diff // Handle wraparound
	}
	return diff
}
