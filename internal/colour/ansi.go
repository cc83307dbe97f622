package colour

import (
	"fmt"
	"math"
	"strings"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8

	// upperHalfBlock fills the top half of a cell with the foreground colour.
	upperHalfBlock = "▀"
)

// DisableColourOutput can be used to disable colour output.
var DisableColourOutput = false

// ColourPreview returns an ANSI-coloured preview string for a colour.
// Width specifies how many characters wide the colour block should be.
// Uses background colour with spaces for a solid block.
func ColourPreview(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	if DisableColourOutput {
		return strings.Repeat(" ", width)
	}

	bgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bgColour + strings.Repeat(" ", width) + ansiReset
}

// FormatColourWithPreview formats a colour with its preview and hex code.
func FormatColourWithPreview(rgb RGB, width int) string {
	return fmt.Sprintf("%s %s", ColourPreview(rgb, width), rgb.Hex())
}

// HalfBlock renders two vertically stacked pixels in one terminal cell.
// The top pixel becomes the foreground of an upper half block and the
// bottom pixel the background. Without colour output it falls back to a
// luminance ramp so previews stay legible.
func HalfBlock(top, bottom RGB) string {
	if DisableColourOutput {
		return string(asciiRamp(top, bottom))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s%d;%d;%d%s", ansiFgPrefix, top.R, top.G, top.B, ansiSuffix)
	fmt.Fprintf(&b, "%s%d;%d;%d%s", ansiBgPrefix, bottom.R, bottom.G, bottom.B, ansiSuffix)
	b.WriteString(upperHalfBlock)
	return b.String()
}

// Reset returns the sequence that ends a run of HalfBlock cells.
func Reset() string {
	if DisableColourOutput {
		return ""
	}
	return ansiReset
}

const ramp = " .:-=+*#%@"

// asciiRamp picks a character whose density follows the mean luminance of
// the two pixels.
func asciiRamp(top, bottom RGB) byte {
	l := (Luminance(top) + Luminance(bottom)) / 2
	idx := int(math.Round(l * float64(len(ramp)-1)))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(ramp) {
		idx = len(ramp) - 1
	}
	return ramp[idx]
}
