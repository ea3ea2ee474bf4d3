package oled

import (
	"fmt"
	"image/color"

	"github.com/crazy3lf/colorconv"
)

// DefaultOn is the pale blue of the emulated panel.
var DefaultOn = color.RGBA{R: 214, G: 244, B: 255, A: 255}

// Off is the colour of an unlit pixel.
var Off = color.RGBA{A: 255}

// Tint converts a hue (degrees), saturation and value (0-1) into the colour
// of a lit pixel.
func Tint(h, s, v float64) (color.RGBA, error) {
	r, g, b, err := colorconv.HSVToRGB(h, s, v)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("tint hsv(%g, %g, %g): %w", h, s, v, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
