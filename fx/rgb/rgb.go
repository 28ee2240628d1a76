// Package rgb contains the color primitives shared by the strip effects.
package rgb

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Black is the "LED off" color.
var Black = color.RGBA{A: 0xFF}

// Blend linearly interpolates each channel from from to to. Scale 0
// returns from, 255 returns to.
func Blend(scale uint8, from, to color.RGBA) color.RGBA {
	return color.RGBA{
		R: mix(scale, from.R, to.R),
		G: mix(scale, from.G, to.G),
		B: mix(scale, from.B, to.B),
		A: 0xFF,
	}
}

func mix(scale, a, b uint8) uint8 {
	s := uint16(scale)
	return uint8((uint16(a)*(255-s) + uint16(b)*s) / 255)
}

// ParseHex parses "#rrggbb" or "#rgb" into an opaque color.
func ParseHex(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, nil
}

// Hue returns a fully saturated color at the given hue in degrees.
func Hue(deg uint16, value float64) color.RGBA {
	r, g, b := colorful.Hsv(float64(deg%360), 1, value).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// Hex formats c as "#rrggbb".
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
