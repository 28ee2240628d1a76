package fireworks

import (
	"image/color"

	"lumen/fx/fixed"

	"tinygo.org/x/drivers"
)

// Positioner is implemented by anything that has a fixed point position
// and can fall off the bottom of the surface.
type Positioner interface {
	Pos() (x, y int16)
	Terminal(yEnd int16) bool
}

// Dot is a position with fixed.Scale units per pixel.
type Dot struct {
	X, Y int16
}

func (d Dot) Pos() (x, y int16) { return d.X, d.Y }

// Terminal reports whether the dot reached the bottom edge.
func (d Dot) Terminal(yEnd int16) bool { return d.Y >= yEnd }

// VelocityDot is a Dot that moves under constant gravity.
type VelocityDot struct {
	Dot
	VX, VY int16
}

// Integrate advances the dot by one explicit Euler step. A dot that
// leaves [0,width) horizontally is parked on yEnd.
func (v *VelocityDot) Integrate(gravity, width, yEnd int16) {
	v.X += v.VX
	v.Y += v.VY
	v.VY += gravity
	if v.X < 0 || v.X >= width {
		v.X = 0
		v.Y = yEnd
	}
}

var on = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

// paint draws p unless it is terminal or above the top row.
func paint(d drivers.Displayer, p Positioner, yEnd int16) bool {
	if p.Terminal(yEnd) {
		return false
	}
	x, y := p.Pos()
	px, py := fixed.ToPixel(x), fixed.ToPixel(y)
	if px < 0 || py < 0 {
		return false
	}
	d.SetPixel(px, py, on)
	return true
}
