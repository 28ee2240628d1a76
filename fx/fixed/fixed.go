// Package fixed holds the small fixed-point helpers shared by the effects:
// a rate divider that turns a per-tick speed into whole steps, and a
// clamped random walk.
package fixed

// Scale is the fractional factor used by every particle coordinate in
// the effects (4 fractional bits).
const Scale = 16

// ToPixel converts a Scale-based coordinate to a whole pixel, rounding
// toward negative infinity so that -1 lands off-screen instead of on 0.
func ToPixel(v int16) int16 {
	return v >> 4
}

// FromPixel converts a whole pixel to a Scale-based coordinate.
func FromPixel(p int16) int16 {
	return p * Scale
}
