// Package fireworks launches rockets that rise, burst, and fall on the dot
// matrix. Coordinates are fixed point with fixed.Scale units per pixel and
// y grows downward, so rising rockets have negative vertical velocity.
package fireworks

import (
	"lumen/fx/fixed"
	"lumen/fx/prng"

	"tinygo.org/x/drivers"
)

const (
	// DefaultCount is the number of rockets used when New is given zero.
	DefaultCount = 5
	// DefaultGravity is the per-tick change of vertical velocity.
	DefaultGravity = 1
	// MaxFuse bounds the random launch delay in ticks.
	MaxFuse = 110

	launchSpeed  = 10
	launchSpread = 5
)

// Field is a fixed population of rockets.
type Field struct {
	rng     *prng.Source
	gravity int16

	width int16
	yEnd  int16

	rockets []Rocket
}

// New returns a field for a columns x rows surface with count rockets, all
// spent.
func New(rng *prng.Source, columns, rows int16, count int, gravity int16) *Field {
	if count <= 0 {
		count = DefaultCount
	}
	if gravity <= 0 {
		gravity = DefaultGravity
	}
	f := &Field{
		rng:     rng,
		gravity: gravity,
		width:   fixed.FromPixel(columns),
		yEnd:    fixed.FromPixel(rows),
		rockets: make([]Rocket, count),
	}
	f.Reset()
	return f
}

// Reset marks every rocket spent.
func (f *Field) Reset() {
	for i := range f.rockets {
		f.rockets[i] = spentRocket(f.width, f.yEnd)
	}
}

// Count returns the number of rocket slots.
func (f *Field) Count() int { return len(f.rockets) }

// Rocket returns a pointer to slot i.
func (f *Field) Rocket(i int) *Rocket { return &f.rockets[i] }

// Render steps every rocket and paints it onto d. Finished rockets are
// replaced by new random ones when makeNew is set. It reports whether any
// rocket is still active.
func (f *Field) Render(d drivers.Displayer, makeNew bool) bool {
	active := false
	for i := range f.rockets {
		r := &f.rockets[i]
		if r.Step(f.rng, f.gravity) {
			active = true
		} else if makeNew {
			*r = f.randomRocket()
			active = true
		}
		r.Render(d)
	}
	return active
}

func (f *Field) randomRocket() Rocket {
	x := int16(f.rng.Below(uint16(f.width)))
	vx := f.rng.SignedOffset(0, 3)
	vy := -(launchSpeed + int16(f.rng.Below(launchSpread)))
	trigger := -3 + f.rng.Signed(1)
	fuse := uint8(f.rng.Below(MaxFuse))
	return NewRocket(x, vx, vy, fuse, trigger, f.width, f.yEnd)
}
