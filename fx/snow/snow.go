// Package snow animates falling snowflakes on the dot matrix.
//
// Every flake has its own fall speed. Horizontal drift comes from one of
// two wind speeds, each a bounded random walk. The first Threshold flakes
// follow wind 1, the rest wind 2, and the threshold itself wanders, so
// gusts move through the population instead of shifting every flake at
// once.
//
// Positions and speeds are fixed point with fixed.Scale per pixel.
package snow

import (
	"image/color"

	"lumen/fx/fixed"
	"lumen/fx/prng"

	"tinygo.org/x/drivers"
)

const (
	// DefaultCount is the population used when New is given zero.
	DefaultCount = 20
	// MaxCount keeps the threshold walk inside an int8.
	MaxCount = 120

	windLimit = 3

	// Upper-bit masks: the low bits of prng.Source repeat every 32 draws.
	windMask      = 0x1800 // 1 in 4
	thresholdMask = 0x1000 // 1 in 2
)

var on = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

type flake struct {
	x  int16
	y  int16
	vy int16
}

// Field is a fixed population of snowflakes plus the wind that moves them.
type Field struct {
	rng *prng.Source

	width int16 // in fixed units
	yEnd  int16

	flakes []flake

	wind1     fixed.Walk
	wind2     fixed.Walk
	threshold fixed.Walk
}

// New returns a field for a columns x rows surface with count flakes, all
// initially at rest.
func New(rng *prng.Source, columns, rows int16, count int) *Field {
	if count <= 0 {
		count = DefaultCount
	}
	if count > MaxCount {
		count = MaxCount
	}
	f := &Field{
		rng:    rng,
		width:  fixed.FromPixel(columns),
		yEnd:   fixed.FromPixel(rows),
		flakes: make([]flake, count),
		wind1:  fixed.Walk{Value: 0, Min: -windLimit, Max: windLimit, Mask: windMask},
		wind2:  fixed.Walk{Value: -windLimit, Min: -windLimit, Max: windLimit, Mask: windMask},
		threshold: fixed.Walk{
			Value: int8(count / 2),
			Min:   int8(count / 3),
			Max:   int8(2 * count / 3),
			Mask:  thresholdMask,
		},
	}
	f.Reset()
	return f
}

// Reset puts every flake at rest.
func (f *Field) Reset() {
	for i := range f.flakes {
		f.flakes[i] = flake{y: f.yEnd}
	}
}

// Count returns the population size.
func (f *Field) Count() int { return len(f.flakes) }

// Wind returns the two wind speeds and the current group threshold.
func (f *Field) Wind() (wind1, wind2, threshold int8) {
	return f.wind1.Value, f.wind2.Value, f.threshold.Value
}

// Live returns the number of flakes that have not come to rest.
func (f *Field) Live() int {
	n := 0
	for i := range f.flakes {
		if !f.atEnd(&f.flakes[i]) {
			n++
		}
	}
	return n
}

// Render advances the field by one tick and paints every falling flake
// onto d. Flakes that came to rest are replaced when createNew is set.
// It reports whether any flake is still falling, or was just replaced.
func (f *Field) Render(d drivers.Displayer, createNew bool) bool {
	f.updateWind()

	active := false
	for i := range f.flakes {
		fl := &f.flakes[i]

		if !f.atEnd(fl) {
			fl.y += fl.vy
		}
		if f.atEnd(fl) {
			if !createNew {
				continue
			}
			f.respawn(fl)
		}
		active = true

		if i < int(f.threshold.Value) {
			f.drift(fl, f.wind1.Value)
		} else {
			f.drift(fl, f.wind2.Value)
		}
		if !f.atEnd(fl) {
			d.SetPixel(fixed.ToPixel(fl.x), fixed.ToPixel(fl.y), on)
		}
	}
	return active
}

func (f *Field) updateWind() {
	f.wind1.Step(f.rng)
	f.wind2.Step(f.rng)
	f.threshold.Step(f.rng)
}

func (f *Field) atEnd(fl *flake) bool {
	return fl.y >= f.yEnd
}

func (f *Field) respawn(fl *flake) {
	fl.x = int16(f.rng.Below(uint16(f.width)))
	fl.y = 0
	fl.vy = 1 + int16(f.rng.Below(4))
}

// drift moves fl sideways; a flake blown off either edge comes to rest.
func (f *Field) drift(fl *flake, wind int8) {
	fl.x += int16(wind)
	if fl.x < 0 || fl.x >= f.width {
		fl.x = 0
		fl.y = f.yEnd
	}
}
