package fixed

import "lumen/fx/prng"

// Walk is a bounded random walk: on each Step the value may move one unit
// down and, independently, one unit up, never leaving [Min,Max].
//
// Mask picks the per-draw probability: a nudge happens when
// rng.Uint16()&Mask == 0, so a mask with k set bits fires with
// probability 2^-k. The low bits of prng.Source cycle quickly, so masks
// should select bits above bit 8.
type Walk struct {
	Value int8
	Min   int8
	Max   int8
	Mask  uint16
}

// Step performs one tick of the walk and returns the new value.
func (w *Walk) Step(rng *prng.Source) int8 {
	if w.Value > w.Min && rng.Uint16()&w.Mask == 0 {
		w.Value--
	}
	if w.Value < w.Max && rng.Uint16()&w.Mask == 0 {
		w.Value++
	}
	if w.Value < w.Min {
		w.Value = w.Min
	} else if w.Value > w.Max {
		w.Value = w.Max
	}
	return w.Value
}
