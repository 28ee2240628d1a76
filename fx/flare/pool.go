package flare

import "image/color"

// Slot is a handle to one Flare in a Pool.
type Slot uint8

// MaxSlots bounds the pool size so a Slot always fits.
const MaxSlots = 255

// Pool is a fixed set of flares. Slots are allocated once by NewPool and
// reused forever; nothing prevents two active slots from driving the same
// LED.
type Pool struct {
	flares []Flare
}

// NewPool returns a pool with size idle slots (clamped to [1,MaxSlots]).
func NewPool(size int) *Pool {
	if size < 1 {
		size = 1
	}
	if size > MaxSlots {
		size = MaxSlots
	}
	return &Pool{flares: make([]Flare, size)}
}

// Len returns the pool capacity.
func (p *Pool) Len() int { return len(p.flares) }

// At returns the flare behind slot, or nil for an out of range slot.
func (p *Pool) At(s Slot) *Flare {
	if int(s) >= len(p.flares) {
		return nil
	}
	return &p.flares[s]
}

// FindIdle picks a slot for led. A slot already animating led wins,
// then any idle slot. When neither exists ok is false and the returned
// slot equals Len().
func (p *Pool) FindIdle(led uint16) (s Slot, ok bool) {
	for i := range p.flares {
		if p.flares[i].Active() && p.flares[i].led == led {
			return Slot(i), true
		}
	}
	for i := range p.flares {
		if !p.flares[i].Active() {
			return Slot(i), true
		}
	}
	return Slot(len(p.flares)), false
}

// Setup configures slot. Out of range slots are ignored.
func (p *Pool) Setup(s Slot, led uint16, mode Mode, from, to color.RGBA, speed uint8) {
	if f := p.At(s); f != nil {
		f.Setup(led, mode, from, to, speed)
	}
}

// Stop turns slot off. Out of range slots are ignored.
func (p *Pool) Stop(s Slot) {
	if f := p.At(s); f != nil {
		f.Stop()
	}
}

// StopAll turns every slot off.
func (p *Pool) StopAll() {
	for i := range p.flares {
		p.flares[i].Stop()
	}
}

// ActiveCount returns the number of slots not Off.
func (p *Pool) ActiveCount() int {
	n := 0
	for i := range p.flares {
		if p.flares[i].Active() {
			n++
		}
	}
	return n
}

// Step advances every slot by one tick.
func (p *Pool) Step() {
	for i := range p.flares {
		p.flares[i].Step()
	}
}

// Render draws every active slot into leds in slot order, so a later slot
// wins when two share an LED. It reports whether any LED was written.
func (p *Pool) Render(leds []color.RGBA) bool {
	dirty := false
	for i := range p.flares {
		if p.flares[i].Render(leds) {
			dirty = true
		}
	}
	return dirty
}
