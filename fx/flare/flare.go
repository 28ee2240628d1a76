// Package flare animates single strip LEDs that fade between two colors.
package flare

import (
	"image/color"

	"lumen/fx/fixed"
	"lumen/fx/rgb"
)

// Mode is the state of a Flare.
type Mode uint8

const (
	Off Mode = iota
	OneShot
	BackAndForthForward
	BackAndForthBackward
	ModeCount
)

func (m Mode) String() string {
	switch m {
	case Off:
		return "off"
	case OneShot:
		return "oneshot"
	case BackAndForthForward:
		return "forward"
	case BackAndForthBackward:
		return "backward"
	default:
		return "unknown"
	}
}

// ParseMode maps the names returned by Mode.String back to a Mode.
func ParseMode(s string) (Mode, bool) {
	for m := Off; m < ModeCount; m++ {
		if m.String() == s {
			return m, true
		}
	}
	return Off, false
}

// Flare fades one LED from one color to another.
//
// Speed is in sixteenths of a scale unit per tick.
type Flare struct {
	mode  Mode
	led   uint16
	from  color.RGBA
	to    color.RGBA
	scale uint8
	speed uint8
	acc   fixed.StepAccumulator
}

// Setup (re)starts the flare, discarding any animation in progress.
func (f *Flare) Setup(led uint16, mode Mode, from, to color.RGBA, speed uint8) {
	if mode >= ModeCount {
		mode = Off
	}
	f.led = led
	f.mode = mode
	f.from = from
	f.to = to
	f.speed = speed
	f.scale = 0
	f.acc.Reset()
}

// Stop turns the flare off.
func (f *Flare) Stop() { f.mode = Off }

// Active reports whether the flare is rendered.
func (f *Flare) Active() bool { return f.mode != Off }

func (f *Flare) LED() uint16     { return f.led }
func (f *Flare) Mode() Mode      { return f.mode }
func (f *Flare) Scale() uint8    { return f.scale }
func (f *Flare) Speed() uint8    { return f.speed }
func (f *Flare) Pending() uint16 { return f.acc.Pending() }

// Step advances the animation by one tick.
func (f *Flare) Step() {
	f.acc.Add(f.speed)
	for f.acc.Next() {
		f.advance()
	}
}

func (f *Flare) advance() {
	switch f.mode {
	case OneShot:
		if f.scale < 255 {
			f.scale++
		}
		if f.scale == 255 {
			f.mode = Off
		}
	case BackAndForthForward:
		if f.scale < 255 {
			f.scale++
		}
		if f.scale == 255 {
			f.mode = BackAndForthBackward
		}
	case BackAndForthBackward:
		if f.scale > 0 {
			f.scale--
		}
		if f.scale == 0 {
			f.mode = BackAndForthForward
		}
	}
}

// Render writes the current color into leds. It reports whether anything
// was written; an inactive flare or an LED past the end of leds writes
// nothing.
func (f *Flare) Render(leds []color.RGBA) bool {
	if f.mode == Off || int(f.led) >= len(leds) {
		return false
	}
	leds[f.led] = rgb.Blend(f.scale, f.from, f.to)
	return true
}
