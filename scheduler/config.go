package scheduler

import (
	"fmt"
	"image/color"

	"lumen/fx/flare"
)

// FlareSetup (re)starts the flare in slot. Out of range slots are ignored.
func (c *Context) FlareSetup(slot flare.Slot, led uint16, mode flare.Mode, from, to color.RGBA, speed uint8) {
	c.flares.Setup(slot, led, mode, from, to, speed)
}

// FlareStop turns the flare in slot off. The strip is blanked once when
// no flare is left running.
func (c *Context) FlareStop(slot flare.Slot) {
	c.flares.Stop(slot)
	if c.flares.ActiveCount() == 0 {
		c.stripClear = true
	}
}

// FlareStopAll turns every flare off and blanks the strip.
func (c *Context) FlareStopAll() {
	c.flares.StopAll()
	c.stripClear = true
}

// FlareFindIdle picks a slot for led; see flare.Pool.FindIdle.
func (c *Context) FlareFindIdle(led uint16) (flare.Slot, bool) {
	s, ok := c.flares.FindIdle(led)
	if !ok {
		c.log.WriteLineString(fmt.Sprintf("flare: no slot for led %d", led))
	}
	return s, ok
}

// SetSnowActive starts snow, or lets the falling flakes settle without
// spawning new ones.
func (c *Context) SetSnowActive(on bool) {
	if on == c.snowOn {
		return
	}
	c.snowOn = on
	if on {
		c.snowLive = true
	}
	c.log.WriteLineString(fmt.Sprintf("snow: active=%t", on))
}

// SetFireworksActive starts fireworks, or lets the rockets in flight burn
// out without launching new ones.
func (c *Context) SetFireworksActive(on bool) {
	if on == c.fireworksOn {
		return
	}
	c.fireworksOn = on
	if on {
		c.fireworksLive = true
	}
	c.log.WriteLineString(fmt.Sprintf("fireworks: active=%t", on))
}

// SetDropletsActive hands the strip to the droplets effect instead of the
// flares. Leaving droplets mode blanks the strip.
func (c *Context) SetDropletsActive(on bool) {
	if on == c.dropletsOn {
		return
	}
	c.dropletsOn = on
	if !on {
		c.stripClear = true
	}
	c.log.WriteLineString(fmt.Sprintf("droplets: active=%t", on))
}

// SetText replaces the marquee text.
func (c *Context) SetText(s string) {
	c.text.SetText(s)
	c.matrixDirty = true
}

// SetScrollSpeed sets the marquee speed in sixteenths of a column per tick.
func (c *Context) SetScrollSpeed(speed uint8) { c.text.SetSpeed(speed) }

// SetMatrixEnabled switches the matrix display on or off.
func (c *Context) SetMatrixEnabled(on bool) {
	if on == !c.matrixDisabled {
		return
	}
	c.matrixDisabled = !on
	c.matrix.Enable(on)
	c.log.WriteLineString(fmt.Sprintf("matrix: enabled=%t", on))
}

// SnowActive reports whether snow spawns new flakes; SnowRendering
// whether it is still composited.
func (c *Context) SnowActive() bool    { return c.snowOn }
func (c *Context) SnowRendering() bool { return c.snowLive }

func (c *Context) FireworksActive() bool    { return c.fireworksOn }
func (c *Context) FireworksRendering() bool { return c.fireworksLive }
func (c *Context) DropletsActive() bool     { return c.dropletsOn }
func (c *Context) MatrixEnabled() bool      { return !c.matrixDisabled }
