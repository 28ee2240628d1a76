package scheduler

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// Matrix is the dot-matrix render target. Display transmits the frame.
type Matrix interface {
	drivers.Displayer
	Clear()
	PushColumn(bits byte)
	Enable(on bool)
}

// Strip is the RGB strip render target.
type Strip interface {
	Send(leds []color.RGBA, pin uint8) error
}

// Droplets is an externally simulated strip effect. When droplets mode is
// on and Present reports true, Render owns the whole strip for the tick
// and reports whether it wrote anything.
type Droplets interface {
	Present() bool
	Render(leds []color.RGBA) bool
}

// Logger receives configuration events.
type Logger interface {
	WriteLineString(s string)
}

type nopLogger struct{}

func (nopLogger) WriteLineString(string) {}
