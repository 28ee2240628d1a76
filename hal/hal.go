package hal

import (
	"errors"
	"image/color"

	"tinygo.org/x/drivers"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// LED is a minimal output pin abstraction.
type LED interface {
	High()
	Low()
}

var ErrNotImplemented = errors.New("not implemented")

// Matrix is a chain of 8-row dot matrix modules. Display transmits the
// frame; Enable switches the modules on or off without losing content.
type Matrix interface {
	drivers.Displayer
	Clear()
	PushColumn(bits byte)
	Enable(on bool)
}

// Strip is an addressable RGB LED strip.
type Strip interface {
	Len() int
	Send(leds []color.RGBA, pin uint8) error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
)

// KeyEvent is a keyboard event. Printable keys carry Rune with Code
// KeyUnknown.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// Time provides a base tick stream.
//
// Ticks are one millisecond apart on every platform.
type Time interface {
	Ticks() <-chan uint64
}

// HAL provides the only contact point between the effects loop and the
// outside world.
type HAL interface {
	Logger() Logger
	LED() LED
	Matrix() Matrix
	Strip() Strip
	Input() Input
	Time() Time
}
