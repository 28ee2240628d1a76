package surface

import (
	"fmt"
	"image/color"
	"strings"
	"sync"
)

// StripTransport ships a finished LED frame to the strip on pin.
type StripTransport interface {
	WriteColors(pin uint8, leds []color.RGBA) error
}

// Strip keeps a copy of the last frame sent to an RGB LED strip.
type Strip struct {
	mu    sync.Mutex
	leds  []color.RGBA
	pin   uint8
	sends uint64

	tx StripTransport
}

// NewStrip returns a strip frame of n LEDs. tx may be nil.
func NewStrip(n int, tx StripTransport) *Strip {
	if n < 0 {
		n = 0
	}
	return &Strip{leds: make([]color.RGBA, n), tx: tx}
}

// Len returns the number of LEDs.
func (s *Strip) Len() int { return len(s.leds) }

// Send records leds as the current frame and forwards it to the
// transport. Extra LEDs beyond Len are dropped.
func (s *Strip) Send(leds []color.RGBA, pin uint8) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copy(s.leds, leds)
	s.pin = pin
	s.sends++
	if s.tx == nil {
		return nil
	}
	if err := s.tx.WriteColors(pin, s.leds); err != nil {
		return fmt.Errorf("strip pin %d: %w", pin, err)
	}
	return nil
}

// Sends returns how many frames were sent.
func (s *Strip) Sends() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sends
}

// Pin returns the pin used by the last Send.
func (s *Strip) Pin() uint8 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pin
}

// Snapshot copies the last frame into dst and returns the count.
func (s *Strip) Snapshot(dst []color.RGBA) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copy(dst, s.leds)
}

// String lists the last frame as space separated #rrggbb values.
func (s *Strip) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var b strings.Builder
	for i, c := range s.leds {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "#%02x%02x%02x", c.R, c.G, c.B)
	}
	return b.String()
}
