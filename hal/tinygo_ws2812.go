//go:build tinygo && baremetal

package hal

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ws2812"
)

// ws2812Strips lazily configures one WS2812 output per data pin.
type ws2812Strips struct {
	devs map[uint8]ws2812.Device
}

func newWS2812Strips() *ws2812Strips {
	return &ws2812Strips{devs: make(map[uint8]ws2812.Device, 1)}
}

func (s *ws2812Strips) WriteColors(pin uint8, leds []color.RGBA) error {
	dev, ok := s.devs[pin]
	if !ok {
		p := machine.Pin(pin)
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
		dev = ws2812.New(p)
		s.devs[pin] = dev
	}
	return dev.WriteColors(leds)
}
