package app

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"lumen/fx/flare"
	"lumen/fx/rgb"
	"lumen/scheduler"
)

// Config is the startup configuration.
type Config struct {
	Scheduler scheduler.Config

	// Hz is the effect tick rate. hal.Time ticks are 1ms apart.
	Hz int
	// Pin is the strip data pin handed to Strip.Send.
	Pin uint8

	Text        string
	ScrollSpeed uint8
	Snow        bool
	Fireworks   bool
	Flares      FlareList

	// Droplets optionally drives the strip in droplets mode.
	Droplets scheduler.Droplets
}

const DefaultHz = 50

func (c Config) withDefaults() Config {
	if c.Hz <= 0 {
		c.Hz = DefaultHz
	}
	if c.Hz > 1000 {
		c.Hz = 1000
	}
	if c.ScrollSpeed != 0 {
		c.Scheduler.ScrollSpeed = c.ScrollSpeed
	}
	c.Scheduler.Pin = c.Pin
	return c
}

// ParseSeed parses a generator seed. The generator state is 16 bits wide,
// so values above 65535 are rejected.
func ParseSeed(s string) (uint16, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 16)
	if err != nil {
		return 0, fmt.Errorf("seed %q: want 0-65535: %w", s, err)
	}
	return uint16(v), nil
}

// FlareSpec is one flare started at boot.
type FlareSpec struct {
	LED   uint16
	Mode  flare.Mode
	From  color.RGBA
	To    color.RGBA
	Speed uint8
}

var errFlareSpec = errors.New("want led,mode,#from,#to,speed")

// ParseFlareSpec parses "led,mode,#from,#to,speed", for example
// "3,forward,#000000,#ff8000,24".
func ParseFlareSpec(s string) (FlareSpec, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 5 {
		return FlareSpec{}, fmt.Errorf("flare %q: %w", s, errFlareSpec)
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	led, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil {
		return FlareSpec{}, fmt.Errorf("flare %q: led: %w", s, err)
	}
	mode, ok := flare.ParseMode(parts[1])
	if !ok {
		return FlareSpec{}, fmt.Errorf("flare %q: unknown mode %q", s, parts[1])
	}
	from, err := rgb.ParseHex(parts[2])
	if err != nil {
		return FlareSpec{}, fmt.Errorf("flare %q: %w", s, err)
	}
	to, err := rgb.ParseHex(parts[3])
	if err != nil {
		return FlareSpec{}, fmt.Errorf("flare %q: %w", s, err)
	}
	speed, err := strconv.ParseUint(parts[4], 10, 8)
	if err != nil {
		return FlareSpec{}, fmt.Errorf("flare %q: speed: %w", s, err)
	}
	return FlareSpec{LED: uint16(led), Mode: mode, From: from, To: to, Speed: uint8(speed)}, nil
}

func (f FlareSpec) String() string {
	return fmt.Sprintf("%d,%s,%s,%s,%d", f.LED, f.Mode, rgb.Hex(f.From), rgb.Hex(f.To), f.Speed)
}

// FlareList is a repeatable flag.Value of flare specs.
type FlareList []FlareSpec

func (l *FlareList) String() string {
	if l == nil {
		return ""
	}
	s := make([]string, len(*l))
	for i, f := range *l {
		s[i] = f.String()
	}
	return strings.Join(s, " ")
}

func (l *FlareList) Set(s string) error {
	f, err := ParseFlareSpec(s)
	if err != nil {
		return err
	}
	*l = append(*l, f)
	return nil
}
