// Package scheduler owns every effect and composes them onto the matrix
// and the strip once per fixed tick.
package scheduler

import (
	"errors"
	"fmt"
	"image/color"

	"lumen/fx/fireworks"
	"lumen/fx/flare"
	"lumen/fx/marquee"
	"lumen/fx/prng"
	"lumen/fx/snow"

	"tinygo.org/x/tinyfont"
)

// Config sizes the effects. Zero fields take defaults.
type Config struct {
	LEDs        int
	Pin         uint8
	Flares      int
	Snowflakes  int
	Rockets     int
	Gravity     int16
	ScrollSpeed uint8
	Seed        uint16
	Font        tinyfont.Fonter
}

const (
	DefaultLEDs        = 60
	DefaultFlares      = 20
	DefaultScrollSpeed = 8
)

func (c Config) withDefaults() Config {
	if c.LEDs <= 0 {
		c.LEDs = DefaultLEDs
	}
	if c.Flares <= 0 {
		c.Flares = DefaultFlares
	}
	if c.Snowflakes <= 0 {
		c.Snowflakes = snow.DefaultCount
	}
	if c.Rockets <= 0 {
		c.Rockets = fireworks.DefaultCount
	}
	if c.Gravity == 0 {
		c.Gravity = fireworks.DefaultGravity
	}
	if c.ScrollSpeed == 0 {
		c.ScrollSpeed = DefaultScrollSpeed
	}
	return c
}

// Context is the whole animation state. Everything is allocated by New
// and only mutated by Step and the configuration methods, all of which
// must be called from one goroutine.
type Context struct {
	cfg Config

	rng       *prng.Source
	flares    *flare.Pool
	snow      *snow.Field
	fireworks *fireworks.Field
	text      *marquee.Marquee
	droplets  Droplets
	leds      []color.RGBA

	matrix Matrix
	strip  Strip
	log    Logger

	snowOn         bool
	snowLive       bool
	fireworksOn    bool
	fireworksLive  bool
	dropletsOn     bool
	stripClear     bool
	matrixDirty    bool
	matrixDisabled bool

	ticks uint64
}

// New builds a context rendering onto matrix and strip. droplets and log
// may be nil.
func New(cfg Config, matrix Matrix, strip Strip, droplets Droplets, log Logger) *Context {
	cfg = cfg.withDefaults()
	if log == nil {
		log = nopLogger{}
	}
	cols, rows := matrix.Size()
	rng := prng.New(cfg.Seed)
	return &Context{
		cfg:         cfg,
		rng:         rng,
		flares:      flare.NewPool(cfg.Flares),
		snow:        snow.New(rng, cols, rows, cfg.Snowflakes),
		fireworks:   fireworks.New(rng, cols, rows, cfg.Rockets, cfg.Gravity),
		text:        marquee.New(cfg.Font, int(cols), cfg.ScrollSpeed),
		droplets:    droplets,
		leds:        make([]color.RGBA, cfg.LEDs),
		matrix:      matrix,
		strip:       strip,
		log:         log,
		matrixDirty: true,
	}
}

// Step advances every effect by one tick and transmits what changed.
// Both surfaces are transmitted only after every effect has stepped.
func (c *Context) Step() error {
	c.ticks++

	c.flares.Step()
	stripDirty := false
	if c.stripClear {
		clear(c.leds)
		c.stripClear = false
		stripDirty = true
	}
	if c.dropletsOn && c.droplets != nil && c.droplets.Present() {
		if c.droplets.Render(c.leds) {
			stripDirty = true
		}
	} else if c.flares.Render(c.leds) {
		stripDirty = true
	}

	matrixDirty := c.text.Step() || c.matrixDirty
	if c.snowLive || c.fireworksLive {
		c.matrix.Clear()
		c.text.Render(c.matrix)
		if c.snowLive {
			c.snowLive = c.snow.Render(c.matrix, c.snowOn) || c.snowOn
			if !c.snowLive {
				c.log.WriteLineString("snow: settled")
			}
		}
		if c.fireworksLive {
			c.fireworksLive = c.fireworks.Render(c.matrix, c.fireworksOn) || c.fireworksOn
			if !c.fireworksLive {
				c.log.WriteLineString("fireworks: settled")
			}
		}
		matrixDirty = true
	} else if matrixDirty {
		c.matrix.Clear()
		c.text.Render(c.matrix)
	}

	var errs []error
	if stripDirty {
		if err := c.strip.Send(c.leds, c.cfg.Pin); err != nil {
			errs = append(errs, fmt.Errorf("send strip: %w", err))
		}
	}
	if matrixDirty {
		c.matrixDirty = false
		if err := c.matrix.Display(); err != nil {
			errs = append(errs, fmt.Errorf("transmit matrix: %w", err))
		}
	}
	return errors.Join(errs...)
}

// Ticks returns how many times Step ran.
func (c *Context) Ticks() uint64 { return c.ticks }

// LEDs returns the strip frame. The slice is owned by the context.
func (c *Context) LEDs() []color.RGBA { return c.leds }

func (c *Context) Flares() *flare.Pool         { return c.flares }
func (c *Context) Snow() *snow.Field           { return c.snow }
func (c *Context) Fireworks() *fireworks.Field { return c.fireworks }
func (c *Context) Marquee() *marquee.Marquee   { return c.text }

// Rand returns the generator shared by every effect.
func (c *Context) Rand() *prng.Source { return c.rng }
