// Command fxdump runs the effects without any hardware and prints the
// matrix and strip as text, one frame per -every ticks.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"lumen/app"
	"lumen/scheduler"
	"lumen/surface"
)

func main() {
	var (
		ticks            = flag.Int("ticks", 100, "Number of effect ticks to run.")
		every            = flag.Int("every", 10, "Print a frame every N ticks.")
		columns          = flag.Int("columns", 32, "Matrix width in columns.")
		leds             = flag.Int("leds", 16, "Number of strip LEDs.")
		seed      uint16 = 1
		text             = flag.String("text", "", "Marquee text.")
		scroll           = flag.Uint("scroll", scheduler.DefaultScrollSpeed, "Marquee speed (0-255).")
		snow             = flag.Bool("snow", false, "Enable snow.")
		fireworks        = flag.Bool("fireworks", false, "Enable fireworks.")
		flares    app.FlareList
	)
	flag.Func("seed", "Effect generator seed, 0-65535 (default 1).", func(s string) error {
		v, err := app.ParseSeed(s)
		seed = v
		return err
	})
	flag.Var(&flares, "flare", "Start a flare: led,mode,#from,#to,speed (repeatable).")
	flag.Parse()

	if *ticks <= 0 || *every <= 0 {
		fatalf("usage: fxdump -ticks N -every K [-snow] [-fireworks] [-text s] [-flare led,mode,#from,#to,speed]...")
	}
	if *scroll > 255 {
		fatalf("scroll out of range: %d", *scroll)
	}

	m := surface.NewMatrix(*columns, nil)
	s := surface.NewStrip(*leds, nil)
	fx := scheduler.New(scheduler.Config{
		LEDs:        *leds,
		Seed:        seed,
		ScrollSpeed: uint8(*scroll),
	}, m, s, nil, nil)

	fx.SetText(*text)
	fx.SetSnowActive(*snow)
	fx.SetFireworksActive(*fireworks)
	for _, f := range flares {
		if err := startFlare(fx, f); err != nil {
			fatalf("%v", err)
		}
	}

	w := bufio.NewWriter(os.Stdout)
	if err := dump(w, fx, m, s, *ticks, *every); err != nil {
		fatalf("dump: %v", err)
	}
	if err := w.Flush(); err != nil {
		fatalf("flush: %v", err)
	}
}

func startFlare(fx *scheduler.Context, f app.FlareSpec) error {
	if int(f.LED) >= len(fx.LEDs()) {
		return fmt.Errorf("flare %s: led out of range", f)
	}
	slot, ok := fx.FlareFindIdle(f.LED)
	if !ok {
		return fmt.Errorf("flare %s: no free slot (%d in use)", f, fx.Flares().Len())
	}
	fx.FlareSetup(slot, f.LED, f.Mode, f.From, f.To, f.Speed)
	return nil
}

// dump steps fx ticks times and writes a frame after every every-th tick.
func dump(w io.Writer, fx *scheduler.Context, m *surface.Matrix, s *surface.Strip, ticks, every int) error {
	for i := 1; i <= ticks; i++ {
		if err := fx.Step(); err != nil {
			return fmt.Errorf("tick %d: %w", i, err)
		}
		if i%every != 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "tick %d  flares %d  snow %t  fireworks %t\n%s%s\n\n",
			i, fx.Flares().ActiveCount(), fx.SnowRendering(), fx.FireworksRendering(), m, s); err != nil {
			return err
		}
	}
	return nil
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
