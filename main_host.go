//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"lumen/app"
	"lumen/hal"
)

func main() {
	var (
		cfg      hal.HeadlessConfig
		hostCfg  hal.HostConfig
		appCfg   app.Config
		terminal bool
		seed     uint16
	)
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.BoolVar(&terminal, "terminal", false, "Preview in the terminal instead of a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Loop rate of the headless and terminal runners.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N loop iterations in headless mode (0 = run forever).")
	flag.BoolVar(&hostCfg.Debug, "debug", false, "Development logging.")
	flag.StringVar(&hostCfg.LogPath, "log", "stderr", "Log destination: stderr, stdout or a file path.")
	flag.IntVar(&hostCfg.Columns, "columns", 32, "Matrix width in columns (8 per module).")
	flag.IntVar(&hostCfg.LEDs, "leds", 60, "Number of strip LEDs.")
	flag.IntVar(&appCfg.Hz, "fx-hz", app.DefaultHz, "Effect tick rate.")
	flag.StringVar(&appCfg.Text, "text", "", "Marquee text.")
	flag.Func("scroll", "Marquee speed in sixteenths of a column per tick (0-255).", func(s string) error {
		var v uint8
		if _, err := fmt.Sscan(s, &v); err != nil {
			return err
		}
		appCfg.ScrollSpeed = v
		return nil
	})
	flag.BoolVar(&appCfg.Snow, "snow", false, "Start with snow.")
	flag.BoolVar(&appCfg.Fireworks, "fireworks", false, "Start with fireworks.")
	flag.Var(&appCfg.Flares, "flare", "Start a flare: led,mode,#from,#to,speed (repeatable; modes off, oneshot, forward, backward).")
	flag.Func("seed", "Effect generator seed, 0-65535 (0 = time based).", func(s string) error {
		v, err := app.ParseSeed(s)
		seed = v
		return err
	})
	flag.Parse()

	if seed == 0 {
		seed = uint16(time.Now().UnixNano())
	}
	appCfg.Scheduler.Seed = seed
	appCfg.Scheduler.LEDs = hostCfg.LEDs
	appCfg.Pin = hal.StripPin

	newApp := func(h hal.HAL) func() error {
		return app.New(h, appCfg).Step
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch {
	case cfg.Enabled:
		err = hal.RunHeadless(ctx, hostCfg, cfg, newApp)
	case terminal:
		err = hal.RunTerminal(ctx, hostCfg, hal.TerminalConfig{Hz: cfg.Hz}, newApp)
	default:
		err = hal.RunWindow(hostCfg, newApp)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
