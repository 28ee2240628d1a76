package main

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"lumen/app"
	"lumen/fx/flare"
	"lumen/scheduler"
	"lumen/surface"
)

func TestDumpPrintsEveryNthFrame(t *testing.T) {
	m := surface.NewMatrix(8, nil)
	s := surface.NewStrip(2, nil)
	fx := scheduler.New(scheduler.Config{LEDs: 2, Seed: 1}, m, s, nil, nil)
	if err := startFlare(fx, app.FlareSpec{
		LED:   1,
		Mode:  flare.BackAndForthForward,
		To:    color.RGBA{R: 0xFF, A: 0xFF},
		Speed: 255,
	}); err != nil {
		t.Fatalf("startFlare: %v", err)
	}

	var b bytes.Buffer
	if err := dump(&b, fx, m, s, 6, 3); err != nil {
		t.Fatalf("dump: %v", err)
	}
	out := b.String()
	if strings.Count(out, "tick ") != 2 {
		t.Fatalf("frames:\n%s", out)
	}
	if !strings.Contains(out, "tick 3  flares 1") || !strings.Contains(out, "tick 6") {
		t.Fatalf("missing headers:\n%s", out)
	}
	if !strings.Contains(out, "#000000 #") {
		t.Fatalf("strip line missing:\n%s", out)
	}
}

func TestStartFlareRejectsOutOfRangeLED(t *testing.T) {
	m := surface.NewMatrix(8, nil)
	s := surface.NewStrip(2, nil)
	fx := scheduler.New(scheduler.Config{LEDs: 2}, m, s, nil, nil)
	if err := startFlare(fx, app.FlareSpec{LED: 2, Mode: flare.OneShot, Speed: 1}); err == nil {
		t.Fatalf("startFlare err = nil")
	}
}
