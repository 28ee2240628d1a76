package flare

import (
	"image/color"
	"testing"

	"lumen/fx/fixed"
)

var (
	black = color.RGBA{A: 0xFF}
	red   = color.RGBA{R: 0xFF, A: 0xFF}
)

func ticksToOff(speed uint8) int {
	var f Flare
	f.Setup(0, OneShot, black, red, speed)
	for tick := 1; tick <= 100_000; tick++ {
		f.Step()
		if !f.Active() {
			return tick
		}
	}
	return -1
}

func TestOneShotDuration(t *testing.T) {
	for speed := 1; speed <= 255; speed++ {
		want := (255*fixed.Threshold + speed - 1) / speed
		if got := ticksToOff(uint8(speed)); got != want {
			t.Fatalf("speed %d: off after %d ticks, want %d", speed, got, want)
		}
	}
}

func TestZeroSpeedNeverAdvances(t *testing.T) {
	var f Flare
	f.Setup(0, OneShot, black, red, 0)
	for i := 0; i < 10_000; i++ {
		f.Step()
	}
	if f.Scale() != 0 || f.Mode() != OneShot {
		t.Fatalf("scale=%d mode=%s, want 0 oneshot", f.Scale(), f.Mode())
	}
}

func TestAccumulatorBoundAfterStep(t *testing.T) {
	for speed := 0; speed <= 255; speed++ {
		var f Flare
		f.Setup(1, BackAndForthForward, black, red, uint8(speed))
		for i := 0; i < 600; i++ {
			f.Step()
			if f.Pending() >= fixed.Threshold {
				t.Fatalf("speed %d step %d: accumulator %d", speed, i, f.Pending())
			}
		}
	}
}

func TestBackAndForthOscillates(t *testing.T) {
	var f Flare
	f.Setup(0, BackAndForthForward, black, red, fixed.Threshold)

	var transitions []Mode
	last := f.Mode()
	for i := 0; i < 3*255; i++ {
		f.Step()
		if f.Mode() != last {
			transitions = append(transitions, f.Mode())
			last = f.Mode()
		}
		if f.Mode() != BackAndForthForward && f.Mode() != BackAndForthBackward {
			t.Fatalf("step %d: left back-and-forth modes: %s", i, f.Mode())
		}
	}

	want := []Mode{BackAndForthBackward, BackAndForthForward, BackAndForthBackward}
	if len(transitions) != len(want) {
		t.Fatalf("transitions = %v, want %v", transitions, want)
	}
	for i := range want {
		if transitions[i] != want[i] {
			t.Fatalf("transitions = %v, want %v", transitions, want)
		}
	}
}

func TestForwardTurnsAtTop(t *testing.T) {
	var f Flare
	f.Setup(0, BackAndForthForward, black, red, fixed.Threshold)
	for i := 0; i < 254; i++ {
		f.Step()
	}
	if f.Scale() != 254 || f.Mode() != BackAndForthForward {
		t.Fatalf("scale=%d mode=%s, want 254 forward", f.Scale(), f.Mode())
	}
	f.Step()
	if f.Scale() != 255 || f.Mode() != BackAndForthBackward {
		t.Fatalf("scale=%d mode=%s, want 255 backward", f.Scale(), f.Mode())
	}
	f.Step()
	if f.Scale() != 254 {
		t.Fatalf("scale=%d, want 254", f.Scale())
	}
}

func TestOffAndOneShotNeverOscillate(t *testing.T) {
	var f Flare
	f.Setup(0, Off, black, red, 255)
	for i := 0; i < 1000; i++ {
		f.Step()
		if f.Mode() != Off || f.Scale() != 0 {
			t.Fatalf("off flare changed: mode=%s scale=%d", f.Mode(), f.Scale())
		}
	}

	f.Setup(0, OneShot, black, red, 255)
	prev := f.Scale()
	for i := 0; i < 1000; i++ {
		f.Step()
		if f.Scale() < prev {
			t.Fatalf("oneshot scale went down: %d -> %d", prev, f.Scale())
		}
		if f.Mode() != OneShot && f.Mode() != Off {
			t.Fatalf("oneshot entered %s", f.Mode())
		}
		prev = f.Scale()
	}
	if f.Mode() != Off {
		t.Fatalf("mode = %s, want off", f.Mode())
	}
}

func TestScenarioOneShotLED2(t *testing.T) {
	p := NewPool(20)
	slot, ok := p.FindIdle(2)
	if !ok {
		t.Fatal("expected a free slot")
	}
	p.Setup(slot, 2, OneShot, color.RGBA{A: 0xFF}, color.RGBA{R: 255, A: 0xFF}, 64)

	leds := make([]color.RGBA, 8)
	for tick := 1; tick <= 64; tick++ {
		if p.At(slot).Mode() != OneShot {
			t.Fatalf("tick %d: mode = %s before completion", tick, p.At(slot).Mode())
		}
		p.Step()
		if tick < 64 && !p.Render(leds) {
			t.Fatalf("tick %d: expected a write", tick)
		}
	}
	if p.At(slot).Mode() != Off {
		t.Fatalf("mode = %s after 64 ticks, want off", p.At(slot).Mode())
	}

	leds[2] = color.RGBA{}
	if p.Render(leds) {
		t.Fatal("Render wrote after flare finished")
	}
	if leds[2] != (color.RGBA{}) {
		t.Fatalf("led 2 = %v, want untouched", leds[2])
	}
}

func TestRenderOutOfRangeSkipped(t *testing.T) {
	var f Flare
	f.Setup(10, OneShot, black, red, 16)
	leds := make([]color.RGBA, 4)
	if f.Render(leds) {
		t.Fatal("Render reported a write past the strip end")
	}
	for i, c := range leds {
		if c != (color.RGBA{}) {
			t.Fatalf("led %d = %v, want untouched", i, c)
		}
	}
}

func TestRenderBlends(t *testing.T) {
	var f Flare
	f.Setup(1, BackAndForthForward, black, red, 255)
	leds := make([]color.RGBA, 2)
	if !f.Render(leds) || leds[1] != black {
		t.Fatalf("initial render = %v, want %v", leds[1], black)
	}
	f.Step() // 15 units
	f.Render(leds)
	if leds[1].R != 15 {
		t.Fatalf("R = %d, want 15", leds[1].R)
	}
}

func TestSetupRejectsUnknownMode(t *testing.T) {
	var f Flare
	f.Setup(0, ModeCount+3, black, red, 10)
	if f.Active() {
		t.Fatalf("mode = %s, want off", f.Mode())
	}
}

func TestParseMode(t *testing.T) {
	for m := Off; m < ModeCount; m++ {
		got, ok := ParseMode(m.String())
		if !ok || got != m {
			t.Fatalf("ParseMode(%q) = %s, %v", m.String(), got, ok)
		}
	}
	if _, ok := ParseMode("sparkle"); ok {
		t.Fatal("ParseMode accepted unknown name")
	}
}
