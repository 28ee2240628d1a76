package flare

import (
	"image/color"
	"testing"
)

func TestFindIdlePrefersSameLED(t *testing.T) {
	p := NewPool(4)
	p.Setup(2, 5, BackAndForthForward, black, red, 8)

	s, ok := p.FindIdle(5)
	if !ok || s != 2 {
		t.Fatalf("FindIdle(5) = %d, %v; want 2, true", s, ok)
	}
}

func TestFindIdleFallsBackToIdle(t *testing.T) {
	p := NewPool(4)
	p.Setup(0, 1, OneShot, black, red, 8)
	p.Setup(1, 2, OneShot, black, red, 8)

	s, ok := p.FindIdle(5)
	if !ok || s != 2 {
		t.Fatalf("FindIdle(5) = %d, %v; want 2, true", s, ok)
	}
}

func TestFindIdleExhausted(t *testing.T) {
	p := NewPool(3)
	for i := 0; i < p.Len(); i++ {
		p.Setup(Slot(i), uint16(10+i), BackAndForthForward, black, red, 8)
	}

	s, ok := p.FindIdle(5)
	if ok {
		t.Fatalf("FindIdle(5) = %d, true; want exhausted", s)
	}
	if int(s) != p.Len() {
		t.Fatalf("FindIdle(5) slot = %d, want %d", s, p.Len())
	}
	if p.At(s) != nil {
		t.Fatal("At(sentinel) returned a flare")
	}
}

func TestFindIdleIgnoresStoppedSlotForSameLED(t *testing.T) {
	p := NewPool(2)
	p.Setup(1, 5, OneShot, black, red, 8)
	p.Stop(1)

	s, ok := p.FindIdle(5)
	if !ok || s != 0 {
		t.Fatalf("FindIdle(5) = %d, %v; want first idle slot 0", s, ok)
	}
}

func TestPoolOutOfRangeSlotIsNoop(t *testing.T) {
	p := NewPool(2)
	p.Setup(9, 1, OneShot, black, red, 8)
	p.Stop(9)
	if p.ActiveCount() != 0 {
		t.Fatalf("ActiveCount = %d, want 0", p.ActiveCount())
	}
}

func TestPoolRenderLaterSlotWins(t *testing.T) {
	p := NewPool(2)
	blue := color.RGBA{B: 0xFF, A: 0xFF}
	p.Setup(0, 0, BackAndForthForward, red, red, 0)
	p.Setup(1, 0, BackAndForthForward, blue, blue, 0)

	leds := make([]color.RGBA, 1)
	if !p.Render(leds) {
		t.Fatal("expected dirty render")
	}
	if leds[0] != blue {
		t.Fatalf("led 0 = %v, want %v", leds[0], blue)
	}
}

func TestStopAll(t *testing.T) {
	p := NewPool(3)
	for i := 0; i < 3; i++ {
		p.Setup(Slot(i), uint16(i), OneShot, black, red, 1)
	}
	p.StopAll()
	if n := p.ActiveCount(); n != 0 {
		t.Fatalf("ActiveCount = %d after StopAll", n)
	}
	if p.Render(make([]color.RGBA, 3)) {
		t.Fatal("Render wrote after StopAll")
	}
}

func TestNewPoolClamps(t *testing.T) {
	if n := NewPool(0).Len(); n != 1 {
		t.Fatalf("NewPool(0).Len() = %d, want 1", n)
	}
	if n := NewPool(1000).Len(); n != MaxSlots {
		t.Fatalf("NewPool(1000).Len() = %d, want %d", n, MaxSlots)
	}
}
