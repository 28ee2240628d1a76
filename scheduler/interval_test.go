package scheduler

import "testing"

func TestIntervalFiresEveryPeriod(t *testing.T) {
	iv := NewInterval(20)
	if !iv.Due(0) {
		t.Fatalf("first Due = false, want true")
	}
	if iv.Due(5) {
		t.Fatalf("Due(5) = true, want false")
	}
	if !iv.Due(20) {
		t.Fatalf("Due(20) = false, want true")
	}
	if iv.Due(39) {
		t.Fatalf("Due(39) = true, want false")
	}
}

func TestIntervalCatchesUp(t *testing.T) {
	iv := NewInterval(20)
	iv.Due(0)
	iv.Due(20)

	n := 0
	for iv.Due(100) {
		n++
	}
	if n != 4 {
		t.Fatalf("catch-up fired %d times, want 4", n)
	}
}

func TestIntervalDropsLongStall(t *testing.T) {
	iv := NewInterval(20)
	iv.Due(0)

	n := 0
	for iv.Due(10_000) {
		n++
	}
	if n != maxBehind {
		t.Fatalf("stall replayed %d periods, want %d", n, maxBehind)
	}
	if iv.Due(10_019) {
		t.Fatalf("fired before the next boundary")
	}
	if !iv.Due(10_020) {
		t.Fatalf("missed the next boundary")
	}
}

func TestIntervalZeroPeriod(t *testing.T) {
	iv := NewInterval(0)
	if iv.Period() != 1 {
		t.Fatalf("Period() = %d, want 1", iv.Period())
	}
}
