//go:build !tinygo

package hal

import (
	"image/color"
	"testing"
	"time"

	"lumen/surface"

	"github.com/gdamore/tcell/v2"
)

func TestTermRendererDrawsMatrixAndStrip(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(20, 12)

	m := surface.NewMatrix(4, nil)
	m.SetPixel(2, 5, color.RGBA{R: 0xFF, A: 0xFF})
	s := surface.NewStrip(3, nil)
	if err := s.Send([]color.RGBA{{}, {G: 0xFF, A: 0xFF}, {}}, 0); err != nil {
		t.Fatalf("Send: %v", err)
	}

	var r termRenderer
	r.draw(screen, m, s)

	if got, _, _, _ := screen.GetContent(2, 5); got != termDotOn {
		t.Fatalf("lit pixel = %q, want %q", got, termDotOn)
	}
	if got, _, _, _ := screen.GetContent(1, 5); got != termDotOff {
		t.Fatalf("dark pixel = %q, want %q", got, termDotOff)
	}
	got, _, style, _ := screen.GetContent(1, surface.Rows+1)
	if got != termLED {
		t.Fatalf("strip cell = %q, want %q", got, termLED)
	}
	fg, _, _ := style.Decompose()
	if fg != tcell.NewRGBColor(0, 0xFF, 0) {
		t.Fatalf("strip fg = %v, want green", fg)
	}
}

func TestForwardTermEvent(t *testing.T) {
	k := newHostKeyboard()
	if quit := forwardTermEvent(k, tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone)); quit {
		t.Fatalf("rune key quit")
	}
	select {
	case ev := <-k.Events():
		if ev.Rune != 's' || !ev.Press {
			t.Fatalf("event = %+v", ev)
		}
	default:
		t.Fatalf("no event forwarded")
	}

	forwardTermEvent(k, tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	if ev := <-k.Events(); ev.Code != KeyUp {
		t.Fatalf("code = %v, want KeyUp", ev.Code)
	}
	if !forwardTermEvent(k, tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatalf("escape did not quit")
	}
	if forwardTermEvent(k, tcell.NewEventResize(10, 10)) {
		t.Fatalf("resize quit")
	}
}

func TestHostTimeAdvance(t *testing.T) {
	ht := newHostTime()
	now := time.Unix(100, 0)
	ht.advance(now)
	ht.advance(now.Add(2500 * time.Microsecond))
	ht.advance(now.Add(3 * time.Millisecond))

	var last uint64
	n := 0
	for {
		select {
		case last = <-ht.Ticks():
			n++
			continue
		default:
		}
		break
	}
	if n != 4 || last != 4 {
		t.Fatalf("ticks = %d last = %d, want 4/4", n, last)
	}
}
