//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"lumen/surface"

	"github.com/gdamore/tcell/v2"
)

// TerminalConfig controls the tcell preview runner.
type TerminalConfig struct {
	Hz int
}

const (
	termDotOn  = '●'
	termDotOff = '·'
	termLED    = '█'
)

// RunTerminal previews the matrix and the strip in the terminal and
// forwards key presses. Escape or Ctrl-C ends the run.
func RunTerminal(ctx context.Context, hostCfg HostConfig, cfg TerminalConfig, newApp func(HAL) func() error) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 50
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	h, err := newHost(hostCfg)
	if err != nil {
		return err
	}
	defer h.close()
	step := newApp(h)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			if forwardTermEvent(h.kbd, ev) {
				cancel()
				return
			}
		}
	}()

	t := time.NewTicker(time.Second / time.Duration(cfg.Hz))
	defer t.Stop()

	tr := &termRenderer{}
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-t.C:
			h.t.advance(now)
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tr.draw(screen, h.matrix, h.strip)
			screen.Show()
		}
	}
}

// forwardTermEvent translates a tcell event into a KeyEvent and reports
// whether the user asked to quit.
func forwardTermEvent(k *hostKeyboard, ev tcell.Event) (quit bool) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		k.send(KeyEvent{Press: true, Rune: key.Rune()})
	case tcell.KeyUp:
		k.send(KeyEvent{Code: KeyUp, Press: true})
	case tcell.KeyDown:
		k.send(KeyEvent{Code: KeyDown, Press: true})
	case tcell.KeyLeft:
		k.send(KeyEvent{Code: KeyLeft, Press: true})
	case tcell.KeyRight:
		k.send(KeyEvent{Code: KeyRight, Press: true})
	case tcell.KeyEnter:
		k.send(KeyEvent{Code: KeyEnter, Press: true})
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		k.send(KeyEvent{Code: KeyBackspace, Press: true})
	}
	return false
}

// termRenderer draws the matrix as Rows lines of dots followed by one
// line of strip LEDs.
type termRenderer struct {
	cols []byte
	leds []color.RGBA
}

func (r *termRenderer) draw(s tcell.Screen, m *surface.Matrix, strip *surface.Strip) {
	if len(r.cols) != m.Columns() {
		r.cols = make([]byte, m.Columns())
	}
	if len(r.leds) != strip.Len() {
		r.leds = make([]color.RGBA, strip.Len())
	}
	m.Snapshot(r.cols)
	strip.Snapshot(r.leds)

	on := tcell.StyleDefault.Foreground(tcell.NewRGBColor(0xFF, 0x30, 0x20))
	if !m.Enabled() {
		on = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0x50, 0x20, 0x20))
	}
	off := tcell.StyleDefault.Foreground(tcell.NewRGBColor(0x50, 0x20, 0x20))
	for x, bits := range r.cols {
		for y := 0; y < surface.Rows; y++ {
			if bits&(1<<uint(y)) != 0 {
				s.SetContent(x, y, termDotOn, nil, on)
			} else {
				s.SetContent(x, y, termDotOff, nil, off)
			}
		}
	}
	for i, c := range r.leds {
		st := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
		s.SetContent(i, surface.Rows+1, termLED, nil, st)
	}
}
