//go:build !tinygo && cgo

package hal

import (
	"image/color"
	"time"

	"lumen/internal/buildinfo"
	"lumen/surface"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	windowCell   = 12
	windowMargin = 8
	windowHelpH  = 16
	windowMinW   = 320
	windowHelp   = "s snow  f fireworks  d droplets  r flare  c clear"
)

var (
	windowBG     = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	windowDotOff = color.RGBA{R: 0x30, G: 0x10, B: 0x10, A: 0xFF}
	windowDotOn  = color.RGBA{R: 0xFF, G: 0x30, B: 0x20, A: 0xFF}
)

// RunWindow opens a desktop window previewing the matrix and the strip
// and forwards keyboard input. It blocks until the window closes.
func RunWindow(hostCfg HostConfig, newApp func(HAL) func() error) error {
	h, err := newHost(hostCfg)
	if err != nil {
		return err
	}
	defer h.close()
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	w, ht := g.Layout(0, 0)
	ebiten.SetWindowTitle("Lumen (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(w, ht)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h    *hostHAL
	step func() error

	cols []byte
	leds []color.RGBA
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	g.h.t.advance(time.Now())
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	m, s := g.h.matrix, g.h.strip
	if len(g.cols) != m.Columns() {
		g.cols = make([]byte, m.Columns())
	}
	if len(g.leds) != s.Len() {
		g.leds = make([]color.RGBA, s.Len())
	}
	m.Snapshot(g.cols)
	s.Snapshot(g.leds)

	screen.Fill(windowBG)
	const r = windowCell/2 - 1
	on := windowDotOn
	if !m.Enabled() {
		on = windowDotOff
	}
	for x, bits := range g.cols {
		for y := 0; y < surface.Rows; y++ {
			c := windowDotOff
			if bits&(1<<uint(y)) != 0 {
				c = on
			}
			cx := float32(windowMargin + x*windowCell + windowCell/2)
			cy := float32(windowMargin + y*windowCell + windowCell/2)
			vector.DrawFilledCircle(screen, cx, cy, r, c, true)
		}
	}

	top := float32(2*windowMargin + surface.Rows*windowCell)
	for i, c := range g.leds {
		c.A = 0xFF
		cx := float32(windowMargin + i*windowCell + windowCell/2)
		vector.DrawFilledCircle(screen, cx, top+windowCell/2, r, c, true)
	}
	ebitenutil.DebugPrintAt(screen, windowHelp, windowMargin, int(top)+windowCell+windowMargin)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	n := g.h.matrix.Columns()
	if l := g.h.strip.Len(); l > n {
		n = l
	}
	w := 2*windowMargin + n*windowCell
	if w < windowMinW {
		w = windowMinW
	}
	return w, 4*windowMargin + (surface.Rows+1)*windowCell + windowHelpH
}
