package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"

	"tinygo.org/x/tinyfont"
)

// guard runs fn and turns a panic into an error, after logging it and
// putting "ERR" on the matrix.
func (a *App) guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			a.reportPanic(r, debug.Stack())
			err = fmt.Errorf("panic in effects tick: %v", r)
		}
	}()
	return fn()
}

func (a *App) reportPanic(v any, stack []byte) {
	if l := a.log; l != nil {
		l.WriteLineString(fmt.Sprintf("Lumen Panic: tick=%d panic=%v", a.fx.Ticks(), v))
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			l.WriteLineString(line)
		}
	}

	m := a.h.Matrix()
	if m == nil {
		return
	}
	m.Enable(true)
	m.Clear()
	tinyfont.WriteLine(m, &tinyfont.TomThumb, 0, 6, "ERR", color.RGBA{R: 0xFF, A: 0xFF})
	_ = m.Display()
}
