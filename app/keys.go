package app

import (
	"lumen/fx/flare"
	"lumen/fx/rgb"
	"lumen/hal"
	"lumen/proto"
)

const (
	hueStep        = 47
	scrollStep     = 4
	randomSpeedMin = 8
	randomSpeedRng = 48
)

func (a *App) pollKeys() {
	for {
		select {
		case ev, ok := <-a.keys:
			if !ok {
				a.keys = nil
				return
			}
			if ev.Press {
				a.handleKey(ev)
			}
			continue
		default:
		}
		return
	}
}

// handleKey turns a key press into inbox commands:
//
//	s  toggle snow        f  toggle fireworks
//	d  toggle droplets    m  toggle the matrix
//	r  random flare       c  stop every flare
//	up/down  scroll speed
func (a *App) handleKey(ev hal.KeyEvent) {
	switch ev.Code {
	case hal.KeyUp:
		a.post(proto.MsgScrollSpeed, proto.ScrollSpeedPayload(clampAdd(a.fx.Marquee().Speed(), scrollStep)))
		return
	case hal.KeyDown:
		a.post(proto.MsgScrollSpeed, proto.ScrollSpeedPayload(clampAdd(a.fx.Marquee().Speed(), -scrollStep)))
		return
	}

	switch ev.Rune {
	case 's':
		a.post(proto.MsgSnow, proto.FlagPayload(!a.fx.SnowActive()))
	case 'f':
		a.post(proto.MsgFireworks, proto.FlagPayload(!a.fx.FireworksActive()))
	case 'd':
		a.post(proto.MsgDroplets, proto.FlagPayload(!a.fx.DropletsActive()))
	case 'm':
		a.post(proto.MsgMatrixEnable, proto.FlagPayload(!a.fx.MatrixEnabled()))
	case 'r':
		a.post(proto.MsgFlareSetup, proto.FlareSetupPayload(a.randomFlare()))
	case 'c':
		a.post(proto.MsgFlareStopAll, nil)
	}
}

// randomFlare fades a random LED from black to the next hue on the wheel.
func (a *App) randomFlare() proto.FlareSetup {
	rng := a.fx.Rand()
	a.hue = (a.hue + hueStep) % 360
	mode := flare.OneShot
	if rng.Uint16()&0x100 != 0 {
		mode = flare.BackAndForthForward
	}
	return proto.FlareSetup{
		Slot:  proto.AnySlot,
		LED:   rng.Below(uint16(len(a.fx.LEDs()))),
		Mode:  uint8(mode),
		Speed: uint8(randomSpeedMin + rng.Below(randomSpeedRng)),
		From:  rgb.Black,
		To:    rgb.Hue(a.hue, 1),
	}
}

func clampAdd(v uint8, d int) uint8 {
	n := int(v) + d
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}
