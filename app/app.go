// Package app wires the HAL, the inbox and the effects scheduler into the
// running program.
package app

import (
	"fmt"

	"lumen/fx/flare"
	"lumen/hal"
	"lumen/inbox"
	"lumen/internal/buildinfo"
	"lumen/proto"
	"lumen/scheduler"
)

// App owns the effects context and feeds it commands and ticks. All
// methods except Post must run on the loop goroutine.
type App struct {
	h   hal.HAL
	log hal.Logger
	cfg Config

	fx       *scheduler.Context
	inbox    inbox.Mailbox
	interval *scheduler.Interval

	ticks <-chan uint64
	keys  <-chan hal.KeyEvent
	now   uint64

	hue uint16
}

// New builds the app and queues the startup configuration.
func New(h hal.HAL, cfg Config) *App {
	cfg = cfg.withDefaults()
	if cfg.Scheduler.LEDs <= 0 {
		cfg.Scheduler.LEDs = h.Strip().Len()
	}

	a := &App{
		h:        h,
		log:      h.Logger(),
		cfg:      cfg,
		interval: scheduler.NewInterval(uint64(1000 / cfg.Hz)),
	}
	a.fx = scheduler.New(cfg.Scheduler, h.Matrix(), h.Strip(), cfg.Droplets, a.log)
	if t := h.Time(); t != nil {
		a.ticks = t.Ticks()
	}
	if in := h.Input(); in != nil {
		if kbd := in.Keyboard(); kbd != nil {
			a.keys = kbd.Events()
		}
	}

	a.log.WriteLineString(fmt.Sprintf("lumen %s: %d Hz, %d leds", buildinfo.Short(), cfg.Hz, cfg.Scheduler.LEDs))
	a.startup()
	return a
}

func (a *App) startup() {
	if a.cfg.Text != "" {
		a.post(proto.MsgText, proto.TextPayload(a.cfg.Text))
	}
	for _, f := range a.cfg.Flares {
		a.post(proto.MsgFlareSetup, proto.FlareSetupPayload(proto.FlareSetup{
			Slot:  proto.AnySlot,
			LED:   f.LED,
			Mode:  uint8(f.Mode),
			Speed: f.Speed,
			From:  f.From,
			To:    f.To,
		}))
	}
	if a.cfg.Snow {
		a.post(proto.MsgSnow, proto.FlagPayload(true))
	}
	if a.cfg.Fireworks {
		a.post(proto.MsgFireworks, proto.FlagPayload(true))
	}
}

// Effects returns the scheduler context.
func (a *App) Effects() *scheduler.Context { return a.fx }

// Post queues a command from any goroutine. It returns false when the
// payload is too large or the inbox is full.
func (a *App) Post(kind proto.Kind, payload []byte) bool {
	return a.inbox.Post(kind, payload)
}

// post queues a command from the loop goroutine, draining the inbox when
// it is full.
func (a *App) post(kind proto.Kind, payload []byte) {
	msg, ok := inbox.NewMessage(kind, payload)
	if !ok {
		a.log.WriteLineString(fmt.Sprintf("app: %s payload too large", kind))
		return
	}
	for !a.inbox.TrySend(msg) {
		a.inbox.Drain(a.dispatch)
	}
}

// Step consumes pending HAL ticks and runs every effect tick that fell
// due. Host runners call it once per frame.
func (a *App) Step() error {
	for {
		select {
		case seq := <-a.ticks:
			a.now = seq
			continue
		default:
		}
		break
	}
	return a.advance(a.now)
}

// Run blocks on the HAL tick stream. Errors are logged and the loop keeps
// going.
func (a *App) Run() {
	for seq := range a.ticks {
		if err := a.advance(seq); err != nil {
			a.log.WriteLineString("app: " + err.Error())
		}
	}
}

func (a *App) advance(now uint64) error {
	for a.interval.Due(now) {
		if err := a.guard(a.tick); err != nil {
			return err
		}
	}
	return nil
}

// tick runs one effect tick: input, queued commands, then the scheduler.
func (a *App) tick() error {
	a.pollKeys()
	a.inbox.Drain(a.dispatch)
	return a.fx.Step()
}

func (a *App) dispatch(msg inbox.Message) {
	p := msg.Payload()
	switch msg.Kind {
	case proto.MsgFlareSetup:
		s, ok := proto.DecodeFlareSetupPayload(p)
		if !ok {
			a.badPayload(msg.Kind)
			return
		}
		a.flareSetup(s)
	case proto.MsgFlareStop:
		slot, ok := proto.DecodeFlareStopPayload(p)
		if !ok {
			a.badPayload(msg.Kind)
			return
		}
		a.fx.FlareStop(flare.Slot(slot))
	case proto.MsgFlareStopAll:
		a.fx.FlareStopAll()
	case proto.MsgSnow, proto.MsgFireworks, proto.MsgDroplets, proto.MsgMatrixEnable:
		on, ok := proto.DecodeFlagPayload(p)
		if !ok {
			a.badPayload(msg.Kind)
			return
		}
		switch msg.Kind {
		case proto.MsgSnow:
			a.fx.SetSnowActive(on)
		case proto.MsgFireworks:
			a.fx.SetFireworksActive(on)
		case proto.MsgDroplets:
			a.fx.SetDropletsActive(on)
		case proto.MsgMatrixEnable:
			a.fx.SetMatrixEnabled(on)
		}
	case proto.MsgText:
		text, ok := proto.DecodeTextPayload(p)
		if !ok {
			a.badPayload(msg.Kind)
			return
		}
		a.fx.SetText(text)
	case proto.MsgScrollSpeed:
		speed, ok := proto.DecodeScrollSpeedPayload(p)
		if !ok {
			a.badPayload(msg.Kind)
			return
		}
		a.fx.SetScrollSpeed(speed)
	default:
		a.log.WriteLineString(fmt.Sprintf("app: unknown message kind %d", msg.Kind))
	}
}

// flareSetup range-checks a setup request before it reaches the pool.
func (a *App) flareSetup(s proto.FlareSetup) {
	if int(s.LED) >= len(a.fx.LEDs()) {
		a.log.WriteLineString(fmt.Sprintf("app: flare led %d out of range", s.LED))
		return
	}
	mode := flare.Mode(s.Mode)
	if mode >= flare.ModeCount {
		a.log.WriteLineString(fmt.Sprintf("app: flare mode %d out of range", s.Mode))
		return
	}
	slot := flare.Slot(s.Slot)
	if s.Slot == proto.AnySlot {
		var ok bool
		if slot, ok = a.fx.FlareFindIdle(s.LED); !ok {
			return
		}
	} else if int(slot) >= a.fx.Flares().Len() {
		a.log.WriteLineString(fmt.Sprintf("app: flare slot %d out of range", s.Slot))
		return
	}
	a.fx.FlareSetup(slot, s.LED, mode, s.From, s.To, s.Speed)
}

func (a *App) badPayload(kind proto.Kind) {
	a.log.WriteLineString(fmt.Sprintf("app: bad %s payload", kind))
}
