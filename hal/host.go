//go:build !tinygo

package hal

import (
	"fmt"
	"sync"

	"lumen/surface"

	"go.uber.org/zap"
)

// HostConfig sizes the simulated hardware and the log sink.
type HostConfig struct {
	Columns int
	LEDs    int
	Debug   bool
	LogPath string
}

func (c HostConfig) withDefaults() HostConfig {
	if c.Columns <= 0 {
		c.Columns = 32
	}
	if c.LEDs <= 0 {
		c.LEDs = 60
	}
	if c.LogPath == "" {
		c.LogPath = "stderr"
	}
	return c
}

type hostHAL struct {
	logger *hostLogger
	led    *hostLED
	matrix *surface.Matrix
	strip  *surface.Strip
	kbd    *hostKeyboard
	t      *hostTime
}

// New returns a host HAL implementation backed by in-memory surfaces.
func New(cfg HostConfig) (HAL, error) {
	return newHost(cfg)
}

func newHost(cfg HostConfig) (*hostHAL, error) {
	cfg = cfg.withDefaults()
	logger, err := newHostLogger(cfg)
	if err != nil {
		return nil, err
	}
	h := &hostHAL{
		logger: logger,
		led:    &hostLED{logger: logger},
		matrix: surface.NewMatrix(cfg.Columns, nil),
		strip:  surface.NewStrip(cfg.LEDs, nil),
		kbd:    newHostKeyboard(),
		t:      newHostTime(),
	}
	logger.s.Infow("host hal ready", "columns", cfg.Columns, "leds", cfg.LEDs)
	return h, nil
}

func (h *hostHAL) Logger() Logger { return h.logger }
func (h *hostHAL) LED() LED       { return h.led }
func (h *hostHAL) Matrix() Matrix { return h.matrix }
func (h *hostHAL) Strip() Strip   { return h.strip }
func (h *hostHAL) Input() Input   { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Time() Time     { return h.t }

// close flushes buffered log output.
func (h *hostHAL) close() {
	_ = h.logger.s.Sync()
}

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

type hostLogger struct {
	s *zap.SugaredLogger
}

func newHostLogger(cfg HostConfig) (*hostLogger, error) {
	zc := zap.NewProductionConfig()
	if cfg.Debug {
		zc = zap.NewDevelopmentConfig()
	}
	zc.OutputPaths = []string{cfg.LogPath}
	zc.ErrorOutputPaths = []string{cfg.LogPath}
	l, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return &hostLogger{s: l.Sugar()}, nil
}

func (l *hostLogger) WriteLineString(s string) { l.s.Info(s) }
func (l *hostLogger) WriteLineBytes(b []byte)  { l.s.Info(string(b)) }

type hostLED struct {
	mu     sync.Mutex
	on     bool
	logger *hostLogger
}

func (l *hostLED) High() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.on = true
	l.logger.s.Debugw("led", "on", true)
}

func (l *hostLED) Low() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.on = false
	l.logger.s.Debugw("led", "on", false)
}

// StripPin is the pin the app should pass to Strip.Send.
const StripPin = 0
