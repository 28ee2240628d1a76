//go:build tinygo && baremetal

package hal

import (
	"machine"

	"lumen/surface"
)

// Board wiring for the Pico 2 (RP2350) build.
const (
	matrixModules = 4
	stripLEDs     = 60
	stripPin      = uint8(machine.GP22)
)

// StripPin is the pin the app should pass to Strip.Send.
const StripPin = stripPin

type tinyGoHAL struct {
	logger *uartLogger
	led    *pinLED
	matrix *surface.Matrix
	strip  *surface.Strip
	kbd    Keyboard
	t      *tinyGoTime
}

// New returns a Pico 2 (RP2350) HAL implementation.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
// Matrix: MAX7219 chain on SPI0, GP18 (SCK) / GP19 (SDO) / GP17 (CS).
// Strip: WS2812 data on GP22.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	ledPin := machine.LED
	ledPin.Configure(machine.PinConfig{Mode: machine.PinOutput})

	machine.SPI0.Configure(machine.SPIConfig{
		SCK:       machine.GP18,
		SDO:       machine.GP19,
		Frequency: 8_000_000,
	})
	chain := newMAX7219Chain(machine.SPI0, machine.GP17, matrixModules)
	if err := chain.init(); err != nil {
		logger.WriteLineString("max7219: " + err.Error())
	}

	return &tinyGoHAL{
		logger: logger,
		led:    &pinLED{pin: ledPin},
		matrix: surface.NewMatrix(matrixModules*surface.Rows, chain),
		strip:  surface.NewStrip(stripLEDs, newWS2812Strips()),
		kbd:    &stubKeyboard{},
		t:      newTinyGoTime(),
	}
}

func (h *tinyGoHAL) Logger() Logger { return h.logger }
func (h *tinyGoHAL) LED() LED       { return h.led }
func (h *tinyGoHAL) Matrix() Matrix { return h.matrix }
func (h *tinyGoHAL) Strip() Strip   { return h.strip }
func (h *tinyGoHAL) Input() Input   { return tinyGoInput{kbd: h.kbd} }
func (h *tinyGoHAL) Time() Time     { return h.t }
