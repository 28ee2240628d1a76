//go:build tinygo && baremetal

package hal

import (
	"machine"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/max72xx"
)

// max7219Chain drives daisy-chained 8x8 MAX7219 modules. Every register
// write shifts one (register, data) pair per module with CS held low; the
// first pair sent lands in the module furthest from the MCU, which is the
// leftmost one.
type max7219Chain struct {
	bus     drivers.SPI
	cs      machine.Pin
	modules int
	buf     []byte
}

func newMAX7219Chain(bus drivers.SPI, cs machine.Pin, modules int) *max7219Chain {
	return &max7219Chain{bus: bus, cs: cs, modules: modules, buf: make([]byte, 2*modules)}
}

func (c *max7219Chain) init() error {
	c.cs.Configure(machine.PinConfig{Mode: machine.PinOutput})
	c.cs.High()
	for _, cmd := range [][2]byte{
		{max72xx.REG_DISPLAY_TEST, 0},
		{max72xx.REG_DECODE_MODE, 0},
		{max72xx.REG_SCANLIMIT, 7},
		{max72xx.REG_INTENSITY, 2},
		{max72xx.REG_SHUTDOWN, 1},
	} {
		if err := c.broadcast(cmd[0], cmd[1]); err != nil {
			return err
		}
	}
	return c.WriteColumns(make([]byte, c.modules*8))
}

func (c *max7219Chain) broadcast(reg, data byte) error {
	for i := 0; i < c.modules; i++ {
		c.buf[2*i] = reg
		c.buf[2*i+1] = data
	}
	return c.tx()
}

func (c *max7219Chain) tx() error {
	c.cs.Low()
	err := c.bus.Tx(c.buf, nil)
	c.cs.High()
	return err
}

// WriteColumns sends one digit register (one matrix row) per pass.
func (c *max7219Chain) WriteColumns(cols []byte) error {
	for row := 0; row < 8; row++ {
		for m := 0; m < c.modules; m++ {
			c.buf[2*m] = max72xx.REG_DIGIT0 + byte(row)
			c.buf[2*m+1] = rowBits(cols, m*8, row)
		}
		if err := c.tx(); err != nil {
			return err
		}
	}
	return nil
}

func (c *max7219Chain) SetEnabled(on bool) error {
	if on {
		return c.broadcast(max72xx.REG_SHUTDOWN, 1)
	}
	return c.broadcast(max72xx.REG_SHUTDOWN, 0)
}

// rowBits packs row of the 8 columns starting at first, leftmost column in
// the most significant bit.
func rowBits(cols []byte, first, row int) byte {
	var b byte
	for i := 0; i < 8 && first+i < len(cols); i++ {
		if cols[first+i]&(1<<uint(row)) != 0 {
			b |= 0x80 >> uint(i)
		}
	}
	return b
}
