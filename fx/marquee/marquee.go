// Package marquee rasterizes a line of text into matrix columns and
// scrolls it when it does not fit.
package marquee

import (
	"image/color"

	"lumen/fx/fixed"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

const (
	// MaxColumns bounds the rasterized text width.
	MaxColumns = 512
	// Gap is the number of blank columns between the end of scrolling
	// text and its next repetition.
	Gap = 8
	// Baseline is the font baseline row on an 8-row matrix.
	Baseline = 6
)

// ColumnPusher accepts one 8-pixel column at a time, least significant
// bit at the top row, shifting earlier columns left.
type ColumnPusher interface {
	PushColumn(bits byte)
}

// Marquee holds a rasterized string and its scroll position.
type Marquee struct {
	font    tinyfont.Fonter
	visible int

	cols  [MaxColumns]byte
	width int

	speed  uint8
	acc    fixed.StepAccumulator
	offset int

	changed bool
}

// New returns an empty marquee for a matrix that is visible columns wide.
// A nil font selects tinyfont.TomThumb.
func New(font tinyfont.Fonter, visible int, speed uint8) *Marquee {
	if font == nil {
		font = &tinyfont.TomThumb
	}
	if visible < 1 {
		visible = 1
	}
	return &Marquee{font: font, visible: visible, speed: speed, changed: true}
}

// SetText replaces the text and rewinds the scroll.
func (m *Marquee) SetText(s string) {
	m.cols = [MaxColumns]byte{}
	m.width = 0
	if s != "" {
		_, outbox := tinyfont.LineWidth(m.font, s)
		m.width = int(outbox)
		if m.width > MaxColumns {
			m.width = MaxColumns
		}
		tinyfont.WriteLine((*sink)(m), m.font, 0, Baseline, s, color.RGBA{R: 0xFF, A: 0xFF})
	}
	m.offset = 0
	m.acc.Reset()
	m.changed = true
}

// SetSpeed sets the scroll speed in sixteenths of a column per tick.
func (m *Marquee) SetSpeed(speed uint8) { m.speed = speed }

// Speed returns the scroll speed.
func (m *Marquee) Speed() uint8 { return m.speed }

// Width returns the rasterized text width in columns.
func (m *Marquee) Width() int { return m.width }

// Offset returns the first visible column of the scroll period.
func (m *Marquee) Offset() int { return m.offset }

// Scrolling reports whether the text is wider than the matrix.
func (m *Marquee) Scrolling() bool { return m.width > m.visible }

func (m *Marquee) period() int { return m.width + Gap }

// Step advances the scroll by one tick and reports whether the visible
// window changed since the last Render.
func (m *Marquee) Step() bool {
	if m.Scrolling() {
		if n := m.acc.Steps(m.speed); n > 0 {
			m.offset = (m.offset + n) % m.period()
			m.changed = true
		}
	}
	return m.changed
}

// Column returns the bits of visible column i for the current offset.
func (m *Marquee) Column(i int) byte {
	if !m.Scrolling() {
		if i < m.width {
			return m.cols[i]
		}
		return 0
	}
	c := (m.offset + i) % m.period()
	if c < m.width {
		return m.cols[c]
	}
	return 0
}

// Render pushes every visible column, left to right.
func (m *Marquee) Render(p ColumnPusher) {
	for i := 0; i < m.visible; i++ {
		p.PushColumn(m.Column(i))
	}
	m.changed = false
}

// sink lets tinyfont draw straight into the column buffer.
type sink Marquee

func (s *sink) Size() (x, y int16) { return MaxColumns, 8 }
func (s *sink) Display() error     { return nil }

func (s *sink) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || x >= MaxColumns || y < 0 || y >= 8 {
		return
	}
	if c.R|c.G|c.B == 0 {
		s.cols[x] &^= 1 << uint(y)
		return
	}
	s.cols[x] |= 1 << uint(y)
}

var _ drivers.Displayer = (*sink)(nil)
