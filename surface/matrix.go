// Package surface holds in-memory render targets: a column-bitmap dot
// matrix and an RGB strip frame. Both forward finished frames to an
// optional transport, so the same buffers back the hardware drivers, the
// host previews, and tests.
package surface

import (
	"image/color"
	"strings"
	"sync"

	"tinygo.org/x/drivers"
)

// Rows is the height of a dot matrix module.
const Rows = 8

// MatrixTransport ships a finished frame to hardware.
type MatrixTransport interface {
	WriteColumns(cols []byte) error
	SetEnabled(on bool) error
}

// Matrix is a monochrome dot matrix stored one byte per column, bit 0 at
// the top row. Writes outside the surface are ignored.
type Matrix struct {
	mu      sync.Mutex
	cols    []byte
	enabled bool
	frames  uint64
	err     error

	tx MatrixTransport
}

var _ drivers.Displayer = (*Matrix)(nil)

// NewMatrix returns a cleared, enabled matrix. tx may be nil.
func NewMatrix(columns int, tx MatrixTransport) *Matrix {
	if columns < 1 {
		columns = 1
	}
	return &Matrix{cols: make([]byte, columns), enabled: true, tx: tx}
}

func (m *Matrix) Size() (x, y int16) { return int16(len(m.cols)), Rows }

// Columns returns the matrix width.
func (m *Matrix) Columns() int { return len(m.cols) }

// SetPixel lights the pixel for any non-black color and clears it for
// black.
func (m *Matrix) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || int(x) >= len(m.cols) || y < 0 || y >= Rows {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if c.R|c.G|c.B == 0 {
		m.cols[x] &^= 1 << uint(y)
		return
	}
	m.cols[x] |= 1 << uint(y)
}

// Pixel reports whether a pixel is lit.
func (m *Matrix) Pixel(x, y int) bool {
	if x < 0 || x >= len(m.cols) || y < 0 || y >= Rows {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cols[x]&(1<<uint(y)) != 0
}

// Clear turns every pixel off.
func (m *Matrix) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.cols {
		m.cols[i] = 0
	}
}

// PushColumn shifts every column one to the left and writes bits into the
// rightmost column.
func (m *Matrix) PushColumn(bits byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	copy(m.cols, m.cols[1:])
	m.cols[len(m.cols)-1] = bits
}

// Enable switches the display on or off without touching its content.
func (m *Matrix) Enable(on bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.enabled = on
	if m.tx != nil {
		if err := m.tx.SetEnabled(on); err != nil && m.err == nil {
			m.err = err
		}
	}
}

// Enabled reports the last Enable state.
func (m *Matrix) Enabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.enabled
}

// Display transmits the current frame. It also reports a failure left
// behind by an earlier Enable.
func (m *Matrix) Display() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.frames++
	err := m.err
	m.err = nil
	if m.tx != nil {
		if txErr := m.tx.WriteColumns(m.cols); txErr != nil && err == nil {
			err = txErr
		}
	}
	return err
}

// Frames returns how many frames were transmitted.
func (m *Matrix) Frames() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.frames
}

// Snapshot copies the column bytes into dst and returns the count.
func (m *Matrix) Snapshot(dst []byte) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return copy(dst, m.cols)
}

// String renders the matrix as Rows lines of '#' and '.'.
func (m *Matrix) String() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var b strings.Builder
	b.Grow((len(m.cols) + 1) * Rows)
	for y := 0; y < Rows; y++ {
		for _, c := range m.cols {
			if c&(1<<uint(y)) != 0 {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
