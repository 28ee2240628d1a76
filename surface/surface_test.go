package surface

import (
	"errors"
	"image/color"
	"testing"
)

type recordTx struct {
	frames  [][]byte
	enabled []bool
	err     error
}

func (r *recordTx) WriteColumns(cols []byte) error {
	r.frames = append(r.frames, append([]byte(nil), cols...))
	return r.err
}

func (r *recordTx) SetEnabled(on bool) error {
	r.enabled = append(r.enabled, on)
	return r.err
}

func (r *recordTx) WriteColors(pin uint8, leds []color.RGBA) error {
	return r.err
}

var on = color.RGBA{R: 0xFF, A: 0xFF}

func TestMatrixSetPixelBounds(t *testing.T) {
	m := NewMatrix(4, nil)
	m.SetPixel(-1, 0, on)
	m.SetPixel(4, 0, on)
	m.SetPixel(0, 8, on)
	m.SetPixel(0, -1, on)
	var cols [4]byte
	m.Snapshot(cols[:])
	if cols != [4]byte{} {
		t.Fatalf("out of range writes landed: %v", cols)
	}

	m.SetPixel(1, 0, on)
	m.SetPixel(1, 7, on)
	m.Snapshot(cols[:])
	if cols[1] != 0x81 {
		t.Fatalf("col 1 = %#x, want 0x81", cols[1])
	}
	m.SetPixel(1, 7, color.RGBA{})
	if m.Pixel(1, 7) || !m.Pixel(1, 0) {
		t.Fatalf("black did not clear only its own pixel")
	}
}

func TestMatrixPushColumn(t *testing.T) {
	m := NewMatrix(3, nil)
	m.PushColumn(0x01)
	m.PushColumn(0x02)
	m.PushColumn(0x04)
	m.PushColumn(0x08)
	var cols [3]byte
	m.Snapshot(cols[:])
	if cols != [3]byte{0x02, 0x04, 0x08} {
		t.Fatalf("cols = %v", cols)
	}
	m.Clear()
	m.Snapshot(cols[:])
	if cols != [3]byte{} {
		t.Fatalf("clear left %v", cols)
	}
}

func TestMatrixDisplayAndEnable(t *testing.T) {
	tx := &recordTx{}
	m := NewMatrix(2, tx)
	if !m.Enabled() {
		t.Fatalf("new matrix disabled")
	}
	m.SetPixel(0, 3, on)
	if err := m.Display(); err != nil {
		t.Fatalf("Display: %v", err)
	}
	if len(tx.frames) != 1 || tx.frames[0][0] != 0x08 {
		t.Fatalf("frames = %v", tx.frames)
	}
	m.Enable(false)
	if m.Enabled() || len(tx.enabled) != 1 || tx.enabled[0] {
		t.Fatalf("enable not forwarded: %v", tx.enabled)
	}
	if m.Frames() != 1 {
		t.Fatalf("frames = %d", m.Frames())
	}
}

func TestMatrixEnableErrorSurfacesOnDisplay(t *testing.T) {
	boom := errors.New("boom")
	tx := &recordTx{err: boom}
	m := NewMatrix(2, tx)
	m.Enable(true)
	tx.err = nil
	if err := m.Display(); !errors.Is(err, boom) {
		t.Fatalf("Display err = %v, want boom", err)
	}
	if err := m.Display(); err != nil {
		t.Fatalf("second Display err = %v", err)
	}
}

func TestMatrixString(t *testing.T) {
	m := NewMatrix(2, nil)
	m.SetPixel(0, 0, on)
	m.SetPixel(1, 7, on)
	want := "#.\n..\n..\n..\n..\n..\n..\n.#\n"
	if got := m.String(); got != want {
		t.Fatalf("String =\n%s\nwant\n%s", got, want)
	}
}

func TestStripSend(t *testing.T) {
	s := NewStrip(2, nil)
	leds := []color.RGBA{{R: 1, A: 0xFF}, {G: 2, A: 0xFF}, {B: 3, A: 0xFF}}
	if err := s.Send(leds, 5); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if s.Sends() != 1 || s.Pin() != 5 {
		t.Fatalf("sends=%d pin=%d", s.Sends(), s.Pin())
	}
	if got := s.String(); got != "#010000 #000200" {
		t.Fatalf("String = %q", got)
	}
	leds[0].R = 9
	var snap [2]color.RGBA
	s.Snapshot(snap[:])
	if snap[0].R != 1 {
		t.Fatalf("strip aliases caller slice")
	}
}

func TestStripSendWrapsError(t *testing.T) {
	boom := errors.New("boom")
	s := NewStrip(1, &recordTx{err: boom})
	if err := s.Send(make([]color.RGBA, 1), 2); !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
}
