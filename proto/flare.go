package proto

import (
	"encoding/binary"
	"image/color"
)

// AnySlot asks the receiver to pick a slot with FindIdle.
const AnySlot uint8 = 0xFF

// FlareSetup describes one flare configuration.
type FlareSetup struct {
	Slot  uint8
	LED   uint16
	Mode  uint8
	Speed uint8
	From  color.RGBA
	To    color.RGBA
}

const flareSetupLen = 11

// FlareSetupPayload encodes a MsgFlareSetup request.
//
// Layout (little-endian):
//   - u8: slot (AnySlot for any idle slot)
//   - u16: led index
//   - u8: mode
//   - u8: speed
//   - u8[3]: from r, g, b
//   - u8[3]: to r, g, b
func FlareSetupPayload(s FlareSetup) []byte {
	buf := make([]byte, flareSetupLen)
	buf[0] = s.Slot
	binary.LittleEndian.PutUint16(buf[1:3], s.LED)
	buf[3] = s.Mode
	buf[4] = s.Speed
	buf[5], buf[6], buf[7] = s.From.R, s.From.G, s.From.B
	buf[8], buf[9], buf[10] = s.To.R, s.To.G, s.To.B
	return buf
}

func DecodeFlareSetupPayload(b []byte) (s FlareSetup, ok bool) {
	if len(b) != flareSetupLen {
		return FlareSetup{}, false
	}
	s.Slot = b[0]
	s.LED = binary.LittleEndian.Uint16(b[1:3])
	s.Mode = b[3]
	s.Speed = b[4]
	s.From = color.RGBA{R: b[5], G: b[6], B: b[7], A: 0xFF}
	s.To = color.RGBA{R: b[8], G: b[9], B: b[10], A: 0xFF}
	return s, true
}

// FlareStopPayload encodes a MsgFlareStop request.
//
// Layout:
//   - u8: slot
func FlareStopPayload(slot uint8) []byte {
	return []byte{slot}
}

func DecodeFlareStopPayload(b []byte) (slot uint8, ok bool) {
	if len(b) != 1 {
		return 0, false
	}
	return b[0], true
}
