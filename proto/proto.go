// Package proto defines the control messages accepted by the effects
// loop and their binary payload layouts.
package proto

// Kind identifies the message type carried in inbox.Message.Kind.
type Kind uint16

const (
	MsgFlareSetup Kind = iota + 1
	MsgFlareStop
	MsgFlareStopAll
	MsgSnow
	MsgFireworks
	MsgDroplets
	MsgText
	MsgScrollSpeed
	MsgMatrixEnable
)

func (k Kind) String() string {
	switch k {
	case MsgFlareSetup:
		return "flare_setup"
	case MsgFlareStop:
		return "flare_stop"
	case MsgFlareStopAll:
		return "flare_stop_all"
	case MsgSnow:
		return "snow"
	case MsgFireworks:
		return "fireworks"
	case MsgDroplets:
		return "droplets"
	case MsgText:
		return "text"
	case MsgScrollSpeed:
		return "scroll_speed"
	case MsgMatrixEnable:
		return "matrix_enable"
	default:
		return "unknown"
	}
}

// MaxTextBytes bounds the marquee text carried by MsgText.
const MaxTextBytes = 120

// FlagPayload encodes the on/off payload shared by MsgSnow, MsgFireworks,
// MsgDroplets and MsgMatrixEnable.
//
// Layout:
//   - u8: 0 or 1
func FlagPayload(on bool) []byte {
	if on {
		return []byte{1}
	}
	return []byte{0}
}

func DecodeFlagPayload(b []byte) (on bool, ok bool) {
	if len(b) != 1 {
		return false, false
	}
	return b[0] != 0, true
}

// TextPayload encodes a MsgText request. Text longer than MaxTextBytes is
// truncated.
//
// Layout:
//   - bytes: UTF-8 text
func TextPayload(text string) []byte {
	if len(text) > MaxTextBytes {
		text = text[:MaxTextBytes]
	}
	return []byte(text)
}

func DecodeTextPayload(b []byte) (text string, ok bool) {
	if len(b) > MaxTextBytes {
		return "", false
	}
	return string(b), true
}

// ScrollSpeedPayload encodes a MsgScrollSpeed request.
//
// Layout:
//   - u8: speed
func ScrollSpeedPayload(speed uint8) []byte {
	return []byte{speed}
}

func DecodeScrollSpeedPayload(b []byte) (speed uint8, ok bool) {
	if len(b) != 1 {
		return 0, false
	}
	return b[0], true
}
