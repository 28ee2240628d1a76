package proto

import (
	"image/color"
	"strings"
	"testing"
)

func TestFlareSetupLayout(t *testing.T) {
	in := FlareSetup{
		Slot:  AnySlot,
		LED:   0x0102,
		Mode:  2,
		Speed: 64,
		From:  color.RGBA{R: 1, G: 2, B: 3, A: 0xFF},
		To:    color.RGBA{R: 4, G: 5, B: 6, A: 0xFF},
	}
	b := FlareSetupPayload(in)
	want := []byte{0xFF, 0x02, 0x01, 2, 64, 1, 2, 3, 4, 5, 6}
	if string(b) != string(want) {
		t.Fatalf("payload = %v, want %v", b, want)
	}
	out, ok := DecodeFlareSetupPayload(b)
	if !ok || out != in {
		t.Fatalf("decode = %+v ok=%v", out, ok)
	}
	if _, ok := DecodeFlareSetupPayload(b[:10]); ok {
		t.Fatalf("short payload decoded")
	}
}

func TestFlagAndStopPayloads(t *testing.T) {
	if on, ok := DecodeFlagPayload(FlagPayload(true)); !ok || !on {
		t.Fatalf("flag true = %v %v", on, ok)
	}
	if on, ok := DecodeFlagPayload([]byte{7}); !ok || !on {
		t.Fatalf("nonzero flag = %v %v", on, ok)
	}
	if _, ok := DecodeFlagPayload(nil); ok {
		t.Fatalf("empty flag decoded")
	}
	if slot, ok := DecodeFlareStopPayload(FlareStopPayload(9)); !ok || slot != 9 {
		t.Fatalf("stop = %d %v", slot, ok)
	}
	if speed, ok := DecodeScrollSpeedPayload(ScrollSpeedPayload(3)); !ok || speed != 3 {
		t.Fatalf("speed = %d %v", speed, ok)
	}
}

func TestTextPayloadTruncates(t *testing.T) {
	long := strings.Repeat("a", MaxTextBytes+5)
	b := TextPayload(long)
	if len(b) != MaxTextBytes {
		t.Fatalf("len = %d", len(b))
	}
	if text, ok := DecodeTextPayload(b); !ok || len(text) != MaxTextBytes {
		t.Fatalf("decode len=%d ok=%v", len(text), ok)
	}
	if _, ok := DecodeTextPayload([]byte(long)); ok {
		t.Fatalf("oversized text decoded")
	}
}

func TestKindString(t *testing.T) {
	if MsgFlareSetup.String() != "flare_setup" || MsgMatrixEnable.String() != "matrix_enable" {
		t.Fatalf("unexpected names")
	}
	if Kind(0).String() != "unknown" {
		t.Fatalf("zero kind = %q", Kind(0).String())
	}
}
