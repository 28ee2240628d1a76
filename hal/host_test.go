//go:build !tinygo

package hal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewHostDefaultsAndLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lumen.log")
	h, err := newHost(HostConfig{LogPath: path})
	if err != nil {
		t.Fatalf("newHost: %v", err)
	}
	if got := h.matrix.Columns(); got != 32 {
		t.Fatalf("columns = %d, want 32", got)
	}
	if got := h.Strip().Len(); got != 60 {
		t.Fatalf("leds = %d, want 60", got)
	}

	h.Logger().WriteLineString("snow: active=true")
	h.close()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(b), "snow: active=true") {
		t.Fatalf("log file = %q", b)
	}
}

func TestNewHostBadLogPath(t *testing.T) {
	_, err := New(HostConfig{LogPath: filepath.Join(t.TempDir(), "missing", "dir", "x.log")})
	if err == nil {
		t.Fatalf("New() err = nil, want error")
	}
}
