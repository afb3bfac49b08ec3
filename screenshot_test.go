package orbitshot

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"final-score", "final-score"},
		{"frame.01", "frame.01"},
		{"after first hit", "after_first_hit"},
		{"shots/hits", "shots_hits"},
		{"x2!", "x2_"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"  padded ", "padded"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueue(t *testing.T) {
	s := NewScene()
	if s.ScreenshotDir != DefaultScreenshotDir {
		t.Errorf("ScreenshotDir = %q, want %q", s.ScreenshotDir, DefaultScreenshotDir)
	}
	s.Screenshot("a")
	s.Screenshot("b")
	if len(s.screenshotQueue) != 2 || s.screenshotQueue[0] != "a" || s.screenshotQueue[1] != "b" {
		t.Errorf("queue = %v, want [a b]", s.screenshotQueue)
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		255, 0, 0, 255, // opaque red
		64, 32, 0, 128, // half-alpha orange
		0, 0, 0, 0, // transparent
	}
	img := unpremultiply(pixels, 3, 1)

	want := []byte{
		255, 0, 0, 255,
		127, 63, 0, 128,
		0, 0, 0, 0,
	}
	for i := range want {
		if img.Pix[i] != want[i] {
			t.Errorf("Pix[%d] = %d, want %d", i, img.Pix[i], want[i])
		}
	}
}

func TestUnpremultiplyClamps(t *testing.T) {
	// Channels above alpha cannot come from valid premultiplied data but
	// must not wrap.
	img := unpremultiply([]byte{200, 0, 0, 100}, 1, 1)
	if img.Pix[0] != 255 {
		t.Errorf("R = %d, want 255", img.Pix[0])
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	img := unpremultiply([]byte{10, 20, 30, 255, 0, 0, 0, 0}, 2, 1)
	if err := writePNG(path, img); err != nil {
		t.Fatalf("writePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 2 || b.Dy() != 1 {
		t.Errorf("bounds = %v, want 2x1", b)
	}
	r, g, b, _ := decoded.At(0, 0).RGBA()
	if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 {
		t.Errorf("pixel = (%d, %d, %d), want (10, 20, 30)", r>>8, g>>8, b>>8)
	}
}

func TestWritePNGBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "frame.png")
	if err := writePNG(path, unpremultiply(nil, 1, 1)); err == nil {
		t.Error("expected error for missing directory")
	}
}
