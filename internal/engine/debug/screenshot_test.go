package debug

import (
	"image/png"
	"os"
	"testing"
)

func TestCaptureSizeMismatch(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "test")
	if _, err := sc.Capture(make([]byte, 10), 4, 4); err == nil {
		t.Fatal("expected error for short pixel buffer")
	}
}

func TestCaptureFlipsRows(t *testing.T) {
	// 2x2 RGBA, bottom-up as glReadPixels returns it; mark the first
	// (bottom) row red
	pixels := make([]byte, 2*2*4)
	pixels[0] = 255
	pixels[3] = 255
	pixels[4] = 255
	pixels[7] = 255

	sc := NewScreenshotCapture(t.TempDir(), "test")
	path, err := sc.Capture(pixels, 2, 2)
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open screenshot: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode screenshot: %v", err)
	}
	r, _, _, _ := img.At(0, 1).RGBA()
	if r != 0xffff {
		t.Error("bottom GL row must end up as the bottom image row")
	}
	r, _, _, _ = img.At(0, 0).RGBA()
	if r != 0 {
		t.Error("top image row must come from the top GL row")
	}
}
