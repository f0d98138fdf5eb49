package adb

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/agentbridge/agentbridge/internal/device"
)

func testFrame(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	return img
}

func TestEncodeScreenshotJPEGScaled(t *testing.T) {
	data, err := encodeScreenshot(testFrame(100, 200), device.ScreenshotOptions{
		Format: "jpg", Quality: 80, Scale: 0.5,
	})
	if err != nil {
		t.Fatalf("encodeScreenshot: %v", err)
	}
	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode jpeg: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 50 || b.Dy() != 100 {
		t.Errorf("scaled size = %dx%d, want 50x100", b.Dx(), b.Dy())
	}
}

func TestEncodeScreenshotPNGFullSize(t *testing.T) {
	data, err := encodeScreenshot(testFrame(40, 40), device.ScreenshotOptions{
		Format: "png", Scale: 1.0,
	})
	if err != nil {
		t.Fatalf("encodeScreenshot: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 40 {
		t.Errorf("size = %dx%d, want 40x40 (scale 1.0 must not resize)", b.Dx(), b.Dy())
	}
}

func TestEncodeScreenshotDefaultsToJPEG(t *testing.T) {
	data, err := encodeScreenshot(testFrame(10, 10), device.ScreenshotOptions{})
	if err != nil {
		t.Fatalf("encodeScreenshot: %v", err)
	}
	if _, err := jpeg.Decode(bytes.NewReader(data)); err != nil {
		t.Errorf("default output is not JPEG: %v", err)
	}
}

func TestEncodeScreenshotUnknownFormat(t *testing.T) {
	if _, err := encodeScreenshot(testFrame(10, 10), device.ScreenshotOptions{Format: "gif"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
