package adb

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/draw"

	"github.com/agentbridge/agentbridge/internal/device"
)

// Screenshot captures the screen via screencap and re-encodes it per opts.
// The default is a half-scale JPEG: screenshots feed vision models, where
// full-resolution PNGs waste tokens.
func (c *Client) Screenshot(opts device.ScreenshotOptions) ([]byte, error) {
	raw, err := c.run("exec-out", "screencap", "-p")
	if err != nil {
		return nil, fmt.Errorf("screencap: %w", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode screencap output: %w", err)
	}
	return encodeScreenshot(img, opts)
}

// encodeScreenshot scales and encodes a captured frame.
func encodeScreenshot(img image.Image, opts device.ScreenshotOptions) ([]byte, error) {
	if opts.Scale > 0 && opts.Scale < 1.0 {
		img = scaleImage(img, opts.Scale)
	}

	var buf bytes.Buffer
	switch opts.Format {
	case "", "jpg", "jpeg":
		quality := opts.Quality
		if quality <= 0 || quality > 100 {
			quality = 80
		}
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("encode jpeg: %w", err)
		}
	case "png":
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode png: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported screenshot format: %s (use png or jpg)", opts.Format)
	}
	return buf.Bytes(), nil
}

// scaleImage downscales img by the given factor using bilinear interpolation.
func scaleImage(img image.Image, scale float64) image.Image {
	b := img.Bounds()
	w := int(float64(b.Dx()) * scale)
	h := int(float64(b.Dy()) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
