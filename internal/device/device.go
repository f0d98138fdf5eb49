// Package device defines the contract with the Android device backend.
package device

import "time"

// App identifies the foreground application.
type App struct {
	Package  string `yaml:"package"  json:"package"`
	Activity string `yaml:"activity" json:"activity"`
}

// Info describes a connected device.
type Info struct {
	Serial     string `yaml:"serial"            json:"serial"`
	Model      string `yaml:"model,omitempty"   json:"model,omitempty"`
	SDKVersion string `yaml:"sdk,omitempty"     json:"sdk,omitempty"`
}

// ScreenshotOptions configures screenshot capture.
type ScreenshotOptions struct {
	Format  string  // "png" or "jpg"
	Quality int     // JPEG quality 1-100 (ignored for PNG)
	Scale   float64 // Scale factor 0.1-1.0 (1.0 = original size)
}

// Device is the connection to one Android device. All failures are opaque
// backend errors; callers surface them without interpretation.
type Device interface {
	// DumpHierarchy returns the current screen's UI hierarchy as XML.
	DumpHierarchy() (string, error)

	// WindowSize returns the screen dimensions in pixels.
	WindowSize() (width, height int, err error)

	// Tap taps at absolute screen coordinates.
	Tap(x, y int) error

	// LongPress presses and holds at absolute screen coordinates.
	LongPress(x, y int, duration time.Duration) error

	// Swipe drags from (x1,y1) to (x2,y2) over the given duration.
	Swipe(x1, y1, x2, y2 int, duration time.Duration) error

	// PressKey sends a named key event (home, back, enter, ...).
	PressKey(name string) error

	// SendText types text into the focused element.
	SendText(text string) error

	// ClearText clears the focused element's text.
	ClearText() error

	// CurrentApp returns the foreground package and activity.
	CurrentApp() (App, error)

	// Screenshot captures the screen as encoded image bytes.
	Screenshot(opts ScreenshotOptions) ([]byte, error)

	// Info returns the device serial, model, and SDK version.
	Info() (Info, error)
}
