// Package adb implements the device backend by driving the adb binary.
package adb

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/agentbridge/agentbridge/internal/device"
)

// runner executes one adb invocation and returns its combined stdout.
// Swappable in tests.
type runner func(args ...string) ([]byte, error)

// Client talks to a single device through the adb binary.
type Client struct {
	path   string // adb binary
	serial string // device serial, "" = default device
	run    runner
}

// DefaultPath returns the adb binary to use: $AGENTBRIDGE_ADB if set,
// otherwise "adb" from PATH.
func DefaultPath() string {
	if p := os.Getenv("AGENTBRIDGE_ADB"); p != "" {
		return p
	}
	return "adb"
}

// New returns a Client for the given device serial ("" selects the default
// device, matching adb's own behavior when one device is attached).
func New(serial string) *Client {
	c := &Client{path: DefaultPath(), serial: serial}
	c.run = c.exec
	return c
}

func (c *Client) exec(args ...string) ([]byte, error) {
	full := args
	if c.serial != "" {
		full = append([]string{"-s", c.serial}, args...)
	}
	out, err := exec.Command(c.path, full...).Output()
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok && len(ee.Stderr) > 0 {
			return nil, fmt.Errorf("adb %s: %s", strings.Join(args, " "), strings.TrimSpace(string(ee.Stderr)))
		}
		return nil, fmt.Errorf("adb %s: %w", strings.Join(args, " "), err)
	}
	return out, nil
}

// DumpHierarchy fetches the current UI hierarchy XML via uiautomator.
func (c *Client) DumpHierarchy() (string, error) {
	out, err := c.run("exec-out", "uiautomator", "dump", "/dev/tty")
	if err != nil {
		return "", fmt.Errorf("dump hierarchy: %w", err)
	}
	return stripDumpStatus(string(out)), nil
}

// WindowSize returns the screen dimensions from `wm size`.
func (c *Client) WindowSize() (int, int, error) {
	out, err := c.run("shell", "wm", "size")
	if err != nil {
		return 0, 0, err
	}
	return parseWindowSize(string(out))
}

// Tap taps at absolute screen coordinates.
func (c *Client) Tap(x, y int) error {
	_, err := c.run("shell", "input", "tap", itoa(x), itoa(y))
	return err
}

// LongPress holds at the given point for the duration, implemented as a
// zero-distance swipe.
func (c *Client) LongPress(x, y int, d time.Duration) error {
	ms := itoa(int(d.Milliseconds()))
	_, err := c.run("shell", "input", "swipe", itoa(x), itoa(y), itoa(x), itoa(y), ms)
	return err
}

// Swipe drags between two points over the given duration.
func (c *Client) Swipe(x1, y1, x2, y2 int, d time.Duration) error {
	ms := itoa(int(d.Milliseconds()))
	_, err := c.run("shell", "input", "swipe", itoa(x1), itoa(y1), itoa(x2), itoa(y2), ms)
	return err
}

// PressKey sends an allow-listed key event.
func (c *Client) PressKey(name string) error {
	code, ok := keyCodes[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("%w: %q (allowed: %s)", ErrInvalidKey, name, strings.Join(AllowedKeys(), ", "))
	}
	_, err := c.run("shell", "input", "keyevent", code)
	return err
}

// SendText types text into the focused element.
func (c *Client) SendText(text string) error {
	_, err := c.run("shell", "input", "text", escapeText(text))
	return err
}

// ClearText clears the focused field: select-all, then delete.
func (c *Client) ClearText() error {
	// KEYCODE_CTRL_LEFT + KEYCODE_A
	if _, err := c.run("shell", "input", "keycombination", "113", "29"); err != nil {
		return err
	}
	// KEYCODE_DEL
	_, err := c.run("shell", "input", "keyevent", "67")
	return err
}

// CurrentApp returns the foreground package/activity from dumpsys.
func (c *Client) CurrentApp() (device.App, error) {
	out, err := c.run("shell", "dumpsys", "window")
	if err != nil {
		return device.App{}, err
	}
	return parseCurrentFocus(string(out))
}

// Info returns the device serial, model, and SDK version. Model and SDK are
// best-effort; only a missing serial is an error.
func (c *Client) Info() (device.Info, error) {
	serial, err := c.run("get-serialno")
	if err != nil {
		return device.Info{}, err
	}
	info := device.Info{Serial: strings.TrimSpace(string(serial))}
	if model, err := c.run("shell", "getprop", "ro.product.model"); err == nil {
		info.Model = strings.TrimSpace(string(model))
	}
	if sdk, err := c.run("shell", "getprop", "ro.build.version.sdk"); err == nil {
		info.SDKVersion = strings.TrimSpace(string(sdk))
	}
	return info, nil
}

func itoa(v int) string {
	return fmt.Sprintf("%d", v)
}

var _ device.Device = (*Client)(nil)
