package cmd

import (
	"testing"
	"time"

	"github.com/agentbridge/agentbridge/internal/device"
	"github.com/agentbridge/agentbridge/internal/session"
)

// fakeDevice serves a canned dump and records actuation calls for cmd tests.
type fakeDevice struct {
	dump  string
	taps  [][2]int
	texts []string
	keys  []string
}

func (f *fakeDevice) DumpHierarchy() (string, error) { return f.dump, nil }
func (f *fakeDevice) WindowSize() (int, int, error)  { return 1080, 2400, nil }

func (f *fakeDevice) Tap(x, y int) error {
	f.taps = append(f.taps, [2]int{x, y})
	return nil
}

func (f *fakeDevice) LongPress(x, y int, d time.Duration) error       { return nil }
func (f *fakeDevice) Swipe(x1, y1, x2, y2 int, d time.Duration) error { return nil }

func (f *fakeDevice) PressKey(name string) error {
	f.keys = append(f.keys, name)
	return nil
}

func (f *fakeDevice) SendText(text string) error {
	f.texts = append(f.texts, text)
	return nil
}

func (f *fakeDevice) ClearText() error                                    { return nil }
func (f *fakeDevice) CurrentApp() (device.App, error)                     { return device.App{}, nil }
func (f *fakeDevice) Screenshot(device.ScreenshotOptions) ([]byte, error) { return nil, nil }
func (f *fakeDevice) Info() (device.Info, error)                          { return device.Info{Serial: "fake"}, nil }

const testDump = `<hierarchy>
	<node class="android.widget.Button" text="OK" clickable="true" bounds="[10,20][110,70]"/>
	<node class="android.widget.EditText" focusable="true" bounds="[0,100][1080,200]"/>
</hierarchy>`

func TestExecuteTapStep(t *testing.T) {
	dev := &fakeDevice{dump: testDump}
	sess := session.New(dev)

	result, err := executeStep(sess, "tap", map[string]interface{}{"id": 0})
	if err != nil {
		t.Fatalf("tap step: %v", err)
	}
	if result.Action != "tap" || result.ElementID == nil || *result.ElementID != 0 {
		t.Errorf("result = %+v", result)
	}
	if len(dev.taps) != 1 || dev.taps[0] != [2]int{60, 45} {
		t.Errorf("taps = %v, want [[60 45]]", dev.taps)
	}
}

func TestExecuteTapStepMissingID(t *testing.T) {
	sess := session.New(&fakeDevice{dump: testDump})
	if _, err := executeStep(sess, "tap", map[string]interface{}{}); err == nil {
		t.Fatal("expected error for missing id")
	}
}

func TestExecuteTypeStep(t *testing.T) {
	dev := &fakeDevice{dump: testDump}
	sess := session.New(dev)

	_, err := executeStep(sess, "type", map[string]interface{}{
		"id": 1, "text": "hello", "enter": true,
	})
	if err != nil {
		t.Fatalf("type step: %v", err)
	}
	// Focus tap at the EditText center, then text, then Enter.
	if len(dev.taps) != 1 || dev.taps[0] != [2]int{540, 150} {
		t.Errorf("taps = %v", dev.taps)
	}
	if len(dev.texts) != 1 || dev.texts[0] != "hello" {
		t.Errorf("texts = %v", dev.texts)
	}
	if len(dev.keys) != 1 || dev.keys[0] != "enter" {
		t.Errorf("keys = %v", dev.keys)
	}
}

func TestExecuteScanStep(t *testing.T) {
	sess := session.New(&fakeDevice{dump: testDump})
	result, err := executeStep(sess, "scan", map[string]interface{}{})
	if err != nil {
		t.Fatalf("scan step: %v", err)
	}
	if result.Found != 2 {
		t.Errorf("Found = %d, want 2", result.Found)
	}
}

func TestExecuteUnknownStep(t *testing.T) {
	sess := session.New(&fakeDevice{dump: testDump})
	if _, err := executeStep(sess, "fly", map[string]interface{}{}); err == nil {
		t.Fatal("expected error for unknown step type")
	}
}

func TestParamHelpers(t *testing.T) {
	params := map[string]interface{}{
		"str":    "value",
		"num":    42,
		"numstr": 7, // YAML ints reaching a string param
		"flt":    1.5,
		"flag":   true,
	}

	if got := stringParam(params, "str", ""); got != "value" {
		t.Errorf("stringParam = %q", got)
	}
	if got := stringParam(params, "numstr", ""); got != "7" {
		t.Errorf("stringParam(numstr) = %q", got)
	}
	if got := stringParam(params, "missing", "dflt"); got != "dflt" {
		t.Errorf("stringParam(missing) = %q", got)
	}
	if got := intParam(params, "num", 0); got != 42 {
		t.Errorf("intParam = %d", got)
	}
	if got := intParam(params, "flt", 0); got != 1 {
		t.Errorf("intParam(flt) = %d", got)
	}
	if got := floatParam(params, "flt", 0); got != 1.5 {
		t.Errorf("floatParam = %v", got)
	}
	if got := floatParam(params, "num", 0); got != 42.0 {
		t.Errorf("floatParam(num) = %v", got)
	}
	if got := boolParam(params, "flag", false); got != true {
		t.Errorf("boolParam = %v", got)
	}
	if got := boolParam(params, "missing", true); got != true {
		t.Errorf("boolParam(missing) = %v", got)
	}

	if id, ok := requireIntParam(map[string]interface{}{"id": 0}, "id"); !ok || id != 0 {
		t.Errorf("requireIntParam(id:0) = %d, %v", id, ok)
	}
	if _, ok := requireIntParam(map[string]interface{}{}, "id"); ok {
		t.Error("requireIntParam must report a missing key")
	}
}
