package adb

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agentbridge/agentbridge/internal/device"
)

// stripDumpStatus removes the trailing status line uiautomator appends after
// the XML document ("UI hierchary dumped to: /dev/tty" — typo is adb's own).
func stripDumpStatus(out string) string {
	out = strings.TrimSpace(out)
	if i := strings.LastIndex(out, ">"); i >= 0 {
		return out[:i+1]
	}
	return out
}

// parseWindowSize extracts dimensions from `wm size` output:
//
//	Physical size: 1080x2400
//	Override size: 720x1600
//
// The override size, when present, is what apps actually render at.
func parseWindowSize(out string) (int, int, error) {
	var w, h int
	found := false
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		var prefix string
		switch {
		case strings.HasPrefix(line, "Override size:"):
			prefix = "Override size:"
		case strings.HasPrefix(line, "Physical size:"):
			if found {
				continue // keep an already-parsed override
			}
			prefix = "Physical size:"
		default:
			continue
		}
		dims := strings.TrimSpace(strings.TrimPrefix(line, prefix))
		parts := strings.SplitN(dims, "x", 2)
		if len(parts) != 2 {
			continue
		}
		pw, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
		ph, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err1 != nil || err2 != nil {
			continue
		}
		w, h, found = pw, ph, true
		if prefix == "Override size:" {
			return w, h, nil
		}
	}
	if !found {
		return 0, 0, fmt.Errorf("no screen size in wm output: %q", strings.TrimSpace(out))
	}
	return w, h, nil
}

// parseCurrentFocus extracts the foreground app from dumpsys window output:
//
//	mCurrentFocus=Window{1234abc u0 com.example.app/com.example.app.MainActivity}
func parseCurrentFocus(out string) (device.App, error) {
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "mCurrentFocus=") {
			continue
		}
		open := strings.Index(line, "{")
		end := strings.LastIndex(line, "}")
		if open < 0 || end < open {
			continue
		}
		fields := strings.Fields(line[open+1 : end])
		if len(fields) == 0 {
			continue
		}
		component := fields[len(fields)-1]
		pkg, activity := component, ""
		if i := strings.Index(component, "/"); i >= 0 {
			pkg, activity = component[:i], component[i+1:]
		}
		return device.App{Package: pkg, Activity: activity}, nil
	}
	return device.App{}, fmt.Errorf("no focused window in dumpsys output")
}

// escapeText prepares text for `input text`, which runs through the device
// shell and does not accept literal spaces. Spaces become %s; shell
// metacharacters are backslash-escaped.
func escapeText(text string) string {
	var b strings.Builder
	for _, r := range text {
		switch r {
		case ' ':
			b.WriteString("%s")
		case '\'', '"', '`', '\\', '$', '&', '|', ';', '(', ')', '<', '>', '*', '~':
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
