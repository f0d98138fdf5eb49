package adb

import (
	"errors"
	"sort"
)

// ErrInvalidKey is returned for key names outside the allow-list.
var ErrInvalidKey = errors.New("invalid key")

// keyCodes is the allow-list of key names mapped to Android keycodes.
var keyCodes = map[string]string{
	"home":        "3",   // KEYCODE_HOME
	"back":        "4",   // KEYCODE_BACK
	"enter":       "66",  // KEYCODE_ENTER
	"menu":        "82",  // KEYCODE_MENU
	"recent":      "187", // KEYCODE_APP_SWITCH
	"volume_up":   "24",  // KEYCODE_VOLUME_UP
	"volume_down": "25",  // KEYCODE_VOLUME_DOWN
	"power":       "26",  // KEYCODE_POWER
}

// AllowedKeys returns the sorted list of key names accepted by PressKey.
func AllowedKeys() []string {
	names := make([]string, 0, len(keyCodes))
	for name := range keyCodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
