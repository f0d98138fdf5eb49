package cmd

import (
	"fmt"
	"testing"

	"github.com/agentbridge/agentbridge/internal/device/adb"
	"github.com/agentbridge/agentbridge/internal/session"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not found", fmt.Errorf("wrapped: %w", session.ErrElementNotFound), "ELEMENT_NOT_FOUND"},
		{"no bounds", fmt.Errorf("wrapped: %w", session.ErrNoBounds), "NO_BOUNDS"},
		{"invalid key", fmt.Errorf("wrapped: %w", adb.ErrInvalidKey), "INVALID_KEY"},
		{"snapshot", &session.SnapshotError{Err: fmt.Errorf("device offline")}, "SCAN_FAILED"},
		{"wrapped snapshot", fmt.Errorf("outer: %w", &session.SnapshotError{Err: fmt.Errorf("bad xml")}), "SCAN_FAILED"},
		{"other", fmt.Errorf("boom"), "TAP_FAILED"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errorCode(tt.err, "TAP_FAILED"); got != tt.want {
				t.Errorf("errorCode = %q, want %q", got, tt.want)
			}
		})
	}
}
