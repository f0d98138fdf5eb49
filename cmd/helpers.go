package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/agentbridge/agentbridge/internal/device/adb"
	"github.com/agentbridge/agentbridge/internal/output"
	"github.com/agentbridge/agentbridge/internal/session"
	"github.com/spf13/cobra"
)

// newSession builds a session for the device selected by --serial.
func newSession(cmd *cobra.Command) *session.Session {
	serial, _ := cmd.Flags().GetString("serial")
	return session.New(adb.New(serial))
}

// verbose reports whether --verbose is set.
func verbose(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("verbose")
	return v
}

// verbosef writes progress to stderr when --verbose is set.
func verbosef(cmd *cobra.Command, format string, args ...interface{}) {
	if verbose(cmd) {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}

// errorCode maps an error to the machine-readable code agents branch on.
// fallback names the failed operation (TAP_FAILED, SCAN_FAILED, ...).
func errorCode(err error, fallback string) string {
	var snapErr *session.SnapshotError
	switch {
	case errors.Is(err, session.ErrElementNotFound):
		return "ELEMENT_NOT_FOUND"
	case errors.Is(err, session.ErrNoBounds):
		return "NO_BOUNDS"
	case errors.Is(err, adb.ErrInvalidKey):
		return "INVALID_KEY"
	case errors.As(err, &snapErr):
		return "SCAN_FAILED"
	}
	return fallback
}

// fail reports err as a JSON error result on stdout and returns errSilent so
// the process exits 1 without a duplicate message.
func fail(err error, fallbackCode string) error {
	output.PrintError(err, errorCode(err, fallbackCode))
	return errSilent
}
