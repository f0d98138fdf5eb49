package cmd

import (
	"strconv"
	"time"

	"github.com/agentbridge/agentbridge/internal/output"
	"github.com/spf13/cobra"
)

// TapResult is the output of the tap command.
type TapResult struct {
	Action    string `yaml:"action"     json:"action"`
	ElementID int    `yaml:"element_id" json:"element_id"`
	X         int    `yaml:"x"          json:"x"`
	Y         int    `yaml:"y"          json:"y"`
	Success   bool   `yaml:"success"    json:"success"`
}

var tapCmd = &cobra.Command{
	Use:   "tap <id>",
	Short: "Tap an element by its id from the last scan",
	Long: `Tap the center of a scanned element's bounds.

ID comes from scan output. If no scan has run in this invocation, one is
performed implicitly.

Examples:
  agentbridge tap 5
  agentbridge tap 3 --long
  agentbridge tap 3 --long --duration 800`,
	Args: cobra.ExactArgs(1),
	RunE: runTap,
}

func init() {
	rootCmd.AddCommand(tapCmd)
	tapCmd.Flags().BoolP("long", "l", false, "Perform a long press instead of a tap")
	tapCmd.Flags().IntP("duration", "d", 500, "Long press duration in milliseconds")
}

func runTap(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return err
	}
	longPress, _ := cmd.Flags().GetBool("long")
	durationMs, _ := cmd.Flags().GetInt("duration")

	sess := newSession(cmd)
	el, err := sess.Lookup(id)
	if err != nil {
		return fail(err, "TAP_FAILED")
	}
	x, y, err := sess.CenterOf(id)
	if err != nil {
		return fail(err, "TAP_FAILED")
	}
	verbosef(cmd, "tapping element %d (%s) at (%d, %d)", id, el.Label(), x, y)

	action := "tap"
	if longPress {
		action = "long_press"
		err = sess.Device().LongPress(x, y, time.Duration(durationMs)*time.Millisecond)
	} else {
		err = sess.Device().Tap(x, y)
	}
	if err != nil {
		return fail(err, "TAP_FAILED")
	}

	return output.Print(TapResult{
		Action:    action,
		ElementID: id,
		X:         x,
		Y:         y,
		Success:   true,
	})
}
