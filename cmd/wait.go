package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/agentbridge/agentbridge/internal/model"
	"github.com/agentbridge/agentbridge/internal/output"
	"github.com/agentbridge/agentbridge/internal/session"
	"github.com/spf13/cobra"
)

// WaitResult is the output of the wait command.
type WaitResult struct {
	Action  string `yaml:"action"  json:"action"`
	Match   string `yaml:"match"   json:"match"`
	Elapsed string `yaml:"elapsed" json:"elapsed"`
	Success bool   `yaml:"success" json:"success"`
}

var waitCmd = &cobra.Command{
	Use:   "wait",
	Short: "Wait for an element to appear or disappear",
	Long: `Rescan the screen until an element matching the condition exists
(or no longer exists with --gone), or until the timeout expires.

Examples:
  agentbridge wait --text "Welcome"
  agentbridge wait --res progress_bar --gone --timeout 60
  agentbridge wait --text "Loading" --gone --interval 250`,
	RunE: runWait,
}

func init() {
	rootCmd.AddCommand(waitCmd)
	waitCmd.Flags().String("text", "", "Wait for an element whose text or description contains this")
	waitCmd.Flags().String("res", "", "Wait for an element with this resource id")
	waitCmd.Flags().Bool("gone", false, "Wait until the condition is NO LONGER true")
	waitCmd.Flags().Int("timeout", 30, "Max seconds to wait")
	waitCmd.Flags().Int("interval", 500, "Polling interval in milliseconds")
}

// matchesCondition reports whether any element matches the text/res filters.
// Text matching is a case-insensitive substring test on text and description.
func matchesCondition(elements []model.Element, text, res string) bool {
	textLower := strings.ToLower(text)
	for _, el := range elements {
		if text != "" {
			if !strings.Contains(strings.ToLower(el.Text), textLower) &&
				!strings.Contains(strings.ToLower(el.Description), textLower) {
				continue
			}
		}
		if res != "" && el.ResourceID != res {
			continue
		}
		return true
	}
	return false
}

func describeCondition(text, res string, gone bool) string {
	var parts []string
	if text != "" {
		parts = append(parts, fmt.Sprintf("text~%q", text))
	}
	if res != "" {
		parts = append(parts, fmt.Sprintf("res=%q", res))
	}
	desc := strings.Join(parts, " ")
	if gone {
		desc += " gone"
	}
	return desc
}

func runWait(cmd *cobra.Command, args []string) error {
	text, _ := cmd.Flags().GetString("text")
	res, _ := cmd.Flags().GetString("res")
	gone, _ := cmd.Flags().GetBool("gone")
	timeoutSec, _ := cmd.Flags().GetInt("timeout")
	intervalMs, _ := cmd.Flags().GetInt("interval")

	if text == "" && res == "" {
		return fmt.Errorf("specify at least one condition: --text or --res")
	}

	sess := newSession(cmd)
	result, err := pollCondition(sess, text, res, gone,
		time.Duration(timeoutSec)*time.Second,
		time.Duration(intervalMs)*time.Millisecond)
	if err != nil {
		return fail(err, "WAIT_FAILED")
	}
	return output.Print(result)
}

// pollCondition rescans until the condition is met or the deadline passes.
// Transient scan failures (mid-transition dumps) are retried until the
// deadline.
func pollCondition(sess *session.Session, text, res string, gone bool, timeout, interval time.Duration) (WaitResult, error) {
	deadline := time.Now().Add(timeout)
	start := time.Now()

	for {
		elements, err := sess.Scan(false)
		if err == nil {
			matched := matchesCondition(elements, text, res)
			if matched != gone {
				return WaitResult{
					Action:  "wait",
					Match:   describeCondition(text, res, gone),
					Elapsed: fmt.Sprintf("%.1fs", time.Since(start).Seconds()),
					Success: true,
				}, nil
			}
		}
		if time.Now().After(deadline) {
			if err != nil {
				return WaitResult{}, fmt.Errorf("timeout after %s (last error: %w)", timeout, err)
			}
			return WaitResult{}, fmt.Errorf("timed out waiting for condition: %s", describeCondition(text, res, gone))
		}
		time.Sleep(interval)
	}
}
