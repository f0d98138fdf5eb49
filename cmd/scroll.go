package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/agentbridge/agentbridge/internal/output"
	"github.com/spf13/cobra"
)

// ScrollResult is the output of the scroll command.
type ScrollResult struct {
	Action    string  `yaml:"action"    json:"action"`
	Direction string  `yaml:"direction" json:"direction"`
	Distance  float64 `yaml:"distance"  json:"distance"`
	Success   bool    `yaml:"success"   json:"success"`
}

var scrollCmd = &cobra.Command{
	Use:   "scroll <up|down|left|right>",
	Short: "Scroll the screen in a direction",
	Long: `Scroll via a swipe gesture centered on the screen. Scrolling "down"
swipes upward, revealing content below.

Examples:
  agentbridge scroll down
  agentbridge scroll up --distance 0.8
  agentbridge scroll left --duration 500`,
	Args: cobra.ExactArgs(1),
	RunE: runScroll,
}

func init() {
	rootCmd.AddCommand(scrollCmd)
	scrollCmd.Flags().Float64P("distance", "d", 0.5, "Scroll distance as a fraction of the screen (0.0-1.0)")
	scrollCmd.Flags().IntP("duration", "t", 300, "Swipe duration in milliseconds")
}

// swipePlan computes the swipe endpoints for a scroll gesture. The swipe is
// centered on the screen; its extent is distance x the screen dimension on
// the scroll axis.
func swipePlan(width, height int, direction string, distance float64) (x1, y1, x2, y2 int, err error) {
	centerX := width / 2
	centerY := height / 2
	dx := int(float64(width) * distance)
	dy := int(float64(height) * distance)

	switch strings.ToLower(direction) {
	case "up":
		return centerX, centerY - dy/2, centerX, centerY + dy/2, nil
	case "down":
		return centerX, centerY + dy/2, centerX, centerY - dy/2, nil
	case "left":
		return centerX - dx/2, centerY, centerX + dx/2, centerY, nil
	case "right":
		return centerX + dx/2, centerY, centerX - dx/2, centerY, nil
	}
	return 0, 0, 0, 0, fmt.Errorf("invalid direction %q: use up, down, left, or right", direction)
}

func runScroll(cmd *cobra.Command, args []string) error {
	direction := args[0]
	distance, _ := cmd.Flags().GetFloat64("distance")
	durationMs, _ := cmd.Flags().GetInt("duration")

	dev := newSession(cmd).Device()
	width, height, err := dev.WindowSize()
	if err != nil {
		return fail(err, "SCROLL_FAILED")
	}

	x1, y1, x2, y2, err := swipePlan(width, height, direction, distance)
	if err != nil {
		return err
	}
	verbosef(cmd, "scrolling %s: (%d, %d) -> (%d, %d)", direction, x1, y1, x2, y2)

	if err := dev.Swipe(x1, y1, x2, y2, time.Duration(durationMs)*time.Millisecond); err != nil {
		return fail(err, "SCROLL_FAILED")
	}

	return output.Print(ScrollResult{
		Action:    "scroll",
		Direction: strings.ToLower(direction),
		Distance:  distance,
		Success:   true,
	})
}
