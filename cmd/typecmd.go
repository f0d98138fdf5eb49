package cmd

import (
	"strconv"
	"time"

	"github.com/agentbridge/agentbridge/internal/output"
	"github.com/spf13/cobra"
)

// TypeResult is the output of the type command.
type TypeResult struct {
	Action       string `yaml:"action"        json:"action"`
	ElementID    int    `yaml:"element_id"    json:"element_id"`
	Text         string `yaml:"text"          json:"text"`
	Cleared      bool   `yaml:"cleared"       json:"cleared"`
	EnterPressed bool   `yaml:"enter_pressed" json:"enter_pressed"`
	Success      bool   `yaml:"success"       json:"success"`
}

var typeCmd = &cobra.Command{
	Use:   "type <id> <text>",
	Short: "Type text into an element by its id from the last scan",
	Long: `Tap the element to focus it, then send text via the device keyboard.

Examples:
  agentbridge type 5 "Hello World"
  agentbridge type 3 "search query" --enter
  agentbridge type 2 "new text" --clear`,
	Args: cobra.ExactArgs(2),
	RunE: runType,
}

func init() {
	rootCmd.AddCommand(typeCmd)
	typeCmd.Flags().BoolP("clear", "c", false, "Clear existing text before typing")
	typeCmd.Flags().BoolP("enter", "e", false, "Press Enter after typing")
}

func runType(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return err
	}
	text := args[1]
	clear, _ := cmd.Flags().GetBool("clear")
	enter, _ := cmd.Flags().GetBool("enter")

	sess := newSession(cmd)
	el, err := sess.Lookup(id)
	if err != nil {
		return fail(err, "TYPE_FAILED")
	}
	x, y, err := sess.CenterOf(id)
	if err != nil {
		return fail(err, "TYPE_FAILED")
	}
	verbosef(cmd, "typing into element %d (%s) at (%d, %d)", id, el.Label(), x, y)

	dev := sess.Device()
	if err := dev.Tap(x, y); err != nil {
		return fail(err, "TYPE_FAILED")
	}
	// Give the keyboard a beat to attach to the focused field.
	time.Sleep(100 * time.Millisecond)

	if clear {
		if err := dev.ClearText(); err != nil {
			return fail(err, "TYPE_FAILED")
		}
	}
	if err := dev.SendText(text); err != nil {
		return fail(err, "TYPE_FAILED")
	}
	if enter {
		if err := dev.PressKey("enter"); err != nil {
			return fail(err, "TYPE_FAILED")
		}
	}

	return output.Print(TypeResult{
		Action:       "type",
		ElementID:    id,
		Text:         text,
		Cleared:      clear,
		EnterPressed: enter,
		Success:      true,
	})
}
