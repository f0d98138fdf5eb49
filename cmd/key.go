package cmd

import (
	"strings"

	"github.com/agentbridge/agentbridge/internal/device/adb"
	"github.com/agentbridge/agentbridge/internal/output"
	"github.com/spf13/cobra"
)

// KeyResult is the output of the key, home, and back commands.
type KeyResult struct {
	Action  string `yaml:"action"        json:"action"`
	Key     string `yaml:"key,omitempty" json:"key,omitempty"`
	Success bool   `yaml:"success"       json:"success"`
}

var keyCmd = &cobra.Command{
	Use:   "key <name>",
	Short: "Press a named key",
	Long: `Send a key press event to the device.

Supported keys: ` + strings.Join(adb.AllowedKeys(), ", ") + `.

Examples:
  agentbridge key enter
  agentbridge key volume_up`,
	Args: cobra.ExactArgs(1),
	RunE: runKey,
}

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Press the home button",
	RunE: func(cmd *cobra.Command, args []string) error {
		return pressKey(cmd, "home", "home")
	},
}

var backCmd = &cobra.Command{
	Use:   "back",
	Short: "Press the back button",
	RunE: func(cmd *cobra.Command, args []string) error {
		return pressKey(cmd, "back", "back")
	},
}

func init() {
	rootCmd.AddCommand(keyCmd)
	rootCmd.AddCommand(homeCmd)
	rootCmd.AddCommand(backCmd)
}

func runKey(cmd *cobra.Command, args []string) error {
	return pressKey(cmd, strings.ToLower(args[0]), "key")
}

func pressKey(cmd *cobra.Command, name, action string) error {
	verbosef(cmd, "pressing %s key", name)
	if err := newSession(cmd).Device().PressKey(name); err != nil {
		return fail(err, "KEY_FAILED")
	}
	result := KeyResult{Action: action, Success: true}
	if action == "key" {
		result.Key = name
	}
	return output.Print(result)
}
