package cmd

import (
	"github.com/agentbridge/agentbridge/internal/device/adb"
	"github.com/agentbridge/agentbridge/internal/output"
	"github.com/spf13/cobra"
)

// ConnectResult is the output of the connect command.
type ConnectResult struct {
	Success bool   `yaml:"success"          json:"success"`
	Serial  string `yaml:"serial"           json:"serial"`
	Model   string `yaml:"model,omitempty"  json:"model,omitempty"`
	SDK     string `yaml:"sdk,omitempty"    json:"sdk,omitempty"`
}

var connectCmd = &cobra.Command{
	Use:   "connect [serial]",
	Short: "Verify a device is reachable",
	Long: `Verify an Android device is reachable via adb and print its identity.

SERIAL is an optional device serial or IP address; without it the only
attached device is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConnect,
}

func init() {
	rootCmd.AddCommand(connectCmd)
}

func runConnect(cmd *cobra.Command, args []string) error {
	serial, _ := cmd.Flags().GetString("serial")
	if len(args) == 1 {
		serial = args[0]
	}
	verbosef(cmd, "connecting to device %q", serial)

	info, err := adb.New(serial).Info()
	if err != nil {
		return fail(err, "CONNECT_FAILED")
	}
	return output.Print(ConnectResult{
		Success: true,
		Serial:  info.Serial,
		Model:   info.Model,
		SDK:     info.SDKVersion,
	})
}
