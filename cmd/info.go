package cmd

import (
	"github.com/agentbridge/agentbridge/internal/device"
	"github.com/agentbridge/agentbridge/internal/output"
	"github.com/spf13/cobra"
)

// Screen holds screen dimensions in pixels.
type Screen struct {
	Width  int `yaml:"width"  json:"width"`
	Height int `yaml:"height" json:"height"`
}

// InfoResult is the output of the info command.
type InfoResult struct {
	Serial     string     `yaml:"serial"     json:"serial"`
	Screen     Screen     `yaml:"screen"     json:"screen"`
	CurrentApp device.App `yaml:"currentApp" json:"currentApp"`
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show device serial, screen size, and foreground app",
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	dev := newSession(cmd).Device()

	info, err := dev.Info()
	if err != nil {
		return fail(err, "INFO_FAILED")
	}
	w, h, err := dev.WindowSize()
	if err != nil {
		return fail(err, "INFO_FAILED")
	}
	app, err := dev.CurrentApp()
	if err != nil {
		return fail(err, "INFO_FAILED")
	}

	return output.Print(InfoResult{
		Serial:     info.Serial,
		Screen:     Screen{Width: w, Height: h},
		CurrentApp: app,
	})
}
