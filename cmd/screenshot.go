package cmd

import (
	"encoding/base64"
	"os"

	"github.com/agentbridge/agentbridge/internal/device"
	"github.com/agentbridge/agentbridge/internal/output"
	"github.com/spf13/cobra"
)

// ScreenshotResult is the output of the screenshot command.
type ScreenshotResult struct {
	Action  string `yaml:"action"            json:"action"`
	Path    string `yaml:"path,omitempty"    json:"path,omitempty"`
	Format  string `yaml:"format,omitempty"  json:"format,omitempty"`
	Quality int    `yaml:"quality,omitempty" json:"quality,omitempty"`
	Base64  string `yaml:"base64,omitempty"  json:"base64,omitempty"`
	Success bool   `yaml:"success"           json:"success"`
}

var screenshotCmd = &cobra.Command{
	Use:   "screenshot",
	Short: "Capture a screenshot",
	Long: `Capture the device screen for vision model fallback.

By default the image is emitted as base64 JPEG inside the JSON result, scaled
down for token efficiency. Use --output to save the raw image to a file.

Examples:
  agentbridge screenshot
  agentbridge screenshot --output screen.png --image-format png --scale 1.0
  agentbridge screenshot --quality 50`,
	RunE: runScreenshot,
}

func init() {
	rootCmd.AddCommand(screenshotCmd)
	screenshotCmd.Flags().StringP("output", "o", "", "Save to file instead of base64 output")
	screenshotCmd.Flags().String("image-format", "jpg", "Image format: png, jpg")
	screenshotCmd.Flags().IntP("quality", "q", 80, "JPEG quality 1-100")
	screenshotCmd.Flags().Float64("scale", 0.5, "Scale factor 0.1-1.0")
}

func runScreenshot(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("image-format")
	quality, _ := cmd.Flags().GetInt("quality")
	scale, _ := cmd.Flags().GetFloat64("scale")

	verbosef(cmd, "capturing screenshot...")
	data, err := newSession(cmd).Device().Screenshot(device.ScreenshotOptions{
		Format:  format,
		Quality: quality,
		Scale:   scale,
	})
	if err != nil {
		return fail(err, "SCREENSHOT_FAILED")
	}

	if path != "" {
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fail(err, "SCREENSHOT_FAILED")
		}
		return output.Print(ScreenshotResult{Action: "screenshot", Path: path, Success: true})
	}

	return output.Print(ScreenshotResult{
		Action:  "screenshot",
		Format:  format,
		Quality: quality,
		Base64:  base64.StdEncoding.EncodeToString(data),
		Success: true,
	})
}
