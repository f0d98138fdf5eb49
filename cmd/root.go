package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/agentbridge/agentbridge/internal/output"
	"github.com/agentbridge/agentbridge/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "agentbridge",
	Short: "Drive Android UI from the command line",
	Long: `A CLI that lets AI agents observe and act on Android device UI via adb.

Scan the screen to get numbered interactive elements, then tap, type, and
scroll by element id. Element ids are assigned per scan; commands that take
an id perform an implicit scan when none has run yet in this invocation.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// errSilent marks errors already reported as a JSON result on stdout.
var errSilent = errors.New("error already reported")

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errSilent) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().StringP("serial", "s", "", "Device serial or IP (default: the only attached device)")
	rootCmd.PersistentFlags().String("format", "json", "Output format: json, yaml")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose progress on stderr")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "json":
			output.OutputFormat = output.FormatJSON
		case "yaml":
			output.OutputFormat = output.FormatYAML
		default:
			return fmt.Errorf("unsupported format: %s (use json or yaml)", format)
		}
		pretty, _ := rootCmd.PersistentFlags().GetBool("pretty")
		output.PrettyOutput = pretty
		return nil
	}
}
