package cmd

import (
	"github.com/agentbridge/agentbridge/internal/output"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan the screen and list interactive elements",
	Long: `Dump the UI hierarchy and output compressed interactive elements.

Each element gets a numeric id valid until the next scan. Fields:
  id      numeric identifier, assigned in tree order from 0
  cls     class name (package stripped)
  txt     text content (truncated to 50 chars)
  desc    content description (truncated to 50 chars)
  res     resource id (package prefix stripped)
  bounds  {x, y, w, h} position and size
  flags   C=clickable L=long-clickable S=scrollable F=focusable
          K=checkable k=checked D=disabled s=selected`,
	RunE: runScan,
}

var observeCmd = &cobra.Command{
	Use:   "observe",
	Short: "Alias for scan",
	RunE:  runScan,
}

func init() {
	for _, c := range []*cobra.Command{scanCmd, observeCmd} {
		rootCmd.AddCommand(c)
		c.Flags().BoolP("all", "a", false, "Include all elements, not just interactive ones")
		c.Flags().BoolP("compact", "c", false, "Force single-line JSON output")
	}
}

func runScan(cmd *cobra.Command, args []string) error {
	includeAll, _ := cmd.Flags().GetBool("all")
	compact, _ := cmd.Flags().GetBool("compact")

	verbosef(cmd, "scanning UI hierarchy...")
	elements, err := newSession(cmd).Scan(includeAll)
	if err != nil {
		return fail(err, "SCAN_FAILED")
	}
	verbosef(cmd, "found %d elements", len(elements))

	if compact {
		return output.PrintJSON(elements)
	}
	return output.Print(elements)
}
