package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "otr",
	Short: "OpenTraceRoute - chip pin chain routing tools",
	Long: `OpenTraceRoute (otr) assigns a chip's free pins to chains running
between fixed driver pins, and works with the resulting artifacts:

Examples:
  otr route design.def -m fast               # Scan-line heuristic, O(n log n)
  otr route design.def -m slow --workers 4   # Cheapest insertion, O(n^3)
  otr validate design.def design.def_output.def
  otr render design.def design.def_output.def -o routed.svg`,
	Version: "0.1.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
