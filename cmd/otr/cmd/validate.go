package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceRoute/pkg/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate <input-file> <output-file>",
	Short: "Check a routed-net artifact against its routing description",
	Long: `Re-derive the chains from a routed-net output artifact and verify the
structural contract: paired drivers, no driver reused, no cycles, and
every free pin routed exactly once. Reports per-chain lengths and
their distribution.

Exits with a non-zero status on any format or structural violation.

Example:
  otr validate design.def design.def_output.def`,
	Args: cobra.ExactArgs(2),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	report, err := validate.CheckFiles(args[0], args[1])
	if err != nil {
		return err
	}

	fmt.Println("Output file formatted properly: check")
	fmt.Println("Valid number of driver pins used: check")
	fmt.Println("Driver pins are used only once: check")
	fmt.Println("Chains start and end at the driver: check")
	fmt.Println("All pins are routed exactly once: check")

	fmt.Println("----------------------------------------")
	fmt.Printf("Number of chains formed: %d\n", len(report.Chains))
	for i, c := range report.Chains {
		fmt.Printf(" - Chain %d - Length = %d\n", i, c.Length)
		if verbose {
			for _, p := range c.Pins {
				fmt.Printf("     %s\n", p)
			}
		}
	}
	fmt.Printf("Average length = %.2f\n", report.Stats.Mean)
	fmt.Printf("Standard deviation = %.2f\n", report.Stats.StdDev)
	fmt.Printf("Difference max-min = %d\n", report.Spread)
	return nil
}
