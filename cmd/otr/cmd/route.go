package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceRoute/pkg/chip"
	"github.com/OpenTraceLab/OpenTraceRoute/pkg/def"
	"github.com/OpenTraceLab/OpenTraceRoute/pkg/render"
	"github.com/OpenTraceLab/OpenTraceRoute/pkg/router"
)

var (
	routeMethod  string
	routeOutput  string
	routeWorkers int
	routeSVGPath string
)

var routeCmd = &cobra.Command{
	Use:   "route <input-file>",
	Short: "Route free pins into driver-to-driver chains",
	Long: `Parse a routing description, connect every free pin into one of the
driver-to-driver chains, and write the routed-net output artifact.

Two methods are available:
  fast   scan-line bucket heuristic, O(n log n)
  slow   cheapest-insertion heuristic, O(n^3), usually shorter totals

Examples:
  otr route design.def
  otr route design.def -m slow -o routed.def
  otr route design.def -m slow --workers 8 --svg routed.svg`,
	Args: cobra.ExactArgs(1),
	RunE: runRoute,
}

func init() {
	rootCmd.AddCommand(routeCmd)

	routeCmd.Flags().StringVarP(&routeMethod, "method", "m", "fast",
		"routing method: fast or slow")
	routeCmd.Flags().StringVarP(&routeOutput, "output", "o", "",
		"output file (default <input>_output.def)")
	routeCmd.Flags().IntVar(&routeWorkers, "workers", 1,
		"goroutines for the slow method's candidate scan")
	routeCmd.Flags().StringVar(&routeSVGPath, "svg", "",
		"also render the routed graph to this SVG file")
}

func runRoute(cmd *cobra.Command, args []string) error {
	filename := args[0]

	parser, err := def.NewParser()
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}
	file, err := parser.ParseFile(filename)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	inputs, outputs, free, err := file.Build()
	if err != nil {
		return err
	}
	g, err := chip.NewGraph(inputs, outputs, free)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Printf("Design: %s\n", file.Design)
		fmt.Printf("  Driver pairs: %d\n", g.ChainCount())
		fmt.Printf("  Free pins: %d\n", g.FreeCount())
	}

	var res router.Result
	switch routeMethod {
	case "fast":
		res = router.Fast(g)
	case "slow":
		res = router.SlowWithConfig(g, &router.Config{Workers: routeWorkers})
	default:
		return fmt.Errorf("unknown method %q (want fast or slow)", routeMethod)
	}

	output := routeOutput
	if output == "" {
		output = filename + "_output.def"
	}
	if err := def.WriteNetsFile(output, g.Edges()); err != nil {
		return err
	}

	fmt.Printf("Routed %d chains (%s method)\n", g.ChainCount(), routeMethod)
	fmt.Printf("  Total length: %d\n", res.Total)
	fmt.Printf("  Mean chain length: %.2f\n", res.Stats.Mean)
	fmt.Printf("  Standard deviation: %.2f\n", res.Stats.StdDev)
	fmt.Printf("Wrote %d net records to %s\n", g.EdgeCount(), output)

	if routeSVGPath != "" {
		if err := render.WriteFile(routeSVGPath, g, render.DefaultStyle()); err != nil {
			return err
		}
		fmt.Printf("Wrote rendering to %s\n", routeSVGPath)
	}
	return nil
}
