package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceRoute/pkg/chip"
	"github.com/OpenTraceLab/OpenTraceRoute/pkg/def"
	"github.com/OpenTraceLab/OpenTraceRoute/pkg/render"
	"github.com/OpenTraceLab/OpenTraceRoute/pkg/validate"
)

var (
	renderOutput string
	renderStyle  string
)

var renderCmd = &cobra.Command{
	Use:   "render <input-file> <output-file>",
	Short: "Render a routed-net artifact as an SVG picture",
	Long: `Validate a routed-net output artifact and draw the derived chains:
one color per chain, free pins as dots, drivers highlighted.

Examples:
  otr render design.def design.def_output.def
  otr render design.def design.def_output.def -o routed.svg --style dark.yaml`,
	Args: cobra.ExactArgs(2),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "",
		"SVG file to write (default <output-file>.svg)")
	renderCmd.Flags().StringVar(&renderStyle, "style", "",
		"YAML style file overriding the default look")
}

func runRender(cmd *cobra.Command, args []string) error {
	report, err := validate.CheckFiles(args[0], args[1])
	if err != nil {
		return err
	}

	// Rebuild a graph from the validated chains so the renderer sees
	// the same edge structure the router produced.
	parser, err := def.NewParser()
	if err != nil {
		return err
	}
	file, err := parser.ParseFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", args[0], err)
	}
	inputs, outputs, _, err := file.Build()
	if err != nil {
		return err
	}
	g, err := chip.NewGraph(inputs, outputs, nil)
	if err != nil {
		return err
	}
	for i, chain := range report.Chains {
		for j := 0; j < len(chain.Pins)-1; j++ {
			g.AddEdge(chain.Pins[j], chain.Pins[j+1], i)
		}
	}

	style := render.DefaultStyle()
	if renderStyle != "" {
		style, err = render.LoadStyle(renderStyle)
		if err != nil {
			return err
		}
	}

	output := renderOutput
	if output == "" {
		output = args[1] + ".svg"
	}
	if err := render.WriteFile(output, g, style); err != nil {
		return err
	}

	fmt.Printf("Rendered %d chains to %s\n", len(report.Chains), output)
	return nil
}
