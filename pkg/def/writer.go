package def

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/OpenTraceLab/OpenTraceRoute/pkg/chip"
)

// netRecordFormat is the fixed record layout consumed by the
// validator and downstream tools. The placeholder net name is part of
// the contract.
const netRecordFormat = "- BOGUS NET NAME\n  (  %s conn_in )\n  (  %s conn_out )\n;\n"

// WriteNets serializes the edge set as routed-net records, one per
// edge in graph order.
func WriteNets(w io.Writer, edges []*chip.Edge) error {
	bw := bufio.NewWriter(w)
	for _, e := range edges {
		if _, err := fmt.Fprintf(bw, netRecordFormat, e.From.Name, e.To.Name); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteNetsFile writes the routed-net artifact to the given path.
func WriteNetsFile(path string, edges []*chip.Edge) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := WriteNets(f, edges); err != nil {
		return fmt.Errorf("failed to write nets: %w", err)
	}
	return f.Close()
}
