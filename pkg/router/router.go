package router

import "github.com/OpenTraceLab/OpenTraceRoute/pkg/chip"

// Result reports what a router produced: the total routed length, the
// per-chain lengths indexed by chain, and their distribution summary.
type Result struct {
	Total        int
	ChainLengths []int
	Stats        chip.Statistics
}

// Config tunes router execution. The zero value is valid and means
// fully sequential operation.
type Config struct {
	// Workers is the number of goroutines used for the slow router's
	// per-pin candidate scan. Values below 2 mean sequential. The
	// routed result is identical regardless of worker count.
	Workers int
}

// DefaultConfig returns a sequential configuration.
func DefaultConfig() *Config {
	return &Config{Workers: 1}
}

func resultOf(g *chip.Graph) Result {
	return Result{
		Total:        g.TotalLength(),
		ChainLengths: g.ChainLengths(),
		Stats:        g.Statistics(),
	}
}
