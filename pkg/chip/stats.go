package chip

import "gonum.org/v1/gonum/stat"

// Statistics summarizes the distribution of per-chain lengths.
type Statistics struct {
	Mean   float64
	StdDev float64 // sample standard deviation (n-1 denominator)
}

// Summarize computes the mean and sample standard deviation of the
// given chain lengths. At least two values are required for the
// sample deviation to be defined; NewGraph guarantees this for any
// graph's own chains.
func Summarize(lengths []int) Statistics {
	xs := make([]float64, len(lengths))
	for i, l := range lengths {
		xs[i] = float64(l)
	}
	return Statistics{
		Mean:   stat.Mean(xs, nil),
		StdDev: stat.StdDev(xs, nil),
	}
}

// Statistics summarizes the graph's current per-chain totals.
func (g *Graph) Statistics() Statistics {
	return Summarize(g.perChain)
}
