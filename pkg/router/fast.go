package router

import (
	"sort"

	"github.com/OpenTraceLab/OpenTraceRoute/pkg/chip"
)

// Fast routes the graph with the scan-line heuristic in O(n log n).
//
// Both driver lists are re-sorted by y so that the i-th lowest input
// driver pairs with the i-th lowest output driver (rank pairing). The
// free pins' y-range is split into 2k equal buckets; chain i takes all
// pins from bucket i (its input side) and bucket k+i (its output
// side), linking the input side left-to-right, crossing over at the
// largest-x pins, and walking the output side right-to-left back to
// the output driver.
//
// A bucket can end up empty. In that case the cross-over edge attaches
// directly to the driver on the empty side; if both sides are empty
// the chain is the single driver-to-driver edge.
func Fast(g *chip.Graph) Result {
	k := g.ChainCount()
	g.SortDriversByY()

	pool := append([]*chip.Pin(nil), g.FreePins()...)
	buckets := partitionByY(pool, 2*k)

	for i := 0; i < k; i++ {
		linkChain(g, i, buckets[i], buckets[k+i])
	}

	for _, p := range pool {
		g.TakeFreePin(p)
	}
	return resultOf(g)
}

// partitionByY splits pins into n y-buckets, each sorted by x
// ascending. Bucket boundaries are n+1 evenly spaced values over
// [minY, maxY]; a pin lands in bucket i when
// boundary[i] < y <= boundary[i+1]. The first boundary sits one below
// minY so the lowest pin is included, and the last is pinned to maxY
// so float rounding cannot push the highest pin out.
func partitionByY(pins []*chip.Pin, n int) [][]*chip.Pin {
	buckets := make([][]*chip.Pin, n)
	if len(pins) == 0 {
		return buckets
	}

	minY, maxY := pins[0].At.Y, pins[0].At.Y
	for _, p := range pins[1:] {
		if p.At.Y < minY {
			minY = p.At.Y
		}
		if p.At.Y > maxY {
			maxY = p.At.Y
		}
	}

	bounds := make([]float64, n+1)
	for i := range bounds {
		bounds[i] = float64(minY) + float64(i)*float64(maxY-minY)/float64(n)
	}
	bounds[0] = float64(minY) - 1
	bounds[n] = float64(maxY)

	for _, p := range pins {
		y := float64(p.At.Y)
		for i := 0; i < n; i++ {
			if y > bounds[i] && y <= bounds[i+1] {
				buckets[i] = append(buckets[i], p)
				break
			}
		}
	}

	for i := range buckets {
		b := buckets[i]
		sort.Slice(b, func(a, c int) bool { return b[a].At.X < b[c].At.X })
	}
	return buckets
}

// linkChain wires chain i from its input driver through the input-side
// bucket, across to the output-side bucket, and into the output
// driver.
func linkChain(g *chip.Graph, i int, in, out []*chip.Pin) {
	inDrv := g.InputDriver(i)
	outDrv := g.OutputDriver(i)

	switch {
	case len(in) == 0 && len(out) == 0:
		g.AddEdge(inDrv, outDrv, i)

	case len(out) == 0:
		g.AddEdge(inDrv, in[0], i)
		for j := 0; j < len(in)-1; j++ {
			g.AddEdge(in[j], in[j+1], i)
		}
		g.AddEdge(in[len(in)-1], outDrv, i)

	case len(in) == 0:
		g.AddEdge(inDrv, out[len(out)-1], i)
		for j := len(out) - 2; j >= 0; j-- {
			g.AddEdge(out[j+1], out[j], i)
		}
		g.AddEdge(out[0], outDrv, i)

	default:
		g.AddEdge(inDrv, in[0], i)
		for j := 0; j < len(in)-1; j++ {
			g.AddEdge(in[j], in[j+1], i)
		}
		g.AddEdge(in[len(in)-1], out[len(out)-1], i)
		for j := len(out) - 2; j >= 0; j-- {
			g.AddEdge(out[j+1], out[j], i)
		}
		g.AddEdge(out[0], outDrv, i)
	}
}
