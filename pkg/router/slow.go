package router

import (
	"sync"

	"github.com/OpenTraceLab/OpenTraceRoute/pkg/chip"
	"github.com/OpenTraceLab/OpenTraceRoute/pkg/geom"
)

// insertion is a candidate placement for one free pin: the edge whose
// replacement by two edges through the pin adds the least length, and
// that added length.
type insertion struct {
	edge  *chip.Edge
	delta int
}

// Slow routes the graph with the cheapest-insertion heuristic using
// the default (sequential) configuration.
func Slow(g *chip.Graph) Result {
	return SlowWithConfig(g, DefaultConfig())
}

// SlowWithConfig routes the graph with the cheapest-insertion
// heuristic in O(n^3).
//
// Chain i starts as the degenerate edge from input driver i to output
// driver i, pairing drivers in declaration order. Each iteration scans
// every (free pin, edge) combination for the insertion with the
// smallest delta = d(e.From, p) + d(p, e.To) - e.Dist, removes the
// winning edge and splices the pin in. Ties keep the first edge in
// graph order and the first pin in pool order.
func SlowWithConfig(g *chip.Graph, cfg *Config) Result {
	workers := 1
	if cfg != nil && cfg.Workers > 1 {
		workers = cfg.Workers
	}

	for i := 0; i < g.ChainCount(); i++ {
		g.AddEdge(g.InputDriver(i), g.OutputDriver(i), i)
	}

	for g.FreeCount() > 0 {
		pool := g.FreePins()
		cands := make([]insertion, len(pool))
		if workers > 1 {
			scanParallel(g, pool, cands, workers)
		} else {
			for i, p := range pool {
				cands[i] = bestInsertion(g, p)
			}
		}

		win := 0
		for i := 1; i < len(cands); i++ {
			if cands[i].delta < cands[win].delta {
				win = i
			}
		}

		p := pool[win]
		e := cands[win].edge
		g.RemoveEdge(e)
		g.AddEdge(e.From, p, e.Chain)
		g.AddEdge(p, e.To, e.Chain)
		g.TakeFreePin(p)
	}

	return resultOf(g)
}

// bestInsertion scans every edge for the cheapest place to splice p
// in. Earlier edges win ties. The graph must hold at least one edge.
func bestInsertion(g *chip.Graph, p *chip.Pin) insertion {
	var best insertion
	found := false
	for _, e := range g.Edges() {
		delta := geom.Manhattan(e.From.At, p.At) + geom.Manhattan(p.At, e.To.At) - e.Dist
		if !found || delta < best.delta {
			found = true
			best = insertion{edge: e, delta: delta}
		}
	}
	return best
}

// scanParallel fills cands with each pool pin's best insertion using
// the given number of goroutines. Each goroutine only reads the graph
// and writes its own index range, so the outcome matches the
// sequential scan exactly.
func scanParallel(g *chip.Graph, pool []*chip.Pin, cands []insertion, workers int) {
	chunk := (len(pool) + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < len(pool); lo += chunk {
		hi := lo + chunk
		if hi > len(pool) {
			hi = len(pool)
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				cands[i] = bestInsertion(g, pool[i])
			}
		}(lo, hi)
	}
	wg.Wait()
}
