package chip

import (
	"errors"
	"fmt"
	"sort"

	"github.com/OpenTraceLab/OpenTraceRoute/pkg/geom"
)

// ErrDriverCount indicates the graph was constructed with driver lists
// that cannot form chains: mismatched input/output counts or fewer
// than two pairs.
var ErrDriverCount = errors.New("chip: invalid driver pair count")

// Graph is the chain graph: the k driver pairs, the pool of free pins
// not yet placed into any edge, the edge set, and the running global
// and per-chain length totals.
//
// The graph is the single owner of its containers. Routers mutate it
// only through AddEdge, RemoveEdge and TakeFreePin, and read it
// through the accessor methods. A single router at a time has
// exclusive access; nothing here is safe for concurrent mutation.
type Graph struct {
	inputs  []*Pin
	outputs []*Pin
	free    []*Pin
	edges   []*Edge

	total    int
	perChain []int
}

// NewGraph builds a chain graph from parsed driver and free-pin
// records. The i-th input driver and i-th output driver are chain i's
// endpoints. Driver counts must match and there must be at least two
// pairs; this is the one place precondition checking happens — the
// routers trust the graph thereafter.
func NewGraph(inputs, outputs, free []*Pin) (*Graph, error) {
	if len(inputs) != len(outputs) {
		return nil, fmt.Errorf("%w: %d input drivers vs %d output drivers",
			ErrDriverCount, len(inputs), len(outputs))
	}
	if len(inputs) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 pairs, got %d",
			ErrDriverCount, len(inputs))
	}

	g := &Graph{
		inputs:   make([]*Pin, len(inputs)),
		outputs:  make([]*Pin, len(outputs)),
		free:     make([]*Pin, len(free)),
		perChain: make([]int, len(inputs)),
	}
	copy(g.inputs, inputs)
	copy(g.outputs, outputs)
	copy(g.free, free)
	return g, nil
}

// ChainCount returns k, the number of driver pairs.
func (g *Graph) ChainCount() int {
	return len(g.inputs)
}

// InputDriver returns chain i's input endpoint.
func (g *Graph) InputDriver(i int) *Pin {
	return g.inputs[i]
}

// OutputDriver returns chain i's output endpoint.
func (g *Graph) OutputDriver(i int) *Pin {
	return g.outputs[i]
}

// SortDriversByY re-sorts both driver lists by y-coordinate ascending,
// so that the i-th lowest input driver pairs with the i-th lowest
// output driver. Pairing by rank rather than declaration order is the
// documented policy of the scan-line router.
func (g *Graph) SortDriversByY() {
	sort.Slice(g.inputs, func(a, b int) bool {
		return g.inputs[a].At.Y < g.inputs[b].At.Y
	})
	sort.Slice(g.outputs, func(a, b int) bool {
		return g.outputs[a].At.Y < g.outputs[b].At.Y
	})
}

// FreePins returns the pool of pins not yet placed into any edge, in
// declaration order. The slice is a read-only view; callers must not
// modify it.
func (g *Graph) FreePins() []*Pin {
	return g.free
}

// FreeCount returns the number of unplaced pins.
func (g *Graph) FreeCount() int {
	return len(g.free)
}

// TakeFreePin removes p from the free pool, preserving pool order.
// It reports whether p was present.
func (g *Graph) TakeFreePin(p *Pin) bool {
	for i, q := range g.free {
		if q == p {
			g.free = append(g.free[:i], g.free[i+1:]...)
			return true
		}
	}
	return false
}

// AddEdge connects from to to as part of chain i, computes the
// Manhattan distance, and accumulates it into the global and chain
// totals. The new edge is returned.
func (g *Graph) AddEdge(from, to *Pin, chain int) *Edge {
	e := &Edge{From: from, To: to, Dist: geom.Manhattan(from.At, to.At), Chain: chain}
	g.edges = append(g.edges, e)
	g.total += e.Dist
	g.perChain[chain] += e.Dist
	return e
}

// RemoveEdge deletes e from the edge set, subtracting its distance
// from the totals. Edge order is preserved so that scan tie-breaking
// stays deterministic. It reports whether e was present.
func (g *Graph) RemoveEdge(e *Edge) bool {
	for i, q := range g.edges {
		if q == e {
			g.edges = append(g.edges[:i], g.edges[i+1:]...)
			g.total -= e.Dist
			g.perChain[e.Chain] -= e.Dist
			return true
		}
	}
	return false
}

// Edges returns the current edge set in insertion order. The slice is
// a read-only view; callers must not modify it.
func (g *Graph) Edges() []*Edge {
	return g.edges
}

// EdgeCount returns the number of edges currently in the graph.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// TotalLength returns the sum of all edge distances.
func (g *Graph) TotalLength() int {
	return g.total
}

// ChainLengths returns a copy of the per-chain length totals, indexed
// by chain.
func (g *Graph) ChainLengths() []int {
	out := make([]int, len(g.perChain))
	copy(out, g.perChain)
	return out
}
