// Package router implements the two chain-construction algorithms that
// connect a die's free pins into k chains, each running from an input
// driver to its paired output driver.
//
// Two routers are provided with different cost/quality trade-offs:
//
//   - Fast: a scan-line heuristic. The y-range of the free pins is
//     split into 2k buckets; bucket i and bucket k+i feed chain i, and
//     pins are linked in x-order within each bucket. O(n log n).
//
//   - Slow: a cheapest-insertion heuristic. Chains start as degenerate
//     driver-to-driver edges and grow one pin at a time, always picking
//     the (pin, edge) pair whose insertion adds the least length.
//     O(n^3), but usually much shorter totals than Fast.
//
// Both routers mutate the graph in place, drain its free-pin pool, and
// return the aggregate length with per-chain statistics. Neither
// guarantees a globally optimal routing.
//
// Because the Manhattan distance obeys the triangle inequality, every
// insertion the slow router performs has non-negative marginal cost,
// so its running total never decreases.
//
// The slow router's per-pin candidate scan only reads the graph, so it
// can fan out across goroutines (Config.Workers) without changing the
// result: candidates land in an index-addressed slice and the winner
// is selected in pool order either way.
package router
