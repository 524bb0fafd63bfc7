// Package pheromone implements the MMAS (Max-Min Ant System) pheromone
// store contract and its two interchangeable backends.
//
// Both backends keep a per-vertex scalar trail tau[v] bounded to
// [TauMin, TauMax] after every Evaporate, clamp Deposit to TauMax, and
// support Invalidate (a local, per-ant "mask this vertex from selection"
// operation that sets tau[v] to the sentinel 0 — never applied to a global
// store by the colony orchestrator).
//
//   - Flat:  a plain []float64, O(n) per weighted sample.
//   - Tree:  a complete binary tree whose leaves are the per-vertex trails
//     and whose internal nodes cache subtree sums, giving O(log n)
//     weighted sampling at the cost of O(log n) propagation per mutation.
//
// New picks Flat for small graphs and Tree at/above TreeThreshold vertices;
// callers needing a specific backend use NewFlat/NewTree directly.
package pheromone
