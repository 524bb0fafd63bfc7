// Package graph provides an immutable, integer-indexed neighborhood-list
// representation of an undirected graph, along with on-demand degeneracy
// (core number) computation via the classic bucket-peeling algorithm.
//
// A Graph is built once via New and PushEdge, then treated as read-only by
// every downstream package (solution, ant, localsearch, colony). There is no
// mutex: callers that need concurrent read access may share a *Graph freely
// across goroutines once construction is finished, since nothing ever
// mutates it again.
//
// Complexity:
//   - PushEdge:         O(1) amortized
//   - IsNeighbor:       O(degree(u))
//   - BuildDegeneracy:  O(n + m)
package graph
