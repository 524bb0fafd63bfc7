// Package solution maintains an incrementally-updated independent-set
// representation over a fixed graph.Graph: which vertices are members, and
// for every non-member, how many of its neighbors are currently members
// (its "conflict count"). This lets callers check feasibility of adding a
// vertex in O(1) and drive local-search moves without recomputing anything
// from scratch.
//
// Invariant: v is a member iff Conflict(v) == -1. Otherwise Conflict(v)
// equals the number of v's neighbors that are members.
package solution
