// Package ant implements one colony member: a local pheromone snapshot, a
// precomputed heuristic cache, and the probabilistic solution-construction
// procedure that turns those two into a candidate independent set.
//
// An Ant is created once per colony slot and Reset between iterations; it
// never allocates in its hot construction loop beyond the candidate list it
// rebuilds in place.
package ant
