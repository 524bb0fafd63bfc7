package pheromone

// Store is the contract shared by every pheromone backend. Implementations:
// Flat (O(n) sampling) and Tree (O(log n) sampling).
//
// Invariant: after every Evaporate, Get(v) is in [TauMin(), TauMax()] for
// every v. Deposit never pushes Get(v) above TauMax(). Invalidate sets
// Get(v) to the sentinel 0, which is local-use-only: the colony
// orchestrator never invalidates the global store.
type Store interface {
	// N returns the number of leaves (vertices).
	N() int
	// Get returns the current trail value for v.
	Get(v int) float64
	// Deposit adds amount to v's trail, clamped to TauMax.
	Deposit(v int, amount float64)
	// Evaporate multiplies every trail by (1-rho), clamped to TauMin.
	Evaporate()
	// Invalidate sets v's trail to 0 (local masking during construction).
	Invalidate(v int)
	// InvalidateMany invalidates every vertex in vs.
	InvalidateMany(vs []int)
	// Set assigns value to v's trail, clamped to [TauMin, TauMax].
	Set(v int, value float64)
	// Clone returns a deep, independent copy.
	Clone() Store
	// TauMin returns the MMAS lower bound.
	TauMin() float64
	// TauMax returns the MMAS upper bound.
	TauMax() float64
}

// TreeThreshold is the vertex count at or above which New selects the
// segment-tree backend over the flat backend. This is purely an
// implementation heuristic and carries no semantic meaning. Note that
// ant.ConstructSolution samples by a linear roulette over its candidate list
// with either backend; it does not call Tree.WeightedSample.
const TreeThreshold = 512

// New constructs a Store with n leaves, initialized to tauMax, selecting
// the Tree backend at or above TreeThreshold vertices and the Flat backend
// otherwise.
func New(n int, rho, tauMin, tauMax float64) Store {
	if n >= TreeThreshold {
		return NewTree(n, rho, tauMin, tauMax)
	}
	return NewFlat(n, rho, tauMin, tauMax)
}
