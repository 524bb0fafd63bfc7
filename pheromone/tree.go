package pheromone

import "math/rand"

// Tree is the segment-tree pheromone backend: a complete binary tree of
// size 2p-1 (p = smallest power of two >= n) stored in a flat array.
// Leaves hold per-vertex trails; internal nodes cache the sum of their two
// children, enabling O(log n) weighted sampling via WeightedSample.
//
// Leaf mapping: leaf(i) = i + treeSize/2 for 0 <= i < n. (The source this
// system is grounded on mapped leaves incorrectly and rejected valid
// indices; this is the corrected, from-first-principles mapping: treeSize/2
// is exactly the number of internal nodes, i.e. the index of the first
// leaf.)
type Tree struct {
	n        int
	treeSize int
	tau      []float64
	rho      float64
	tauMin   float64
	tauMax   float64
}

// NewTree allocates a Tree store with n leaves, all initialized to tauMax,
// and propagates internal sums.
// Complexity: O(n)
func NewTree(n int, rho, tauMin, tauMax float64) *Tree {
	p := 1
	for p < n {
		p <<= 1
	}
	treeSize := p*2 - 1
	if treeSize < 1 {
		treeSize = 1
	}

	t := &Tree{
		n:        n,
		treeSize: treeSize,
		tau:      make([]float64, treeSize),
		rho:      rho,
		tauMin:   tauMin,
		tauMax:   tauMax,
	}
	for i := 0; i < n; i++ {
		t.tau[t.leaf(i)] = tauMax
	}
	t.propagateAll()

	return t
}

func (t *Tree) N() int { return t.n }

func (t *Tree) TauMin() float64 { return t.tauMin }
func (t *Tree) TauMax() float64 { return t.tauMax }

func (t *Tree) leaf(i int) int { return i + t.treeSize/2 }

func (t *Tree) father(node int) int { return (node - 1) / 2 }
func (t *Tree) leftChild(node int) int { return node*2 + 1 }
func (t *Tree) rightChild(node int) int { return node*2 + 2 }

func (t *Tree) brother(node int) int {
	if node%2 == 0 {
		return node - 1
	}
	return node + 1
}

func (t *Tree) isLeaf(node int) bool { return node >= t.treeSize/2 }

// propagate walks from leaf to root, recomputing each ancestor as the sum
// of its two children.
// Complexity: O(log n)
func (t *Tree) propagate(node int) {
	for node > 0 {
		f := t.father(node)
		t.tau[f] = t.tau[node] + t.tau[t.brother(node)]
		node = f
	}
}

// propagateAll recomputes every internal node bottom-up.
// Complexity: O(n)
func (t *Tree) propagateAll() {
	for i := t.treeSize/2 - 1; i >= 0; i-- {
		t.tau[i] = t.tau[t.leftChild(i)] + t.tau[t.rightChild(i)]
	}
}

func (t *Tree) Get(v int) float64 { return t.tau[t.leaf(v)] }

// Deposit clamps to TauMax then propagates.
func (t *Tree) Deposit(v int, amount float64) {
	leaf := t.leaf(v)
	t.tau[leaf] += amount
	if t.tau[leaf] > t.tauMax {
		t.tau[leaf] = t.tauMax
	}
	t.propagate(leaf)
}

// Evaporate multiplies every leaf by (1-rho), clamped to TauMin, then
// repropagates once for all leaves.
// Complexity: O(n)
func (t *Tree) Evaporate() {
	for i := 0; i < t.n; i++ {
		leaf := t.leaf(i)
		t.tau[leaf] *= 1 - t.rho
		if t.tau[leaf] < t.tauMin {
			t.tau[leaf] = t.tauMin
		}
	}
	t.propagateAll()
}

// Invalidate sets v's leaf to the sentinel 0 and propagates.
func (t *Tree) Invalidate(v int) {
	leaf := t.leaf(v)
	if t.tau[leaf] == 0 {
		return
	}
	t.tau[leaf] = 0
	t.propagate(leaf)
}

// InvalidateMany invalidates every vertex in vs, then repropagates once.
func (t *Tree) InvalidateMany(vs []int) {
	for _, v := range vs {
		t.tau[t.leaf(v)] = 0
	}
	t.propagateAll()
}

// Set assigns value to v's leaf, clamped to [TauMin, TauMax], then
// propagates.
func (t *Tree) Set(v int, value float64) {
	if value < t.tauMin {
		value = t.tauMin
	} else if value > t.tauMax {
		value = t.tauMax
	}
	leaf := t.leaf(v)
	t.tau[leaf] = value
	t.propagate(leaf)
}

// Clone returns a deep, independent copy.
func (t *Tree) Clone() Store {
	return &Tree{
		n:        t.n,
		treeSize: t.treeSize,
		tau:      append([]float64(nil), t.tau...),
		rho:      t.rho,
		tauMin:   t.tauMin,
		tauMax:   t.tauMax,
	}
}

// WeightedSample performs a biased random walk from the root, at each
// internal node choosing the child whose subtree sum the draw falls into,
// and returns the vertex at the reached leaf. ok is false ("no selection")
// when both children of the root are zero.
// Complexity: O(log n)
func (t *Tree) WeightedSample(rng *rand.Rand) (int, bool) {
	if t.n == 0 {
		return -1, false
	}

	node := 0
	if t.isLeaf(node) {
		if t.tau[node] == 0 {
			return -1, false
		}
		return node - t.treeSize/2, true
	}
	if t.tau[t.leftChild(0)] == 0 && t.tau[t.rightChild(0)] == 0 {
		return -1, false
	}

	for !t.isLeaf(node) {
		left := t.leftChild(node)
		right := t.rightChild(node)
		total := t.tau[left] + t.tau[right]
		if total <= 0 {
			return -1, false
		}
		draw := rng.Float64() * total
		if draw <= t.tau[left] {
			node = left
		} else {
			node = right
		}
	}

	return node - t.treeSize/2, true
}
