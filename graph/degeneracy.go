package graph

// BuildDegeneracy computes the degeneracy (core number) of every vertex
// using the classic O(n+m) bucket-peeling algorithm: repeatedly remove a
// vertex from the lowest non-empty degree bucket, record the current
// minimum degree as its core number, and decrement the working degree of
// its still-present neighbors, moving them down a bucket in O(1) via
// swap-with-last.
//
// Tie-break: within the minimum-degree bucket, the last-pushed vertex is
// removed first (LIFO). This is a deliberate, deterministic choice —
// reproducibility across runs requires it.
//
// Complexity: O(n + m)
func (g *Graph) BuildDegeneracy() {
	n := g.n
	degeneracy := make([]int, n)
	maxDegen := 0

	// working copy of degrees
	d := make([]int, n)
	maxDeg := 0
	for v := 0; v < n; v++ {
		d[v] = g.degree[v]
		if d[v] > maxDeg {
			maxDeg = d[v]
		}
	}

	// bucket[k] = vertices currently at working degree k
	buckets := make([][]int, maxDeg+1)
	pos := make([]int, n) // position of v within its current bucket
	for v := 0; v < n; v++ {
		buckets[d[v]] = append(buckets[d[v]], v)
		pos[v] = len(buckets[d[v]]) - 1
	}

	removed := make([]bool, n)
	currentMin := 0

	removeFromBucket := func(v, deg int) {
		b := buckets[deg]
		p := pos[v]
		last := len(b) - 1
		if p != last {
			b[p] = b[last]
			pos[b[p]] = p
		}
		buckets[deg] = b[:last]
	}

	for count := 0; count < n; count++ {
		for currentMin <= maxDeg && len(buckets[currentMin]) == 0 {
			currentMin++
		}

		b := buckets[currentMin]
		v := b[len(b)-1] // LIFO pop
		buckets[currentMin] = b[:len(b)-1]

		removed[v] = true
		degeneracy[v] = currentMin
		if currentMin > maxDegen {
			maxDegen = currentMin
		}

		for _, u := range g.neighbors[v] {
			if removed[u] || d[u] <= 0 {
				continue
			}
			oldDeg := d[u]
			removeFromBucket(u, oldDeg)
			d[u]--
			buckets[d[u]] = append(buckets[d[u]], u)
			pos[u] = len(buckets[d[u]]) - 1

			if d[u] < currentMin {
				currentMin = d[u]
			}
		}
	}

	g.degeneracy = degeneracy
	g.maxDegen = maxDegen
}

// Degeneracy returns v's core number and true if BuildDegeneracy has run.
func (g *Graph) Degeneracy(v int) (int, bool) {
	if g.degeneracy == nil {
		return 0, false
	}
	return g.degeneracy[v], true
}

// MaxDegeneracy returns the graph's degeneracy (max over v of core number)
// and true if BuildDegeneracy has run.
func (g *Graph) MaxDegeneracy() (int, bool) {
	if g.degeneracy == nil {
		return 0, false
	}
	return g.maxDegen, true
}

// HasDegeneracy reports whether BuildDegeneracy has run.
func (g *Graph) HasDegeneracy() bool { return g.degeneracy != nil }
