package graph

// Graph is an immutable (after construction) neighborhood-list graph over
// the vertex set [0, n). Adjacency is stored one-directionally as loaded;
// callers that need a symmetric (undirected) graph must push both
// directions of every edge themselves — Graph never infers a mirror edge.
type Graph struct {
	n          int
	degree     []int
	neighbors  [][]int
	degeneracy []int
	maxDegen   int
}

// New allocates a Graph over n vertices with no edges.
// Complexity: O(n)
func New(n int) *Graph {
	return &Graph{
		n:         n,
		degree:    make([]int, n),
		neighbors: make([][]int, n),
	}
}

// N returns the vertex count.
func (g *Graph) N() int { return g.n }

// PushEdge appends v to u's neighbor list and increments u's degree.
// It does not add the mirror edge (u to v's list); callers wanting an
// undirected graph call PushEdge twice, once per direction.
// Complexity: O(1) amortized.
func (g *Graph) PushEdge(u, v int) {
	g.neighbors[u] = append(g.neighbors[u], v)
	g.degree[u]++
}

// Degree returns the out-degree of v.
func (g *Graph) Degree(v int) int { return g.degree[v] }

// Neighbors returns v's neighbor list. The slice is owned by Graph and must
// not be mutated by callers.
func (g *Graph) Neighbors(v int) []int { return g.neighbors[v] }

// IsNeighbor reports whether v appears in u's neighbor list.
// Complexity: O(degree(u))
func (g *Graph) IsNeighbor(u, v int) bool {
	for _, w := range g.neighbors[u] {
		if w == v {
			return true
		}
	}
	return false
}
