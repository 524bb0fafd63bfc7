package solution

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/gopheraco/mmas-misp/graph"
)

// Solution is one independent set under construction (or held as the
// global best) over a shared, immutable graph.Graph.
type Solution struct {
	g        *graph.Graph
	members  []int // ordered sequence of member vertices
	index    []int // vertex -> position in members, or -1 if absent
	conflict []int // -1 iff member; else #members adjacent to v
	present  *roaring.Bitmap
}

// New returns an empty Solution over g.
// Complexity: O(n)
func New(g *graph.Graph) *Solution {
	n := g.N()
	index := make([]int, n)
	for i := range index {
		index[i] = -1
	}
	return &Solution{
		g:        g,
		members:  make([]int, 0, n),
		index:    index,
		conflict: make([]int, n),
		present:  roaring.New(),
	}
}

// Size returns the number of members.
func (s *Solution) Size() int { return len(s.members) }

// Members returns the current member sequence. Owned by Solution; callers
// must not mutate it.
func (s *Solution) Members() []int { return s.members }

// Conflict returns v's conflict count (-1 iff v is a member).
func (s *Solution) Conflict(v int) int { return s.conflict[v] }

// IsMember reports whether v is currently in the solution.
func (s *Solution) IsMember(v int) bool { return s.index[v] != -1 }

// Add inserts v into the solution. v must have Conflict(v) == 0; otherwise
// Add returns ErrNotAddable and leaves the solution unchanged.
// Complexity: O(degree(v))
func (s *Solution) Add(v int) error {
	if v < 0 || v >= s.g.N() {
		return fmt.Errorf("solution: Add(%d): %w", v, ErrVertexOutOfRange)
	}
	if s.conflict[v] != 0 {
		return fmt.Errorf("solution: Add(%d): %w", v, ErrNotAddable)
	}

	s.index[v] = len(s.members)
	s.members = append(s.members, v)
	s.conflict[v] = -1
	s.present.Add(uint32(v))

	for _, u := range s.g.Neighbors(v) {
		s.conflict[u]++
	}

	return nil
}

// Remove deletes v from the solution via swap-with-last on members, and
// restores v's neighbors' conflict counts. v must currently be a member;
// otherwise Remove returns ErrNotMember and leaves the solution unchanged.
// Complexity: O(degree(v))
func (s *Solution) Remove(v int) error {
	if v < 0 || v >= s.g.N() {
		return fmt.Errorf("solution: Remove(%d): %w", v, ErrVertexOutOfRange)
	}
	pos := s.index[v]
	if pos == -1 {
		return fmt.Errorf("solution: Remove(%d): %w", v, ErrNotMember)
	}

	last := len(s.members) - 1
	moved := s.members[last]
	s.members[pos] = moved
	s.index[moved] = pos
	s.members = s.members[:last]
	s.index[v] = -1

	s.conflict[v] = 0
	s.present.Remove(uint32(v))

	for _, u := range s.g.Neighbors(v) {
		s.conflict[u]--
	}

	return nil
}

// MemberNeighbor returns the unique neighbor of v that is currently a
// member, scanning v's neighbor list in graph order. ok is false if v has
// no member neighbor. Used by localsearch for 1-1 and 2-1 swaps; backed by
// the membership bitmap so each probe is O(1) instead of a scan over the
// full members slice.
// Complexity: O(degree(v))
func (s *Solution) MemberNeighbor(v int) (int, bool) {
	for _, u := range s.g.Neighbors(v) {
		if s.present.Contains(uint32(u)) {
			return u, true
		}
	}
	return -1, false
}

// MemberNeighbors returns up to limit neighbors of v that are currently
// members, scanning v's neighbor list in graph order. Used by localsearch's
// 2-1 swap, which needs exactly two member neighbors of a conflict-2 vertex.
// Complexity: O(degree(v))
func (s *Solution) MemberNeighbors(v int, limit int) []int {
	out := make([]int, 0, limit)
	for _, u := range s.g.Neighbors(v) {
		if s.present.Contains(uint32(u)) {
			out = append(out, u)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

// IsIndependent reports whether no two members are adjacent. It is a
// derived invariant check, used only by tests.
// Complexity: O(sum of member degrees)
func (s *Solution) IsIndependent() bool {
	for _, v := range s.members {
		for _, u := range s.g.Neighbors(v) {
			if s.present.Contains(uint32(u)) {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy of s, safe to mutate independently.
// Complexity: O(n)
func (s *Solution) Clone() *Solution {
	c := &Solution{
		g:        s.g,
		members:  append([]int(nil), s.members...),
		index:    append([]int(nil), s.index...),
		conflict: append([]int(nil), s.conflict...),
		present:  s.present.Clone(),
	}
	return c
}

// Reset empties the solution in place without reallocating its backing
// arrays, as when an ant is reused across iterations.
// Complexity: O(n)
func (s *Solution) Reset() {
	s.members = s.members[:0]
	for i := range s.index {
		s.index[i] = -1
	}
	for i := range s.conflict {
		s.conflict[i] = 0
	}
	s.present.Clear()
}
