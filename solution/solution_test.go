package solution

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopheraco/mmas-misp/graph"
)

func pathGraph(n int) *graph.Graph {
	g := graph.New(n)
	for i := 0; i+1 < n; i++ {
		g.PushEdge(i, i+1)
		g.PushEdge(i+1, i)
	}
	return g
}

func TestSolution_AddRemoveRoundTrip(t *testing.T) {
	g := pathGraph(5)
	s := New(g)

	require.NoError(t, s.Add(0))
	require.NoError(t, s.Add(2))
	assert.Equal(t, 2, s.Size())
	assert.Equal(t, -1, s.Conflict(0))
	assert.Equal(t, 2, s.Conflict(1)) // neighbors 0 and 2 are both members

	require.NoError(t, s.Remove(2))
	assert.Equal(t, 1, s.Conflict(1)) // neighbor 0 is still a member
	assert.Equal(t, 0, s.Conflict(2))
	assert.Equal(t, 1, s.Size())
	assert.True(t, s.IsMember(0))
	assert.False(t, s.IsMember(2))
}

func TestSolution_AddRejectsConflict(t *testing.T) {
	g := pathGraph(3)
	s := New(g)
	require.NoError(t, s.Add(0))
	err := s.Add(1) // neighbor of 0
	assert.True(t, errors.Is(err, ErrNotAddable))
}

func TestSolution_RemoveRejectsNonMember(t *testing.T) {
	g := pathGraph(3)
	s := New(g)
	err := s.Remove(1)
	assert.True(t, errors.Is(err, ErrNotMember))
}

func TestSolution_IsIndependent(t *testing.T) {
	g := pathGraph(5)
	s := New(g)
	require.NoError(t, s.Add(0))
	require.NoError(t, s.Add(2))
	require.NoError(t, s.Add(4))
	assert.True(t, s.IsIndependent())
}

func TestSolution_MemberNeighbor(t *testing.T) {
	// star: center 0, leaves 1..5
	g := graph.New(6)
	for i := 1; i <= 5; i++ {
		g.PushEdge(0, i)
		g.PushEdge(i, 0)
	}
	s := New(g)
	require.NoError(t, s.Add(0))

	u, ok := s.MemberNeighbor(1)
	require.True(t, ok)
	assert.Equal(t, 0, u)

	_, ok = s.MemberNeighbor(0)
	assert.False(t, ok)
}

func TestSolution_CloneIsIndependentCopy(t *testing.T) {
	g := pathGraph(5)
	s := New(g)
	require.NoError(t, s.Add(0))
	c := s.Clone()
	require.NoError(t, c.Add(2))

	assert.Equal(t, 1, s.Size())
	assert.Equal(t, 2, c.Size())
}

func TestSolution_Reset(t *testing.T) {
	g := pathGraph(5)
	s := New(g)
	require.NoError(t, s.Add(0))
	require.NoError(t, s.Add(2))
	s.Reset()
	assert.Equal(t, 0, s.Size())
	for v := 0; v < g.N(); v++ {
		assert.Equal(t, 0, s.Conflict(v))
		assert.False(t, s.IsMember(v))
	}
}
