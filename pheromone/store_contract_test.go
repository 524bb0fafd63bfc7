package pheromone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backends enumerates both Store implementations so the contract tests run
// against each identically.
func backends(n int, rho, tauMin, tauMax float64) map[string]Store {
	return map[string]Store{
		"flat": NewFlat(n, rho, tauMin, tauMax),
		"tree": NewTree(n, rho, tauMin, tauMax),
	}
}

func TestStore_InitializedToTauMax(t *testing.T) {
	for name, s := range backends(10, 0.1, 1, 100) {
		t.Run(name, func(t *testing.T) {
			for v := 0; v < 10; v++ {
				assert.Equal(t, 100.0, s.Get(v))
			}
		})
	}
}

func TestStore_EvaporateStaysInBounds(t *testing.T) {
	for name, s := range backends(5, 0.5, 1, 100) {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 20; i++ {
				s.Evaporate()
			}
			for v := 0; v < 5; v++ {
				got := s.Get(v)
				assert.GreaterOrEqual(t, got, 1.0)
				assert.LessOrEqual(t, got, 100.0)
			}
		})
	}
}

func TestStore_DepositClampsToTauMax(t *testing.T) {
	for name, s := range backends(5, 0.1, 1, 100) {
		t.Run(name, func(t *testing.T) {
			s.Deposit(0, 1000)
			assert.Equal(t, 100.0, s.Get(0))
		})
	}
}

func TestStore_InvalidateSetsZero(t *testing.T) {
	for name, s := range backends(5, 0.1, 1, 100) {
		t.Run(name, func(t *testing.T) {
			s.Invalidate(2)
			assert.Equal(t, 0.0, s.Get(2))
			s.InvalidateMany([]int{0, 1})
			assert.Equal(t, 0.0, s.Get(0))
			assert.Equal(t, 0.0, s.Get(1))
		})
	}
}

func TestStore_SetClampsToBounds(t *testing.T) {
	for name, s := range backends(5, 0.1, 1, 100) {
		t.Run(name, func(t *testing.T) {
			s.Set(0, 1000)
			assert.Equal(t, 100.0, s.Get(0))
			s.Set(0, -5)
			assert.Equal(t, 1.0, s.Get(0))
			s.Set(0, 42)
			assert.Equal(t, 42.0, s.Get(0))
		})
	}
}

func TestStore_CloneIsIndependent(t *testing.T) {
	for name, s := range backends(5, 0.1, 1, 100) {
		t.Run(name, func(t *testing.T) {
			c := s.Clone()
			c.Set(0, 42)
			assert.NotEqual(t, s.Get(0), c.Get(0))
		})
	}
}

func TestTree_InternalSumInvariant(t *testing.T) {
	tr := NewTree(7, 0.1, 1, 100)
	tr.Set(3, 50)
	tr.Deposit(1, 10)
	for i := 0; i < tr.treeSize/2; i++ {
		left, right := tr.leftChild(i), tr.rightChild(i)
		assert.Equal(t, tr.tau[left]+tr.tau[right], tr.tau[i])
	}
}

func TestTree_EmptyGraphNoSampling(t *testing.T) {
	tr := NewTree(0, 0.1, 1, 100)
	_, ok := tr.WeightedSample(newTestRand())
	assert.False(t, ok)
}

func TestTree_WeightedSampleAllZeroIsNoSelection(t *testing.T) {
	tr := NewTree(4, 0.1, 1, 100)
	for v := 0; v < 4; v++ {
		tr.Invalidate(v)
	}
	_, ok := tr.WeightedSample(newTestRand())
	assert.False(t, ok)
}

func TestTree_WeightedSampleBias(t *testing.T) {
	tr := NewTree(2, 0.1, 1, 100)
	tr.Set(0, 90)
	tr.Set(1, 10)

	rng := newTestRand()
	counts := make(map[int]int)
	const draws = 5000
	for i := 0; i < draws; i++ {
		v, ok := tr.WeightedSample(rng)
		require.True(t, ok)
		counts[v]++
	}

	// Expect roughly a 9:1 split; the tolerance is generous since this is a
	// single seeded run of a finite number of draws.
	frac0 := float64(counts[0]) / float64(draws)
	assert.InDelta(t, 0.9, frac0, 0.1)
}
