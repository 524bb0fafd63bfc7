package colony

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopheraco/mmas-misp/graph"
)

func undirected(n int, edges [][2]int) *graph.Graph {
	g := graph.New(n)
	for _, e := range edges {
		g.PushEdge(e[0], e[1])
		g.PushEdge(e[1], e[0])
	}
	return g
}

func baseConfig() Config {
	return Config{
		TimeLimit: 50 * time.Millisecond,
		Ants:      4,
		Alpha:     1,
		Beta:      2,
		Rho:       0.1,
		TauMin:    1,
		TauMax:    100,
		Rand:      NewSeededRand(DefaultSeed),
	}
}

func TestRun_RejectsInvalidConfig(t *testing.T) {
	cases := []struct {
		name string
		mod  func(c Config) Config
		want error
	}{
		{"ants", func(c Config) Config { c.Ants = 0; return c }, ErrInvalidAnts},
		{"time", func(c Config) Config { c.TimeLimit = 0; return c }, ErrInvalidTimeLimit},
		{"rho", func(c Config) Config { c.Rho = 0; return c }, ErrInvalidRho},
		{"tau", func(c Config) Config { c.TauMin = 10; c.TauMax = 1; return c }, ErrInvalidTauBounds},
		{"exponent", func(c Config) Config { c.Alpha = -1; return c }, ErrInvalidExponent},
	}
	g := undirected(3, [][2]int{{0, 1}})
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Run(g, tc.mod(baseConfig()))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want))
		})
	}
}

func TestRun_StarFindsOptimalSet(t *testing.T) {
	// K_{1,5}: center 0, leaves 1-5. Optimum is the 5 leaves.
	g := graph.New(6)
	for i := 1; i <= 5; i++ {
		g.PushEdge(0, i)
		g.PushEdge(i, 0)
	}

	cfg := baseConfig()
	cfg.LocalSearchBudget = 1
	result, err := Run(g, cfg)

	require.NoError(t, err)
	assert.Equal(t, 5, result.BestSize)
	assert.Len(t, result.BestMembers, 5)
	assert.Greater(t, result.Iterations, 0)
}

func TestRun_EdgelessGraphSelectsEveryVertex(t *testing.T) {
	g := graph.New(3) // no edges
	cfg := baseConfig()
	result, err := Run(g, cfg)

	require.NoError(t, err)
	assert.Equal(t, 3, result.BestSize)
}

// petersen builds the standard Petersen graph: an outer 5-cycle (0-4), an
// inner pentagram (5-9, step-2 connections), and five spokes joining each
// outer vertex to its corresponding inner vertex. 10 vertices, 15 edges,
// independence number 4.
func petersen() *graph.Graph {
	edges := [][2]int{
		// outer 5-cycle
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0},
		// inner pentagram
		{5, 7}, {7, 9}, {9, 6}, {6, 8}, {8, 5},
		// spokes
		{0, 5}, {1, 6}, {2, 7}, {3, 8}, {4, 9},
	}
	return undirected(10, edges)
}

func TestRun_PathFindsOptimalSet(t *testing.T) {
	// P5: 0-1-2-3-4. Optimum is {0,2,4}, size 3.
	g := undirected(5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}})

	cfg := baseConfig()
	cfg.LocalSearchBudget = 1
	result, err := Run(g, cfg)

	require.NoError(t, err)
	assert.Equal(t, 3, result.BestSize)
}

func TestRun_CycleFindsOptimalSet(t *testing.T) {
	// C6: 0-1-2-3-4-5-0. Optimum is {0,2,4}, size 3.
	g := undirected(6, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0}})

	cfg := baseConfig()
	cfg.LocalSearchBudget = 1
	result, err := Run(g, cfg)

	require.NoError(t, err)
	assert.Equal(t, 3, result.BestSize)
}

func TestRun_CompleteGraphFindsOptimalSet(t *testing.T) {
	// K4: every pair connected. Optimum is any single vertex, size 1.
	g := undirected(4, [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}})

	cfg := baseConfig()
	cfg.LocalSearchBudget = 1
	result, err := Run(g, cfg)

	require.NoError(t, err)
	assert.Equal(t, 1, result.BestSize)
}

func TestRun_TwoDisjointTrianglesFindOptimalSet(t *testing.T) {
	// Two disjoint triangles: {0,1,2} and {3,4,5}. Optimum is one vertex
	// per triangle, size 2.
	g := undirected(6, [][2]int{{0, 1}, {1, 2}, {0, 2}, {3, 4}, {4, 5}, {3, 5}})

	cfg := baseConfig()
	cfg.LocalSearchBudget = 1
	result, err := Run(g, cfg)

	require.NoError(t, err)
	assert.Equal(t, 2, result.BestSize)
}

func TestRun_PetersenFindsOptimalSetWithinBudget(t *testing.T) {
	g := petersen()

	cfg := baseConfig()
	cfg.TimeLimit = 5 * time.Second
	cfg.Ants = 10
	cfg.LocalSearchBudget = 1
	result, err := Run(g, cfg)

	require.NoError(t, err)
	assert.Equal(t, 4, result.BestSize)
}

func TestRun_ParallelMatchesSequentialBestSize(t *testing.T) {
	g := graph.New(6)
	for i := 1; i <= 5; i++ {
		g.PushEdge(0, i)
		g.PushEdge(i, 0)
	}

	seqCfg := baseConfig()
	seqCfg.LocalSearchBudget = 1
	seqResult, err := Run(g, seqCfg)
	require.NoError(t, err)

	parCfg := baseConfig()
	parCfg.LocalSearchBudget = 1
	parCfg.Parallelism = 2
	parResult, err := Run(g, parCfg)
	require.NoError(t, err)

	assert.Equal(t, seqResult.BestSize, parResult.BestSize)
}
