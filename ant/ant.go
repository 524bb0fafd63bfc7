package ant

import (
	"math"
	"math/rand"

	"github.com/gopheraco/mmas-misp/graph"
	"github.com/gopheraco/mmas-misp/pheromone"
	"github.com/gopheraco/mmas-misp/solution"
)

// Config holds the exponents governing an Ant's selection weight
// w(v) = tau_local[v]^Alpha * hDeg[v]^Beta-derived * hCore[v] * hConf(v).
// Gamma and Delta default to 0 (disabled, legacy-compatible) when zero.
type Config struct {
	Alpha float64 // pheromone influence exponent
	Beta  float64 // degree heuristic influence exponent
	Gamma float64 // degeneracy heuristic influence exponent (0 disables)
	Delta float64 // conflict heuristic influence exponent (0 disables)
}

// Ant owns one candidate solution's construction state: a local pheromone
// snapshot cloned from the colony's global store, precomputed static
// heuristic caches, and the incremental solution.Solution it builds into.
type Ant struct {
	g      *graph.Graph
	global pheromone.Store
	local  pheromone.Store
	sol    *solution.Solution
	cfg    Config
	rng    *rand.Rand

	hDeg  []float64
	hCore []float64

	candidates []int
	weights    []float64
}

// New creates an Ant sharing g and global, with its own local pheromone
// snapshot (a fresh clone of global) and its own RNG. Heuristic caches are
// computed once here and never change for the Ant's lifetime.
// Complexity: O(n)
func New(g *graph.Graph, global pheromone.Store, cfg Config, rng *rand.Rand) *Ant {
	n := g.N()
	a := &Ant{
		g:          g,
		global:     global,
		local:      global.Clone(),
		sol:        solution.New(g),
		cfg:        cfg,
		rng:        rng,
		hDeg:       make([]float64, n),
		hCore:      make([]float64, n),
		candidates: make([]int, 0, n),
		weights:    make([]float64, 0, n),
	}

	for v := 0; v < n; v++ {
		if cfg.Beta != 0 {
			a.hDeg[v] = 1.0 / math.Pow(1+float64(g.Degree(v)), cfg.Beta)
		} else {
			a.hDeg[v] = 1.0
		}

		if cfg.Gamma != 0 && g.HasDegeneracy() {
			core, _ := g.Degeneracy(v)
			a.hCore[v] = 1.0 / math.Pow(1+float64(core), cfg.Gamma)
		} else {
			a.hCore[v] = 1.0
		}
	}

	return a
}

// Solution exposes the ant's current solution state.
func (a *Ant) Solution() *solution.Solution { return a.sol }

// Reset restores the local pheromone snapshot to the global store's
// current values and empties the solution, ready for the next iteration.
// Complexity: O(n)
func (a *Ant) Reset() {
	a.local = a.global.Clone()
	a.sol.Reset()
}

// hConf computes the dynamic conflict heuristic for v from the solution's
// current conflict count. Always 1 when Delta is 0.
func (a *Ant) hConf(v int) float64 {
	if a.cfg.Delta == 0 {
		return 1.0
	}
	c := a.sol.Conflict(v)
	if c < 0 {
		c = 0
	}
	return 1.0 / math.Pow(1+float64(c), a.cfg.Delta)
}

func (a *Ant) weight(v int, tau float64) float64 {
	return math.Pow(tau, a.cfg.Alpha) * a.hDeg[v] * a.hCore[v] * a.hConf(v)
}

// ConstructSolution builds one candidate independent set via roulette
// selection over a shrinking candidate set, masking the chosen vertex and
// its neighbors out of the local pheromone snapshot after every pick. It
// returns the constructed solution's size.
//
// Complexity: O(n) to seed the candidate list, then O(sum of per-round
// candidate counts) for the roulette rounds — the rebuild in step (e) below
// filters only the previous round's candidates, never rescanning [0,n).
func (a *Ant) ConstructSolution() int {
	n := a.g.N()
	a.candidates = a.candidates[:0]
	a.weights = a.weights[:0]
	for v := 0; v < n; v++ {
		tau := a.local.Get(v)
		if tau > 0 {
			a.candidates = append(a.candidates, v)
			a.weights = append(a.weights, a.weight(v, tau))
		}
	}

	for len(a.candidates) > 0 {
		total := 0.0
		for _, w := range a.weights {
			total += w
		}
		if total <= 0 {
			break
		}

		draw := a.rng.Float64() * total
		cumulative := 0.0
		selectedIdx := len(a.candidates) - 1
		for i, w := range a.weights {
			cumulative += w
			if draw <= cumulative {
				selectedIdx = i
				break
			}
		}

		selected := a.candidates[selectedIdx]
		if err := a.sol.Add(selected); err != nil {
			// Masking guarantees conflict==0 for every surviving candidate;
			// reaching here would indicate a contract violation elsewhere.
			// Treat it as a clean stop rather than propagating a panic.
			break
		}

		a.local.Invalidate(selected)
		a.local.InvalidateMany(a.g.Neighbors(selected))

		// Rebuild from the previous candidate list only.
		newLen := 0
		for _, v := range a.candidates {
			tau := a.local.Get(v)
			if tau > 0 {
				a.candidates[newLen] = v
				a.weights[newLen] = a.weight(v, tau)
				newLen++
			}
		}
		a.candidates = a.candidates[:newLen]
		a.weights = a.weights[:newLen]
	}

	return a.sol.Size()
}

// DepositIntoGlobal deposits amount onto the global pheromone store for
// every member of the ant's current solution.
// Complexity: O(solution size)
func (a *Ant) DepositIntoGlobal(amount float64) {
	for _, v := range a.sol.Members() {
		a.global.Deposit(v, amount)
	}
}
