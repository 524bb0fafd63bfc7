// Package colony implements the MMAS (Max-Min Ant System) orchestrator: a
// time-bounded loop that builds a colony of ant.Ant over a shared
// pheromone.Store, tracks the iteration-best and global-best
// solution.Solution, and applies the MMAS deposit/evaporate update rule.
//
// Complexity per iteration: O(Ants * construction cost), construction cost
// being ant.Ant.ConstructSolution's bound; O(n) for evaporation.
package colony

import (
	"context"
	cryptorand "crypto/rand"
	"encoding/binary"
	"fmt"
	mrand "math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gopheraco/mmas-misp/ant"
	"github.com/gopheraco/mmas-misp/graph"
	"github.com/gopheraco/mmas-misp/localsearch"
	"github.com/gopheraco/mmas-misp/pheromone"
)

// DefaultSeed is the fixed seed used by NewSeededRand, matching the
// RANDOM_SEED constant the original pheromone tree implementation used for
// reproducible runs.
const DefaultSeed = 42

// NewSeededRand returns a *rand.Rand seeded deterministically, for
// reproducible runs.
func NewSeededRand(seed int64) *mrand.Rand {
	return mrand.New(mrand.NewSource(seed))
}

// NewEntropyRand returns a *rand.Rand seeded from crypto/rand, for
// non-reproducible production runs.
func NewEntropyRand() *mrand.Rand {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		return mrand.New(mrand.NewSource(time.Now().UnixNano()))
	}
	seed := int64(binary.LittleEndian.Uint64(buf[:]))
	return mrand.New(mrand.NewSource(seed))
}

// Config holds every MMAS parameter. TimeLimit, Ants, Rho, TauMin and TauMax
// have no valid zero value and must be set by the caller; Run validates them
// (and rejects negative exponents) before starting the loop.
type Config struct {
	TimeLimit time.Duration // wall-clock budget
	Ants      int           // colony size, must be > 0

	Alpha float64 // pheromone influence exponent
	Beta  float64 // degree heuristic influence exponent
	Gamma float64 // degeneracy heuristic influence exponent (0 disables)
	Delta float64 // conflict heuristic influence exponent (0 disables)

	Rho    float64 // evaporation rate, in (0,1]
	TauMin float64 // MMAS lower bound, must be > 0
	TauMax float64 // MMAS upper bound, must be > TauMin

	LocalSearchBudget int // 0 disables local search
	Parallelism       int // 0 = sequential ant construction (the contract)

	Rand   *mrand.Rand // master RNG; derives one child RNG per ant
	Logger *Logger     // nil defaults to NoopLogger
}

// Result is the outcome of one colony.Run call.
type Result struct {
	BestSize    int
	BestMembers []int
	Iterations  int
}

func (c Config) validate() error {
	if c.Ants <= 0 {
		return fmt.Errorf("colony: Config.Ants=%d: %w", c.Ants, ErrInvalidAnts)
	}
	if c.TimeLimit <= 0 {
		return fmt.Errorf("colony: Config.TimeLimit=%s: %w", c.TimeLimit, ErrInvalidTimeLimit)
	}
	if c.Rho <= 0 || c.Rho > 1 {
		return fmt.Errorf("colony: Config.Rho=%g: %w", c.Rho, ErrInvalidRho)
	}
	if !(c.TauMin > 0 && c.TauMin < c.TauMax) {
		return fmt.Errorf("colony: Config.TauMin=%g TauMax=%g: %w", c.TauMin, c.TauMax, ErrInvalidTauBounds)
	}
	if c.Alpha < 0 || c.Beta < 0 || c.Gamma < 0 || c.Delta < 0 {
		return fmt.Errorf("colony: negative exponent: %w", ErrInvalidExponent)
	}
	return nil
}

// Run executes the MMAS loop over g until cfg.TimeLimit elapses, returning
// the best independent set found.
//
// Each iteration: every ant constructs a candidate solution (optionally in
// parallel, bounded by cfg.Parallelism), local search improves it in place
// when cfg.LocalSearchBudget > 0, the iteration-best (first ant reaching the
// largest size — smallest-index tie-break) deposits pheromone onto the
// global store, every ant is reset against the updated global store, and
// the global store evaporates.
func Run(g *graph.Graph, cfg Config) (Result, error) {
	if err := cfg.validate(); err != nil {
		return Result{}, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = NoopLogger()
	}

	master := cfg.Rand
	if master == nil {
		master = NewSeededRand(DefaultSeed)
	}

	n := g.N()
	global := pheromone.New(n, cfg.Rho, cfg.TauMin, cfg.TauMax)

	antCfg := ant.NewConfig(ant.WithAlpha(cfg.Alpha), ant.WithBeta(cfg.Beta), ant.WithGamma(cfg.Gamma), ant.WithDelta(cfg.Delta))
	ants := make([]*ant.Ant, cfg.Ants)
	for i := range ants {
		ants[i] = ant.New(g, global, antCfg, mrand.New(mrand.NewSource(master.Int63())))
	}

	start := time.Now()
	iterations := 0
	globalBestSize := 0
	var globalBestMembers []int

	for time.Since(start) < cfg.TimeLimit {
		sizes, err := constructAll(ants, cfg.Parallelism, n, cfg.LocalSearchBudget)
		if err != nil {
			return Result{}, err
		}

		iterationBestSize := 0
		iterationBestAnt := 0
		improved := false
		for i, size := range sizes {
			if size > iterationBestSize {
				iterationBestSize = size
				iterationBestAnt = i
			}
			if size > globalBestSize {
				globalBestSize = size
				globalBestMembers = append(globalBestMembers[:0:0], ants[i].Solution().Members()...)
				improved = true
			}
		}

		ants[iterationBestAnt].DepositIntoGlobal(float64(iterationBestSize))

		for _, a := range ants {
			a.Reset()
		}
		global.Evaporate()

		iterations++
		if improved {
			logger.LogIteration(iterations, iterationBestSize, globalBestSize, time.Since(start).Seconds())
		}
	}

	result := Result{BestSize: globalBestSize, BestMembers: globalBestMembers, Iterations: iterations}
	logger.LogSummary(result, time.Since(start).Seconds())
	return result, nil
}

// constructAll builds every ant's candidate solution, applying local search
// when budget > 0, either sequentially or bounded by parallelism workers via
// errgroup. It returns each ant's final solution size in ant order.
func constructAll(ants []*ant.Ant, parallelism, n, budget int) ([]int, error) {
	sizes := make([]int, len(ants))

	if parallelism <= 1 {
		for i, a := range ants {
			a.ConstructSolution()
			if budget > 0 {
				localsearch.Run(a.Solution(), n, budget)
			}
			sizes[i] = a.Solution().Size()
		}
		return sizes, nil
	}

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(parallelism)
	for i, a := range ants {
		i, a := i, a
		g.Go(func() error {
			a.ConstructSolution()
			if budget > 0 {
				localsearch.Run(a.Solution(), n, budget)
			}
			sizes[i] = a.Solution().Size()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sizes, nil
}
