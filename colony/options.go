package colony

import (
	mrand "math/rand"
	"time"
)

// Option customizes a Config by mutating it before Run validates it.
// Options are applied in order; later options win over earlier ones.
type Option func(*Config)

// Deterministic defaults, matching the original benchmark harness's MMAS
// parameters. Gamma and Delta default to 0, which disables the degeneracy
// and conflict heuristics respectively. Rand and Logger are left nil here;
// Run resolves a nil Rand to NewSeededRand(DefaultSeed) and a nil Logger to
// NoopLogger, so NewConfig's zero value for those fields is itself the
// documented default.
const (
	DefaultTimeLimit = 10 * time.Second
	DefaultAnts      = 10
	DefaultAlpha     = 1.0
	DefaultBeta      = 2.0
	DefaultGamma     = 0.0
	DefaultDelta     = 0.0
	DefaultRho       = 0.02
	DefaultTauMin    = 1.0
	DefaultTauMax    = 100.0
)

// NewConfig builds a Config starting from the deterministic defaults above
// and applies opts in order (last-wins).
// Complexity: O(len(opts)) time, O(1) space.
func NewConfig(opts ...Option) Config {
	cfg := Config{
		TimeLimit: DefaultTimeLimit,
		Ants:      DefaultAnts,
		Alpha:     DefaultAlpha,
		Beta:      DefaultBeta,
		Gamma:     DefaultGamma,
		Delta:     DefaultDelta,
		Rho:       DefaultRho,
		TauMin:    DefaultTauMin,
		TauMax:    DefaultTauMax,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithTimeLimit sets the wall-clock budget for the MMAS loop.
func WithTimeLimit(d time.Duration) Option {
	return func(c *Config) { c.TimeLimit = d }
}

// WithAnts sets the colony size.
func WithAnts(ants int) Option {
	return func(c *Config) { c.Ants = ants }
}

// WithAlpha sets the pheromone influence exponent.
func WithAlpha(alpha float64) Option {
	return func(c *Config) { c.Alpha = alpha }
}

// WithBeta sets the degree heuristic influence exponent.
func WithBeta(beta float64) Option {
	return func(c *Config) { c.Beta = beta }
}

// WithGamma sets the degeneracy heuristic influence exponent. 0 disables it.
func WithGamma(gamma float64) Option {
	return func(c *Config) { c.Gamma = gamma }
}

// WithDelta sets the conflict heuristic influence exponent. 0 disables it.
func WithDelta(delta float64) Option {
	return func(c *Config) { c.Delta = delta }
}

// WithRho sets the evaporation rate, in (0,1].
func WithRho(rho float64) Option {
	return func(c *Config) { c.Rho = rho }
}

// WithTauBounds sets the MMAS pheromone lower and upper bounds together,
// since Run rejects them unless min < max.
func WithTauBounds(min, max float64) Option {
	return func(c *Config) { c.TauMin, c.TauMax = min, max }
}

// WithLocalSearchBudget sets the per-ant local search budget. 0 disables it.
func WithLocalSearchBudget(budget int) Option {
	return func(c *Config) { c.LocalSearchBudget = budget }
}

// WithParallelism sets the number of ants constructed concurrently. 0 or 1
// means sequential construction.
func WithParallelism(parallelism int) Option {
	return func(c *Config) { c.Parallelism = parallelism }
}

// WithRand sets the master RNG from which each ant's child RNG is derived.
// Panics on nil; prefer NewSeededRand for reproducible runs.
func WithRand(r *mrand.Rand) Option {
	if r == nil {
		panic("colony: WithRand(nil)")
	}
	return func(c *Config) { c.Rand = r }
}

// WithLogger sets the Logger used for per-iteration and summary output.
func WithLogger(l *Logger) Option {
	return func(c *Config) { c.Logger = l }
}
