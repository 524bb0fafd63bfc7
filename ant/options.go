package ant

// Option customizes a Config by mutating it before an Ant is constructed.
// Options are applied in order; later options win over earlier ones.
type Option func(*Config)

// Deterministic defaults (named, no magic numbers). Gamma and Delta default
// to 0, which disables the degeneracy and conflict heuristics respectively.
const (
	DefaultAlpha = 1.0
	DefaultBeta  = 2.0
	DefaultGamma = 0.0
	DefaultDelta = 0.0
)

// NewConfig builds a Config starting from the deterministic defaults above
// and applies opts in order (last-wins).
// Complexity: O(len(opts)) time, O(1) space.
func NewConfig(opts ...Option) Config {
	cfg := Config{
		Alpha: DefaultAlpha,
		Beta:  DefaultBeta,
		Gamma: DefaultGamma,
		Delta: DefaultDelta,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
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
