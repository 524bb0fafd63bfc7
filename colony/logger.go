package colony

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with colony-specific convenience methods. The
// zero value is not usable; construct with NewTextLogger or NoopLogger.
type Logger struct {
	*slog.Logger
}

// NewTextLogger returns a Logger writing human-readable text to stderr at
// the given level.
func NewTextLogger(level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))}
}

// NoopLogger returns a Logger that discards everything. This is the default
// used when Config.Logger is nil, so the library stays silent unless the
// caller opts into verbose output.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable
	}))}
}

// LogIteration reports a new global-best size found at the given iteration.
// Callers should only invoke this when the global best actually improved,
// matching the original's `if (verbose) printf("New best size: ...")` guard.
func (l *Logger) LogIteration(iteration, iterationBest, globalBest int, elapsed float64) {
	l.Info("new best size",
		"iteration", iteration,
		"iteration_best", iterationBest,
		"global_best", globalBest,
		"elapsed_s", elapsed,
	)
}

// LogSummary reports the final result of a colony run.
func (l *Logger) LogSummary(result Result, elapsed float64) {
	l.Info("run completed",
		"best_size", result.BestSize,
		"iterations", result.Iterations,
		"elapsed_s", elapsed,
	)
}
