package colony

import "errors"

// ErrInvalidAnts indicates Config.Ants <= 0.
var ErrInvalidAnts = errors.New("colony: Ants must be positive")

// ErrInvalidTimeLimit indicates Config.TimeLimit <= 0.
var ErrInvalidTimeLimit = errors.New("colony: TimeLimit must be positive")

// ErrInvalidRho indicates Config.Rho is outside (0,1].
var ErrInvalidRho = errors.New("colony: Rho must be in (0,1]")

// ErrInvalidTauBounds indicates Config.TauMin/TauMax fail 0 < TauMin < TauMax.
var ErrInvalidTauBounds = errors.New("colony: TauMin/TauMax out of order")

// ErrInvalidExponent indicates a negative Alpha/Beta/Gamma/Delta exponent.
var ErrInvalidExponent = errors.New("colony: exponents must be non-negative")
