package pheromone

// Flat is the plain-array pheromone backend. Weighted sampling over Flat is
// O(n) per draw (done by callers in package ant, not here — Flat only
// stores and mutates trails).
type Flat struct {
	tau    []float64
	rho    float64
	tauMin float64
	tauMax float64
}

// NewFlat allocates a Flat store with n leaves, all initialized to tauMax.
// Complexity: O(n)
func NewFlat(n int, rho, tauMin, tauMax float64) *Flat {
	tau := make([]float64, n)
	for i := range tau {
		tau[i] = tauMax
	}
	return &Flat{tau: tau, rho: rho, tauMin: tauMin, tauMax: tauMax}
}

func (f *Flat) N() int { return len(f.tau) }

func (f *Flat) Get(v int) float64 { return f.tau[v] }

func (f *Flat) TauMin() float64 { return f.tauMin }
func (f *Flat) TauMax() float64 { return f.tauMax }

// Deposit clamps to TauMax.
func (f *Flat) Deposit(v int, amount float64) {
	f.tau[v] += amount
	if f.tau[v] > f.tauMax {
		f.tau[v] = f.tauMax
	}
}

// Evaporate multiplies every trail by (1-rho), clamped to TauMin.
// Complexity: O(n)
func (f *Flat) Evaporate() {
	for i := range f.tau {
		f.tau[i] *= 1 - f.rho
		if f.tau[i] < f.tauMin {
			f.tau[i] = f.tauMin
		}
	}
}

// Invalidate sets v's trail to the sentinel 0 (local masking only).
func (f *Flat) Invalidate(v int) { f.tau[v] = 0 }

// InvalidateMany invalidates every vertex in vs.
func (f *Flat) InvalidateMany(vs []int) {
	for _, v := range vs {
		f.tau[v] = 0
	}
}

// Set assigns value to v's trail, clamped to [TauMin, TauMax].
func (f *Flat) Set(v int, value float64) {
	if value < f.tauMin {
		value = f.tauMin
	} else if value > f.tauMax {
		value = f.tauMax
	}
	f.tau[v] = value
}

// Clone returns a deep, independent copy.
func (f *Flat) Clone() Store {
	return &Flat{
		tau:    append([]float64(nil), f.tau...),
		rho:    f.rho,
		tauMin: f.tauMin,
		tauMax: f.tauMax,
	}
}
