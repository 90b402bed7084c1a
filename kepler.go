package keplerian

import "math"

const (
	// keplerTolerance is the residual tolerance of the Kepler solver.
	keplerTolerance = 1e-3
	// keplerMaxIterations caps the Newton-Raphson iterations.
	keplerMaxIterations = 30
	// highEccentricity is the guess-selection threshold: above it the naive
	// initial guess E₀ = M may diverge, so the solver starts from π instead.
	highEccentricity = 0.8
)

// KeplerResult is the structured outcome of a Kepler equation solve. The last
// iterate is returned whether or not the solver converged; callers must check
// Converged rather than assume the tolerance was met.
type KeplerResult struct {
	E          float64 // eccentric anomaly in radians
	EDeg       float64 // eccentric anomaly in degrees
	Residual   float64 // |E − ecc·sin(E) − M| at the last iterate
	Iterations int
	Converged  bool
}

// SolveKepler finds the eccentric anomaly E satisfying Kepler's equation
// E − ecc·sin(E) = M via Newton-Raphson iteration. M must already be reduced
// to [0, 2π).
func SolveKepler(M, ecc float64) KeplerResult {
	E := M
	if ecc >= highEccentricity {
		E = math.Pi
	}
	F := E - ecc*math.Sin(E) - M
	var iter int
	for iter = 0; math.Abs(F) > keplerTolerance && iter < keplerMaxIterations; iter++ {
		E = E - F/(1-ecc*math.Cos(E))
		F = E - ecc*math.Sin(E) - M
	}
	return KeplerResult{E: E, EDeg: E / deg2rad, Residual: math.Abs(F), Iterations: iter, Converged: math.Abs(F) <= keplerTolerance}
}
