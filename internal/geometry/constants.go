package geometry

// Constants collects the physical coupling values used across the
// curvature pipeline. The struct is immutable by convention: it is
// copied into each component at construction and never mutated after.
type Constants struct {
	// CLight is the causal propagation speed appearing in the
	// weak-field metric perturbations.
	CLight float64

	// GNewton is the gravitational coupling between density and the
	// Newtonian-like potential.
	GNewton float64

	// EpsilonLiquidity regularizes divisions by near-zero density.
	EpsilonLiquidity float64

	// SingularityThreshold is the Ricci-scalar magnitude above which a
	// singularity event is reported.
	SingularityThreshold float64

	// GradientWave holds the per-direction wave numbers used to
	// estimate the metric gradient from the weak-field perturbation.
	GradientWave [4]float64
}

// DefaultConstants returns physical SI-scale values with the standard
// detection threshold.
func DefaultConstants() Constants {
	return Constants{
		CLight:               299792458.0,
		GNewton:              6.67430e-11,
		EpsilonLiquidity:     1e-6,
		SingularityThreshold: 0.95,
		GradientWave:         [4]float64{1, 1, 1, 1},
	}
}

// GeometrizedConstants returns unit couplings (c = G = 1), convenient
// for exercising strong-curvature regimes.
func GeometrizedConstants() Constants {
	c := DefaultConstants()
	c.CLight = 1
	c.GNewton = 1
	return c
}
