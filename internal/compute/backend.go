package compute

import "fmt"

// Backend implements the contraction and reduction kernels used by the
// curvature derivation and the geodesic integrator. All slices are
// row-major flattened with the sizes noted per method. Implementations
// must be numerically equivalent to the scalar reference backend within
// floating-point tolerance, and must not retain or modify their inputs.
type Backend interface {
	Name() string
	Available() bool

	// MatMul4 multiplies two 4x4 matrices (16 components each).
	MatMul4(a, b []float64) []float64

	// Christoffel computes the 64 connection coefficients from the
	// inverse metric (16) and the four directional metric derivatives
	// (16 each).
	Christoffel(gInv []float64, dg [4][]float64) []float64

	// RiemannQuadratic computes the 256 curvature components from the
	// quadratic Christoffel terms (64 in).
	RiemannQuadratic(gamma []float64) []float64

	// RicciContract contracts the first and third Riemann indices
	// (256 in, 16 out).
	RicciContract(riemann []float64) []float64

	// ScalarContract fully contracts the Ricci tensor with the inverse
	// metric (16 and 16 in).
	ScalarContract(gInv, ricci []float64) float64

	// GeodesicAccel evaluates the geodesic force law
	// a^mu = -Gamma^mu_ab v^a v^b (64 and 4 in, 4 out).
	GeodesicAccel(gamma, vel []float64) []float64

	Cleanup()
}

// ByName constructs the backend with the given name. The cuda backend
// is returned even when no device is present; it falls back to scalar
// kernels and reports Available() == false.
func ByName(name string) (Backend, error) {
	switch name {
	case "scalar":
		return NewScalarBackend(), nil
	case "parallel":
		return NewParallelBackend(), nil
	case "cuda":
		return NewCUDABackend(), nil
	default:
		return nil, fmt.Errorf("compute: unknown backend %q", name)
	}
}

// AutoSelect returns the best available backend: CUDA when a device is
// present, otherwise the lane-parallel CPU backend.
func AutoSelect() Backend {
	cuda := NewCUDABackend()
	if cuda.Available() {
		return cuda
	}
	return NewParallelBackend()
}
