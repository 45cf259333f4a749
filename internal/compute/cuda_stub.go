//go:build !cuda

package compute

// CUDABackend stub for builds without CUDA support. All kernels fall
// back to the scalar reference implementation.
type CUDABackend struct {
	scalar ScalarBackend
}

func NewCUDABackend() *CUDABackend { return &CUDABackend{} }

func (c *CUDABackend) Name() string    { return "cuda (not available)" }
func (c *CUDABackend) Available() bool { return false }
func (c *CUDABackend) Cleanup()        {}

func (c *CUDABackend) MatMul4(a, b []float64) []float64 {
	return c.scalar.MatMul4(a, b)
}

func (c *CUDABackend) Christoffel(gInv []float64, dg [4][]float64) []float64 {
	return c.scalar.Christoffel(gInv, dg)
}

func (c *CUDABackend) RiemannQuadratic(gamma []float64) []float64 {
	return c.scalar.RiemannQuadratic(gamma)
}

func (c *CUDABackend) RicciContract(riemann []float64) []float64 {
	return c.scalar.RicciContract(riemann)
}

func (c *CUDABackend) ScalarContract(gInv, ricci []float64) float64 {
	return c.scalar.ScalarContract(gInv, ricci)
}

func (c *CUDABackend) GeodesicAccel(gamma, vel []float64) []float64 {
	return c.scalar.GeodesicAccel(gamma, vel)
}
