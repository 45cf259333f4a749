package compute

import (
	"runtime"
	"sync"
)

// ParallelBackend runs the large kernels on goroutine lanes over
// disjoint output ranges. No mutable state is shared across lanes, so
// every public call is still call-and-return with no observable
// partial results. The small kernels stay serial; fan-out overhead
// exceeds the work for a handful of output slots.
type ParallelBackend struct {
	scalar  ScalarBackend
	workers int
}

func NewParallelBackend() *ParallelBackend {
	return &ParallelBackend{workers: runtime.NumCPU()}
}

func (p *ParallelBackend) Name() string    { return "parallel" }
func (p *ParallelBackend) Available() bool { return true }
func (p *ParallelBackend) Cleanup()        {}

func (p *ParallelBackend) MatMul4(a, b []float64) []float64 {
	return p.scalar.MatMul4(a, b)
}

func (p *ParallelBackend) Christoffel(gInv []float64, dg [4][]float64) []float64 {
	gamma := make([]float64, dim*dim*dim)
	p.parallelFor(dim, func(start, end int) {
		christoffelRange(gInv, dg, gamma, start, end)
	})
	return gamma
}

func (p *ParallelBackend) RiemannQuadratic(gamma []float64) []float64 {
	riemann := make([]float64, dim*dim*dim*dim)
	p.parallelFor(dim, func(start, end int) {
		riemannRange(gamma, riemann, start, end)
	})
	return riemann
}

func (p *ParallelBackend) RicciContract(riemann []float64) []float64 {
	return p.scalar.RicciContract(riemann)
}

func (p *ParallelBackend) ScalarContract(gInv, ricci []float64) float64 {
	return p.scalar.ScalarContract(gInv, ricci)
}

func (p *ParallelBackend) GeodesicAccel(gamma, vel []float64) []float64 {
	return p.scalar.GeodesicAccel(gamma, vel)
}

// parallelFor splits [0, n) into chunks and runs fn on each chunk in
// its own goroutine. Chunks never overlap.
func (p *ParallelBackend) parallelFor(n int, fn func(start, end int)) {
	workers := p.workers
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		fn(0, n)
		return
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if start >= n {
			break
		}
		if end > n {
			end = n
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}
