package solvers

import (
	"fmt"
	"math"

	"github.com/tensorwerk/geodyn/internal/compute"
	"github.com/tensorwerk/geodyn/internal/geometry"
)

// velocityEpsilon is the smallest metric norm accepted when normalizing
// the initial 4-velocity. Null and near-null vectors cannot span a
// timelike worldline.
const velocityEpsilon = 1e-12

// GeodesicSolver integrates the geodesic equation
//
//	d(position)/dtau   = velocity
//	d(velocity)^mu/dtau = -Gamma^mu_ab velocity^a velocity^b
//
// on a manifold, using either integration strategy. The second-order
// equation is re-expressed as eight coupled first-order equations.
type GeodesicSolver struct {
	manifold *geometry.Manifold
	strategy Strategy
	backend  compute.Backend
}

func NewGeodesicSolver(m *geometry.Manifold, strategy Strategy, backend compute.Backend) *GeodesicSolver {
	return &GeodesicSolver{manifold: m, strategy: strategy, backend: backend}
}

// Solve normalizes the initial 4-velocity so the metric contraction
// g_mu,nu u^mu u^nu has magnitude 1 (timelike-worldline
// normalization), then integrates across the parameter range starting
// at tau = 0. The Christoffel symbols are derived from the manifold's
// current metric and act as the force law for the whole run.
func (g *GeodesicSolver) Solve(start geometry.Point, velocity geometry.Vector4, paramRange float64) (Path, error) {
	gamma, err := g.manifold.ChristoffelSymbols()
	if err != nil {
		return Path{}, fmt.Errorf("solvers: deriving force law: %w", err)
	}

	normalized, err := g.normalize(velocity)
	if err != nil {
		return Path{}, err
	}

	rhs := func(tau float64, y State) State {
		accel := g.backend.GeodesicAccel(gamma, y[4:8])

		dy := make(State, 8)
		for i := 0; i < 4; i++ {
			dy[i] = y[4+i]
			dy[4+i] = accel[i]
		}
		return dy
	}

	y0 := make(State, 8)
	y0[0] = start.T
	y0[1], y0[2], y0[3] = start.Spatial[0], start.Spatial[1], start.Spatial[2]
	for i := 0; i < 4; i++ {
		y0[4+i] = normalized[i]
	}

	return g.strategy.Solve(rhs, y0, 0, paramRange), nil
}

// normalize scales the 4-velocity so |g_mu,nu u^mu u^nu| = 1.
func (g *GeodesicSolver) normalize(velocity geometry.Vector4) (geometry.Vector4, error) {
	metric := g.manifold.Metric()

	norm := 0.0
	for mu := 0; mu < 4; mu++ {
		for nu := 0; nu < 4; nu++ {
			norm += metric[mu*4+nu] * velocity[mu] * velocity[nu]
		}
	}

	norm = math.Sqrt(math.Abs(norm))
	if norm < velocityEpsilon {
		return geometry.Vector4{}, ErrDegenerateVelocity
	}

	var result geometry.Vector4
	for i := 0; i < 4; i++ {
		result[i] = velocity[i] / norm
	}
	return result, nil
}

// PathPoints converts the position components of every sample into
// manifold points, in order.
func PathPoints(p Path) []geometry.Point {
	points := make([]geometry.Point, len(p.Samples))
	for i, s := range p.Samples {
		points[i] = geometry.Point{
			T:       s.State[0],
			Spatial: [3]float64{s.State[1], s.State[2], s.State[3]},
		}
	}
	return points
}
