package geometry

import (
	"fmt"
	"math"

	"github.com/tensorwerk/geodyn/internal/compute"
	"github.com/tensorwerk/geodyn/internal/tensor"
)

// Vector4 is a four-component vector: one time and three spatial
// components.
type Vector4 [4]float64

// Point is a position on the manifold: one time coordinate plus three
// spatial coordinates.
type Point struct {
	T       float64
	Spatial [3]float64
}

// Vector returns the point as a flat four-vector.
func (p Point) Vector() Vector4 {
	return Vector4{p.T, p.Spatial[0], p.Spatial[1], p.Spatial[2]}
}

// flatMetric is the Minkowski metric diag(-1, +1, +1, +1), the default
// and the reference against which perturbations are measured.
var flatMetric = tensor.Tensor{
	-1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// Manifold owns the metric tensor and the derived curvature chain.
// UpdateMetric is the only mutator; every accessor recomputes its
// quantity lazily when the validity flag is down.
type Manifold struct {
	cons    Constants
	backend compute.Backend

	metric tensor.Tensor

	christoffel derived[tensor.Tensor]
	riemann     derived[tensor.Tensor]
	ricci       derived[tensor.Tensor]
	ricciScalar derived[float64]
}

// New creates a manifold with the default flat metric. All derived
// quantities start invalid.
func New(cons Constants, backend compute.Backend) *Manifold {
	return &Manifold{
		cons:    cons,
		backend: backend,
		metric:  flatMetric.Clone(),
	}
}

// Constants returns the coupling values the manifold was built with.
func (m *Manifold) Constants() Constants { return m.cons }

// Metric returns a copy of the current metric tensor.
func (m *Manifold) Metric() tensor.Tensor { return m.metric.Clone() }

// UpdateMetric recomputes every metric entry from a linearized
// weak-field approximation of the supplied density and flow
// observations, then invalidates the derived chain.
//
// The time-time component carries a Newtonian-like potential from the
// first density component; each spatial diagonal carries the same
// potential plus a flux-magnitude correction from the corresponding
// flow vector; off-diagonals carry the frame-dragging cross term of the
// two associated flow vectors, kept symmetric.
func (m *Manifold) UpdateMetric(density [4]float64, flow [4]Vector4) {
	c2 := m.cons.CLight * m.cons.CLight

	var potential [4]float64
	totalMass := 0.0
	for i := 0; i < 4; i++ {
		r := math.Sqrt(density[i] + m.cons.EpsilonLiquidity)
		potential[i] = -m.cons.GNewton * density[i] / r
		totalMass += density[i]
	}

	// g_00 = -(1 + 2*phi/c^2)
	m.metric[0] = -(1 + 2*potential[0]/c2)

	// g_ii = 1 - 2*phi/c^2 + flux correction
	for i := 1; i < 4; i++ {
		flux := 0.0
		for j := 0; j < 4; j++ {
			flux += flow[i][j] * flow[i][j]
		}
		flux = math.Sqrt(flux)
		m.metric[i*4+i] = 1 - 2*potential[i]/c2 + flux/(totalMass+m.cons.EpsilonLiquidity)
	}

	// Off-diagonal frame-dragging cross terms, symmetric.
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			cross := 0.0
			for k := 0; k < 4; k++ {
				cross += flow[i][k] * flow[j][k]
			}
			m.metric[i*4+j] = cross / c2
			m.metric[j*4+i] = m.metric[i*4+j]
		}
	}

	m.christoffel.invalidate()
	m.riemann.invalidate()
	m.ricci.invalidate()
	m.ricciScalar.invalidate()
}

// metricDerivative estimates the directional derivative of the metric
// along coordinate mu. The metric field is modeled as the flat
// background plus an exponentially varying perturbation
// h(x) = (g - eta) * exp(k . x), so the gradient at the sampled point
// is k_mu * (g - eta). A flat metric therefore has a zero gradient in
// every direction.
func (m *Manifold) metricDerivative(mu int) tensor.Tensor {
	d := tensor.New(4, 4)
	k := m.cons.GradientWave[mu]
	if k == 0 {
		return d
	}
	for i := range d {
		d[i] = k * (m.metric[i] - flatMetric[i])
	}
	return d
}

// ChristoffelSymbols returns the 64 connection coefficients
// Gamma^k_ij = 1/2 g^kl (d_j g_il + d_i g_jl - d_l g_ij),
// recomputing them if the cache is invalid. The returned slice is
// owned by the manifold; callers must not modify it.
func (m *Manifold) ChristoffelSymbols() (tensor.Tensor, error) {
	if m.christoffel.valid {
		return m.christoffel.value, nil
	}

	gInv, err := tensor.Invert4x4(m.metric)
	if err != nil {
		return nil, fmt.Errorf("geometry: metric not invertible: %w", err)
	}

	var dg [4][]float64
	for mu := 0; mu < 4; mu++ {
		dg[mu] = m.metricDerivative(mu)
	}

	gamma := m.backend.Christoffel(gInv, dg)
	return m.christoffel.set(gamma), nil
}

// RiemannTensor returns the 256 curvature components
// R^rho_sigma,mu,nu, recomputing them if the cache is invalid.
//
// The connection coefficients are sampled at a single spacetime point,
// so the two derivative terms of the full expression vanish and only
// the quadratic Gamma*Gamma terms contribute (static curvature model).
func (m *Manifold) RiemannTensor() (tensor.Tensor, error) {
	gamma, err := m.ChristoffelSymbols()
	if err != nil {
		return nil, err
	}
	if m.riemann.valid {
		return m.riemann.value, nil
	}

	return m.riemann.set(m.backend.RiemannQuadratic(gamma)), nil
}

// RicciTensor contracts the first and third Riemann indices:
// R_mu,nu = R^lambda_mu,lambda,nu.
func (m *Manifold) RicciTensor() (tensor.Tensor, error) {
	riemann, err := m.RiemannTensor()
	if err != nil {
		return nil, err
	}
	if m.ricci.valid {
		return m.ricci.value, nil
	}

	return m.ricci.set(m.backend.RicciContract(riemann)), nil
}

// RicciScalar fully contracts the Ricci tensor with the inverse
// metric: R = g^mu,nu R_mu,nu.
func (m *Manifold) RicciScalar() (float64, error) {
	ricci, err := m.RicciTensor()
	if err != nil {
		return 0, err
	}
	if m.ricciScalar.valid {
		return m.ricciScalar.value, nil
	}

	gInv, err := tensor.Invert4x4(m.metric)
	if err != nil {
		return 0, fmt.Errorf("geometry: metric not invertible: %w", err)
	}

	return m.ricciScalar.set(m.backend.ScalarContract(gInv, ricci)), nil
}
