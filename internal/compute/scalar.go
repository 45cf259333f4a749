package compute

const dim = 4

// ScalarBackend is the reference implementation: plain nested loops,
// no parallelism. Every other backend is validated against it.
type ScalarBackend struct{}

func NewScalarBackend() *ScalarBackend { return &ScalarBackend{} }

func (s *ScalarBackend) Name() string    { return "scalar" }
func (s *ScalarBackend) Available() bool { return true }
func (s *ScalarBackend) Cleanup()        {}

func (s *ScalarBackend) MatMul4(a, b []float64) []float64 {
	c := make([]float64, dim*dim)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			sum := 0.0
			for k := 0; k < dim; k++ {
				sum += a[i*dim+k] * b[k*dim+j]
			}
			c[i*dim+j] = sum
		}
	}
	return c
}

// Christoffel computes
// Gamma^k_ij = 1/2 g^kl (d_j g_il + d_i g_jl - d_l g_ij).
func (s *ScalarBackend) Christoffel(gInv []float64, dg [4][]float64) []float64 {
	gamma := make([]float64, dim*dim*dim)
	christoffelRange(gInv, dg, gamma, 0, dim)
	return gamma
}

func christoffelRange(gInv []float64, dg [4][]float64, gamma []float64, kStart, kEnd int) {
	for k := kStart; k < kEnd; k++ {
		for i := 0; i < dim; i++ {
			for j := 0; j < dim; j++ {
				sum := 0.0
				for l := 0; l < dim; l++ {
					term := dg[j][i*dim+l] + dg[i][j*dim+l] - dg[l][i*dim+j]
					sum += gInv[k*dim+l] * term
				}
				gamma[k*dim*dim+i*dim+j] = 0.5 * sum
			}
		}
	}
}

// RiemannQuadratic computes
// R^rho_sigma,mu,nu = Gamma^rho_mu,lambda Gamma^lambda_nu,sigma
//                   - Gamma^rho_nu,lambda Gamma^lambda_mu,sigma.
func (s *ScalarBackend) RiemannQuadratic(gamma []float64) []float64 {
	riemann := make([]float64, dim*dim*dim*dim)
	riemannRange(gamma, riemann, 0, dim)
	return riemann
}

func riemannRange(gamma, riemann []float64, rhoStart, rhoEnd int) {
	for rho := rhoStart; rho < rhoEnd; rho++ {
		for sigma := 0; sigma < dim; sigma++ {
			for mu := 0; mu < dim; mu++ {
				for nu := 0; nu < dim; nu++ {
					sum := 0.0
					for lambda := 0; lambda < dim; lambda++ {
						sum += gamma[rho*16+mu*dim+lambda] * gamma[lambda*16+nu*dim+sigma]
						sum -= gamma[rho*16+nu*dim+lambda] * gamma[lambda*16+mu*dim+sigma]
					}
					riemann[rho*64+sigma*16+mu*dim+nu] = sum
				}
			}
		}
	}
}

// RicciContract computes R_mu,nu = R^lambda_mu,lambda,nu.
func (s *ScalarBackend) RicciContract(riemann []float64) []float64 {
	ricci := make([]float64, dim*dim)
	for mu := 0; mu < dim; mu++ {
		for nu := 0; nu < dim; nu++ {
			sum := 0.0
			for lambda := 0; lambda < dim; lambda++ {
				sum += riemann[lambda*64+mu*16+lambda*dim+nu]
			}
			ricci[mu*dim+nu] = sum
		}
	}
	return ricci
}

// ScalarContract computes R = g^mu,nu R_mu,nu.
func (s *ScalarBackend) ScalarContract(gInv, ricci []float64) float64 {
	sum := 0.0
	for i := 0; i < dim*dim; i++ {
		sum += gInv[i] * ricci[i]
	}
	return sum
}

// GeodesicAccel computes a^mu = -Gamma^mu_ab v^a v^b.
func (s *ScalarBackend) GeodesicAccel(gamma, vel []float64) []float64 {
	accel := make([]float64, dim)
	for mu := 0; mu < dim; mu++ {
		sum := 0.0
		for alpha := 0; alpha < dim; alpha++ {
			for beta := 0; beta < dim; beta++ {
				sum += gamma[mu*16+alpha*dim+beta] * vel[alpha] * vel[beta]
			}
		}
		accel[mu] = -sum
	}
	return accel
}
