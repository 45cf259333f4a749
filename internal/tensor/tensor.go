// Package tensor provides dense multi-index algebra on small
// fixed-dimension arrays.
//
// Tensors are stored flattened in row-major order. All operations are
// pure functions: inputs are never modified and results are freshly
// allocated. The package does not validate component counts beyond what
// the operation needs; callers in this module always pass
// 4-dimensional data, so sizing is enforced by construction.
package tensor

// Dim is the manifold dimension. Everything in geodyn is 4-dimensional.
const Dim = 4

// Tensor is a dense, flattened multi-index array of components.
type Tensor []float64

// New allocates a zeroed tensor with the given dimensions.
func New(dims ...int) Tensor {
	n := 1
	for _, d := range dims {
		n *= d
	}
	return make(Tensor, n)
}

// Clone returns an independent copy.
func (t Tensor) Clone() Tensor {
	c := make(Tensor, len(t))
	copy(c, t)
	return c
}

// Product computes the outer product of a and b. The result holds
// every pairwise component product and has len(a)*len(b) entries.
func Product(a, b Tensor) Tensor {
	result := make(Tensor, 0, len(a)*len(b))
	for _, av := range a {
		for _, bv := range b {
			result = append(result, av*bv)
		}
	}
	return result
}

// Contract computes C[i,j] = sum_k A[i,k] * B[k,j] for square
// rank x rank inputs contracted over contractionDim shared indices.
// Inputs must be equal-sized.
func Contract(a, b Tensor, rank, contractionDim int) Tensor {
	c := make(Tensor, len(a))
	for i := 0; i < rank; i++ {
		for j := 0; j < rank; j++ {
			sum := 0.0
			for k := 0; k < contractionDim; k++ {
				sum += a[i*contractionDim+k] * b[k*rank+j]
			}
			c[i*rank+j] = sum
		}
	}
	return c
}

// Trace sums the diagonal of a dim x dim matrix.
func Trace(a Tensor, dim int) float64 {
	sum := 0.0
	for i := 0; i < dim; i++ {
		sum += a[i*dim+i]
	}
	return sum
}

// RaiseIndex contracts a rank-2 tensor with the inverse metric:
// T^mu_nu = g^{mu lambda} T_{lambda nu}.
func RaiseIndex(lower, gInv Tensor, dim int) Tensor {
	result := make(Tensor, len(lower))
	for mu := 0; mu < dim; mu++ {
		for nu := 0; nu < dim; nu++ {
			sum := 0.0
			for lambda := 0; lambda < dim; lambda++ {
				sum += gInv[mu*dim+lambda] * lower[lambda*dim+nu]
			}
			result[mu*dim+nu] = sum
		}
	}
	return result
}

// LowerIndex contracts a rank-2 tensor with the metric:
// T_mu^nu = g_{mu lambda} T^{lambda nu}.
func LowerIndex(upper, g Tensor, dim int) Tensor {
	result := make(Tensor, len(upper))
	for mu := 0; mu < dim; mu++ {
		for nu := 0; nu < dim; nu++ {
			sum := 0.0
			for lambda := 0; lambda < dim; lambda++ {
				sum += g[mu*dim+lambda] * upper[lambda*dim+nu]
			}
			result[mu*dim+nu] = sum
		}
	}
	return result
}
