package tensor

import "math"

// pivotEpsilon is the smallest pivot magnitude accepted during
// elimination. Anything below it is treated as a zero pivot.
const pivotEpsilon = 1e-10

// Invert4x4 inverts a 4x4 matrix by Gauss-Jordan elimination with
// partial pivoting. Returns ErrSingularMatrix when the best available
// pivot is below epsilon.
func Invert4x4(m Tensor) (Tensor, error) {
	work := m.Clone()
	inv := New(Dim, Dim)
	for i := 0; i < Dim; i++ {
		inv[i*Dim+i] = 1.0
	}

	for i := 0; i < Dim; i++ {
		pivot := i
		for j := i + 1; j < Dim; j++ {
			if math.Abs(work[j*Dim+i]) > math.Abs(work[pivot*Dim+i]) {
				pivot = j
			}
		}

		if pivot != i {
			for k := 0; k < Dim; k++ {
				work[i*Dim+k], work[pivot*Dim+k] = work[pivot*Dim+k], work[i*Dim+k]
				inv[i*Dim+k], inv[pivot*Dim+k] = inv[pivot*Dim+k], inv[i*Dim+k]
			}
		}

		pivotVal := work[i*Dim+i]
		if math.Abs(pivotVal) < pivotEpsilon {
			return nil, ErrSingularMatrix
		}

		for k := 0; k < Dim; k++ {
			work[i*Dim+k] /= pivotVal
			inv[i*Dim+k] /= pivotVal
		}

		for j := 0; j < Dim; j++ {
			if j == i {
				continue
			}
			factor := work[j*Dim+i]
			for k := 0; k < Dim; k++ {
				work[j*Dim+k] -= factor * work[i*Dim+k]
				inv[j*Dim+k] -= factor * inv[i*Dim+k]
			}
		}
	}

	return inv, nil
}

// Determinant4x4 computes the determinant of a 4x4 matrix by cofactor
// expansion along the first row.
func Determinant4x4(m Tensor) float64 {
	det := 0.0
	for j := 0; j < Dim; j++ {
		minor := minor3x3(m, 0, j)
		sign := 1.0
		if j%2 == 1 {
			sign = -1.0
		}
		det += sign * m[j] * minor
	}
	return det
}

// minor3x3 computes the determinant of the 3x3 submatrix obtained by
// deleting rowSkip and colSkip.
func minor3x3(m Tensor, rowSkip, colSkip int) float64 {
	var sub [9]float64
	n := 0
	for i := 0; i < Dim; i++ {
		if i == rowSkip {
			continue
		}
		for j := 0; j < Dim; j++ {
			if j == colSkip {
				continue
			}
			sub[n] = m[i*Dim+j]
			n++
		}
	}

	return sub[0]*(sub[4]*sub[8]-sub[5]*sub[7]) -
		sub[1]*(sub[3]*sub[8]-sub[5]*sub[6]) +
		sub[2]*(sub[3]*sub[7]-sub[4]*sub[6])
}
