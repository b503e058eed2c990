package sparse

import "gonum.org/v1/gonum/mat"

// gonum's mat.Matrix satisfies View[float64], so gonum dense matrices
// feed CSRFromDense/CSCFromDense directly; the helpers below cover the
// common float64 round trip.

// FromDense creates a CSR matrix from a gonum dense matrix,
// retaining the entries whose absolute value strictly exceeds epsilon.
// A negative epsilon is clamped to zero.
func FromDense(d mat.Matrix, epsilon float64) *Matrix[float64] {
	return CSRFromDense[float64](d, epsilon)
}

// ToDense expands the matrix into a gonum dense matrix.
func ToDense(m *Matrix[float64]) *mat.Dense {
	rows, cols := m.Dims()
	if rows == 0 || cols == 0 {
		return &mat.Dense{}
	}
	d := mat.NewDense(rows, cols, nil)
	for outer := 0; outer < m.OuterDim(); outer++ {
		v := m.OuterView(outer)
		for k, inner := range v.Indices {
			if m.IsCSR() {
				d.Set(outer, inner, v.Data[k])
			} else {
				d.Set(inner, outer, v.Data[k])
			}
		}
	}
	return d
}
